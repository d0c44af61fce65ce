package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/equate/internal/domain"
)

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./notes/...    recursively scan notes directory
  - a.eq ./notes   single files and directories`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the equations of .eq files",
		Long:  "List every equation found in .eq files.\n\n" + pathPatternsHelp,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
