package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/equate/internal/domain"
)

var fmtWriteFlag bool
var fmtParallelFlag int

// fmtCmd represents the fmt command.
var fmtCmd = newFmtCmd()

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite .eq files in canonical form",
		Long: "Print every equation with minimal parentheses and normalised spacing,\n" +
			"or rewrite the files in place with -w.\n\n" + pathPatternsHelp,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Format(domain.FormatArgs{
				Paths:   parsePaths(args),
				Threads: fmtParallelFlag,
				Write:   fmtWriteFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&fmtWriteFlag, "write", "w", false, "write the result back to the files")
	cmd.Flags().IntVarP(&fmtParallelFlag, "parallel", "p", 0, "number of files formatted concurrently (0 uses every CPU)")

	return cmd
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
