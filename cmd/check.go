package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/equate/internal/domain"
	m "github.com/mouse-blink/equate/internal/model"
)

var checkParallelFlag int
var checkReportsFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check that every line of .eq files parses",
		Long: "Parse every line of every .eq file and report the lines that fail.\n" +
			"Exits with an error when any line fails.\n\n" + pathPatternsHelp,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Check(domain.CheckArgs{
				Paths:   parsePaths(args),
				Threads: checkParallelFlag,
				Reports: m.Path(checkReportsFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 0, "number of files parsed concurrently (0 uses every CPU)")
	cmd.Flags().StringVar(&checkReportsFlag, "reports", "", "directory receiving YAML reports")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
