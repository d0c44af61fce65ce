package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/equate/internal/domain"
	m "github.com/mouse-blink/equate/internal/model"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history FILE",
		Short: "Show the recorded revisions of an equation file",
		Long:  "Show the line revisions recorded in the --history database while editing FILE, newest first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.History(domain.HistoryArgs{
				Path:  m.Path(args[0]),
				Limit: historyLimitFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "maximum number of revisions shown (0 shows all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
