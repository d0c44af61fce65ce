// Package cmd provides the root command and CLI setup for equate.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/equate/internal/adapter"
	"github.com/mouse-blink/equate/internal/controller"
	"github.com/mouse-blink/equate/internal/domain"
	m "github.com/mouse-blink/equate/internal/model"
)

var fsAdapter adapter.EquationFSAdapter
var reportStore adapter.ReportStore
var historyStore adapter.HistoryStore
var ui controller.UI
var workflow domain.Workflow
var defaultWorkflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalEquationFSAdapter()
	reportStore = adapter.NewReportStore()
	historyStore = adapter.NewMemoryHistoryStore()
	workflow = domain.NewWorkflow(fsAdapter, historyStore, reportStore, ui)
	defaultWorkflow = workflow
}

var readOnlyFlag bool
var historyFlag string
var debugLogFlag string

const rootLongDescription = `Equate is an interactive editor for algebraic equations.

Equations are edited as trees: pick a sub-expression, widen the selection
over neighbouring terms, then replace it or factor it without retyping the
rest of the line.

Without a file the editor opens a set of kinematics equations.

Keys:
  line mode        ↑/k ↓/j move • enter pick • E edit • i insert • d delete
  pick mode        ↑/k out • ↓/j in • ←/h →/l move • H/L expand • v select
  select mode      ←/h →/l expand • H/L shrink
  anywhere         e edit selection • o operations • c comment • s save • q quit

When stdout is not a terminal the editor reads one command per line from
stdin: line N, in, out, left, right, expand-left, expand-right, shrink-left,
shrink-right, replace TEXT, edit TEXT, insert TEXT, delete, comment TEXT,
factor leading|trailing|all, show, save, quit.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equate [file]",
		Short: "Algebraic equation editor",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return openHistory()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return historyStore.Close()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.Edit(domain.EditArgs{
				Path:     path,
				ReadOnly: readOnlyFlag,
				DebugLog: m.Path(debugLogFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&readOnlyFlag, "read-only", "R", false, "open the file without allowing saves")
	cmd.Flags().StringVar(&debugLogFlag, "debug-log", "", "write editor status messages to this file")
	cmd.PersistentFlags().StringVar(&historyFlag, "history", "", "SQLite database keeping line revisions (in memory when empty)")

	return cmd
}

// openHistory swaps the in-memory history for the SQLite database named by
// --history. A workflow replaced by tests is left alone.
func openHistory() error {
	if historyFlag == "" || workflow != defaultWorkflow {
		return nil
	}

	store, err := adapter.NewSQLiteHistoryStore(historyFlag)
	if err != nil {
		return err
	}

	historyStore = store
	workflow = domain.NewWorkflow(fsAdapter, historyStore, reportStore, ui)
	defaultWorkflow = workflow

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parsePaths converts CLI arguments into paths, defaulting to the current
// directory.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
