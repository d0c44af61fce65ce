// Package domain implements equate's editing session and its commands.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/equate/internal/adapter"
	"github.com/mouse-blink/equate/internal/controller"
	m "github.com/mouse-blink/equate/internal/model"
)

// EditArgs configures Workflow.Edit.
type EditArgs struct {
	// Path is the file to edit; empty starts from the default equations.
	Path     m.Path
	ReadOnly bool
	DebugLog m.Path
}

// ListArgs configures Workflow.List.
type ListArgs struct {
	Paths []m.Path
}

// CheckArgs configures Workflow.Check.
type CheckArgs struct {
	Paths   []m.Path
	Threads int
	// Reports, when set, is a directory receiving one YAML report per file.
	Reports m.Path
}

// FormatArgs configures Workflow.Format.
type FormatArgs struct {
	Paths   []m.Path
	Threads int
	Write   bool
}

// HistoryArgs configures Workflow.History.
type HistoryArgs struct {
	Path  m.Path
	Limit int
}

// Workflow defines the operations behind equate's commands.
type Workflow interface {
	Edit(args EditArgs) error
	List(args ListArgs) error
	Check(args CheckArgs) error
	Format(args FormatArgs) error
	History(args HistoryArgs) error
}

type workflow struct {
	fsAdapter   adapter.EquationFSAdapter
	history     adapter.HistoryStore
	reportStore adapter.ReportStore
	ui          controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.EquationFSAdapter,
	history adapter.HistoryStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		history:     history,
		reportStore: reportStore,
		ui:          ui,
	}
}

// Edit opens an equation file (or the default equations) in the editor.
func (w *workflow) Edit(args EditArgs) error {
	session, err := w.openSession(args.Path, args.ReadOnly)
	if err != nil {
		return err
	}

	var options []controller.EditOption
	if args.DebugLog != "" {
		options = append(options, controller.WithDebugLog(string(args.DebugLog)))
	}

	return w.ui.Edit(session, options...)
}

// openSession loads path into a new session. A file that does not exist
// yet opens as an empty set that Save will create.
func (w *workflow) openSession(path m.Path, readOnly bool) (*Session, error) {
	if path == "" {
		return NewSession(DefaultEquationSet(), w.fsAdapter, nil, readOnly), nil
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	set := m.EquationSet{Path: m.Path(abs)}

	content, err := w.fsAdapter.ReadFile(set.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		var lineErrs []m.LineError

		set, lineErrs = ParseEquations(set.Path, content)
		if len(lineErrs) > 0 {
			return nil, fmt.Errorf("%s: %w", path, joinLineErrors(lineErrs))
		}
	}

	return NewSession(set, w.fsAdapter, w.history, readOnly), nil
}

// List shows every equation found under the given roots.
func (w *workflow) List(args ListArgs) error {
	files, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("find equation files: %w", err)
	}

	sets := make([]m.EquationSet, 0, len(files))

	for _, file := range files {
		content, err := w.fsAdapter.ReadFile(file.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", file.Path, err)
		}

		set, _ := ParseEquations(file.Path, content)
		sets = append(sets, set)
	}

	return w.ui.DisplayEquations(sets)
}

// Check parses every line of every equation file under the roots.
func (w *workflow) Check(args CheckArgs) error {
	files, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("find equation files: %w", err)
	}

	results := make([]m.CheckResult, len(files))

	err = w.forEachFile(files, args.Threads, func(i int, file m.EquationFile, content []byte) error {
		set, lineErrs := ParseEquations(file.Path, content)
		results[i] = m.CheckResult{File: file, Lines: len(set.Lines) + len(lineErrs), Errors: lineErrs}

		return nil
	})
	if err != nil {
		return err
	}

	if err := w.ui.DisplayCheckResults(results); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, results); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("regenerate report index: %w", err)
		}
	}

	failed := 0

	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) have errors", ErrCheckFailed, failed, len(results))
	}

	return nil
}

// Format rewrites every equation in its canonical form, printing the result
// or writing it back when args.Write is set.
func (w *workflow) Format(args FormatArgs) error {
	files, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("find equation files: %w", err)
	}

	sets := make([]m.EquationSet, len(files))

	err = w.forEachFile(files, args.Threads, func(i int, file m.EquationFile, content []byte) error {
		set, lineErrs := ParseEquations(file.Path, content)
		if len(lineErrs) > 0 {
			return fmt.Errorf("%s: %w", file.Path, joinLineErrors(lineErrs))
		}

		sets[i] = set

		if !args.Write {
			return nil
		}

		formatted := FormatEquations(set)
		if string(formatted) == string(content) {
			return nil
		}

		if err := w.fsAdapter.WriteFile(file.Path, formatted, equationFilePerm); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if args.Write {
		return nil
	}

	for _, set := range sets {
		if err := w.ui.DisplayFormatted(set); err != nil {
			return err
		}
	}

	return nil
}

// History shows the stored revisions of one file.
func (w *workflow) History(args HistoryArgs) error {
	abs, err := filepath.Abs(string(args.Path))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args.Path, err)
	}

	revs, err := w.history.LoadRevisions(m.Path(abs), args.Limit)
	if err != nil {
		return fmt.Errorf("load revisions: %w", err)
	}

	return w.ui.DisplayRevisions(m.Path(abs), revs)
}

// forEachFile reads the files concurrently and calls fn with each file's
// index and content. fn must only write to its own index.
func (w *workflow) forEachFile(files []m.EquationFile, threads int, fn func(int, m.EquationFile, []byte) error) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			content, err := w.fsAdapter.ReadFile(file.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", file.Path, err)
			}

			return fn(i, file, content)
		})
	}

	return g.Wait()
}

func joinLineErrors(errs []m.LineError) error {
	wrapped := make([]error, 0, len(errs))
	for _, le := range errs {
		wrapped = append(wrapped, fmt.Errorf("line %d: %w", le.Line, le.Err))
	}

	return errors.Join(wrapped...)
}
