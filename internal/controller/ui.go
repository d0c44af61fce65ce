// Package controller presents equation sets and drives the interactive editor.
package controller

import (
	"github.com/mouse-blink/equate/internal/expr"
	m "github.com/mouse-blink/equate/internal/model"
)

// Editor is the editing surface the UI drives. It is implemented by the
// domain session.
type Editor interface {
	Path() m.Path
	ReadOnly() bool
	Dirty() bool

	Lines() int
	CurrentLine() int
	SelectLine(i int) bool
	Selection() expr.Selection
	Navigate(motion m.Motion) bool

	Render(i int) string
	Comment(i int) string
	Split(i int) (before, highlighted, after string)

	ReplaceSelection(text string) error
	ReplaceLine(text string) error
	InsertLine(text string) error
	DeleteLine() error
	SetComment(text string) error
	ApplyFactor(kind m.FactorKind) error
	Save() error
}

// UI defines how equate shows its results and hosts the editor.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Edit runs the editor on e until the user quits.
	Edit(e Editor, options ...EditOption) error
	DisplayEquations(sets []m.EquationSet) error
	DisplayCheckResults(results []m.CheckResult) error
	DisplayFormatted(set m.EquationSet) error
	DisplayRevisions(path m.Path, revs []m.Revision) error
}

// EditOption is a functional option for Edit.
type EditOption func(*EditConfig)

// EditConfig holds configuration for an editing session.
type EditConfig struct {
	debugLog string
}

// WithDebugLog mirrors the editor's status messages to the file at path.
func WithDebugLog(path string) EditOption {
	return func(c *EditConfig) {
		c.debugLog = path
	}
}

func newEditConfig(options []EditOption) EditConfig {
	var cfg EditConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}
