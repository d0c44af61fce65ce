// Package model defines the data structures shared by the equate layers.
package model

import (
	"github.com/mouse-blink/equate/internal/expr"
)

// Path represents a file system path.
type Path string

// Line is one equation of an equation set together with its trailing
// comment and the current selection inside it.
type Line struct {
	Expr    expr.Expression
	Comment string
	Sel     expr.Selection
}

// NewLine creates a line with the selection on the first operand of the root.
func NewLine(e expr.Expression, comment string) Line {
	return Line{Expr: e, Comment: comment, Sel: expr.Selection{}}
}

// Text renders the line the way it is persisted.
func (l Line) Text() string {
	text := expr.Render(l.Expr)
	if l.Comment != "" {
		text += " # " + l.Comment
	}

	return text
}

// EquationSet is the content of one equation file.
type EquationSet struct {
	Path  Path // empty for an unsaved set
	Lines []Line
}
