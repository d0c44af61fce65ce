package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/equate/internal/model"
)

// Message types.
type equationsMsg struct {
	sets []m.EquationSet
}

// List item types.
type equationItem struct {
	path string
	line int
	text string
}

func (e equationItem) FilterValue() string {
	return e.path + " " + e.text
}

type operationAction int

const (
	actionReplace operationAction = iota
	actionEditLine
	actionInsertLine
	actionDeleteLine
	actionComment
	actionFactor
	actionSave
)

type operation struct {
	title  string
	action operationAction
	factor m.FactorKind
}

func (o operation) FilterValue() string {
	return o.title
}

var operations = []operation{
	{title: "Edit selection", action: actionReplace},
	{title: "Extract common leading factor", action: actionFactor, factor: m.FactorLeading},
	{title: "Extract common trailing factor", action: actionFactor, factor: m.FactorTrailing},
	{title: "Extract all common factors", action: actionFactor, factor: m.FactorAll},
	{title: "Edit line", action: actionEditLine},
	{title: "Insert line", action: actionInsertLine},
	{title: "Delete line", action: actionDeleteLine},
	{title: "Set comment", action: actionComment},
	{title: "Save", action: actionSave},
}

func operationItems() []list.Item {
	items := make([]list.Item, 0, len(operations))
	for _, op := range operations {
		items = append(items, op)
	}

	return items
}

// operationDelegate renders one menu entry per row.
type operationDelegate struct{}

func (d operationDelegate) Height() int  { return 1 }
func (d operationDelegate) Spacing() int { return 0 }
func (d operationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d operationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	op, ok := item.(operation)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).PaddingLeft(4)
	if index == lm.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			PaddingLeft(2)

		_, _ = fmt.Fprint(w, style.Render("> "+op.title))

		return
	}

	_, _ = fmt.Fprint(w, style.Render(op.title))
}
