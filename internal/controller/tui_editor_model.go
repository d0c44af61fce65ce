package controller

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/equate/internal/model"
)

// editorMode is what the keys currently act on.
type editorMode int

const (
	// modeLineSelect moves between lines.
	modeLineSelect editorMode = iota
	// modeExprPick walks the tree of the current line.
	modeExprPick
	// modeExprSelect grows and shrinks the selected range.
	modeExprSelect
	// modePrompt reads text for an edit.
	modePrompt
	// modeMenu shows the operations menu.
	modeMenu
)

// promptKind is the edit a prompt feeds.
type promptKind int

const (
	promptSelection promptKind = iota
	promptLine
	promptInsert
	promptComment
)

var promptLabels = map[promptKind]string{
	promptSelection: "replace selection: ",
	promptLine:      "edit line: ",
	promptInsert:    "insert line: ",
	promptComment:   "comment: ",
}

var (
	editorTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Padding(1, 0, 1, 2)
	lineNumberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(4).Align(lipgloss.Right)
	currentLineStyle = lipgloss.NewStyle().Bold(true)
	highlightStyle   = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("6"))
	commentStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 0, 0, 2)
	errorStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Padding(0, 0, 0, 2)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 0, 0, 2)
)

// editorModel is the Bubble Tea model of the equation editor.
type editorModel struct {
	editor Editor
	logger *log.Logger

	width  int
	height int

	mode     editorMode
	prev     editorMode
	prompt   promptKind
	input    textinput.Model
	menu     list.Model
	status   string
	failed   bool
	quitWarn bool
	quitting bool
}

func newEditorModel(e Editor, logger *log.Logger) editorModel {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	input := textinput.New()
	input.CharLimit = 512

	menu := list.New(operationItems(), operationDelegate{}, 40, len(operations)+2)
	menu.SetShowPagination(false)
	menu.SetShowFilter(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.Title = "Operations"

	return editorModel{
		editor: e,
		logger: logger,
		input:  input,
		menu:   menu,
	}
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.menu.SetWidth(msg.Width)
		em.input.Width = msg.Width - 24

		return em, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			em.quitting = true
			return em, tea.Quit
		}

		switch em.mode {
		case modePrompt:
			return em.updatePrompt(msg)
		case modeMenu:
			return em.updateMenu(msg)
		case modeLineSelect, modeExprPick, modeExprSelect:
			return em.handleKeyPress(msg)
		}
	}

	return em, nil
}

//nolint:cyclop,gocognit // key handling requires one case per binding
func (em editorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key != "q" {
		em.quitWarn = false
	}

	switch key {
	case "q":
		if em.editor.Dirty() && !em.quitWarn {
			em.quitWarn = true
			em.setError("unsaved changes, press q again to quit")

			return em, nil
		}

		em.quitting = true

		return em, tea.Quit
	case "s":
		em.save()
		return em, nil
	case "V":
		em.mode = modeLineSelect
		return em, nil
	case "o":
		if em.editor.Lines() > 0 {
			em.prev = em.mode
			em.mode = modeMenu
		}

		return em, nil
	case "E":
		return em.openPrompt(promptLine, em.lineText())
	case "i":
		return em.openPrompt(promptInsert, "")
	case "c":
		return em.openPrompt(promptComment, em.commentText())
	}

	switch em.mode {
	case modeLineSelect:
		return em.handleLineKey(key)
	case modeExprPick:
		return em.handlePickKey(key)
	case modeExprSelect:
		return em.handleSelectKey(key)
	case modePrompt, modeMenu:
	}

	return em, nil
}

func (em editorModel) handleLineKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		em.selectLine(em.editor.CurrentLine() - 1)
	case "down", "j":
		em.selectLine(em.editor.CurrentLine() + 1)
	case "g", "home":
		em.selectLine(0)
	case "G", "end":
		em.selectLine(em.editor.Lines() - 1)
	case "enter":
		if em.editor.Lines() > 0 {
			em.mode = modeExprPick
		}
	case "d":
		em.apply("delete line", em.editor.DeleteLine())
	}

	return em, nil
}

func (em editorModel) handlePickKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		em.move(m.MotionOut)
	case "down", "j":
		em.move(m.MotionIn)
	case "left", "h":
		em.move(m.MotionLeft)
	case "right", "l":
		em.move(m.MotionRight)
	case "shift+left", "H":
		em.move(m.MotionExpandLeft)
	case "shift+right", "L":
		em.move(m.MotionExpandRight)
	case "v":
		em.mode = modeExprSelect
	case "e", "enter":
		return em.openPrompt(promptSelection, em.highlighted())
	case "esc":
		em.mode = modeLineSelect
	}

	return em, nil
}

func (em editorModel) handleSelectKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		em.move(m.MotionExpandLeft)
	case "right", "l":
		em.move(m.MotionExpandRight)
	case "shift+left", "H":
		em.move(m.MotionShrinkRight)
	case "shift+right", "L":
		em.move(m.MotionShrinkLeft)
	case "e", "enter":
		return em.openPrompt(promptSelection, em.highlighted())
	case "v", "esc":
		em.mode = modeExprPick
	}

	return em, nil
}

func (em editorModel) openPrompt(kind promptKind, value string) (tea.Model, tea.Cmd) {
	if kind != promptInsert && em.editor.Lines() == 0 {
		em.setError("no line selected")
		return em, nil
	}

	if em.mode != modeMenu {
		em.prev = em.mode
	}

	em.mode = modePrompt
	em.prompt = kind
	em.input.Prompt = promptLabels[kind]
	em.input.SetValue(value)
	em.input.CursorEnd()
	cmd := em.input.Focus()

	return em, cmd
}

func (em editorModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		em.closePrompt()
		return em, nil
	case tea.KeyEnter:
		value := em.input.Value()
		em.closePrompt()
		em.submit(value)

		return em, nil
	default:
	}

	var cmd tea.Cmd
	em.input, cmd = em.input.Update(msg)

	return em, cmd
}

func (em *editorModel) closePrompt() {
	em.input.Blur()
	em.input.SetValue("")
	em.mode = em.prev
}

func (em *editorModel) submit(value string) {
	switch em.prompt {
	case promptSelection:
		em.apply("replace", em.editor.ReplaceSelection(value))
	case promptLine:
		em.apply("edit line", em.editor.ReplaceLine(value))
		em.mode = modeLineSelect
	case promptInsert:
		em.apply("insert line", em.editor.InsertLine(value))
		em.mode = modeLineSelect
	case promptComment:
		em.apply("comment", em.editor.SetComment(strings.TrimSpace(value)))
	}
}

func (em editorModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "o", "q":
		em.mode = em.prev
		return em, nil
	case "enter":
		op, ok := em.menu.SelectedItem().(operation)
		if !ok {
			em.mode = em.prev
			return em, nil
		}

		return em.runOperation(op)
	}

	var cmd tea.Cmd
	em.menu, cmd = em.menu.Update(msg)

	return em, cmd
}

func (em editorModel) runOperation(op operation) (tea.Model, tea.Cmd) {
	em.mode = em.prev

	switch op.action {
	case actionReplace:
		return em.openPrompt(promptSelection, em.highlighted())
	case actionEditLine:
		return em.openPrompt(promptLine, em.lineText())
	case actionInsertLine:
		return em.openPrompt(promptInsert, "")
	case actionComment:
		return em.openPrompt(promptComment, em.commentText())
	case actionDeleteLine:
		em.apply("delete line", em.editor.DeleteLine())
		em.mode = modeLineSelect
	case actionFactor:
		em.apply("factor "+string(op.factor), em.editor.ApplyFactor(op.factor))
	case actionSave:
		em.save()
	}

	return em, nil
}

func (em *editorModel) selectLine(i int) {
	if em.editor.SelectLine(i) {
		em.setStatus("line %d", i+1)
	}
}

func (em *editorModel) move(motion m.Motion) {
	if em.editor.Navigate(motion) {
		em.setStatus("%s to %v", motion, em.editor.Selection())
		return
	}

	em.setStatus("can't move %s, staying at %v", motion, em.editor.Selection())
}

func (em *editorModel) apply(what string, err error) {
	if err != nil {
		em.setError("%s: %v", what, err)
		return
	}

	em.setStatus("%s done", what)
}

func (em *editorModel) save() {
	err := em.editor.Save()
	if err != nil {
		em.setError("save: %v", err)
		return
	}

	em.quitWarn = false
	em.setStatus("saved %s", em.editor.Path())
}

func (em *editorModel) setStatus(format string, args ...any) {
	em.status = fmt.Sprintf(format, args...)
	em.failed = false
	em.logger.Print(em.status)
}

func (em *editorModel) setError(format string, args ...any) {
	em.status = fmt.Sprintf(format, args...)
	em.failed = true
	em.logger.Print("error: " + em.status)
}

func (em editorModel) highlighted() string {
	if em.editor.Lines() == 0 {
		return ""
	}

	_, highlighted, _ := em.editor.Split(em.editor.CurrentLine())

	return strings.TrimSpace(highlighted)
}

func (em editorModel) lineText() string {
	if em.editor.Lines() == 0 {
		return ""
	}

	return em.editor.Render(em.editor.CurrentLine())
}

func (em editorModel) commentText() string {
	if em.editor.Lines() == 0 {
		return ""
	}

	return em.editor.Comment(em.editor.CurrentLine())
}

func (em editorModel) View() string {
	if em.quitting {
		return ""
	}

	var b strings.Builder

	title := "Equate"
	if path := em.editor.Path(); path != "" {
		title += " - " + string(path)
	}

	if em.editor.ReadOnly() {
		title += " [read-only]"
	}

	if em.editor.Dirty() {
		title += " *"
	}

	b.WriteString(editorTitleStyle.Render(title))
	b.WriteString("\n")

	if em.editor.Lines() == 0 {
		b.WriteString(helpStyle.Render("(empty) press i to insert a line"))
		b.WriteString("\n")
	}

	for i, n := 0, em.editor.Lines(); i < n; i++ {
		b.WriteString(em.renderLine(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch em.mode {
	case modePrompt:
		b.WriteString("  " + em.input.View())
		b.WriteString("\n")
	case modeMenu:
		b.WriteString(em.menu.View())
		b.WriteString("\n")
	case modeLineSelect, modeExprPick, modeExprSelect:
	}

	if em.status != "" {
		style := statusStyle
		if em.failed {
			style = errorStatusStyle
		}

		b.WriteString(style.Render(em.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(em.help()))
	b.WriteString("\n")

	return b.String()
}

func (em editorModel) renderLine(i int) string {
	number := lineNumberStyle.Render(fmt.Sprintf("%d", i+1))

	var text string

	switch {
	case i != em.editor.CurrentLine():
		text = em.editor.Render(i)
	case em.mode == modeLineSelect:
		text = currentLineStyle.Render(em.editor.Render(i))
	default:
		before, highlighted, after := em.editor.Split(i)
		text = before + highlightStyle.Render(highlighted) + after
	}

	if comment := em.editor.Comment(i); comment != "" {
		text += "  " + commentStyle.Render("# "+comment)
	}

	marker := "  "
	if i == em.editor.CurrentLine() {
		marker = "> "
	}

	return number + " " + marker + text
}

func (em editorModel) help() string {
	switch em.mode {
	case modeLineSelect:
		return "↑/k ↓/j line • enter pick • E edit • i insert • d delete • c comment • s save • q quit"
	case modeExprPick:
		return "↑/k out • ↓/j in • ←/h →/l move • H/L expand • v select • e edit • o ops • V lines • q quit"
	case modeExprSelect:
		return "←/h →/l expand • H/L shrink • e edit • o ops • v pick • q quit"
	case modePrompt:
		return "enter apply • esc cancel"
	case modeMenu:
		return "↑/↓ choose • enter run • esc back"
	}

	return ""
}
