package controller

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/equate/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Edit runs the interactive editor until the user quits.
func (t *TUI) Edit(e Editor, options ...EditOption) error {
	cfg := newEditConfig(options)

	logger := log.New(io.Discard, "", log.LstdFlags)

	if cfg.debugLog != "" {
		f, err := tea.LogToFileWith(cfg.debugLog, "equate", logger)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}

		defer func() {
			_ = f.Close()
		}()
	}

	model := newEditorModel(e, logger)
	model.width, model.height = t.size()

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}

// DisplayEquations prints the equations, or opens a scrollable list when
// they do not fit the terminal.
func (t *TUI) DisplayEquations(sets []m.EquationSet) error {
	model := newEquationListModel()
	model = model.handleEquationsMsg(equationsMsg{sets: sets})
	model.width, model.height = t.size()

	if model.height == 0 || len(model.eqList.Items())+9 <= model.height {
		_, err := fmt.Fprint(t.output, renderEquations(sets))
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(t.input), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCheckResults prints a colored status per file and every failing line.
func (t *TUI) DisplayCheckResults(results []m.CheckResult) error {
	var b strings.Builder

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Width(8)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Width(8)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(10)

	failed := 0

	for _, r := range results {
		status := okStyle.Render("ok")
		if !r.OK() {
			status = failStyle.Render("fail")
			failed++
		}

		fmt.Fprintf(&b, "  %s%s (%d lines)\n", status, pathStyle.Render(string(r.File.Path)), r.Lines)

		for _, le := range r.Errors {
			b.WriteString(detailStyle.Render(fmt.Sprintf("line %d: %v", le.Line, le.Err)))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n  %d file(s), %d failed\n", len(results), failed)

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayFormatted prints the canonical form of a set.
func (t *TUI) DisplayFormatted(set m.EquationSet) error {
	for _, line := range set.Lines {
		if _, err := fmt.Fprintln(t.output, line.Text()); err != nil {
			return err
		}
	}

	return nil
}

// DisplayRevisions prints the stored revisions of a file, newest first.
func (t *TUI) DisplayRevisions(path m.Path, revs []m.Revision) error {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	b.WriteString(titleStyle.Render(string(path)))
	b.WriteString("\n")

	if len(revs) == 0 {
		b.WriteString("  no revisions\n")
	}

	for _, rev := range revs {
		fmt.Fprintf(&b, "%s  %s  line %d  %s\n",
			versionStyle.Render(fmt.Sprintf("v%d", rev.Version)),
			timeStyle.Render(rev.Time.Format("2006-01-02 15:04:05")),
			rev.Line+1,
			rev.Text,
		)
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// size returns the terminal size of the output, or zeros when unknown.
func (t *TUI) size() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func renderEquations(sets []m.EquationSet) string {
	var b strings.Builder

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(4).Align(lipgloss.Right)

	for _, set := range sets {
		b.WriteString(pathStyle.Render(string(set.Path)))
		b.WriteString("\n")

		for i, line := range set.Lines {
			fmt.Fprintf(&b, "%s  %s\n", numberStyle.Render(fmt.Sprintf("%d", i+1)), line.Text())
		}
	}

	return b.String()
}
