package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/equate/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("v=u+a*t", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("x=1", 5, 0); got != "x=1" {
		t.Fatalf("animateScroll short text = %q, want x=1", got)
	}

	if got := animateScroll("a+b+c+d", 4, 0); got != "a+b…" {
		t.Fatalf("animateScroll pause = %q, want a+b…", got)
	}

	got := animateScroll("a+b+c+d", 4, 7)
	if got != "b+c+" {
		t.Fatalf("animateScroll scrolled = %q, want b+c+", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("E=m*c^2", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("E=m*c^2", 10); got != "E=m*c^2" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("E=m*c^2", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("E=m*c^2", 3); got != "E=…" {
		t.Fatalf("truncateToWidth width 3 = %q, want E=…", got)
	}
}

func TestEquationListModel_HandleEquationsMsgAndView(t *testing.T) {
	lm := newEquationListModel()
	if got := lm.View(); got != "Loading equations…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	lm = lm.handleEquationsMsg(equationsMsg{sets: []m.EquationSet{
		parseSet(t, "eq/ohm.eq", "V = I*R", "P = V*I"),
		parseSet(t, "eq/energy.eq", "p = m*v"),
	}})

	if !lm.rendered || lm.totalFiles != 2 || len(lm.eqList.Items()) != 3 {
		t.Fatalf("handleEquationsMsg did not load items: files %d items %d", lm.totalFiles, len(lm.eqList.Items()))
	}

	if lm.lastSelected != 0 {
		t.Fatalf("lastSelected = %d, want 0", lm.lastSelected)
	}

	lm.width = 80
	lm.height = 25

	view := lm.View()
	if !strings.Contains(view, "Equate Equations") || !strings.Contains(view, "ohm.eq:1") {
		t.Fatalf("View() missing title or rows\n%s", view)
	}

	if cmd := lm.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	// too small for the table, falls back to minimum sizes
	lm.height = 0
	lm.width = 10

	if table := lm.renderTable(); !strings.Contains(table, "Location") {
		t.Fatalf("renderTable missing header\n%s", table)
	}
}

func TestEquationListModel_UpdateBranches(t *testing.T) {
	lm := newEquationListModel()

	model, cmd := lm.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("tick before render should not schedule another tick")
	}

	lm = model.(equationListModel)

	model, _ = lm.Update(equationsMsg{sets: []m.EquationSet{parseSet(t, "a.eq", "a = 1", "b = 2")}})
	lm = model.(equationListModel)

	model, cmd = lm.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	lm = model.(equationListModel)
	if lm.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", lm.animOffset)
	}

	model, _ = lm.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	lm = model.(equationListModel)

	if lm.width != 100 || lm.height != 40 {
		t.Fatalf("window size not applied")
	}

	model, _ = lm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	lm = model.(equationListModel)

	if lm.lastSelected != 1 || lm.animOffset != 0 {
		t.Fatalf("selection change not tracked: lastSelected %d animOffset %d", lm.lastSelected, lm.animOffset)
	}

	if _, cmd = lm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("expected quit cmd")
	}
}

func TestEquationDelegate_Render(t *testing.T) {
	delegate := equationDelegate{}
	items := []list.Item{equationItem{path: "notes/motion.eq", line: 2, text: "v=u+a*t"}}
	lm := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer

	delegate.Render(&buf, lm, 0, items[0])

	if !strings.Contains(buf.String(), "motion.eq:2") || !strings.Contains(buf.String(), "v=u+a*t") {
		t.Fatalf("render output = %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, lm, 1, items[0])

	if buf.Len() == 0 {
		t.Fatalf("render output empty")
	}

	if got := items[0].FilterValue(); got != "notes/motion.eq v=u+a*t" {
		t.Fatalf("FilterValue() = %q", got)
	}
}

func TestOperationDelegate_Render(t *testing.T) {
	items := operationItems()
	lm := list.New(items, operationDelegate{}, 40, 12)

	var buf bytes.Buffer

	operationDelegate{}.Render(&buf, lm, 0, items[0])

	if !strings.Contains(buf.String(), "> Edit selection") {
		t.Fatalf("selected operation = %q", buf.String())
	}

	buf.Reset()
	operationDelegate{}.Render(&buf, lm, 8, items[8])

	if !strings.Contains(buf.String(), "Save") || strings.Contains(buf.String(), ">") {
		t.Fatalf("operation = %q", buf.String())
	}
}
