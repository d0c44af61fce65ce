package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// equationDelegate renders one equation per row, scrolling the selected
// row when it is wider than the list.
type equationDelegate struct {
	offset int
}

func (d equationDelegate) Height() int  { return 1 }
func (d equationDelegate) Spacing() int { return 0 }
func (d equationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d equationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	eq, ok := item.(equationItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var locStyle, textStyle lipgloss.Style

	var displayText string

	loc := fmt.Sprintf("%s:%d", filepath.Base(eq.path), eq.line)
	width := lm.Width() - 24

	if isSelected {
		locStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(22)
		textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		displayText = animateScroll(eq.text, width, d.offset)
	} else {
		locStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(22)
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayText = truncateToWidth(eq.text, width)
	}

	line := fmt.Sprintf("%s  %s",
		locStyle.Render(truncateToWidth(loc, 22)),
		textStyle.Render(displayText),
	)
	_, _ = fmt.Fprint(w, line)
}

const (
	ellipsis    = "…"
	scrollGap   = "   "
	scrollPause = 5 // ticks shown truncated before scrolling
)

// animateScroll shows a width-wide window of text that advances one rune per
// tick once the pause is over, wrapping around through a short gap.
func animateScroll(text string, width int, offset int) string {
	switch {
	case width <= 0:
		return ""
	case lipgloss.Width(text) <= width:
		return text
	case offset < scrollPause:
		return truncateToWidth(text, width)
	}

	ring := []rune(text + scrollGap)
	start := (offset - scrollPause) % len(ring)

	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(ring[(start+i)%len(ring)])
	}

	return b.String()
}

// truncateToWidth cuts text to width cells, marking the cut with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	budget := width - lipgloss.Width(ellipsis)

	var b strings.Builder

	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w > budget {
			break
		}

		b.WriteRune(r)
		budget -= w
	}

	return b.String() + ellipsis
}

// equationListModel browses the equations of several files.
type equationListModel struct {
	width        int
	height       int
	eqList       list.Model
	delegate     equationDelegate
	totalFiles   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEquationListModel() equationListModel {
	delegate := equationDelegate{}
	eqList := list.New([]list.Item{}, delegate, 80, 20)
	eqList.SetShowPagination(false)
	eqList.SetShowFilter(true)
	eqList.SetShowHelp(false)
	eqList.SetShowTitle(false)
	eqList.SetShowStatusBar(false)
	eqList.FilterInput.Placeholder = "Filter equations…"

	return equationListModel{
		eqList:       eqList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (lm equationListModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (lm equationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.width = msg.Width
		lm.height = msg.Height
		lm.eqList.SetWidth(lm.width)

	case tickMsg:
		if lm.eqList.FilterState() != list.Filtering && lm.rendered {
			lm.animOffset++
			lm.delegate.offset = lm.animOffset
			lm.eqList.SetDelegate(lm.delegate)

			return lm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return lm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return lm, tea.Quit
		default:
			lm.eqList, cmd = lm.eqList.Update(msg)

			if lm.eqList.Index() != lm.lastSelected {
				lm.lastSelected = lm.eqList.Index()
				lm.animOffset = 0
				lm.delegate.offset = 0
				lm.eqList.SetDelegate(lm.delegate)
			}

			return lm, cmd
		}

	case equationsMsg:
		lm = lm.handleEquationsMsg(msg)
	}

	return lm, cmd
}

func (lm equationListModel) handleEquationsMsg(msg equationsMsg) equationListModel {
	var items []list.Item

	for _, set := range msg.sets {
		for i, line := range set.Lines {
			items = append(items, equationItem{path: string(set.Path), line: i + 1, text: line.Text()})
		}
	}

	lm.eqList.SetItems(items)
	lm.totalFiles = len(msg.sets)
	lm.rendered = true

	if len(items) > 0 && lm.lastSelected == -1 {
		lm.lastSelected = 0
	}

	return lm
}

func (lm equationListModel) View() string {
	if !lm.rendered {
		return "Loading equations…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Equate Equations")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Equations: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(lm.eqList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", lm.totalFiles)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(lm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		lm.renderTable(),
		footer,
	)
}

func (lm equationListModel) renderTable() string {
	// title, summary, footer, border and header take nine rows
	listHeight := lm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := lm.width - 6
	if listWidth < 20 {
		listWidth = 74
	}

	lm.eqList.SetHeight(listHeight)
	lm.eqList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-22s  %s", "Location", "Equation"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			lm.eqList.View(),
		),
	)
}
