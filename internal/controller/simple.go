package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/equate/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output. Its editor reads
// one command per line from the command's input, which makes it scriptable.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Edit runs the line-command editor until quit or end of input.
func (s *SimpleUI) Edit(e Editor, _ ...EditOption) error {
	s.printLines(e)

	scanner := bufio.NewScanner(s.cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		if name == "quit" || name == "q" {
			return nil
		}

		if err := s.runCommand(e, name, strings.TrimSpace(arg)); err != nil {
			s.printf("error: %v\n", err)
			continue
		}
	}

	return scanner.Err()
}

//nolint:cyclop // one case per editor command
func (s *SimpleUI) runCommand(e Editor, name, arg string) error {
	if motion, ok := m.ParseMotion(name); ok {
		if !e.Navigate(motion) {
			s.printf("cannot move %s\n", motion)
		}

		s.printCurrent(e)

		return nil
	}

	var err error

	switch name {
	case "show":
		s.printLines(e)
		return nil
	case "line":
		n, convErr := strconv.Atoi(arg)
		if convErr != nil || !e.SelectLine(n-1) {
			return fmt.Errorf("no line %q", arg)
		}
	case "replace":
		err = e.ReplaceSelection(arg)
	case "edit":
		err = e.ReplaceLine(arg)
	case "insert":
		err = e.InsertLine(arg)
	case "delete":
		err = e.DeleteLine()
	case "comment":
		err = e.SetComment(arg)
	case "factor":
		err = e.ApplyFactor(m.FactorKind(arg))
	case "save":
		if err = e.Save(); err == nil {
			s.printf("saved %s\n", e.Path())
		}

		return err
	default:
		return fmt.Errorf("unknown command %q", name)
	}

	if err != nil {
		return err
	}

	s.printCurrent(e)

	return nil
}

func (s *SimpleUI) printLines(e Editor) {
	for i, n := 0, e.Lines(); i < n; i++ {
		marker := " "
		if i == e.CurrentLine() {
			marker = ">"
		}

		s.printf("%s %d: %s\n", marker, i+1, withComment(e.Render(i), e.Comment(i)))
	}
}

func (s *SimpleUI) printCurrent(e Editor) {
	if e.Lines() == 0 {
		s.printf("(no lines)\n")
		return
	}

	i := e.CurrentLine()
	before, highlighted, after := e.Split(i)
	s.printf("> %d: %s[%s]%s\n", i+1, before, highlighted, after)
}

// DisplayEquations prints every equation of every set as a table.
func (s *SimpleUI) DisplayEquations(sets []m.EquationSet) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Line", "Equation"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	total := 0

	for _, set := range sets {
		for i, line := range set.Lines {
			table.Append([]string{string(set.Path), strconv.Itoa(i + 1), line.Text()})
			total++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sets)),
		"",
		strconv.Itoa(total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCheckResults prints one row per file and every failing line.
func (s *SimpleUI) DisplayCheckResults(results []m.CheckResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	failed := 0

	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = fmt.Sprintf("%d error(s)", len(r.Errors))
			failed++
		}

		table.Append([]string{string(r.File.Path), strconv.Itoa(r.Lines), status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		fmt.Sprintf("%d failed", failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, r := range results {
		for _, le := range r.Errors {
			s.printf("%s:%d: %v\n", r.File.Path, le.Line, le.Err)
		}
	}

	return nil
}

// DisplayFormatted prints the canonical form of a set.
func (s *SimpleUI) DisplayFormatted(set m.EquationSet) error {
	for _, line := range set.Lines {
		s.printf("%s\n", line.Text())
	}

	return nil
}

// DisplayRevisions prints the stored revisions of a file, newest first.
func (s *SimpleUI) DisplayRevisions(path m.Path, revs []m.Revision) error {
	if len(revs) == 0 {
		s.printf("no revisions for %s\n", path)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Version", "Line", "Time", "Text"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rev := range revs {
		table.Append([]string{
			strconv.Itoa(rev.Version),
			strconv.Itoa(rev.Line + 1),
			rev.Time.Format("2006-01-02 15:04:05"),
			rev.Text,
		})
	}

	table.Render()
	s.printf("%s\n%s", path, tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func withComment(text, comment string) string {
	if comment == "" {
		return text
	}

	return text + " # " + comment
}
