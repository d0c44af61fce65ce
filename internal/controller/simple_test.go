package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/equate/internal/model"
	"github.com/mouse-blink/equate/internal/syntax"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

func parseSet(t *testing.T, path m.Path, lines ...string) m.EquationSet {
	t.Helper()

	set := m.EquationSet{Path: path}

	for _, text := range lines {
		e, comment, err := syntax.ParseWithComment(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}

		set.Lines = append(set.Lines, m.NewLine(e, comment))
	}

	return set
}

func assertOutputContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayEquations_PrintsTable(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	sets := []m.EquationSet{
		parseSet(t, "eq/ohm.eq", "V = I*R", "P = V*I # power"),
		parseSet(t, "eq/energy.eq", "p = m*v"),
	}

	if err := ui.DisplayEquations(sets); err != nil {
		t.Fatalf("DisplayEquations() error = %v", err)
	}

	assertOutputContains(t, buf.String(),
		"PATH",
		"EQUATION",
		"eq/ohm.eq",
		"eq/energy.eq",
		"V=I*R",
		"P=V*I # power",
		"TOTAL FILES 2",
		"3",
	)
}

func TestSimpleUI_DisplayCheckResults(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	results := []m.CheckResult{
		{File: m.EquationFile{Path: "eq/ok.eq"}, Lines: 4},
		{File: m.EquationFile{Path: "eq/bad.eq"}, Lines: 3, Errors: []m.LineError{{Line: 2, Err: errors.New("boom")}}},
	}

	if err := ui.DisplayCheckResults(results); err != nil {
		t.Fatalf("DisplayCheckResults() error = %v", err)
	}

	assertOutputContains(t, buf.String(),
		"eq/ok.eq",
		"ok",
		"1 error(s)",
		"1 FAILED",
		"eq/bad.eq:2: boom",
	)
}

func TestSimpleUI_DisplayFormatted(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayFormatted(parseSet(t, "", "V = I * R  # ohm", "G = 1 / R")); err != nil {
		t.Fatalf("DisplayFormatted() error = %v", err)
	}

	if got, want := buf.String(), "V=I*R # ohm\nG=1/R\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplayRevisions(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		cmd, buf := newTestCommand()

		if err := NewSimpleUI(cmd).DisplayRevisions("eq/a.eq", nil); err != nil {
			t.Fatalf("DisplayRevisions() error = %v", err)
		}

		assertOutputContains(t, buf.String(), "no revisions for eq/a.eq")
	})

	t.Run("table", func(t *testing.T) {
		cmd, buf := newTestCommand()
		at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

		revs := []m.Revision{
			{Version: 2, Line: 0, Text: "v=u+a*t", Time: at},
			{Version: 1, Line: 1, Text: "v=u", Time: at},
		}

		if err := NewSimpleUI(cmd).DisplayRevisions("eq/a.eq", revs); err != nil {
			t.Fatalf("DisplayRevisions() error = %v", err)
		}

		assertOutputContains(t, buf.String(), "eq/a.eq", "VERSION", "2024-03-01 12:30:00", "v=u+a*t", "v=u")
	})
}

func TestWithComment(t *testing.T) {
	if got := withComment("a=b", ""); got != "a=b" {
		t.Fatalf("withComment() = %q", got)
	}

	if got := withComment("a=b", "note"); got != "a=b # note" {
		t.Fatalf("withComment() = %q", got)
	}
}
