package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/equate/internal/model"
)

func TestTUI_DisplayEquations_StaticWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer

	tui := NewTUI(&out, strings.NewReader(""))

	err := tui.DisplayEquations([]m.EquationSet{parseSet(t, "eq/ohm.eq", "V = I*R", "P = V*I # power")})
	if err != nil {
		t.Fatalf("DisplayEquations() error = %v", err)
	}

	assertOutputContains(t, out.String(), "eq/ohm.eq", "1  V=I*R", "2  P=V*I")
}

func TestTUI_DisplayCheckResults(t *testing.T) {
	var out bytes.Buffer

	results := []m.CheckResult{
		{File: m.EquationFile{Path: "eq/ok.eq"}, Lines: 4},
		{File: m.EquationFile{Path: "eq/bad.eq"}, Lines: 3, Errors: []m.LineError{{Line: 2, Err: errors.New("boom")}}},
	}

	if err := NewTUI(&out, nil).DisplayCheckResults(results); err != nil {
		t.Fatalf("DisplayCheckResults() error = %v", err)
	}

	assertOutputContains(t, out.String(), "ok", "eq/ok.eq (4 lines)", "fail", "line 2: boom", "2 file(s), 1 failed")
}

func TestTUI_DisplayFormatted(t *testing.T) {
	var out bytes.Buffer

	if err := NewTUI(&out, nil).DisplayFormatted(parseSet(t, "", "a = b + (c)")); err != nil {
		t.Fatalf("DisplayFormatted() error = %v", err)
	}

	if got := out.String(); got != "a=b+c\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestTUI_DisplayRevisions(t *testing.T) {
	var out bytes.Buffer

	tui := NewTUI(&out, nil)

	if err := tui.DisplayRevisions("eq/a.eq", nil); err != nil {
		t.Fatalf("DisplayRevisions() error = %v", err)
	}

	assertOutputContains(t, out.String(), "eq/a.eq", "no revisions")

	out.Reset()

	revs := []m.Revision{{Version: 3, Line: 1, Text: "v=u+a*t", Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}}
	if err := tui.DisplayRevisions("eq/a.eq", revs); err != nil {
		t.Fatalf("DisplayRevisions() error = %v", err)
	}

	assertOutputContains(t, out.String(), "v3", "2024-03-01 09:00:00", "line 2", "v=u+a*t")
}

func TestTUI_SizeUnknownForBuffers(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{}, nil)

	if w, h := tui.size(); w != 0 || h != 0 {
		t.Fatalf("size() = %d, %d, want zeros", w, h)
	}
}

func TestEditOptions(t *testing.T) {
	if cfg := newEditConfig(nil); cfg.debugLog != "" {
		t.Fatalf("default debugLog = %q, want empty", cfg.debugLog)
	}

	cfg := newEditConfig([]EditOption{WithDebugLog("a.log"), WithDebugLog("b.log")})
	if cfg.debugLog != "b.log" {
		t.Fatalf("debugLog = %q, want b.log", cfg.debugLog)
	}
}
