package domain

import (
	"bytes"
	"strings"

	"github.com/mouse-blink/equate/internal/expr"
	m "github.com/mouse-blink/equate/internal/model"
	"github.com/mouse-blink/equate/internal/syntax"
)

// defaultEquations seed an editor started without a file.
var defaultEquations = []string{
	"s = s_0 + u*t + 0.5*a_0*t^2 + 1/6*j*t^3",
	"v = v_0 + a_0*t + 0.5*j*t^2",
	"a = a_0 + j*t",
}

// ParseEquations reads the persisted form of an equation set: one equation
// per line, optionally followed by a '#' comment. Blank lines are skipped.
// Every line that fails to parse is reported; the set holds the others.
func ParseEquations(path m.Path, content []byte) (m.EquationSet, []m.LineError) {
	set := m.EquationSet{Path: path}

	var errs []m.LineError

	for i, raw := range strings.Split(string(content), "\n") {
		text := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		e, comment, err := syntax.ParseWithComment(text)
		if err != nil {
			errs = append(errs, m.LineError{Line: i + 1, Text: text, Err: err})
			continue
		}

		set.Lines = append(set.Lines, m.NewLine(e, comment))
	}

	return set, errs
}

// FormatEquations renders an equation set in its persisted form.
func FormatEquations(set m.EquationSet) []byte {
	var buf bytes.Buffer

	for _, line := range set.Lines {
		buf.WriteString(line.Text())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// DefaultEquationSet returns the equations an unnamed session starts with.
func DefaultEquationSet() m.EquationSet {
	set := m.EquationSet{}

	for _, text := range defaultEquations {
		e, err := syntax.Parse(text)
		if err != nil {
			panic("domain: bad default equation " + text)
		}

		set.Lines = append(set.Lines, m.NewLine(e, ""))
	}

	return set
}

// containsEquality reports whether e holds an '=' anywhere.
func containsEquality(e expr.Expression) bool {
	switch v := e.(type) {
	case *expr.Negative:
		return containsEquality(v.Inner)
	case *expr.Node:
		if v.Operation == expr.Equality {
			return true
		}

		for _, se := range v.Values {
			if containsEquality(se.Val) {
				return true
			}
		}
	}

	return false
}
