package controller_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/equate/internal/adapter"
	adaptermocks "github.com/mouse-blink/equate/internal/adapter/mocks"
	"github.com/mouse-blink/equate/internal/controller"
	"github.com/mouse-blink/equate/internal/domain"
	m "github.com/mouse-blink/equate/internal/model"
)

func runScript(t *testing.T, session *domain.Session, script ...string) string {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(strings.Join(script, "\n") + "\n"))

	require.NoError(t, controller.NewSimpleUI(cmd).Edit(session))

	return out.String()
}

func newSession(t *testing.T, path m.Path, content string, fs *adaptermocks.MockEquationFSAdapter) *domain.Session {
	t.Helper()

	set, errs := domain.ParseEquations(path, []byte(content))
	require.Empty(t, errs)

	var fsAdapter adapter.EquationFSAdapter
	if fs != nil {
		fsAdapter = fs
	}

	return domain.NewSession(set, fsAdapter, nil, false)
}

func TestSimpleUI_Edit_Script(t *testing.T) {
	session := newSession(t, "", "y = a + b\nv = u # start\n", nil)

	out := runScript(t, session,
		"out",
		"right",
		"in",
		"replace x - z",
		"bogus",
		"line 2",
		"comment velocity",
		"factor leading",
		"show",
		"save",
		"quit",
		"right",
	)

	assertLines(t, out,
		"> 1: y=a+b",
		"  2: v=u # start",
		"cannot move out",
		"> 1: y=[a+b]",
		"> 1: y=[a]+b",
		"> 1: y=[x-z]+b",
		`error: unknown command "bogus"`,
		"> 2: [v]=u",
		"error: leading: no common factor",
		"  1: y=x-z+b",
		"> 2: v=u # velocity",
		"error: equation set has no file",
	)

	assert.Equal(t, "y=x-z+b", session.Render(0))
	assert.True(t, session.Dirty())
}

func TestSimpleUI_Edit_LineCommands(t *testing.T) {
	session := newSession(t, "", "a = 1\n", nil)

	out := runScript(t, session,
		"insert b = 2 # second",
		"edit b = 3",
		"line 9",
		"line 1",
		"delete",
		"delete",
		"delete",
		"replace (",
	)

	assertLines(t, out,
		"> 2: [b]=2",
		"> 2: [b]=3",
		`error: no line "9"`,
		"> 1: [a]=1",
		"> 1: [b]=3",
		"(no lines)",
		"error: no line selected",
	)

	assert.Equal(t, 0, session.Lines())
}

func TestSimpleUI_Edit_Save(t *testing.T) {
	fs := adaptermocks.NewMockEquationFSAdapter(t)
	session := newSession(t, "/eq/ohm.eq", "V = I*R\n", fs)

	fs.EXPECT().WriteFile(m.Path("/eq/ohm.eq"), []byte("V=I*R # ohm\n"), os.FileMode(0o644)).Return(nil)

	out := runScript(t, session, "comment ohm", "save")

	assertLines(t, out, "saved /eq/ohm.eq")
	assert.False(t, session.Dirty())
}

func assertLines(t *testing.T, output string, wants ...string) {
	t.Helper()

	rest := output

	for _, want := range wants {
		idx := strings.Index(rest, want+"\n")
		if idx < 0 {
			t.Fatalf("output missing %q after previous lines\noutput:\n%s", want, output)
		}

		rest = rest[idx+len(want)+1:]
	}
}
