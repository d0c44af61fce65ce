package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/equate/internal/adapter/mocks"
	m "github.com/mouse-blink/equate/internal/model"
	"github.com/mouse-blink/equate/internal/syntax"
)

func newTestSet(t *testing.T, path m.Path, lines ...string) m.EquationSet {
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

func navigate(t *testing.T, s *Session, motions ...m.Motion) {
	t.Helper()

	for _, mo := range motions {
		if !s.Navigate(mo) {
			t.Fatalf("Navigate(%s) failed at %v", mo, s.Selection())
		}
	}
}

func TestSession_NavigateAndSplit(t *testing.T) {
	s := NewSession(newTestSet(t, "", "y = a + b*c - d"), nil, nil, false)

	navigate(t, s, m.MotionRight, m.MotionIn)

	before, hl, after := s.Split(0)
	assert.Equal(t, "y=", before)
	assert.Equal(t, "a", hl)
	assert.Equal(t, "+b*c-d", after)

	assert.False(t, s.Navigate(m.MotionIn), "cannot descend into a variable")
	navigate(t, s, m.MotionExpandRight, m.MotionExpandRight)
	assert.False(t, s.Navigate(m.MotionExpandRight))

	_, hl, _ = s.Split(0)
	assert.Equal(t, "a+b*c-d", hl)

	assert.False(t, s.Navigate(m.Motion(42)))
}

func TestSession_ReplaceSelection(t *testing.T) {
	s := NewSession(newTestSet(t, "", "y = a + b*c - d"), nil, nil, false)
	navigate(t, s, m.MotionRight, m.MotionIn, m.MotionRight)

	require.NoError(t, s.ReplaceSelection("x^2"))

	assert.Equal(t, "y=a+x^2-d", s.Render(0))
	assert.True(t, s.Dirty())

	_, hl, _ := s.Split(0)
	assert.Equal(t, "x^2", hl)
}

func TestSession_ReplaceSelection_SplicesSum(t *testing.T) {
	s := NewSession(newTestSet(t, "", "y = a - b"), nil, nil, false)
	navigate(t, s, m.MotionRight, m.MotionIn, m.MotionRight)

	require.NoError(t, s.ReplaceSelection("x - z"))

	assert.Equal(t, "y=a-x+z", s.Render(0))

	_, hl, _ := s.Split(0)
	assert.Equal(t, "-x+z", hl)
}

func TestSession_ReplaceSelection_ParseErrorKeepsLine(t *testing.T) {
	s := NewSession(newTestSet(t, "", "y = a + b"), nil, nil, false)
	navigate(t, s, m.MotionRight, m.MotionIn)

	selBefore := s.Selection()

	err := s.ReplaceSelection("(c + ")
	require.Error(t, err)
	assert.ErrorIs(t, err, syntax.ErrUnexpected)
	assert.Contains(t, err.Error(), "parse replacement")

	assert.Equal(t, "y=a+b", s.Render(0))
	assert.Equal(t, selBefore, s.Selection())
	assert.False(t, s.Dirty())
}

func TestSession_ReplaceSelection_LeafLine(t *testing.T) {
	s := NewSession(newTestSet(t, "", "x"), nil, nil, false)

	require.NoError(t, s.ReplaceSelection("a = b + c"))

	assert.Equal(t, "a=b+c", s.Render(0))
	assert.Equal(t, "[] 0-0", s.Selection().String())
}

func TestSession_ReplaceSelection_EqualityBelowRoot(t *testing.T) {
	s := NewSession(newTestSet(t, "", "y = a + b"), nil, nil, false)
	navigate(t, s, m.MotionRight)

	err := s.ReplaceSelection("p = q")
	assert.ErrorIs(t, err, ErrEqualityBelowRoot)
	assert.Equal(t, "y=a+b", s.Render(0))
}

func TestSession_ReplaceSelection_ExtendsRootEquality(t *testing.T) {
	s := NewSession(newTestSet(t, "", "a = b = c"), nil, nil, false)
	navigate(t, s, m.MotionRight, m.MotionExpandRight)

	require.NoError(t, s.ReplaceSelection("x = y + 1"))
	assert.Equal(t, "a=x=y+1", s.Render(0))

	_, hl, _ := s.Split(0)
	assert.Equal(t, "x=y+1", hl)

	navigate(t, s, m.MotionShrinkLeft)
	assert.ErrorIs(t, s.ReplaceSelection("p = q"), ErrEqualityBelowRoot)
	assert.Equal(t, "a=x=y+1", s.Render(0))
}

func TestSession_ApplyFactor(t *testing.T) {
	t.Run("trailing on whole sum", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = 2*x + 3*x"), nil, nil, false)
		navigate(t, s, m.MotionRight)

		require.NoError(t, s.ApplyFactor(m.FactorTrailing))
		assert.Equal(t, "y=(2+3)*x", s.Render(0))
	})

	t.Run("leading on a range", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = a*b + a*c + d"), nil, nil, false)
		navigate(t, s, m.MotionRight, m.MotionIn, m.MotionExpandRight)

		require.NoError(t, s.ApplyFactor(m.FactorLeading))
		assert.Equal(t, "y=a*(b+c)+d", s.Render(0))

		_, hl, _ := s.Split(0)
		assert.Equal(t, "a*(b+c)", hl)
	})

	t.Run("range starting with a subtraction", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "c - a*x - b*x"), nil, nil, false)
		navigate(t, s, m.MotionRight, m.MotionExpandRight)

		require.NoError(t, s.ApplyFactor(m.FactorTrailing))
		assert.Equal(t, "c-(a+b)*x", s.Render(0))
	})

	t.Run("range mixing relations", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = c - a*x + b*x"), nil, nil, false)
		navigate(t, s, m.MotionRight, m.MotionIn, m.MotionRight, m.MotionExpandRight)

		require.NoError(t, s.ApplyFactor(m.FactorTrailing))
		assert.Equal(t, "y=c-(a-b)*x", s.Render(0))
	})

	t.Run("divisor sum", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = c / (a*x - b*x)"), nil, nil, false)
		navigate(t, s, m.MotionRight, m.MotionIn, m.MotionRight)

		require.NoError(t, s.ApplyFactor(m.FactorTrailing))
		assert.Equal(t, "y=c/(a-b)/x", s.Render(0))
	})

	t.Run("divided range is not a sum", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = c / (a + b) * d"), nil, nil, false)
		navigate(t, s, m.MotionRight, m.MotionIn, m.MotionRight, m.MotionExpandRight)

		assert.ErrorIs(t, s.ApplyFactor(m.FactorAll), ErrNoFactor)
		assert.Equal(t, "y=c/(a+b)*d", s.Render(0))
		assert.False(t, s.Dirty())
	})

	t.Run("all", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = x*x*a + x*x*b"), nil, nil, false)
		navigate(t, s, m.MotionRight)

		require.NoError(t, s.ApplyFactor(m.FactorAll))
		assert.Equal(t, "y=x*x*(a+b)", s.Render(0))
	})

	t.Run("nothing common", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = 2*x + 3*x"), nil, nil, false)
		navigate(t, s, m.MotionRight)

		err := s.ApplyFactor(m.FactorLeading)
		assert.ErrorIs(t, err, ErrNoFactor)
		assert.Contains(t, err.Error(), "leading")
		assert.Equal(t, "y=2*x+3*x", s.Render(0))
		assert.False(t, s.Dirty())
	})

	t.Run("unknown kind", func(t *testing.T) {
		s := NewSession(newTestSet(t, "", "y = a + b"), nil, nil, false)

		err := s.ApplyFactor("sideways")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown factor kind")
	})
}

func TestSession_ReplaceLine(t *testing.T) {
	s := NewSession(newTestSet(t, "", "v = u # initial"), nil, nil, false)
	navigate(t, s, m.MotionRight)

	require.NoError(t, s.ReplaceLine("v = u + a*t"))
	assert.Equal(t, "v=u+a*t", s.Render(0))
	assert.Equal(t, "initial", s.Comment(0))
	assert.Equal(t, "[] 0-0", s.Selection().String())

	require.NoError(t, s.ReplaceLine("v = 0 # at rest"))
	assert.Equal(t, "v=0 # at rest", s.Line(0).Text())

	assert.ErrorIs(t, s.ReplaceLine("v = "), syntax.ErrUnexpected)
	assert.Equal(t, "v=0", s.Render(0))
}

func TestSession_InsertAndDeleteLines(t *testing.T) {
	s := NewSession(newTestSet(t, "", "a = 1", "b = 2"), nil, nil, false)

	require.NoError(t, s.InsertLine("z = 3 # inserted"))
	assert.Equal(t, 3, s.Lines())
	assert.Equal(t, 1, s.CurrentLine())
	assert.Equal(t, "z=3", s.Render(1))
	assert.Equal(t, "inserted", s.Comment(1))

	require.True(t, s.SelectLine(2))
	require.NoError(t, s.DeleteLine())
	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, 1, s.CurrentLine())

	require.NoError(t, s.DeleteLine())
	require.NoError(t, s.DeleteLine())
	assert.Equal(t, 0, s.Lines())
	assert.ErrorIs(t, s.DeleteLine(), ErrNoLine)

	assert.False(t, s.Navigate(m.MotionRight))
	_, err := s.Selected()
	assert.ErrorIs(t, err, ErrNoLine)
	assert.ErrorIs(t, s.ReplaceSelection("x"), ErrNoLine)

	require.NoError(t, s.InsertLine("q = 1"))
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 0, s.CurrentLine())
}

func TestSession_SelectLine(t *testing.T) {
	s := NewSession(newTestSet(t, "", "a = 1", "b = 2"), nil, nil, false)

	assert.True(t, s.SelectLine(1))
	assert.False(t, s.SelectLine(2))
	assert.False(t, s.SelectLine(-1))
	assert.Equal(t, 1, s.CurrentLine())
}

func TestSession_SetComment(t *testing.T) {
	s := NewSession(newTestSet(t, "", "a = 1 # old"), nil, nil, false)

	require.NoError(t, s.SetComment("new"))
	assert.Equal(t, "a=1 # new", s.Line(0).Text())

	require.NoError(t, s.SetComment(""))
	assert.Equal(t, "a=1", s.Line(0).Text())
}

func TestSession_Save(t *testing.T) {
	t.Run("writes canonical form", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockEquationFSAdapter(t)
		s := NewSession(newTestSet(t, "/eq/motion.eq", "v = u # start", "s = u*t"), fsAdapter, nil, false)

		require.NoError(t, s.SetComment("begin"))
		require.True(t, s.Dirty())

		fsAdapter.EXPECT().
			WriteFile(m.Path("/eq/motion.eq"), []byte("v=u # begin\ns=u*t\n"), os.FileMode(0o644)).
			Return(nil)

		require.NoError(t, s.Save())
		assert.False(t, s.Dirty())
	})

	t.Run("write error", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockEquationFSAdapter(t)
		s := NewSession(newTestSet(t, "/eq/motion.eq", "v = u"), fsAdapter, nil, false)

		fsAdapter.EXPECT().WriteFile(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := s.Save()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "save /eq/motion.eq: disk full")
	})

	t.Run("read-only", func(t *testing.T) {
		s := NewSession(newTestSet(t, "/eq/motion.eq", "v = u"), nil, nil, true)

		require.NoError(t, s.ReplaceLine("v = w"))
		assert.True(t, s.ReadOnly())
		assert.ErrorIs(t, s.Save(), ErrReadOnly)
	})

	t.Run("no path", func(t *testing.T) {
		s := NewSession(DefaultEquationSet(), nil, nil, false)

		assert.ErrorIs(t, s.Save(), ErrNoPath)
	})
}

func TestSession_RecordsRevisions(t *testing.T) {
	history := adaptermocks.NewMockHistoryStore(t)
	s := NewSession(newTestSet(t, "/eq/motion.eq", "v = u", "s = u*t"), nil, history, false)

	history.EXPECT().
		SaveRevision(mock.MatchedBy(func(rev m.Revision) bool {
			return rev.Path == "/eq/motion.eq" && rev.Line == 1 && rev.Text == "s=u*t+x"
		})).
		Return(m.Revision{Version: 1}, nil)

	require.True(t, s.SelectLine(1))
	navigate(t, s, m.MotionRight)
	require.NoError(t, s.ReplaceSelection("u*t + x"))

	history.EXPECT().LoadRevisions(m.Path("/eq/motion.eq"), 5).Return([]m.Revision{{Version: 1}}, nil)

	revs, err := s.Revisions(5)
	require.NoError(t, err)
	assert.Len(t, revs, 1)
}

func TestSession_RevisionError(t *testing.T) {
	history := adaptermocks.NewMockHistoryStore(t)
	s := NewSession(newTestSet(t, "/eq/motion.eq", "v = u"), nil, history, false)

	history.EXPECT().SaveRevision(mock.Anything).Return(m.Revision{}, errors.New("locked"))

	err := s.SetComment("x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "record revision: locked")
	assert.True(t, s.Dirty())
}

func TestSession_NoHistoryForUnnamedSet(t *testing.T) {
	s := NewSession(DefaultEquationSet(), nil, nil, false)

	revs, err := s.Revisions(0)
	require.NoError(t, err)
	assert.Nil(t, revs)
	assert.Equal(t, 3, s.Lines())
	assert.Equal(t, m.Path(""), s.Path())
}
