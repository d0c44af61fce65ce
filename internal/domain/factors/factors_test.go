package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/equate/internal/expr"
	"github.com/mouse-blink/equate/internal/syntax"
)

type rewrite func(expr.Expression) (expr.Expression, bool)

func runRewrites(t *testing.T, fn rewrite, tests map[string]string) {
	t.Helper()

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			e, err := syntax.Parse(input)
			require.NoError(t, err)

			got, ok := fn(e)

			if want == "" {
				assert.False(t, ok)
				assert.Nil(t, got)

				return
			}

			require.True(t, ok, "expected a rewrite of %q", input)
			assert.Equal(t, want, expr.Render(got))
			assert.Equal(t, expr.Render(e), expr.Render(mustParse(t, input)), "input was modified")
		})
	}
}

func mustParse(t *testing.T, text string) expr.Expression {
	t.Helper()

	e, err := syntax.Parse(text)
	require.NoError(t, err)

	return e
}

func TestLeading(t *testing.T) {
	runRewrites(t, Leading, map[string]string{
		"2*x + 2*y":   "2*(x+y)",
		"a*x - a*y":   "a*(x-y)",
		"2*x + 2":     "2*(x+1)",
		"a/b + a*c":   "a*(1/b+c)",
		"a*b*c + a*d": "a*(b*c+d)",
		"2*x + 3*x":   "",
		"a*b":         "",
		"x":           "",
	})
}

func TestTrailing(t *testing.T) {
	runRewrites(t, Trailing, map[string]string{
		"2*x + 3*x":     "(2+3)*x",
		"a/x + b/x":     "(a+b)/x",
		"x*y*z + w*z":   "(x*y+w)*z",
		"a*x - x":       "(a-1)*x",
		"2*x + 2*y":     "",
		"a/x + b*x":     "",
		"x = a*b + c*b": "",
	})
}

func TestAll(t *testing.T) {
	runRewrites(t, All, map[string]string{
		"2*x + 3*x":       "x*(2+3)",
		"x*x*a + x*x*b":   "x*x*(a+b)",
		"a*b*c + c*a":     "a*c*(b+1)",
		"x + x*y":         "x*(1+y)",
		"a/x + b/x":       "1/x*(a+b)",
		"x*y*x + x*z":     "x*(y*x+z)",
		"a + b":           "",
		"a/x + b*x":       "",
		"(a+b)*c":         "",
	})
}

func TestNormalise_Identity(t *testing.T) {
	e := mustParse(t, "a*(b+c)")

	assert.Same(t, e, Normalise(e))
}
