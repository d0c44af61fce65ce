package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func v(name string) Variable { return Variable(name) }

// sample builds a+b*c-d.
func sample() *Node {
	return NewNode(AddSub,
		Operand(v("a")),
		Operand(NewNode(MulDiv, Operand(v("b")), Operand(v("c")))),
		Inverted(v("d")),
	)
}

func TestRender_Precedence(t *testing.T) {
	tests := []struct {
		name string
		e    Expression
		want string
	}{
		{"chain", sample(), "a+b*c-d"},
		{"literals", NewNode(MulDiv, Operand(Literal(0.5)), Operand(Literal(2))), "0.5*2"},
		{"negated sum", &Negative{Inner: NewNode(AddSub, Operand(v("a")), Operand(v("b")))}, "-(a+b)"},
		{"negated power", &Negative{Inner: NewNode(ExpRoot, Operand(v("x")), Operand(Literal(2)))}, "-x^2"},
		{"power of negation", NewNode(ExpRoot, Operand(&Negative{Inner: v("x")}), Operand(Literal(2))), "(-x)^2"},
		{"negative factor", NewNode(MulDiv, Operand(v("a")), Operand(&Negative{Inner: v("b")})), "a*-b"},
		{"negative exponent", NewNode(ExpRoot, Operand(v("a")), Operand(&Negative{Inner: v("b")})), "a^(-b)"},
		{"nested power", NewNode(ExpRoot, Operand(NewNode(ExpRoot, Operand(v("a")), Operand(v("b")))), Operand(v("c"))), "(a^b)^c"},
		{"divided product", NewNode(MulDiv, Operand(v("a")), Inverted(NewNode(MulDiv, Operand(v("b")), Operand(v("c"))))), "a/(b*c)"},
		{"subtracted sum", NewNode(AddSub, Operand(v("a")), Inverted(NewNode(AddSub, Operand(v("b")), Operand(v("c"))))), "a-(b+c)"},
		{"double negation", &Negative{Inner: &Negative{Inner: v("x")}}, "-(-x)"},
		{"leading divisor", NewNode(MulDiv, Inverted(v("a")), Operand(v("b"))), "1/a*b"},
		{"product in sum", NewNode(MulDiv, Operand(NewNode(AddSub, Operand(v("a")), Operand(v("b")))), Operand(v("c"))), "(a+b)*c"},
		{
			"equation",
			NewNode(Equality,
				Operand(v("s")),
				Operand(NewNode(AddSub, Operand(v("s_0")), Operand(NewNode(MulDiv, Operand(v("u")), Operand(v("t"))))))),
			"s=s_0+u*t",
		},
		{"leaf", v("x"), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.e); got != tt.want {
				t.Fatalf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplit_Sections(t *testing.T) {
	negSum := &Negative{Inner: NewNode(AddSub, Operand(v("a")), Operand(v("b")))}
	minusSum := NewNode(AddSub, Operand(v("a")), Inverted(NewNode(AddSub, Operand(v("b")), Operand(v("c")))))
	grouped := NewNode(MulDiv, Operand(NewNode(AddSub, Operand(v("a")), Operand(v("b")))), Operand(v("c")))

	tests := []struct {
		name                      string
		e                         Expression
		sel                       Selection
		before, highlight, after string
	}{
		{"first", sample(), Selection{First: 0, Last: 0}, "", "a", "+b*c-d"},
		{"middle", sample(), Selection{First: 1, Last: 1}, "a+", "b*c", "-d"},
		{"subtracted keeps sign", sample(), Selection{First: 2, Last: 2}, "a+b*c", "-d", ""},
		{"range", sample(), Selection{First: 1, Last: 2}, "a+", "b*c-d", ""},
		{"nested", sample(), Selection{Path: []int{1}, First: 1, Last: 1}, "a+b*", "c", "-d"},
		{"divisor", NewNode(MulDiv, Operand(v("a")), Inverted(v("b"))), Selection{First: 1, Last: 1}, "a/", "b", ""},
		{"negation", negSum, Selection{}, "-", "(a+b)", ""},
		{"inside negation", negSum, Selection{Path: []int{0}, First: 1, Last: 1}, "-(a+", "b", ")"},
		{"subtracted sum keeps sign", minusSum, Selection{First: 1, Last: 1}, "a", "-(b+c)", ""},
		{"inside parens", grouped, Selection{Path: []int{0}}, "(", "a", "+b)*c"},
		{"leaf root", v("x"), Selection{}, "", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, hl, after := Split(tt.e, tt.sel)

			assert.Equal(t, tt.before, before)
			assert.Equal(t, tt.highlight, hl)
			assert.Equal(t, tt.after, after)
			assert.Equal(t, Render(tt.e), before+hl+after)
		})
	}
}

func TestSplit_InvalidSelectionPanics(t *testing.T) {
	assert.Panics(t, func() { Split(sample(), Selection{First: 0, Last: 3}) })
	assert.Panics(t, func() { Split(sample(), Selection{First: 2, Last: 1}) })
	assert.Panics(t, func() { Split(v("x"), Selection{First: 1, Last: 1}) })
}

func TestNeedsParens(t *testing.T) {
	assert.True(t, NeedsParens(sample(), AddSub))
	assert.True(t, NeedsParens(sample(), MulDiv))
	assert.False(t, NeedsParens(sample(), Equality))
	assert.False(t, NeedsParens(v("x"), ExpRoot))
	assert.True(t, NeedsParens(&Negative{Inner: v("x")}, ExpRoot))
	assert.False(t, NeedsParens(&Negative{Inner: v("x")}, MulDiv))
}

func TestClone_Independent(t *testing.T) {
	orig := sample()
	cp, ok := Clone(orig).(*Node)
	if !ok {
		t.Fatalf("Clone returned %T", Clone(orig))
	}

	if !Equal(orig, cp) {
		t.Fatalf("clone differs: %s vs %s", Render(orig), Render(cp))
	}

	cp.Values[0].Val = v("z")

	assert.Equal(t, "a+b*c-d", Render(orig))
	assert.False(t, Equal(orig, cp))
}

func TestEqual_InverseMatters(t *testing.T) {
	a := NewNode(AddSub, Operand(v("a")), Operand(v("b")))
	b := NewNode(AddSub, Operand(v("a")), Inverted(v("b")))

	assert.False(t, Equal(a, b))
	assert.True(t, Equal(Literal(2), Literal(2)))
	assert.False(t, Equal(Literal(2), v("2")))
}
