package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Precedence is the binding strength of an expression, lowest first.
type Precedence int

// Precedence levels. Unary is the level of a negation: it binds tighter than
// '*' and '/' but looser than '^', mirroring the parser.
const (
	PrecEquality Precedence = iota
	PrecAddSub
	PrecMulDiv
	PrecUnary
	PrecExpRoot
	PrecAtomic
)

// Precedence returns the binding strength of the operation.
func (o Op) Precedence() Precedence {
	switch o {
	case Equality:
		return PrecEquality
	case AddSub:
		return PrecAddSub
	case MulDiv:
		return PrecMulDiv
	case ExpRoot:
		return PrecExpRoot
	default:
		panic(fmt.Sprintf("expr: unknown operation %d", int(o)))
	}
}

// PrecedenceOf returns the binding strength of e.
func PrecedenceOf(e Expression) Precedence {
	switch v := e.(type) {
	case *Negative:
		return PrecUnary
	case *Node:
		return v.Operation.Precedence()
	case Literal, Variable:
		return PrecAtomic
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

// NeedsParens reports whether e must be parenthesized when it appears as an
// operand of op. Equal precedence always parenthesizes.
func NeedsParens(e Expression, op Op) bool {
	return PrecedenceOf(e) <= op.Precedence()
}

// Render serializes e to source text that parses back to the same tree.
func Render(e Expression) string {
	r := renderer{}
	r.expression(e, -1)

	return r.sink.bufs[segBefore].String()
}

func (n *Negative) String() string { return Render(n) }
func (n *Node) String() string     { return Render(n) }
func (l Literal) String() string   { return formatLiteral(l) }
func (v Variable) String() string  { return string(v) }

// Split renders e like Render, cut into the text before the selected range,
// the selected range itself and the text after it.
func Split(e Expression, sel Selection) (before, highlighted, after string) {
	r := renderer{sel: &sel}

	if IsLeaf(e) {
		if len(sel.Path) != 0 || sel.First != 0 || sel.Last != 0 {
			panic(fmt.Sprintf("expr: selection %v does not fit a leaf root", sel))
		}

		r.sink.startHighlight()
		r.expression(e, -1)
		r.sink.endHighlight()
	} else {
		r.expression(e, 0)
	}

	if r.sink.cur != segAfter {
		panic(fmt.Sprintf("expr: selection %v never closed its highlight", sel))
	}

	return r.sink.bufs[segBefore].String(), r.sink.bufs[segHighlight].String(), r.sink.bufs[segAfter].String()
}

const (
	segBefore = iota
	segHighlight
	segAfter
)

// sink accumulates rendered text into the before/highlight/after buffers.
type sink struct {
	cur  int
	bufs [3]strings.Builder
}

func (s *sink) put(text string) {
	s.bufs[s.cur].WriteString(text)
}

func (s *sink) startHighlight() {
	if s.cur != segBefore {
		panic("expr: highlight started twice")
	}

	s.cur = segHighlight
}

func (s *sink) endHighlight() {
	if s.cur != segHighlight {
		panic("expr: highlight ended before it started")
	}

	s.cur = segAfter
}

// renderer walks the tree once. pathPos is the number of selection path
// steps already matched on the way down, or -1 once the walk has left the
// selection path (always -1 when sel is nil).
type renderer struct {
	sel  *Selection
	sink sink
}

func (r *renderer) atLevel(pathPos int) bool {
	return r.sel != nil && pathPos == len(r.sel.Path)
}

func (r *renderer) childPos(pathPos, idx int) int {
	if r.sel == nil || pathPos < 0 || pathPos >= len(r.sel.Path) || r.sel.Path[pathPos] != idx {
		return -1
	}

	return pathPos + 1
}

func (r *renderer) expression(e Expression, pathPos int) {
	switch v := e.(type) {
	case *Negative:
		r.negative(v, pathPos)
	case *Node:
		r.node(v, pathPos)
	case Literal:
		r.sink.put(formatLiteral(v))
	case Variable:
		r.sink.put(string(v))
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

func (r *renderer) negative(n *Negative, pathPos int) {
	level := r.atLevel(pathPos)

	// The sign stays outside the highlight: it belongs to this node, not to
	// its only operand. A subtracted sum operand highlights its own '-'.
	r.sink.put("-")

	if level && r.sel.First == 0 {
		r.sink.startHighlight()
	}

	r.operand(n.Inner, PrecedenceOf(n) >= PrecedenceOf(n.Inner), r.childPos(pathPos, 0))

	if level && r.sel.Last == 0 {
		r.sink.endHighlight()
	}
}

func (r *renderer) node(n *Node, pathPos int) {
	if len(n.Values) < 2 {
		panic(fmt.Sprintf("expr: %v node with %d operands", n.Operation, len(n.Values)))
	}

	level := r.atLevel(pathPos)

	for i, v := range n.Values {
		if i > 0 {
			r.sink.put(operatorText(n.Operation, v.Inverse))
		}

		if level && i == r.sel.First {
			r.sink.startHighlight()
		}

		r.sink.put(signText(n.Operation, i, v.Inverse))
		r.operand(v.Val, NeedsParens(v.Val, n.Operation), r.childPos(pathPos, i))

		if level && i == r.sel.Last {
			r.sink.endHighlight()
		}
	}

	if level && r.sink.cur == segHighlight {
		panic(fmt.Sprintf("expr: selection %v runs past the end of its level", *r.sel))
	}
}

func (r *renderer) operand(e Expression, parens bool, pathPos int) {
	if parens {
		r.sink.put("(")
	}

	r.expression(e, pathPos)

	if parens {
		r.sink.put(")")
	}
}

// operatorText is the separator written before every operand but the first.
// A subtracted operand carries its '-' as part of the operand instead.
func operatorText(op Op, inverse bool) string {
	switch op {
	case Equality:
		return "="
	case AddSub:
		if inverse {
			return ""
		}

		return "+"
	case MulDiv:
		if inverse {
			return "/"
		}

		return "*"
	case ExpRoot:
		return "^"
	default:
		panic(fmt.Sprintf("expr: unknown operation %d", int(op)))
	}
}

// signText is the prefix written in front of the operand itself.
func signText(op Op, idx int, inverse bool) string {
	if !inverse {
		return ""
	}

	switch op {
	case AddSub:
		return "-"
	case MulDiv:
		if idx == 0 {
			return "1/"
		}
	case Equality, ExpRoot:
	}

	return ""
}

func formatLiteral(l Literal) string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}
