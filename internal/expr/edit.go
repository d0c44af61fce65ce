package expr

import (
	"fmt"
)

// Extract returns a copy of the selected operands. A single operand is
// returned without its sign; a range becomes a new node of the level's
// operation holding copies of the selected operands.
func Extract(root Expression, sel Selection) Expression {
	e := sel.level(root)

	switch v := e.(type) {
	case *Negative:
		checkRange(sel, 1)
		return Clone(v.Inner)
	case *Node:
		checkRange(sel, len(v.Values))

		if sel.First == sel.Last {
			return Clone(v.Values[sel.First].Val)
		}

		out := &Node{Operation: v.Operation}
		for _, se := range v.Values[sel.First : sel.Last+1] {
			out.Values = append(out.Values, SubExpression{Inverse: se.Inverse, Val: Clone(se.Val)})
		}

		return out
	case Literal, Variable:
		checkRange(sel, 1)

		if len(sel.Path) != 0 {
			panic(fmt.Sprintf("expr: selection path %v ends at a leaf", sel.Path))
		}

		return Clone(v)
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

// Replace swaps the selected operands for repl and returns the root, which
// is a new value only when the root node collapsed. The selection is updated
// to cover whatever now stands where the old range was.
//
// A replacement sharing the level's AddSub or MulDiv operation is spliced
// into the chain instead of nested; for a single inverse slot the spliced
// operands have their relation flipped, so a-(x-y) becomes a-x+y. A level
// left with one operand is folded into its parent.
//
// The root of a leaf expression cannot be replaced through a selection.
func Replace(root Expression, sel *Selection, repl Expression) Expression {
	e := sel.level(root)

	switch v := e.(type) {
	case *Negative:
		checkRange(*sel, 1)
		v.Inner = repl

		return root
	case *Node:
		checkRange(*sel, len(v.Values))

		if sel.First == sel.Last {
			replaceSingle(v, sel, repl)
		} else {
			replaceRange(v, sel, repl)
		}

		if len(v.Values) == 1 {
			return collapse(root, sel, v)
		}

		return root
	case Literal, Variable:
		panic("expr: cannot replace within a leaf root")
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

func replaceSingle(n *Node, sel *Selection, repl Expression) {
	slot := n.Values[sel.First]

	inner, ok := repl.(*Node)
	if !ok || inner.Operation != n.Operation || !splices(n.Operation) {
		n.Values[sel.First].Val = repl
		return
	}

	spliced := make([]SubExpression, len(inner.Values))
	for i, se := range inner.Values {
		spliced[i] = SubExpression{Inverse: se.Inverse != slot.Inverse, Val: se.Val}
	}

	n.Values = splice(n.Values, sel.First, sel.First, spliced)
	sel.Last = sel.First + len(spliced) - 1
}

func replaceRange(n *Node, sel *Selection, repl Expression) {
	if inner, ok := repl.(*Node); ok && inner.Operation == n.Operation {
		n.Values = splice(n.Values, sel.First, sel.Last, inner.Values)
		sel.Last = sel.First + len(inner.Values) - 1

		return
	}

	replacement := SubExpression{Inverse: n.Values[sel.First].Inverse, Val: repl}
	n.Values = splice(n.Values, sel.First, sel.Last, []SubExpression{replacement})
	sel.Last = sel.First
}

// splices reports whether nested chains of op may be flattened into their
// parent without changing meaning.
func splices(op Op) bool {
	switch op {
	case AddSub, MulDiv:
		return true
	case Equality, ExpRoot:
		return false
	default:
		panic(fmt.Sprintf("expr: unknown operation %d", int(op)))
	}
}

// splice replaces values[first..last] with insert.
func splice(values []SubExpression, first, last int, insert []SubExpression) []SubExpression {
	out := make([]SubExpression, 0, len(values)-(last-first+1)+len(insert))
	out = append(out, values[:first]...)
	out = append(out, insert...)
	out = append(out, values[last+1:]...)

	return out
}

// collapse folds a node left with a single operand into its parent.
func collapse(root Expression, sel *Selection, n *Node) Expression {
	only := n.Values[0]

	var folded Expression

	switch {
	case !only.Inverse:
		folded = only.Val
	case n.Operation == AddSub:
		folded = &Negative{Inner: only.Val}
	case n.Operation == MulDiv:
		n.Values = []SubExpression{Operand(Literal(1)), only}
		sel.First, sel.Last = 1, 1

		return root
	default:
		folded = only.Val
	}

	if len(sel.Path) == 0 {
		sel.First = 0
		sel.Last = 0

		if size := childCount(folded); size > 0 {
			sel.Last = size - 1
		}

		return folded
	}

	parentSel := Selection{Path: sel.Path[:len(sel.Path)-1]}
	idx := sel.Path[len(sel.Path)-1]

	switch p := parentSel.level(root).(type) {
	case *Negative:
		p.Inner = folded
	case *Node:
		p.Values[idx].Val = folded
	default:
		panic(fmt.Sprintf("expr: selection parent %T has no children", p))
	}

	sel.Path = parentSel.Path
	sel.First = idx
	sel.Last = idx

	return root
}

func checkRange(sel Selection, size int) {
	if sel.First < 0 || sel.First > sel.Last || sel.Last >= size {
		panic(fmt.Sprintf("expr: selection %v outside level of %d operands", sel, size))
	}
}
