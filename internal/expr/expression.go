// Package expr defines the algebraic expression tree edited by equate, the
// precedence rules used to print it and the path-addressed selection model
// used to navigate and rewrite it.
package expr

import (
	"fmt"
)

// Op is the operation shared by every operand of a Node.
type Op int

const (
	// Equality chains operands with '='. Operands are never inverse.
	Equality Op = iota
	// AddSub chains operands with '+'; an inverse operand is subtracted.
	AddSub
	// MulDiv chains operands with '*'; an inverse operand is a divisor.
	MulDiv
	// ExpRoot chains operands with '^'. Operands are never inverse.
	ExpRoot
)

func (o Op) String() string {
	switch o {
	case Equality:
		return "Equality"
	case AddSub:
		return "AddSub"
	case MulDiv:
		return "MulDiv"
	case ExpRoot:
		return "ExpRoot"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Expression is one of *Negative, *Node, Literal or Variable.
type Expression interface {
	isExpression()
}

// Negative is a unary minus applied to Inner.
type Negative struct {
	Inner Expression
}

// Node is an n-ary chain of operands joined by the same operation, e.g.
// a+b-c is one AddSub node with three operands. A node always has at least
// two operands.
type Node struct {
	Operation Op
	Values    []SubExpression
}

// SubExpression is one operand of a Node together with its relation to the
// operand before it.
type SubExpression struct {
	Inverse bool
	Val     Expression
}

// Literal is a numeric constant.
type Literal float64

// Variable is a named quantity.
type Variable string

func (*Negative) isExpression() {}
func (*Node) isExpression()     {}
func (Literal) isExpression()   {}
func (Variable) isExpression()  {}

// NewNode builds a node from the given operands.
func NewNode(op Op, values ...SubExpression) *Node {
	return &Node{Operation: op, Values: values}
}

// Operand wraps v as a non-inverse operand.
func Operand(v Expression) SubExpression {
	return SubExpression{Val: v}
}

// Inverted wraps v as an inverse operand (subtracted or divided by).
func Inverted(v Expression) SubExpression {
	return SubExpression{Inverse: true, Val: v}
}

// IsNode reports whether e is a node with operation op.
func IsNode(e Expression, op Op) bool {
	n, ok := e.(*Node)
	return ok && n.Operation == op
}

// Clone returns a deep copy of e.
func Clone(e Expression) Expression {
	switch v := e.(type) {
	case *Negative:
		return &Negative{Inner: Clone(v.Inner)}
	case *Node:
		return cloneNode(v)
	case Literal:
		return v
	case Variable:
		return v
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

func cloneNode(n *Node) *Node {
	values := make([]SubExpression, len(n.Values))
	for i, se := range n.Values {
		values[i] = SubExpression{Inverse: se.Inverse, Val: Clone(se.Val)}
	}

	return &Node{Operation: n.Operation, Values: values}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case *Negative:
		y, ok := b.(*Negative)
		return ok && Equal(x.Inner, y.Inner)
	case *Node:
		y, ok := b.(*Node)
		if !ok || x.Operation != y.Operation || len(x.Values) != len(y.Values) {
			return false
		}

		for i := range x.Values {
			if !x.Values[i].Equal(y.Values[i]) {
				return false
			}
		}

		return true
	case Literal:
		y, ok := b.(Literal)
		return ok && x == y
	case Variable:
		y, ok := b.(Variable)
		return ok && x == y
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", a))
	}
}

// Equal reports whether both operands have the same relation and value.
func (s SubExpression) Equal(o SubExpression) bool {
	return s.Inverse == o.Inverse && Equal(s.Val, o.Val)
}

// childCount returns the number of addressable children of e: the operands
// of a node, the single inner value of a negation, none for a leaf.
func childCount(e Expression) int {
	switch v := e.(type) {
	case *Negative:
		return 1
	case *Node:
		return len(v.Values)
	case Literal, Variable:
		return 0
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

// childAt returns the idx-th addressable child of e.
func childAt(e Expression, idx int) Expression {
	switch v := e.(type) {
	case *Negative:
		if idx != 0 {
			panic(fmt.Sprintf("expr: negation has no child %d", idx))
		}

		return v.Inner
	case *Node:
		if idx < 0 || idx >= len(v.Values) {
			panic(fmt.Sprintf("expr: node has no child %d (len %d)", idx, len(v.Values)))
		}

		return v.Values[idx].Val
	case Literal, Variable:
		panic(fmt.Sprintf("expr: leaf %v has no children", v))
	default:
		panic(fmt.Sprintf("expr: unknown expression %T", e))
	}
}

// IsLeaf reports whether e has no addressable children.
func IsLeaf(e Expression) bool {
	return childCount(e) == 0
}
