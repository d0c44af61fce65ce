// Package factors hoists common multiplicative factors out of sums.
//
// Every addend of a sum is seen as a list of factor entities: the operands
// of a '*'/'/' chain, or the addend itself when it is not such a chain. The
// rewrites return the factored expression and true, or nil and false when
// the expression is not a sum or nothing is common. Inputs are never
// modified. Results such as 1*x are left for a later simplification pass.
package factors

import (
	"github.com/mouse-blink/equate/internal/expr"
)

// Normalise is the hook for bringing an expression into a canonical form
// after a rewrite. It currently returns e unchanged.
func Normalise(e expr.Expression) expr.Expression {
	return e
}

// Leading hoists the first factor entity when every addend starts with it.
func Leading(e expr.Expression) (expr.Expression, bool) {
	sum, ok := sumOf(e)
	if !ok {
		return nil, false
	}

	item := entities(sum.Values[0].Val)[0]
	if item.Inverse {
		return nil, false
	}

	for _, addend := range sum.Values[1:] {
		if !entities(addend.Val)[0].Equal(item) {
			return nil, false
		}
	}

	for i := range sum.Values {
		sum.Values[i].Val = dropLeading(sum.Values[i].Val)
	}

	return expr.NewNode(expr.MulDiv, expr.Operand(item.Val), expr.Operand(sum)), true
}

// Trailing hoists the last factor entity when every addend ends with it.
// A common trailing divisor stays a divisor: a/x+b/x becomes (a+b)/x.
func Trailing(e expr.Expression) (expr.Expression, bool) {
	sum, ok := sumOf(e)
	if !ok {
		return nil, false
	}

	first := entities(sum.Values[0].Val)
	item := first[len(first)-1]

	for _, addend := range sum.Values[1:] {
		ents := entities(addend.Val)
		if !ents[len(ents)-1].Equal(item) {
			return nil, false
		}
	}

	for i := range sum.Values {
		sum.Values[i].Val = dropTrailing(sum.Values[i].Val)
	}

	return expr.NewNode(expr.MulDiv, expr.Operand(sum), item), true
}

// All hoists every factor entity common to all addends. Entities are
// matched as multisets: x*x*a+x*x*b yields x*x*(a+b), and exactly one
// occurrence is removed from each addend per hoisted entity.
func All(e expr.Expression) (expr.Expression, bool) {
	sum, ok := sumOf(e)
	if !ok {
		return nil, false
	}

	lists := make([][]expr.SubExpression, len(sum.Values))
	for i, addend := range sum.Values {
		lists[i] = entities(addend.Val)
	}

	common := intersect(lists)
	if len(common) == 0 {
		return nil, false
	}

	for i := range sum.Values {
		rest := removeEach(lists[i], common)
		sum.Values[i].Val = product(rest)
	}

	factors := append([]expr.SubExpression{}, common...)
	if factors[0].Inverse {
		factors = append([]expr.SubExpression{expr.Operand(expr.Literal(1))}, factors...)
	}

	factors = append(factors, expr.Operand(sum))

	return expr.NewNode(expr.MulDiv, factors...), true
}

// sumOf returns a private copy of e when it is a sum.
func sumOf(e expr.Expression) (*expr.Node, bool) {
	if !expr.IsNode(e, expr.AddSub) {
		return nil, false
	}

	sum, _ := expr.Clone(e).(*expr.Node)

	return sum, true
}

// entities lists the factor entities of an addend.
func entities(e expr.Expression) []expr.SubExpression {
	if n, ok := e.(*expr.Node); ok && n.Operation == expr.MulDiv {
		return n.Values
	}

	return []expr.SubExpression{expr.Operand(e)}
}

func dropLeading(e expr.Expression) expr.Expression {
	n, ok := e.(*expr.Node)
	if !ok || n.Operation != expr.MulDiv {
		return expr.Literal(1)
	}

	switch {
	case n.Values[1].Inverse:
		// x/y loses x and becomes 1/y.
		n.Values[0] = expr.Operand(expr.Literal(1))
		return n
	case len(n.Values) > 2:
		n.Values = n.Values[1:]
		return n
	default:
		return n.Values[1].Val
	}
}

func dropTrailing(e expr.Expression) expr.Expression {
	n, ok := e.(*expr.Node)
	if !ok || n.Operation != expr.MulDiv {
		return expr.Literal(1)
	}

	if len(n.Values) > 2 {
		n.Values = n.Values[:len(n.Values)-1]
		return n
	}

	return product(n.Values[:1])
}

// intersect returns the entities of the first list that can be matched to
// a distinct entity in every other list.
func intersect(lists [][]expr.SubExpression) []expr.SubExpression {
	used := make([][]bool, len(lists))
	for i, l := range lists {
		used[i] = make([]bool, len(l))
	}

	var common []expr.SubExpression

	for _, ent := range lists[0] {
		picks := make([]int, len(lists))
		found := true

		for i, l := range lists {
			picks[i] = indexOf(l, used[i], ent)
			if picks[i] < 0 {
				found = false
				break
			}
		}

		if !found {
			continue
		}

		for i, idx := range picks {
			used[i][idx] = true
		}

		common = append(common, ent)
	}

	return common
}

func indexOf(list []expr.SubExpression, used []bool, ent expr.SubExpression) int {
	for i, v := range list {
		if !used[i] && v.Equal(ent) {
			return i
		}
	}

	return -1
}

// removeEach removes one occurrence of every entity in common from list.
func removeEach(list, common []expr.SubExpression) []expr.SubExpression {
	used := make([]bool, len(list))
	for _, ent := range common {
		if idx := indexOf(list, used, ent); idx >= 0 {
			used[idx] = true
		}
	}

	var rest []expr.SubExpression

	for i, v := range list {
		if !used[i] {
			rest = append(rest, v)
		}
	}

	return rest
}

// product folds a list of entities back into a single addend.
func product(ents []expr.SubExpression) expr.Expression {
	switch {
	case len(ents) == 0:
		return expr.Literal(1)
	case len(ents) == 1 && !ents[0].Inverse:
		return ents[0].Val
	case ents[0].Inverse:
		values := append([]expr.SubExpression{expr.Operand(expr.Literal(1))}, ents...)
		return expr.NewNode(expr.MulDiv, values...)
	default:
		return expr.NewNode(expr.MulDiv, append([]expr.SubExpression{}, ents...)...)
	}
}
