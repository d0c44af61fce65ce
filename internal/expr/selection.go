package expr

import (
	"fmt"
)

// Selection addresses an inclusive range of sibling operands. Path lists the
// child indices followed from the root to reach the node whose operands
// First..Last select. A selection stores no references into the tree: every
// operation re-walks Path against the live tree.
type Selection struct {
	Path  []int
	First int
	Last  int
}

func (s Selection) String() string {
	return fmt.Sprintf("%v %d-%d", s.Path, s.First, s.Last)
}

// Clone returns a copy of s that shares no memory with it.
func (s Selection) Clone() Selection {
	path := make([]int, len(s.Path))
	copy(path, s.Path)

	return Selection{Path: path, First: s.First, Last: s.Last}
}

// IsRange reports whether more than one operand is selected.
func (s Selection) IsRange() bool {
	return s.First != s.Last
}

// level returns the expression whose children the selection indexes.
func (s Selection) level(root Expression) Expression {
	e := root
	for _, idx := range s.Path {
		e = childAt(e, idx)
	}

	return e
}

// LevelSize returns the number of siblings at the selection's level. A leaf
// root is a level of one: the root itself.
func (s Selection) LevelSize(root Expression) int {
	e := s.level(root)

	n := childCount(e)
	if n == 0 {
		if len(s.Path) != 0 {
			panic(fmt.Sprintf("expr: selection path %v ends at a leaf", s.Path))
		}

		return 1
	}

	return n
}

// MoveOut ascends one level, selecting the operand that was descended into.
// It fails at the root.
func (s *Selection) MoveOut(_ Expression) bool {
	if len(s.Path) == 0 {
		return false
	}

	last := s.Path[len(s.Path)-1]
	s.Path = s.Path[:len(s.Path)-1]
	s.First = last
	s.Last = last

	return true
}

// MoveIn narrows a range to its first operand, or descends into the selected
// operand when it has children of its own.
func (s *Selection) MoveIn(root Expression) bool {
	if s.First != s.Last {
		s.Last = s.First
		return true
	}

	e := s.level(root)
	if IsLeaf(e) {
		return false
	}

	if IsLeaf(childAt(e, s.First)) {
		return false
	}

	// Copy so selections cloned by value never share a backing array.
	path := make([]int, len(s.Path), len(s.Path)+1)
	copy(path, s.Path)
	s.Path = append(path, s.First)
	s.First = 0
	s.Last = 0

	return true
}

// ShiftRight moves a point selection one operand right. Any range collapses
// to its first operand, even when the move fails at the right edge.
func (s *Selection) ShiftRight(root Expression) bool {
	size := s.LevelSize(root)

	if s.First < size-1 {
		s.First++
		s.Last = s.First

		return true
	}

	s.Last = s.First

	return false
}

// ShiftLeft moves a point selection one operand left. Any range collapses to
// its first operand, even when the move fails at the left edge.
func (s *Selection) ShiftLeft(_ Expression) bool {
	if s.First > 0 {
		s.First--
		s.Last = s.First

		return true
	}

	s.Last = s.First

	return false
}

// ExpandRight extends the range by one operand on the right.
func (s *Selection) ExpandRight(root Expression) bool {
	if s.Last < s.LevelSize(root)-1 {
		s.Last++
		return true
	}

	return false
}

// ExpandLeft extends the range by one operand on the left.
func (s *Selection) ExpandLeft(_ Expression) bool {
	if s.First > 0 {
		s.First--
		return true
	}

	return false
}

// ShrinkRight drops the rightmost operand of a range.
func (s *Selection) ShrinkRight(_ Expression) bool {
	if s.Last > s.First {
		s.Last--
		return true
	}

	return false
}

// ShrinkLeft drops the leftmost operand of a range.
func (s *Selection) ShrinkLeft(_ Expression) bool {
	if s.First < s.Last {
		s.First++
		return true
	}

	return false
}
