package domain

import "errors"

var (
	// ErrReadOnly is returned when saving a session opened read-only.
	ErrReadOnly = errors.New("equation set is read-only")
	// ErrEqualityBelowRoot is returned when an edit would nest '=' inside
	// another expression.
	ErrEqualityBelowRoot = errors.New("'=' is only allowed at the top of a line")
	// ErrNoFactor is returned when a factoring rewrite finds nothing to hoist.
	ErrNoFactor = errors.New("no common factor")
	// ErrNoLine is returned by line edits on an empty equation set.
	ErrNoLine = errors.New("no line selected")
	// ErrNoPath is returned when saving a set that was never given a file.
	ErrNoPath = errors.New("equation set has no file")
	// ErrCheckFailed is returned by Check when any line failed to parse.
	ErrCheckFailed = errors.New("equation check failed")
)
