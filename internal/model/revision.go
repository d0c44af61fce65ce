package model

import "time"

// Revision is a stored version of one line of an equation file.
type Revision struct {
	Path    Path
	Line    int // 0-based index in the file
	Version int
	Text    string
	Time    time.Time
}

// FactorKind selects a factoring rewrite.
type FactorKind string

const (
	// FactorLeading hoists a factor common to the start of every addend.
	FactorLeading FactorKind = "leading"
	// FactorTrailing hoists a factor common to the end of every addend.
	FactorTrailing FactorKind = "trailing"
	// FactorAll hoists every factor common to all addends.
	FactorAll FactorKind = "all"
)
