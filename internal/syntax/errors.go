package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrBadToken is returned for characters the lexer cannot classify and
	// for numbers that do not fit a float64.
	ErrBadToken = errors.New("bad token")
	// ErrUnexpected is returned when a token cannot continue the grammar.
	ErrUnexpected = errors.New("unexpected token")
)

// ParseError describes why a parse attempt failed.
type ParseError struct {
	Kind  error  // ErrBadToken or ErrUnexpected
	Pos   int    // byte offset of the offending input
	Found string // description of the offending token or text
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Pos, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func unexpected(t Token) error {
	return &ParseError{Kind: ErrUnexpected, Pos: t.Pos, Found: t.String()}
}
