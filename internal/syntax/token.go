// Package syntax turns equation text into expression trees.
package syntax

import (
	"fmt"
	"strconv"
)

// TokenKind is the class of a lexer token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenLiteral
	TokenOp
	TokenParenOpen
	TokenParenClose
)

// Token is a single lexed token. Value is set for literals, Op for operators.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
	Op    byte
	Pos   int // byte offset in the input
}

// IsOp reports whether t is the operator op.
func (t Token) IsOp(op byte) bool {
	return t.Kind == TokenOp && t.Op == op
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case TokenLiteral:
		return "literal " + strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenOp:
		return fmt.Sprintf("operator '%c'", t.Op)
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	default:
		return fmt.Sprintf("Token(%d, %q, %d)", t.Kind, t.Text, t.Pos)
	}
}
