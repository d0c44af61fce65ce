package syntax

import (
	"strconv"
	"unicode/utf8"
)

// NextToken lexes the first token of input and returns it with the text that
// follows it. Whitespace and '#' comments are skipped. At the end of input
// the token is TokenEOF and rest is empty.
func NextToken(input string) (tok Token, rest string, err error) {
	tok, end, err := scan(input, 0)
	if err != nil {
		return Token{}, input, err
	}

	return tok, input[end:], nil
}

// Tokenize lexes all of input.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	pos := 0

	for {
		tok, end, err := scan(input, pos)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}

		pos = end
	}
}

// Lexer holds the current token of an input. The parser only ever looks at
// Cur and calls Consume.
type Lexer struct {
	input string
	pos   int
	cur   Token
}

// NewLexer primes a lexer with the first token of input.
func NewLexer(input string) (*Lexer, error) {
	l := &Lexer{input: input}
	if _, err := l.Consume(); err != nil {
		return nil, err
	}

	return l, nil
}

// Cur returns the current token without consuming it.
func (l *Lexer) Cur() Token {
	return l.cur
}

// Consume advances to the next token and returns the one it replaced.
func (l *Lexer) Consume() (Token, error) {
	tok, end, err := scan(l.input, l.pos)
	if err != nil {
		return Token{}, err
	}

	prev := l.cur
	l.cur = tok
	l.pos = end

	return prev, nil
}

// ConsumeOp consumes the current token when it is the operator op.
func (l *Lexer) ConsumeOp(op byte) (bool, error) {
	if !l.cur.IsOp(op) {
		return false, nil
	}

	_, err := l.Consume()

	return err == nil, err
}

// scan lexes one token starting at pos and returns it with the offset just
// past it.
func scan(input string, pos int) (Token, int, error) {
	pos = skipIgnored(input, pos)
	if pos >= len(input) {
		return Token{Kind: TokenEOF, Pos: len(input)}, len(input), nil
	}

	ch := input[pos]

	switch {
	case isDigit(ch):
		return scanNumber(input, pos)
	case isLetter(ch):
		end := pos + 1
		for end < len(input) && isIdentContinue(input[end]) {
			end++
		}

		return Token{Kind: TokenIdent, Text: input[pos:end], Pos: pos}, end, nil
	}

	switch ch {
	case '+', '-', '*', '/', '^', '=':
		return Token{Kind: TokenOp, Text: input[pos : pos+1], Op: ch, Pos: pos}, pos + 1, nil
	case '(':
		return Token{Kind: TokenParenOpen, Text: "(", Pos: pos}, pos + 1, nil
	case ')':
		return Token{Kind: TokenParenClose, Text: ")", Pos: pos}, pos + 1, nil
	}

	r, _ := utf8.DecodeRuneInString(input[pos:])

	return Token{}, pos, &ParseError{Kind: ErrBadToken, Pos: pos, Found: strconv.QuoteRune(r)}
}

// scanNumber lexes digits with an optional fraction: [0-9]+(\.[0-9]*)?
func scanNumber(input string, pos int) (Token, int, error) {
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}

	if end < len(input) && input[end] == '.' {
		end++
		for end < len(input) && isDigit(input[end]) {
			end++
		}
	}

	text := input[pos:end]

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, pos, &ParseError{Kind: ErrBadToken, Pos: pos, Found: strconv.Quote(text)}
	}

	return Token{Kind: TokenLiteral, Text: text, Value: value, Pos: pos}, end, nil
}

func skipIgnored(input string, pos int) int {
	for pos < len(input) {
		switch input[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		case '#':
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}

	return pos
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '\''
}
