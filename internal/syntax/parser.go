package syntax

import (
	"strings"

	"github.com/mouse-blink/equate/internal/expr"
)

// Parse parses a complete equation. Equality may only appear at the top
// level; parentheses re-enter at the additive level.
func Parse(text string) (expr.Expression, error) {
	l, err := NewLexer(text)
	if err != nil {
		return nil, err
	}

	p := &parser{lex: l}

	e, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	if p.lex.Cur().Kind != TokenEOF {
		return nil, unexpected(p.lex.Cur())
	}

	return e, nil
}

// ParseWithComment parses one persisted line: an equation optionally
// followed by a '#' comment. The comment is returned trimmed.
func ParseWithComment(line string) (expr.Expression, string, error) {
	text, comment, _ := strings.Cut(line, "#")

	e, err := Parse(text)
	if err != nil {
		return nil, "", err
	}

	return e, strings.TrimSpace(comment), nil
}

type parser struct {
	lex *Lexer
}

// parseEquality: addsub ( '=' addsub )*
func (p *parser) parseEquality() (expr.Expression, error) {
	first, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}

	if !p.lex.Cur().IsOp('=') {
		return first, nil
	}

	values := []expr.SubExpression{expr.Operand(first)}

	for {
		ok, err := p.lex.ConsumeOp('=')
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		v, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}

		values = append(values, expr.Operand(v))
	}

	return expr.NewNode(expr.Equality, values...), nil
}

// parseAddSub: muldiv ( ('+' | '-') muldiv )*
// The operator's sign belongs to the operand after it.
func (p *parser) parseAddSub() (expr.Expression, error) {
	return p.parseChain(expr.AddSub, '+', '-', p.parseMulDiv)
}

// parseMulDiv: unary ( ('*' | '/') unary )*
func (p *parser) parseMulDiv() (expr.Expression, error) {
	return p.parseChain(expr.MulDiv, '*', '/', p.parseUnary)
}

func (p *parser) parseChain(op expr.Op, plain, inverse byte, next func() (expr.Expression, error)) (expr.Expression, error) {
	first, err := next()
	if err != nil {
		return nil, err
	}

	values := []expr.SubExpression{expr.Operand(first)}

	for {
		cur := p.lex.Cur()
		if !cur.IsOp(plain) && !cur.IsOp(inverse) {
			break
		}

		if _, err := p.lex.Consume(); err != nil {
			return nil, err
		}

		v, err := next()
		if err != nil {
			return nil, err
		}

		values = append(values, expr.SubExpression{Inverse: cur.IsOp(inverse), Val: v})
	}

	if len(values) == 1 {
		return first, nil
	}

	return expr.NewNode(op, values...), nil
}

// parseUnary: '-' exprt | exprt
func (p *parser) parseUnary() (expr.Expression, error) {
	neg, err := p.lex.ConsumeOp('-')
	if err != nil {
		return nil, err
	}

	v, err := p.parseExpRoot()
	if err != nil {
		return nil, err
	}

	if neg {
		return &expr.Negative{Inner: v}, nil
	}

	return v, nil
}

// parseExpRoot: atom ( '^' atom )*
func (p *parser) parseExpRoot() (expr.Expression, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if !p.lex.Cur().IsOp('^') {
		return first, nil
	}

	values := []expr.SubExpression{expr.Operand(first)}

	for {
		ok, err := p.lex.ConsumeOp('^')
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		v, err := p.parseAtom()
		if err != nil {
			return nil, err
		}

		values = append(values, expr.Operand(v))
	}

	return expr.NewNode(expr.ExpRoot, values...), nil
}

// parseAtom: literal | identifier | '(' addsub ')'
func (p *parser) parseAtom() (expr.Expression, error) {
	cur := p.lex.Cur()

	switch cur.Kind {
	case TokenLiteral:
		if _, err := p.lex.Consume(); err != nil {
			return nil, err
		}

		return expr.Literal(cur.Value), nil
	case TokenIdent:
		if _, err := p.lex.Consume(); err != nil {
			return nil, err
		}

		return expr.Variable(cur.Text), nil
	case TokenParenOpen:
		if _, err := p.lex.Consume(); err != nil {
			return nil, err
		}

		inner, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}

		if p.lex.Cur().Kind != TokenParenClose {
			return nil, unexpected(p.lex.Cur())
		}

		if _, err := p.lex.Consume(); err != nil {
			return nil, err
		}

		return inner, nil
	case TokenEOF, TokenOp, TokenParenClose:
		return nil, unexpected(cur)
	default:
		return nil, unexpected(cur)
	}
}
