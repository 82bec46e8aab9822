package gocalc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrOperand  = errors.New("operand expected")
	ErrRange    = errors.New("operand out of range")
	ErrParen    = errors.New("missing closing parenthesis")
	ErrDivision = errors.New("division by zero")
	ErrTrailing = errors.New("unexpected trailing input")
)

// Parser builds a tree for one input string.
//
// Spaces are removed from the input before scanning, so positions reported
// in errors are offsets into the input without spaces.
type Parser struct {
	sc *scanner
}

func NewParser(s string) *Parser {
	return &Parser{
		sc: newScanner(s),
	}
}

func (p *Parser) Pos() int {
	return p.sc.pos()
}

func (p *Parser) errorf(err error) error {
	c := p.sc.current()
	if c == eof {
		return fmt.Errorf("%w at end of input (%d)", err, p.Pos())
	}
	return fmt.Errorf("%w: '%c' (%d)", err, c, p.Pos())
}

// Parse parses a whole expression. Input left over after the expression is
// ignored.
func (p *Parser) Parse() (Node, error) {
	return p.ParseExpression()
}

// ParseStrict is like Parse but fails if any input is left over.
func (p *Parser) ParseStrict() (Node, error) {
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.sc.current() != eof {
		return nil, p.errorf(ErrTrailing)
	}
	return node, nil
}

func (p *Parser) ParseExpression() (Node, error) {
	lhs, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	for {
		c := p.sc.current()
		if c != '+' && c != '-' {
			break
		}
		p.sc.advance()
		rhs, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		lhs = &Expression{
			Op:    byte(c),
			Left:  lhs,
			Right: rhs,
		}
	}
	return lhs, nil
}

func (p *Parser) ParseTerm() (Node, error) {
	lhs, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}
	for {
		c := p.sc.current()
		if c != '*' && c != '/' {
			break
		}
		p.sc.advance()
		rhs, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		lhs = &Term{
			Op:    byte(c),
			Left:  lhs,
			Right: rhs,
		}
	}
	return lhs, nil
}

// ParseFactor parses a parenthesized expression or an operand. Only the
// parenthesized form is wrapped in a Factor.
func (p *Parser) ParseFactor() (Node, error) {
	if p.sc.current() != '(' {
		return p.ParseOperand()
	}
	p.sc.advance()
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.sc.current() != ')' {
		return nil, p.errorf(ErrParen)
	}
	p.sc.advance()
	return &Factor{Child: node}, nil
}

func (p *Parser) ParseOperand() (Node, error) {
	start := p.sc.pos()
	for isDigit(p.sc.current()) {
		p.sc.advance()
	}
	if start == p.sc.pos() {
		return nil, p.errorf(ErrOperand)
	}
	s := p.sc.src[start:p.sc.pos()]
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%d)", ErrRange, s, start)
	}
	return Operand(i), nil
}
