package gocalc

import (
	"fmt"
	"strconv"
)

// Node is a node of a parsed expression tree. The implementations are
// Operand, *Factor, *Term and *Expression.
type Node interface {
	// Eval evaluates the subtree. Division is done in floating point.
	Eval() (float64, error)

	// String returns the subtree without spaces, parenthesized only where
	// the input was.
	String() string

	node()
}

// Operand is an integer literal.
type Operand int64

// Factor is a parenthesized expression.
type Factor struct {
	Child Node
}

// Term is a multiplication or a division.
type Term struct {
	Op    byte
	Left  Node
	Right Node
}

// Expression is an addition or a subtraction.
type Expression struct {
	Op    byte
	Left  Node
	Right Node
}

func (Operand) node()     {}
func (*Factor) node()     {}
func (*Term) node()       {}
func (*Expression) node() {}

func (n Operand) Eval() (float64, error) {
	return float64(n), nil
}

func (n *Factor) Eval() (float64, error) {
	return n.Child.Eval()
}

func (n *Term) Eval() (float64, error) {
	lhs, rhs, err := evalPair(n.Left, n.Right)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, fmt.Errorf("%w: %v", ErrDivision, n)
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("invalid term operator: '%c'", n.Op)
}

func (n *Expression) Eval() (float64, error) {
	lhs, rhs, err := evalPair(n.Left, n.Right)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	}
	return 0, fmt.Errorf("invalid expression operator: '%c'", n.Op)
}

func evalPair(lhs, rhs Node) (float64, float64, error) {
	l, err := lhs.Eval()
	if err != nil {
		return 0, 0, err
	}
	r, err := rhs.Eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func (n Operand) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n *Factor) String() string {
	return "(" + n.Child.String() + ")"
}

func (n *Term) String() string {
	return n.Left.String() + string(n.Op) + n.Right.String()
}

func (n *Expression) String() string {
	return n.Left.String() + string(n.Op) + n.Right.String()
}
