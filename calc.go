// Package gocalc parses and evaluates arithmetic expressions made of
// integers, the binary operators + - * / and parentheses.
//
// Multiplication and division bind tighter than addition and subtraction,
// and all four associate to the left. Division is done in floating point,
// so "7 / 2" is 3.5. Division by zero is an error.
package gocalc

import "strconv"

const DefaultExpression = "5 + 3 * 8"

// Evaluate parses s and evaluates the resulting tree.
func Evaluate(s string) (float64, error) {
	node, err := NewParser(s).Parse()
	if err != nil {
		return 0, err
	}
	return node.Eval()
}

// FormatValue formats v the shortest way that reads back the same, so whole
// numbers print without a fraction.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
