package gocalc

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "42",
			want:  "42",
		},
		{
			input: "5 + 3 * 8",
			want:  "5+3*8",
		},
		{
			input: "(5 + 3) * 8",
			want:  "(5+3)*8",
		},
		{
			input: "((2 + 3) * (4 - 1))",
			want:  "((2+3)*(4-1))",
		},
		{
			input: "1 2 + 3",
			want:  "12+3",
		},
		{
			input: "1 + 2)",
			want:  "1+2",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := NewParser(test.input).Parse()
		if err != nil {
			t.Error(err)
			continue
		}
		got := node.String()

		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseLeftAssociative(t *testing.T) {
	node, err := NewParser("10 - 4 - 3").Parse()
	if err != nil {
		t.Fatal(err)
	}
	root, ok := node.(*Expression)
	if !ok || root.Op != '-' {
		t.Fatalf("want subtraction at root but got %#v", node)
	}
	if _, ok := root.Left.(*Expression); !ok {
		t.Errorf("want nested expression on the left but got %#v", root.Left)
	}
	if root.Right != Operand(3) {
		t.Errorf("want 3 on the right but got %#v", root.Right)
	}

	node, err = NewParser("8 / 2 * 4").Parse()
	if err != nil {
		t.Fatal(err)
	}
	term, ok := node.(*Term)
	if !ok || term.Op != '*' {
		t.Fatalf("want multiplication at root but got %#v", node)
	}
	if left, ok := term.Left.(*Term); !ok || left.Op != '/' {
		t.Errorf("want division on the left but got %#v", term.Left)
	}
}

func TestParseFactor(t *testing.T) {
	node, err := NewParser("7").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if node != Operand(7) {
		t.Errorf("want bare operand but got %#v", node)
	}

	node, err = NewParser("(7)").Parse()
	if err != nil {
		t.Fatal(err)
	}
	f, ok := node.(*Factor)
	if !ok {
		t.Fatalf("want factor but got %#v", node)
	}
	if f.Child != Operand(7) {
		t.Errorf("want 7 inside factor but got %#v", f.Child)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input string
		err   error
		msg   string
	}{
		{
			input: "",
			err:   ErrOperand,
			msg:   "operand expected at end of input (0)",
		},
		{
			input: "+5",
			err:   ErrOperand,
			msg:   "operand expected: '+' (0)",
		},
		{
			input: "5 +",
			err:   ErrOperand,
			msg:   "operand expected at end of input (2)",
		},
		{
			input: "5 * * 2",
			err:   ErrOperand,
			msg:   "operand expected: '*' (2)",
		},
		{
			input: "(1 + 2",
			err:   ErrParen,
			msg:   "missing closing parenthesis at end of input (4)",
		},
		{
			input: "(1 + 2]",
			err:   ErrParen,
			msg:   "missing closing parenthesis: ']' (4)",
		},
		{
			input: "99999999999999999999",
			err:   ErrRange,
			msg:   "operand out of range: 99999999999999999999 (0)",
		},
	}
	for _, test := range tests {
		_, err := NewParser(test.input).Parse()
		if err == nil {
			t.Errorf("want error for %q", test.input)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("want %v for %q but got %v", test.err, test.input, err)
		}
		if err.Error() != test.msg {
			t.Errorf("want %q for %q but got %q", test.msg, test.input, err.Error())
		}
	}
}

func TestParseStrict(t *testing.T) {
	p := NewParser("1 + 2)")
	_, err := p.ParseStrict()
	if !errors.Is(err, ErrTrailing) {
		t.Fatalf("want %v but got %v", ErrTrailing, err)
	}
	if p.Pos() != 3 {
		t.Errorf("want position 3 but got %d", p.Pos())
	}

	node, err := NewParser(" 1 + 2 ").ParseStrict()
	if err != nil {
		t.Fatal(err)
	}
	if got := node.String(); got != "1+2" {
		t.Errorf("want %q but got %q", "1+2", got)
	}
}
