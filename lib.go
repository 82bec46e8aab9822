package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=lib -f

// Example is an expression bundled with its expected result.
type Example struct {
	File string
	Line int
	Expr string
	// Want is the expected value. Fail is set instead when the
	// expression must not evaluate.
	Want float64
	Fail bool
}

func (e Example) String() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Expr)
}

// Check evaluates the example and reports a mismatch as an error.
func (e Example) Check() error {
	v, err := Evaluate(e.Expr)
	if e.Fail {
		if err == nil {
			return fmt.Errorf("%v: want error but got %v", e, FormatValue(v))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%v: %w", e, err)
	}
	if v != e.Want {
		return fmt.Errorf("%v: want %v but got %v", e, FormatValue(e.Want), FormatValue(v))
	}
	return nil
}

// LoadExamples reads every bundled example file.
func LoadExamples() ([]Example, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	sort.Slice(fis, func(i, j int) bool {
		return fis[i].Name() < fis[j].Name()
	})

	var examples []Example
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".calc" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		list, err := ParseExamples(fi.Name(), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		examples = append(examples, list...)
	}
	return examples, nil
}

// ParseExamples reads lines of the form "expression => expected" from r.
// The expected side is a number, or "error" when evaluation must fail.
// Blank lines and lines starting with '#' are skipped.
func ParseExamples(name string, r io.Reader) ([]Example, error) {
	var examples []Example
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		i := strings.LastIndex(text, "=>")
		if i < 0 {
			return nil, fmt.Errorf("%s:%d: missing =>", name, line)
		}
		e := Example{
			File: name,
			Line: line,
			Expr: strings.TrimSpace(text[:i]),
		}
		want := strings.TrimSpace(text[i+2:])
		if want == "error" {
			e.Fail = true
		} else {
			v, err := strconv.ParseFloat(want, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid result: %w", name, line, err)
			}
			e.Want = v
		}
		examples = append(examples, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return examples, nil
}
