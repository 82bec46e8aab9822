package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

var (
	tree     = flag.Bool("tree", false, "dump the parsed tree")
	strict   = flag.Bool("strict", false, "reject input left after the expression")
	examples = flag.Bool("examples", false, "check the bundled examples")
)

func run(w io.Writer, s string) error {
	p := gocalc.NewParser(s)
	var node gocalc.Node
	var err error
	if *strict {
		node, err = p.ParseStrict()
	} else {
		node, err = p.Parse()
	}
	if err != nil {
		return err
	}
	if *tree {
		fmt.Fprintln(w, repr.String(node, repr.Indent("  ")))
	}
	v, err := node.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Input Expression: %s\n", s)
	fmt.Fprintf(w, "Result: %s\n", gocalc.FormatValue(v))
	return nil
}

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Please enter expression: ")
		if !scanner.Scan() {
			break
		}
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			s = gocalc.DefaultExpression
		}
		if err := run(os.Stdout, s); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func checkExamples() {
	list, err := gocalc.LoadExamples()
	if err != nil {
		log.Fatal(err)
	}
	failed := 0
	for _, e := range list {
		if err := e.Check(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
		}
	}
	fmt.Printf("%d examples, %d failed\n", len(list), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func main() {
	flag.Parse()

	if *examples {
		checkExamples()
		return
	}

	if flag.NArg() > 0 {
		err := run(os.Stdout, strings.Join(flag.Args(), " "))
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		repl()
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		if err := run(os.Stdout, s); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
