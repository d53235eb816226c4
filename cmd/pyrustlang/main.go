/*
File    : pyrustlang/cmd/pyrustlang/main.go

Entry point with two modes: `pyrustlang <path>` runs a source file,
`pyrustlang` with no arguments starts the interactive REPL.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mazhukin/pyrustlang/eval"
	"github.com/mazhukin/pyrustlang/lexer"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/repl"
)

// version is the interpreter's own version string, reported by
// --version; it tracks no language feature and is bumped by hand.
const version = "0.1.0"

var errColor = color.New(color.FgRed)

func main() {
	if len(os.Args) < 2 {
		if err := repl.Start(os.Stdout); err != nil {
			errColor.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	switch os.Args[1] {
	case "--version", "-v":
		fmt.Println("pyrustlang " + version)
		return
	case "--help", "-h":
		printUsage()
		return
	}

	runFile(os.Args[1])
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  pyrustlang <path>   run a Pyrustlang source file")
	fmt.Println("  pyrustlang          start the interactive REPL")
	fmt.Println("  pyrustlang --version")
}

// runFile executes a single program from disk. The first lex, parse,
// or runtime error terminates the run with a non-zero exit code.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Error: could not read file '%s': %s\n", path, err)
		os.Exit(1)
	}

	tokens, lexErrs := lexer.New(string(src)).Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			errColor.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	prog, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		errColor.Fprintln(os.Stderr, parseErr.Error())
		os.Exit(1)
	}

	evaluator := eval.New()
	evaluator.SetWriter(os.Stdout)
	if runErr := evaluator.Run(prog); runErr != nil {
		errColor.Fprintln(os.Stderr, runErr.Error())
		os.Exit(1)
	}
}
