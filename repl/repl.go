/*
File    : pyrustlang/repl/repl.go
*/

// Package repl implements the interactive shell: one complete
// statement or expression per line, with readline-backed editing and
// history. The literal identifier `exit` ends the session, and a bare
// expression auto-prints its value.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mazhukin/pyrustlang/eval"
	"github.com/mazhukin/pyrustlang/lexer"
	"github.com/mazhukin/pyrustlang/parser"
)

var (
	promptColor = color.New(color.FgGreen)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

const banner = `Pyrustlang - a small statically-annotated, dynamically-checked interpreter
Type an expression or statement and press enter. Type 'exit' to quit.`

// Start runs the REPL until the user types the identifier `exit`,
// sends EOF (Ctrl-D), or readline itself fails. Unlike file mode, a
// failed line is reported and the prompt returns; state from that
// line is not installed.
func Start(writer io.Writer) error {
	fmt.Fprintln(writer, banner)

	rl, err := readline.New(promptColor.Sprint("pyrustlang> "))
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl-D) or readline error
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}
		rl.SaveHistory(line)
		evalLine(writer, evaluator, line)
	}
}

// evalLine lexes, parses, and evaluates a single REPL line, printing
// the first error encountered (of any kind) in red, or the value of a
// trailing bare expression in yellow.
func evalLine(writer io.Writer, evaluator *eval.Evaluator, line string) {
	tokens, lexErrs := lexer.New(line).Scan()
	if len(lexErrs) > 0 {
		errorColor.Fprintln(writer, lexErrs[0].Error())
		return
	}

	prog, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		errorColor.Fprintln(writer, parseErr.Error())
		return
	}

	result, printed, runErr := evaluator.RunLine(prog)
	if runErr != nil {
		errorColor.Fprintln(writer, runErr.Error())
		return
	}
	if printed {
		resultColor.Fprintln(writer, result.Render())
	}
}
