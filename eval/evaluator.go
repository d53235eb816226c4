/*
File    : pyrustlang/eval/evaluator.go
*/

// Package eval walks a parsed program and executes it: statement
// semantics, expression evaluation, call frames, and runtime error
// signalling. Side effects are limited to writes on the configured
// output sink.
package eval

import (
	"io"
	"os"

	"github.com/mazhukin/pyrustlang/environment"
)

// Evaluator walks a parsed program against a persistent global
// environment, writing `print` output to Writer. One Evaluator
// instance is reused across REPL lines so top-level bindings persist
// between them; a file run uses a fresh Evaluator for the one program.
type Evaluator struct {
	Global *environment.Environment
	Writer io.Writer
}

// New creates an evaluator with a fresh parentless global scope,
// writing to stdout.
func New() *Evaluator {
	return &Evaluator{Global: environment.New(nil), Writer: os.Stdout}
}

// SetWriter redirects `print` output, used by file mode for the real
// stdout and by tests that capture output into a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}
