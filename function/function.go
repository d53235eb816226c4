/*
File    : pyrustlang/function/function.go
*/

// Package function defines the first-class closure value. A Function
// holds a live *environment.Environment rather than a snapshot, so
// reassignments in the defining scope made after the declaration stay
// visible to the closure when it is eventually called.
package function

import (
	"fmt"
	"strings"

	"github.com/mazhukin/pyrustlang/environment"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

// Function is a first-class closure: the parameter list and return
// type from its FnDecl, its body statements, and the environment that
// was active when it was declared.
type Function struct {
	Name       string
	Params     []parser.Param
	ReturnType *parser.TypeTag
	Body       []parser.Stmt
	Captured   *environment.Environment
}

func (*Function) Kind() value.Kind { return value.KindFunction }

func (f *Function) Render() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("<fn %s(%s)>", f.Name, strings.Join(names, ", "))
}
