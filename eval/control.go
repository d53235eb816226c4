/*
File    : pyrustlang/eval/control.go
*/
package eval

import "github.com/mazhukin/pyrustlang/value"

// outcome is the control result returned by every statement-evaluating
// function: ordinary completion, or an in-flight `return` unwinding out
// of nested blocks and loops until the nearest enclosing call catches
// it. When returning is true, val holds the value passed to `return`
// (Unit for a bare `return`) and execution of the enclosing block,
// loop, or function body must stop immediately. A second result field
// is cheaper and clearer here than a host-language panic.
type outcome struct {
	val       value.Value
	returning bool
}

func normal() outcome { return outcome{val: value.Unit{}} }

func returning(v value.Value) outcome { return outcome{val: v, returning: true} }
