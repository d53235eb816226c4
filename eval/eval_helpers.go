/*
File    : pyrustlang/eval/eval_helpers.go
*/
package eval

import (
	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

// checkTag enforces a TypeTag against a runtime value's tag. Used at
// `let` declarations, call arguments, and declared return types - the
// only three sites where an annotation binds.
func checkTag(tag parser.TypeTag, v value.Value) *diag.RuntimeError {
	want := tagKind(tag)
	if v.Kind() != want {
		return diag.NewRuntimeError(diag.TypeMismatch, "expected %s, found %s", tag, v.Kind())
	}
	return nil
}

func tagKind(tag parser.TypeTag) value.Kind {
	switch tag {
	case parser.TagI32:
		return value.KindInt
	case parser.TagF64:
		return value.KindFloat
	case parser.TagStr:
		return value.KindStr
	case parser.TagBool:
		return value.KindBool
	default:
		return value.KindUnit
	}
}
