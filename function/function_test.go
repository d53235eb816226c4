/*
File    : pyrustlang/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazhukin/pyrustlang/environment"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

func TestFunction_RendersNameAndParams(t *testing.T) {
	fn := &Function{
		Name:     "add",
		Params:   []parser.Param{{Name: "a", Type: parser.TagI32}, {Name: "b", Type: parser.TagI32}},
		Captured: environment.New(nil),
	}
	assert.Equal(t, value.KindFunction, fn.Kind())
	assert.Equal(t, "<fn add(a, b)>", fn.Render())
}

func TestFunction_CapturesLiveEnvironment(t *testing.T) {
	env := environment.New(nil)
	env.Declare("n", value.Int{Val: 1}, true)
	fn := &Function{Name: "f", Captured: env}

	// Reassigning n in the defining scope after the closure exists
	// must be visible through fn.Captured - it holds a live pointer,
	// not a snapshot.
	require.Nil(t, env.Assign("n", value.Int{Val: 42}))
	v, err := fn.Captured.Lookup("n")
	require.Nil(t, err)
	assert.Equal(t, value.Int{Val: 42}, v, "closure must observe the reassignment")
}
