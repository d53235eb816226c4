/*
File    : pyrustlang/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_IntHasNoTrailingDot(t *testing.T) {
	assert.Equal(t, "42", Int{Val: 42}.Render())
	assert.Equal(t, "-7", Int{Val: -7}.Render())
}

func TestRender_FloatAlwaysHasADecimalPoint(t *testing.T) {
	assert.Equal(t, "2.0", Float{Val: 2}.Render())
	assert.Equal(t, "3.14", Float{Val: 3.14}.Render())
}

func TestRender_Bool(t *testing.T) {
	assert.Equal(t, "true", Bool{Val: true}.Render())
	assert.Equal(t, "false", Bool{Val: false}.Render())
}

func TestRender_Str(t *testing.T) {
	assert.Equal(t, "hi", Str{Val: "hi"}.Render())
}

func TestNumericValue(t *testing.T) {
	f, isFloat, ok := NumericValue(Int{Val: 5})
	assert.True(t, ok)
	assert.False(t, isFloat)
	assert.Equal(t, 5.0, f)

	f, isFloat, ok = NumericValue(Float{Val: 1.5})
	assert.True(t, ok)
	assert.True(t, isFloat)
	assert.Equal(t, 1.5, f)

	_, _, ok = NumericValue(Str{Val: "x"})
	assert.False(t, ok)
}
