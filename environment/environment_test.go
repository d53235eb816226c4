/*
File    : pyrustlang/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazhukin/pyrustlang/value"
)

func TestLookup_WalksParentChain(t *testing.T) {
	global := New(nil)
	global.Declare("x", value.Int{Val: 1}, false)
	child := global.Child()

	v, err := child.Lookup("x")
	require.Nil(t, err)
	assert.Equal(t, value.Int{Val: 1}, v)
}

func TestLookup_MissingIsNameError(t *testing.T) {
	env := New(nil)
	_, err := env.Lookup("missing")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'")
}

func TestDeclare_ShadowsOuterBinding(t *testing.T) {
	global := New(nil)
	global.Declare("x", value.Int{Val: 1}, true)
	child := global.Child()
	child.Declare("x", value.Int{Val: 2}, true)

	v, _ := child.Lookup("x")
	assert.Equal(t, value.Int{Val: 2}, v)
	outer, _ := global.Lookup("x")
	assert.Equal(t, value.Int{Val: 1}, outer)
}

func TestAssign_UpdatesOuterScopeInPlace(t *testing.T) {
	global := New(nil)
	global.Declare("n", value.Int{Val: 1}, true)
	child := global.Child()

	err := child.Assign("n", value.Int{Val: 42})
	require.Nil(t, err)

	v, _ := global.Lookup("n")
	assert.Equal(t, value.Int{Val: 42}, v)
}

func TestAssign_ImmutableIsRejected(t *testing.T) {
	env := New(nil)
	env.Declare("x", value.Int{Val: 1}, false)

	err := env.Assign("x", value.Int{Val: 2})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Cannot assign to immutable variable 'x'")

	v, _ := env.Lookup("x")
	assert.Equal(t, value.Int{Val: 1}, v, "rejected assignment must not mutate the slot")
}

func TestAssign_MissingIsNameError(t *testing.T) {
	env := New(nil)
	err := env.Assign("ghost", value.Int{Val: 1})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'ghost'")
}

func TestSnapshotRestore_UndoesDeclarationsAndAssignments(t *testing.T) {
	env := New(nil)
	env.Declare("a", value.Int{Val: 1}, true)

	snap := env.Snapshot()
	env.Declare("b", value.Int{Val: 2}, true)
	require.Nil(t, env.Assign("a", value.Int{Val: 99}))

	env.Restore(snap)

	_, err := env.Lookup("b")
	assert.NotNil(t, err, "declaration made after the snapshot must be undone")
	v, err := env.Lookup("a")
	require.Nil(t, err)
	assert.Equal(t, value.Int{Val: 1}, v, "reassignment made after the snapshot must be undone")
}
