/*
File    : pyrustlang/environment/environment.go
*/

// Package environment implements the lexical scope chain: map-based
// binding slots with a parent pointer walked outward on lookup and
// reassignment. Closures hold a live *Environment, never a copy, so a
// reassignment in a captured scope is visible to every function value
// that captured it.
package environment

import (
	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/value"
)

// slot is the binding record {value, mutable} stored under each name.
// Mutability is fixed at declaration and never changes.
type slot struct {
	value   value.Value
	mutable bool
}

// Environment is one frame of the scope chain: global at program
// start, one per function call (parented at the function's captured
// environment, not the caller's), and one per if/else/while block
// (parented at the surrounding scope).
type Environment struct {
	bindings map[string]*slot
	parent   *Environment
}

// New creates a scope with the given parent. A nil parent marks the
// global scope, which has no parent and lives for the program's run.
func New(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]*slot), parent: parent}
}

// Declare installs a binding in this scope only, shadowing any outer
// binding of the same name. Redeclaring a name already bound in this
// same scope replaces the slot.
func (e *Environment) Declare(name string, v value.Value, mutable bool) {
	e.bindings[name] = &slot{value: v, mutable: mutable}
}

// Lookup walks outward from this scope and returns the bound value,
// or NameError if no ancestor binds the name.
func (e *Environment) Lookup(name string) (value.Value, *diag.RuntimeError) {
	for env := e; env != nil; env = env.parent {
		if s, ok := env.bindings[name]; ok {
			return s.value, nil
		}
	}
	return nil, diag.NewRuntimeError(diag.NameError, "Undefined variable '%s'", name)
}

// Assign locates the nearest binding of name walking outward and
// overwrites its value in place, enforcing the slot's mutability.
// A reassignment never type-checks against the original value's tag:
// type annotations bind only at declaration.
func (e *Environment) Assign(name string, v value.Value) *diag.RuntimeError {
	for env := e; env != nil; env = env.parent {
		if s, ok := env.bindings[name]; ok {
			if !s.mutable {
				return diag.NewRuntimeError(diag.ImmutabilityError, "Cannot assign to immutable variable '%s'", name)
			}
			s.value = v
			return nil
		}
	}
	return diag.NewRuntimeError(diag.NameError, "Undefined variable '%s'", name)
}

// Child returns a fresh scope one level inward from e, used to enter
// a function call (e is then the callee's captured environment, not
// the caller's) or a block (if/else/while).
func (e *Environment) Child() *Environment {
	return New(e)
}

// Snapshot captures this scope's own bindings (not its ancestors') by
// value, so a later Restore can undo both new declarations and
// in-place reassignments made after the snapshot was taken. The REPL
// uses this to roll back a failed line without disturbing bindings
// made by earlier, successful lines.
func (e *Environment) Snapshot() map[string]slot {
	snap := make(map[string]slot, len(e.bindings))
	for name, s := range e.bindings {
		snap[name] = *s
	}
	return snap
}

// Restore replaces this scope's own bindings with a previously taken
// Snapshot, discarding any declarations or reassignments made since.
func (e *Environment) Restore(snap map[string]slot) {
	e.bindings = make(map[string]*slot, len(snap))
	for name, s := range snap {
		cp := s
		e.bindings[name] = &cp
	}
}
