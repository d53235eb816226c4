/*
File    : pyrustlang/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/environment"
	"github.com/mazhukin/pyrustlang/function"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

// Run executes a whole program's top-level statements against the
// evaluator's global scope. A `return` at the top level, outside any
// function, is treated as program completion rather than an error.
func (e *Evaluator) Run(prog *parser.Program) *diag.RuntimeError {
	for _, stmt := range prog.Stmts {
		out, err := e.execStmt(stmt, e.Global)
		if err != nil {
			return err
		}
		if out.returning {
			return nil
		}
	}
	return nil
}

// execBlock runs a statement list in scope env, stopping at the first
// returning outcome or error so a `return` nested in `if`/`while`
// unwinds immediately.
func (e *Evaluator) execBlock(stmts []parser.Stmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	for _, stmt := range stmts {
		out, err := e.execStmt(stmt, env)
		if err != nil {
			return outcome{}, err
		}
		if out.returning {
			return out, nil
		}
	}
	return normal(), nil
}

func (e *Evaluator) execStmt(stmt parser.Stmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	switch n := stmt.(type) {
	case *parser.LetDecl:
		return e.execLetDecl(n, env)
	case *parser.FnDecl:
		return e.execFnDecl(n, env)
	case *parser.IfStmt:
		return e.execIf(n, env)
	case *parser.WhileStmt:
		return e.execWhile(n, env)
	case *parser.ReturnStmt:
		return e.execReturn(n, env)
	case *parser.PrintStmt:
		return e.execPrint(n, env)
	case *parser.AssignStmt:
		return e.execAssign(n, env)
	case *parser.ExprStmt:
		if _, err := e.evalExpr(n.Value, env); err != nil {
			return outcome{}, err
		}
		return normal(), nil
	default:
		return outcome{}, diag.NewRuntimeError(diag.TypeMismatch, "unhandled statement type %T", stmt)
	}
}

// execLetDecl evaluates the initializer, checks it against a declared
// TypeTag if present, and declares the binding, shadowing any outer
// binding of the same name.
func (e *Evaluator) execLetDecl(n *parser.LetDecl, env *environment.Environment) (outcome, *diag.RuntimeError) {
	v, err := e.evalExpr(n.Value, env)
	if err != nil {
		return outcome{}, err
	}
	if n.Type != nil {
		if err := checkTag(*n.Type, v); err != nil {
			return outcome{}, err
		}
	}
	env.Declare(n.Name, v, n.Mutable)
	return normal(), nil
}

// execFnDecl constructs a closure capturing env (the scope active at
// declaration, not the caller's scope at call time) and binds it
// immutably, so `fn` names cannot be reassigned like `let` variables.
func (e *Evaluator) execFnDecl(n *parser.FnDecl, env *environment.Environment) (outcome, *diag.RuntimeError) {
	fn := &function.Function{
		Name:       n.Name,
		Params:     n.Params,
		ReturnType: n.ReturnType,
		Body:       n.Body,
		Captured:   env,
	}
	env.Declare(n.Name, fn, false)
	return normal(), nil
}

func (e *Evaluator) execIf(n *parser.IfStmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	cond, err := e.evalExpr(n.Cond, env)
	if err != nil {
		return outcome{}, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return outcome{}, diag.NewRuntimeError(diag.TypeMismatch, "if condition must be bool, found %s", cond.Kind())
	}
	if b.Val {
		return e.execBlock(n.Then, env.Child())
	}
	if n.Else != nil {
		return e.execBlock(n.Else, env.Child())
	}
	return normal(), nil
}

func (e *Evaluator) execWhile(n *parser.WhileStmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	for {
		cond, err := e.evalExpr(n.Cond, env)
		if err != nil {
			return outcome{}, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return outcome{}, diag.NewRuntimeError(diag.TypeMismatch, "while condition must be bool, found %s", cond.Kind())
		}
		if !b.Val {
			return normal(), nil
		}
		out, err := e.execBlock(n.Body, env.Child())
		if err != nil {
			return outcome{}, err
		}
		if out.returning {
			return out, nil
		}
	}
}

func (e *Evaluator) execReturn(n *parser.ReturnStmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	if n.Value == nil {
		return returning(value.Unit{}), nil
	}
	v, err := e.evalExpr(n.Value, env)
	if err != nil {
		return outcome{}, err
	}
	return returning(v), nil
}

// execPrint renders the value followed by a newline. Function and Unit
// are not printable: attempting to print either is TypeMismatch.
func (e *Evaluator) execPrint(n *parser.PrintStmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	v, err := e.evalExpr(n.Value, env)
	if err != nil {
		return outcome{}, err
	}
	if v.Kind() == value.KindUnit || v.Kind() == value.KindFunction {
		return outcome{}, diag.NewRuntimeError(diag.TypeMismatch, "cannot print a value of type %s", v.Kind())
	}
	fmt.Fprintln(e.Writer, v.Render())
	return normal(), nil
}

// execAssign locates the nearest binding walking outward and stores
// the new value with no type re-check against the original tag.
func (e *Evaluator) execAssign(n *parser.AssignStmt, env *environment.Environment) (outcome, *diag.RuntimeError) {
	v, err := e.evalExpr(n.Value, env)
	if err != nil {
		return outcome{}, err
	}
	if err := env.Assign(n.Name, v); err != nil {
		return outcome{}, err
	}
	return normal(), nil
}
