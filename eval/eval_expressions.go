/*
File    : pyrustlang/eval/eval_expressions.go
*/
package eval

import (
	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/environment"
	"github.com/mazhukin/pyrustlang/function"
	"github.com/mazhukin/pyrustlang/lexer"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

func (e *Evaluator) evalExpr(expr parser.Expr, env *environment.Environment) (value.Value, *diag.RuntimeError) {
	switch n := expr.(type) {
	case *parser.IntLit:
		return value.Int{Val: n.Value}, nil
	case *parser.FloatLit:
		return value.Float{Val: n.Value}, nil
	case *parser.StrLit:
		return value.Str{Val: n.Value}, nil
	case *parser.BoolLit:
		return value.Bool{Val: n.Value}, nil
	case *parser.NameExpr:
		return env.Lookup(n.Name)
	case *parser.BinaryExpr:
		return e.evalBinary(n, env)
	case *parser.CallExpr:
		return e.evalCall(n, env)
	default:
		return nil, diag.NewRuntimeError(diag.TypeMismatch, "unhandled expression type %T", expr)
	}
}

// evalCall resolves the callee, evaluates arguments strictly
// left-to-right, checks arity and per-parameter types, and runs the
// body in a new scope parented at the function's *captured*
// environment rather than the caller's - the heart of lexical (as
// opposed to dynamic) scoping.
func (e *Evaluator) evalCall(n *parser.CallExpr, env *environment.Environment) (value.Value, *diag.RuntimeError) {
	callee, err := env.Lookup(n.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, diag.NewRuntimeError(diag.NotCallable, "'%s' is not callable", n.Callee)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if len(args) != len(fn.Params) {
		return nil, diag.NewRuntimeError(diag.ArityError, "'%s' expects %d argument(s), got %d", n.Callee, len(fn.Params), len(args))
	}

	callEnv := fn.Captured.Child()
	for i, p := range fn.Params {
		if err := checkTag(p.Type, args[i]); err != nil {
			return nil, err
		}
		// Parameters are immutable by default, like a `let` binding;
		// they may be shadowed inside the body but never reassigned.
		callEnv.Declare(p.Name, args[i], false)
	}

	out, err := e.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	result := out.val
	if !out.returning {
		result = value.Unit{}
	}
	if fn.ReturnType != nil {
		if result.Kind() == value.KindUnit {
			return nil, diag.NewRuntimeError(diag.TypeMismatch, "'%s' declares return type %s but completed without a matching return", n.Callee, fn.ReturnType)
		}
		if err := checkTag(*fn.ReturnType, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalBinary dispatches on the operator. Both operands are always
// evaluated, left first, before the operator is applied; there is no
// short-circuiting.
func (e *Evaluator) evalBinary(n *parser.BinaryExpr, env *environment.Environment) (value.Value, *diag.RuntimeError) {
	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.PPlus:
		return evalPlus(left, right)
	case lexer.PMinus:
		return evalArith(left, right,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	case lexer.PStar:
		return evalArith(left, right,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	case lexer.PSlash:
		return evalDivide(left, right)
	case lexer.PLt:
		return evalCompare(left, right, func(a, b float64) bool { return a < b })
	case lexer.PGt:
		return evalCompare(left, right, func(a, b float64) bool { return a > b })
	case lexer.PLe:
		return evalCompare(left, right, func(a, b float64) bool { return a <= b })
	case lexer.PGe:
		return evalCompare(left, right, func(a, b float64) bool { return a >= b })
	case lexer.PEq:
		return evalEquality(left, right, false)
	case lexer.PNeq:
		return evalEquality(left, right, true)
	default:
		return nil, diag.NewRuntimeError(diag.TypeMismatch, "unsupported operator %s", n.Op)
	}
}

// evalPlus is split out from evalArith because `+` alone also defines
// (Str, Str) -> Str concatenation.
func evalPlus(left, right value.Value) (value.Value, *diag.RuntimeError) {
	if ls, ok := left.(value.Str); ok {
		if rs, ok := right.(value.Str); ok {
			return value.Str{Val: ls.Val + rs.Val}, nil
		}
	}
	return evalArith(left, right,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

// evalArith implements the widening rule shared by +, -, *: (Int,Int)
// stays Int and is computed in native int64, any Float operand widens
// both to Float. Any operand that isn't numeric (Bool, Str outside `+`,
// Unit, Function) is a TypeMismatch.
func evalArith(left, right value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, *diag.RuntimeError) {
	if li, ok := left.(value.Int); ok {
		if ri, ok := right.(value.Int); ok {
			return value.Int{Val: intOp(li.Val, ri.Val)}, nil
		}
	}
	lf, _, lok := value.NumericValue(left)
	rf, _, rok := value.NumericValue(right)
	if !lok || !rok {
		return nil, typeMismatchOperands(left, right)
	}
	return value.Float{Val: floatOp(lf, rf)}, nil
}

// evalDivide always produces a Float, even for two Ints: division is
// uniformly floating-point, never truncating.
func evalDivide(left, right value.Value) (value.Value, *diag.RuntimeError) {
	li, _, lok := value.NumericValue(left)
	ri, _, rok := value.NumericValue(right)
	if !lok || !rok {
		return nil, typeMismatchOperands(left, right)
	}
	if ri == 0 {
		return nil, diag.NewRuntimeError(diag.DivisionByZero, "division by zero")
	}
	return value.Float{Val: li / ri}, nil
}

func evalCompare(left, right value.Value, op func(a, b float64) bool) (value.Value, *diag.RuntimeError) {
	li, _, lok := value.NumericValue(left)
	ri, _, rok := value.NumericValue(right)
	if !lok || !rok {
		return nil, typeMismatchOperands(left, right)
	}
	return value.Bool{Val: op(li, ri)}, nil
}

// evalEquality requires operands to share a tag after numeric
// widening; cross-category equality (Str vs Int, say) is a
// TypeMismatch rather than simply false.
func evalEquality(left, right value.Value, negate bool) (value.Value, *diag.RuntimeError) {
	lnum, _, lok := value.NumericValue(left)
	rnum, _, rok := value.NumericValue(right)
	if lok && rok {
		eq := lnum == rnum
		if negate {
			eq = !eq
		}
		return value.Bool{Val: eq}, nil
	}
	if left.Kind() != right.Kind() {
		return nil, typeMismatchOperands(left, right)
	}
	var eq bool
	switch l := left.(type) {
	case value.Str:
		eq = l.Val == right.(value.Str).Val
	case value.Bool:
		eq = l.Val == right.(value.Bool).Val
	default:
		return nil, typeMismatchOperands(left, right)
	}
	if negate {
		eq = !eq
	}
	return value.Bool{Val: eq}, nil
}

func typeMismatchOperands(left, right value.Value) *diag.RuntimeError {
	return diag.NewRuntimeError(diag.TypeMismatch, "operator does not support operand types %s and %s", left.Kind(), right.Kind())
}
