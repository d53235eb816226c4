/*
File    : pyrustlang/eval/repl_support.go

REPL-only entry point layered on top of Run. The REPL, unlike file
mode, auto-prints the value of a bare expression statement, and a
failed line must leave no partial state in the persistent global
scope. Both concerns are specific to interactive use, so they live
here rather than in Run.
*/
package eval

import (
	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/parser"
	"github.com/mazhukin/pyrustlang/value"
)

// RunLine evaluates one REPL line's program against the persistent
// global scope. If the line's last top-level statement was a bare
// expression, printed is true and result holds its value for the
// REPL to print; a top-level `return` earlier in the line ends it
// there with printed false. On error, any bindings or reassignments the line
// made to the global scope are rolled back before returning.
func (e *Evaluator) RunLine(prog *parser.Program) (result value.Value, printed bool, err *diag.RuntimeError) {
	snap := e.Global.Snapshot()

	for i, stmt := range prog.Stmts {
		if i == len(prog.Stmts)-1 {
			if exprStmt, ok := stmt.(*parser.ExprStmt); ok {
				v, evalErr := e.evalExpr(exprStmt.Value, e.Global)
				if evalErr != nil {
					e.Global.Restore(snap)
					return nil, false, evalErr
				}
				return v, true, nil
			}
		}
		out, execErr := e.execStmt(stmt, e.Global)
		if execErr != nil {
			e.Global.Restore(snap)
			return nil, false, execErr
		}
		if out.returning {
			return out.val, false, nil
		}
	}
	return nil, false, nil
}
