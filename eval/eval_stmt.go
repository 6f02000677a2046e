/*
File    : gomix-bc/eval/eval_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-bc/ast"
)

func (e *Evaluator) VisitExprStmt(n *ast.ExprStmt) {
	v, err := e.evalExpr(n.X)
	if err != nil {
		e.stmtErr = err
		return
	}
	if n.X.Displayable() {
		fmt.Fprintf(e.Out, "%s\n", formatNumber(v))
	}
}

func (e *Evaluator) VisitIf(n *ast.If) {
	cond, err := e.evalExpr(n.Cond)
	if err != nil {
		e.stmtErr = err
		return
	}
	if cond != 0 {
		e.stmtOut, e.stmtErr = e.execStmt(n.Then)
		return
	}
	if n.Else != nil {
		e.stmtOut, e.stmtErr = e.execStmt(n.Else)
	}
	// A missing else is a no-op (spec.md §4.4).
}

func (e *Evaluator) VisitWhile(n *ast.While) {
	for {
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			e.stmtErr = err
			return
		}
		if cond == 0 {
			return
		}
		out, err := e.execStmt(n.Body)
		if err != nil {
			e.stmtErr = err
			return
		}
		switch out.sig {
		case sigBreak:
			return
		case sigContinue:
			continue
		case sigReturn:
			e.stmtOut = out
			return
		}
		// sigNone: re-evaluate the condition and loop again.
	}
}

func (e *Evaluator) VisitBlock(n *ast.Block) {
	for _, stmt := range n.Stmts {
		out, err := e.execStmt(stmt)
		if err != nil {
			e.stmtErr = err
			return
		}
		if out.sig != sigNone {
			e.stmtOut = out
			return
		}
	}
}

func (e *Evaluator) VisitBreak(*ast.Break) {
	e.stmtOut = outcome{sig: sigBreak}
}

func (e *Evaluator) VisitContinue(*ast.Continue) {
	e.stmtOut = outcome{sig: sigContinue}
}

func (e *Evaluator) VisitHalt(*ast.Halt) {
	e.stmtErr = ErrHalt
}

func (e *Evaluator) VisitReturn(n *ast.Return) {
	if n.Value == nil {
		e.stmtOut = outcome{sig: sigReturn, value: 0}
		return
	}
	v, err := e.evalExpr(n.Value)
	if err != nil {
		e.stmtErr = err
		return
	}
	e.stmtOut = outcome{sig: sigReturn, value: v}
}

// callFunction implements spec.md §4.5: look up the function, check
// arity, evaluate arguments left to right in the caller's scope, push
// parameter and auto bindings, run the body, and unwind those bindings
// on every exit path — return, a propagating error, or falling off the
// end — via defer, regardless of which one it was.
func (e *Evaluator) callFunction(name string, args []ast.Expr) (float64, error) {
	fn, ok := e.ctx.LookupFunction(name)
	if !ok {
		return 0, e.runtimeErr("function '%s' not defined", name)
	}
	if len(args) != len(fn.Params) {
		return 0, e.runtimeErr("wrong number of arguments for function '%s'", name)
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := e.evalExpr(arg)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	for i, param := range fn.Params {
		e.ctx.Push(param, values[i])
	}
	for _, auto := range fn.Autos {
		e.ctx.Push(auto, 0)
	}
	e.ctx.EnterCall(name)
	defer func() {
		e.ctx.ExitCall()
		for _, auto := range fn.Autos {
			e.ctx.Pop(auto)
		}
		for _, param := range fn.Params {
			e.ctx.Pop(param)
		}
	}()

	out, err := e.execStmt(fn.Body)
	if err != nil {
		return 0, err
	}
	if out.sig == sigReturn {
		return out.value, nil
	}
	// Falling off the end of the body without a return yields 0
	// (spec.md §4.5).
	return 0, nil
}
