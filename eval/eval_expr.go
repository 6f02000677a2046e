/*
File    : gomix-bc/eval/eval_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/gomix-bc/ast"
)

func (e *Evaluator) VisitConst(n *ast.Const) {
	e.exprVal = n.Value
}

func (e *Evaluator) VisitVar(n *ast.Var) {
	e.exprVal = e.ctx.Read(n.Name)
}

func (e *Evaluator) VisitPreOp(n *ast.PreOp) {
	v := e.ctx.Read(n.Name)
	if n.Op == ast.Incr {
		v++
	} else {
		v--
	}
	e.ctx.Write(n.Name, v)
	e.exprVal = v
}

func (e *Evaluator) VisitPostOp(n *ast.PostOp) {
	orig := e.ctx.Read(n.Name)
	updated := orig
	if n.Op == ast.Incr {
		updated++
	} else {
		updated--
	}
	e.ctx.Write(n.Name, updated)
	e.exprVal = orig
}

func (e *Evaluator) VisitArith(n *ast.Arith) {
	l, err := e.evalExpr(n.Left)
	if err != nil {
		e.exprErr = err
		return
	}
	r, err := e.evalExpr(n.Right)
	if err != nil {
		e.exprErr = err
		return
	}
	switch n.Op {
	case ast.Plus:
		e.exprVal = l + r
	case ast.Minus:
		e.exprVal = l - r
	case ast.Mul:
		e.exprVal = l * r
	case ast.Div:
		if r == 0 {
			e.exprErr = e.runtimeErr("division by zero")
			return
		}
		e.exprVal = l / r
	case ast.Mod:
		if r == 0 {
			e.exprErr = e.runtimeErr("modulo zero")
			return
		}
		e.exprVal = l - math.Floor(l/r)*r
	case ast.Pow:
		e.exprVal = powClamped(l, r)
	}
}

func (e *Evaluator) VisitCmp(n *ast.Cmp) {
	// Both operands are always evaluated; this language has no
	// short-circuit && / ||.
	l, err := e.evalExpr(n.Left)
	if err != nil {
		e.exprErr = err
		return
	}
	r, err := e.evalExpr(n.Right)
	if err != nil {
		e.exprErr = err
		return
	}
	switch n.Op {
	case ast.Lt:
		e.exprVal = boolToFloat(l < r)
	case ast.Le:
		e.exprVal = boolToFloat(l <= r)
	case ast.Gt:
		e.exprVal = boolToFloat(l > r)
	case ast.Ge:
		e.exprVal = boolToFloat(l >= r)
	case ast.Eq:
		e.exprVal = boolToFloat(l == r)
	case ast.Ne:
		e.exprVal = boolToFloat(l != r)
	case ast.And:
		e.exprVal = boolToFloat(l != 0 && r != 0)
	case ast.Or:
		e.exprVal = boolToFloat(l != 0 || r != 0)
	}
}

func (e *Evaluator) VisitNot(n *ast.Not) {
	x, err := e.evalExpr(n.X)
	if err != nil {
		e.exprErr = err
		return
	}
	e.exprVal = boolToFloat(x == 0)
}

func (e *Evaluator) VisitNeg(n *ast.Neg) {
	x, err := e.evalExpr(n.X)
	if err != nil {
		e.exprErr = err
		return
	}
	e.exprVal = -x
}

func (e *Evaluator) VisitAssign(n *ast.Assign) {
	v, err := e.evalExpr(n.Value)
	if err != nil {
		e.exprErr = err
		return
	}
	e.ctx.Write(n.Name, v)
	e.exprVal = v
}

func (e *Evaluator) VisitCall(n *ast.Call) {
	v, err := e.callFunction(n.Name, n.Args)
	e.exprVal, e.exprErr = v, err
}
