/*
File    : gomix-bc/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator of spec.md §4.4:
// it executes a Command against a runtimectx.Context, printing the
// value of every displayable top-level expression statement to an
// io.Writer (the teacher's Evaluator.Writer field, grounded on
// eval/evaluator.go).
//
// Where the teacher represents Break/Continue/Return as boxed runtime
// objects flowing through the same channel as ordinary values (a
// BreakValue/ContinueValue/ReturnValue dynamic-typed like any other
// std.GoMixObject), this evaluator keeps non-local transfers out of
// the value domain entirely. Statement evaluation returns a tagged
// outcome (spec.md §9's own recommended alternative) carrying a
// signal — none, break, continue, or return — and, for a return, the
// returned value; only Halt and genuine runtime faults (division by
// zero, an undefined or mis-called function) travel as a Go error,
// since those two really do need to unwind every enclosing call and
// block rather than be caught by the nearest loop or function, the
// same way an error does. See DESIGN.md for the full rationale.
package eval

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/diag"
	"github.com/akashmaji946/gomix-bc/runtimectx"
)

// ErrHalt is returned by Run (and propagates up through every
// intervening evalExpr/execStmt call) when the program executes
// `halt`. The driver exits with status 0 on seeing it, after the
// function-call unwinding that already happened via defer along the
// way (spec.md §4.6).
var ErrHalt = errors.New("halt")

// signal tags what kind of non-local transfer, if any, a statement's
// evaluation produced.
type signal int

const (
	sigNone signal = iota
	sigBreak
	sigContinue
	sigReturn
)

// outcome is the tagged result of executing one statement: a signal,
// and — for sigReturn — the value it carries.
type outcome struct {
	sig   signal
	value float64
}

// Evaluator walks an AST against a shared runtimectx.Context, writing
// displayable results to Out. It implements ast.Visitor; since Accept
// takes no return value, each VisitX method stashes its result in
// exprVal/exprErr (expressions) or stmtOut/stmtErr (statements) for
// the evalExpr/execStmt helpers to read back immediately afterward.
type Evaluator struct {
	ctx *runtimectx.Context
	Out io.Writer

	exprVal float64
	exprErr error

	stmtOut outcome
	stmtErr error
}

// evalExpr evaluates x by dispatching through the Visitor interface
// and reading back the result it stashed.
func (e *Evaluator) evalExpr(x ast.Expr) (float64, error) {
	x.Accept(e)
	v, err := e.exprVal, e.exprErr
	e.exprVal, e.exprErr = 0, nil
	return v, err
}

// execStmt executes s by dispatching through the Visitor interface and
// reading back the outcome it stashed.
func (e *Evaluator) execStmt(s ast.Stmt) (outcome, error) {
	s.Accept(e)
	out, err := e.stmtOut, e.stmtErr
	e.stmtOut, e.stmtErr = outcome{}, nil
	return out, err
}

// New returns an Evaluator sharing ctx, writing displayable results to
// out.
func New(ctx *runtimectx.Context, out io.Writer) *Evaluator {
	return &Evaluator{ctx: ctx, Out: out}
}

// Run executes one Command: installing a function definition, or
// evaluating a top-level statement list once. It returns ErrHalt if
// the command executed `halt`, another error if a runtime fault
// propagated out uncaught, or nil on ordinary completion.
func (e *Evaluator) Run(cmd *ast.Command) error {
	if cmd.FuncDef != nil {
		e.ctx.DefineFunction(cmd.FuncDef)
		return nil
	}
	for _, stmt := range cmd.Stmts.Stmts {
		_, err := e.execStmt(stmt)
		if err != nil {
			return err
		}
		// A bare break/continue/return cannot legally reach the top
		// level (package check rejects it before this ever parses),
		// so any leftover signal here is simply ignored rather than
		// treated as a fault.
	}
	return nil
}

// formatNumber renders a displayed value the way the language's
// whole-number-heavy arithmetic expects: "7", not "7.000000" (the
// teacher's fixed %f convention, tuned for an object system carrying
// distinct int/float types, doesn't fit a single numeric domain).
// strconv's shortest round-tripping representation gives integers
// their bare form and keeps exactly the digits a fraction needs.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// runtimeErr builds a RuntimeError tagged with the currently active
// function (or "(main)" at the top level).
func (e *Evaluator) runtimeErr(format string, args ...any) error {
	return &diag.RuntimeError{Function: e.ctx.CurrentFunction(), Message: fmt.Sprintf(format, args...)}
}

// powClamped implements spec.md §4.4's Pow rule: the exponent is
// clamped to a non-negative integer by flooring and then discarding
// any remaining negative part, so `2^-3` is `pow(2,0)` and `2^2.9` is
// `pow(2,2)`.
func powClamped(lhs, rhs float64) float64 {
	exp := math.Floor(rhs)
	if exp < 0 {
		exp = 0
	}
	return math.Pow(lhs, exp)
}
