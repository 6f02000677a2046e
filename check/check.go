/*
File    : gomix-bc/check/check.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package check implements the structural semantic rules of spec.md
// §4.3: break/continue may only appear inside a while body, return
// may only appear inside a function body, and a function's combined
// parameter and auto names must be distinct. The parser calls into a
// Checker while it walks a command so a violation is recorded with the
// position of the exact token that breaks the rule. Parsing of the
// command still runs to completion; the parser then discards the AST
// and returns the first recorded violation.
package check

import (
	"github.com/akashmaji946/gomix-bc/diag"
	"github.com/akashmaji946/gomix-bc/token"
)

// Checker tracks the structural context the parser is currently
// inside: whether it is inside a function body, how many nested while
// loops enclose the current position, and the parameter/auto names
// declared so far for the function definition in progress.
//
// A Checker is reused across commands; call Reset between them so a
// function body left unterminated by a prior syntax error cannot leak
// its context (in-function, loop depth) into the next command.
type Checker struct {
	inFunction bool
	loopDepth  int
	names      map[string]bool
	failed     bool
	firstErr   error
}

// New returns a Checker in top-level context (outside any function or
// loop).
func New() *Checker {
	return &Checker{names: make(map[string]bool)}
}

// Reset clears all context and the failed flag, ready for the next
// command (spec.md §4.3: "the error flag resets between commands").
func (c *Checker) Reset() {
	c.inFunction = false
	c.loopDepth = 0
	c.names = make(map[string]bool)
	c.failed = false
	c.firstErr = nil
}

// Failed reports whether any semantic error has been recorded since
// the last Reset.
func (c *Checker) Failed() bool {
	return c.failed
}

// FirstError returns the first semantic error recorded since the last
// Reset, or nil if none occurred. A command may trip more than one
// rule (e.g. a duplicate auto name inside a function that also
// contains a misplaced break); only the first is reported, matching
// the single failed-command flag spec.md §4.3 describes.
func (c *Checker) FirstError() error {
	return c.firstErr
}

// EnterFunction marks the checker as being inside a function
// definition's body. Function definitions do not nest (the parser
// never calls EnterFunction twice without a Reset between), so this
// simply sets the flag rather than maintaining a counter.
func (c *Checker) EnterFunction() {
	c.inFunction = true
}

// EnterLoop marks entry into a while body.
func (c *Checker) EnterLoop() {
	c.loopDepth++
}

// ExitLoop marks exit from a while body.
func (c *Checker) ExitLoop() {
	if c.loopDepth > 0 {
		c.loopDepth--
	}
}

// CheckBreak reports a semantic error if tok (a break keyword) does
// not lie inside any while loop.
func (c *Checker) CheckBreak(tok token.Token) error {
	if c.loopDepth > 0 {
		return nil
	}
	return c.fail("break outside while", tok)
}

// CheckContinue reports a semantic error if tok (a continue keyword)
// does not lie inside any while loop.
func (c *Checker) CheckContinue(tok token.Token) error {
	if c.loopDepth > 0 {
		return nil
	}
	return c.fail("continue outside while", tok)
}

// CheckReturn reports a semantic error if tok (a return keyword) does
// not lie inside a function definition.
func (c *Checker) CheckReturn(tok token.Token) error {
	if c.inFunction {
		return nil
	}
	return c.fail("return outside function definition", tok)
}

// DeclareName records a parameter or auto name against the function
// definition currently being parsed, reporting a semantic error if the
// name collides with one already declared — whether that name was
// itself a parameter or an auto (spec.md §4.3: the two lists share one
// namespace).
func (c *Checker) DeclareName(name string, tok token.Token) error {
	if c.names[name] {
		return c.fail("duplicate name in parameter or auto variable list", tok)
	}
	c.names[name] = true
	return nil
}

func (c *Checker) fail(message string, tok token.Token) error {
	err := &diag.SemanticError{Message: message, Line: tok.Line, Column: tok.Column}
	if !c.failed {
		c.firstErr = err
	}
	c.failed = true
	return err
}
