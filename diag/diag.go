/*
File    : gomix-bc/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag defines the four diagnostic kinds of spec.md §6/§7 —
// illegal character, syntax error, semantic error, runtime error —
// as ordinary Go errors whose Error() strings already match the
// bit-exact formats §6 specifies, surrounding newlines included. This
// keeps every producer (lexer-driven parser, semantic checker,
// evaluator) and the one consumer (the REPL driver) dealing
// in plain `error` values rather than the teacher's boxed
// "error object" that flows through the same channel as ordinary
// data — the idiomatic-Go error-handling choice spec.md's own design
// notes (§9) recommend over exception- or sentinel-object-flavored
// control flow.
package diag

import "fmt"

// IllegalCharError reports a byte the lexer could not classify.
type IllegalCharError struct {
	Rendered string
	Line     int
	Column   int
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("\nillegal character: %s at line %d column %d\n", e.Rendered, e.Line, e.Column)
}

// SyntaxError reports a token the parser could not fit into any
// production.
type SyntaxError struct {
	Message string
	Lexeme  string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("\n%s \"%s\" at line %d, column %d\n", e.Message, e.Lexeme, e.Line, e.Column)
}

// SemanticError reports a structural rule violation caught by package
// check: a misplaced break/continue/return, or a duplicate
// parameter/auto name.
type SemanticError struct {
	Message string
	Line    int
	Column  int
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("\nsemantic error: %s at line %d, column %d.\n", e.Message, e.Line, e.Column)
}

// RuntimeError reports a fault raised during evaluation: division or
// modulo by zero, a call to an undefined function, or a wrong-arity
// call. Function is the name of the currently active function, or
// "(main)" at the top level.
type RuntimeError struct {
	Function string
	Message  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("\nruntime error in function %s: %s.\n", e.Function, e.Message)
}
