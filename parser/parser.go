/*
File    : gomix-bc/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator
// precedence parser) for the calculator language of spec.md §4.2,
// following the teacher's registered-parse-function design: one
// prefix function per token type that can start an expression, one
// infix function per binary operator, selected between by a
// precedence table (see parser_precedence.go).
//
// Unlike the teacher, which collects error strings into a slice and
// keeps parsing past them, this parser aborts the current command on
// its first error: the grammar (spec.md §7) requires a command to
// either fully succeed or be entirely discarded and resynchronized at
// the next newline, so letting one bad token corrupt the rest of the
// command serves no one. Parse functions signal failure by calling
// fail, which panics with a *parseError; ParseCommand is the sole
// recovery boundary, grounded on the panic/recover-bounded-to-one-call
// technique used by several parsers in the wider Go ecosystem (e.g.
// a hand-written recursive-descent parser's exported entry point
// recovering from an internal panic to return a normal error).
package parser

import (
	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/check"
	"github.com/akashmaji946/gomix-bc/diag"
	"github.com/akashmaji946/gomix-bc/lexer"
	"github.com/akashmaji946/gomix-bc/token"
	"github.com/akashmaji946/gomix-bc/tracker"
)

type prefixParseFn func() ast.Expr
type infixParseFn func(left ast.Expr) ast.Expr

// Parser turns one token stream into a sequence of Commands, each
// built against its own fresh tracker/checker state.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn

	tracker *tracker.Tracker
	checker *check.Checker
}

// parseError is the sentinel panic value used to unwind to
// ParseCommand's recovery point. It always wraps one of package diag's
// error types.
type parseError struct{ err error }

// New returns a Parser reading from src, primed with two tokens of
// lookahead.
func New(src string) *Parser {
	p := &Parser{
		lex:     lexer.New(src),
		tracker: tracker.New(),
		checker: check.New(),
	}
	p.prefixFns = make(map[token.Type]prefixParseFn)
	p.infixFns = make(map[token.Type]infixParseFn)
	p.registerGrammar()

	p.advance()
	p.advance()
	return p
}

// AtEOF reports whether the token stream is exhausted.
func (p *Parser) AtEOF() bool {
	return p.cur.Type == token.EOF
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// fail aborts the current command with err, unwinding to ParseCommand.
func (p *Parser) fail(err error) {
	panic(&parseError{err: err})
}

// failSyntax aborts the command at the current token. If that token is
// ILLEGAL — a byte the lexer could not classify (spec.md §2: the lexer
// itself never fails, it emits a diagnostic token instead) — the
// dedicated illegal-character diagnostic (spec.md §6) is reported
// instead of the generic syntax-error format, regardless of which
// production was expecting something else.
func (p *Parser) failSyntax(message string) {
	if p.cur.Type == token.ILLEGAL {
		p.fail(&diag.IllegalCharError{
			Rendered: p.cur.Literal,
			Line:     p.cur.Line,
			Column:   p.cur.Column,
		})
		return
	}
	p.fail(&diag.SyntaxError{
		Message: message,
		Lexeme:  p.cur.Literal,
		Line:    p.cur.Line,
		Column:  p.cur.Column,
	})
}

// expect advances past cur if it has type t, otherwise aborts the
// command with a syntax error naming what was expected.
func (p *Parser) expect(t token.Type, expected string) {
	if p.cur.Type != t {
		p.failSyntax("expected " + expected)
		return
	}
	p.advance()
}

// skipNewlines consumes any run of NEWLINE tokens, used at the
// positions spec.md §4.2 allows a line break: between a command and
// the next, and immediately inside `{` / before `}`.
func (p *Parser) skipNewlines() {
	for p.cur.Type == token.NEWLINE {
		p.advance()
	}
}

// endOfCommand consumes the terminator of a top-level command: a
// NEWLINE, or EOF (the last line of input need not end in one).
func (p *Parser) endOfCommand() {
	if p.cur.Type == token.NEWLINE {
		p.advance()
		return
	}
	if p.cur.Type == token.EOF {
		return
	}
	p.failSyntax("expected newline")
}

// ParseCommand parses and returns the next Command, resetting semantic
// context first (spec.md §4.3: "the error flag resets between
// commands"). It returns (nil, nil) once the input is exhausted, and
// (nil, err) for a command that failed — by the time it returns, the
// tracker has already been drained and the token stream resynchronized
// to the start of the next command, so the caller need only act on the
// error and call ParseCommand again.
func (p *Parser) ParseCommand() (cmd *ast.Command, err error) {
	p.checker.Reset()
	p.skipNewlines()
	if p.AtEOF() {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*parseError)
			if !ok {
				panic(r)
			}
			p.tracker.ReleaseAll()
			p.recoverToNewline()
			p.checker.Reset()
			cmd, err = nil, pe.err
		}
	}()

	cmd = p.parseCommand()

	if p.checker.Failed() {
		p.tracker.ReleaseAll()
		return nil, p.checker.FirstError()
	}
	return cmd, nil
}

// recoverToNewline discards tokens through the next NEWLINE (or EOF),
// the resynchronization spec.md §7 requires after a syntax error.
func (p *Parser) recoverToNewline() {
	for p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF {
		p.advance()
	}
	if p.cur.Type == token.NEWLINE {
		p.advance()
	}
}

func (p *Parser) parseCommand() *ast.Command {
	if p.cur.Type == token.DEFINE {
		fn := p.parseFunctionDef()
		p.endOfCommand()
		p.tracker.Pop(1)
		return &ast.Command{FuncDef: fn}
	}
	stmt := p.parseStatement()
	block := p.tracker.PopAndPush(1, &ast.Block{Stmts: []ast.Stmt{stmt}}).(*ast.Block)
	p.endOfCommand()
	p.tracker.Pop(1)
	return &ast.Command{Stmts: block}
}
