/*
File    : gomix-bc/parser/parser_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/token"
)

// trackStmt records a freshly built leaf statement (zero tracked
// children) with the allocation tracker.
func (p *Parser) trackStmt(s ast.Stmt) ast.Stmt {
	p.tracker.Push(s)
	return s
}

// adoptStmt surrenders the n most recently tracked fragments and
// tracks parent in their place.
func (p *Parser) adoptStmt(n int, parent ast.Stmt) ast.Stmt {
	p.tracker.Pop(n)
	p.tracker.Push(parent)
	return parent
}

// parseStatement dispatches on the current token to the statement
// production it starts.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.LBRACE:
		return p.parseBlock()
	case token.BREAK:
		tok := p.cur
		p.advance()
		// The checker records any violation internally; parsing keeps
		// going regardless (spec.md §4.3: "the AST is built to
		// completion") so the command fails only at ParseCommand's
		// final check, never mid-parse.
		p.checker.CheckBreak(tok)
		return p.trackStmt(&ast.Break{})
	case token.CONTINUE:
		tok := p.cur
		p.advance()
		p.checker.CheckContinue(tok)
		return p.trackStmt(&ast.Continue{})
	case token.HALT:
		p.advance()
		return p.trackStmt(&ast.Halt{})
	case token.RETURN:
		return p.parseReturn()
	default:
		expr := p.parseExpression(Lowest)
		return p.adoptStmt(1, &ast.ExprStmt{X: expr})
	}
}

// parseIf parses `if (cond) then [else elseStmt]`. A newline is
// allowed immediately after the condition and after `else` (spec.md
// §4.2).
func (p *Parser) parseIf() ast.Stmt {
	p.advance() // consume 'if'
	p.expect(token.LPAREN, "\"(\"")
	cond := p.parseExpression(Lowest)
	p.expect(token.RPAREN, "\")\"")
	p.skipNewlines()

	then := p.parseStatement()
	children := 2

	var els ast.Stmt
	if p.cur.Type == token.ELSE {
		p.advance()
		p.skipNewlines()
		els = p.parseStatement()
		children++
	}
	return p.adoptStmt(children, &ast.If{Cond: cond, Then: then, Else: els})
}

// parseWhile parses `while (cond) body`.
func (p *Parser) parseWhile() ast.Stmt {
	p.advance() // consume 'while'
	p.expect(token.LPAREN, "\"(\"")
	cond := p.parseExpression(Lowest)
	p.expect(token.RPAREN, "\")\"")
	p.skipNewlines()

	p.checker.EnterLoop()
	body := p.parseStatement()
	p.checker.ExitLoop()

	return p.adoptStmt(2, &ast.While{Cond: cond, Body: body})
}

// parseReturn parses `return` or `return expr`, checking that it lies
// inside a function definition.
func (p *Parser) parseReturn() ast.Stmt {
	tok := p.cur
	p.advance()
	p.checker.CheckReturn(tok)

	if atStatementEnd(p.cur.Type) {
		return p.trackStmt(&ast.Return{})
	}
	value := p.parseExpression(Lowest)
	return p.adoptStmt(1, &ast.Return{Value: value})
}

func atStatementEnd(t token.Type) bool {
	return t == token.SEMI || t == token.NEWLINE || t == token.RBRACE || t == token.EOF
}

// parseBlock parses `{ stmt (SEMI|NEWLINE stmt)* }`, allowing a
// newline immediately inside `{` and before `}` (spec.md §4.2).
func (p *Parser) parseBlock() ast.Stmt {
	p.advance() // consume '{'
	p.skipNewlines()

	var stmts []ast.Stmt
	for p.cur.Type != token.RBRACE {
		stmts = append(stmts, p.parseStatement())
		if !p.consumeStatementSeparator() {
			break
		}
	}
	p.expect(token.RBRACE, "\"}\"")
	return p.adoptStmt(len(stmts), &ast.Block{Stmts: stmts})
}

// consumeStatementSeparator consumes one or more SEMI/NEWLINE
// separators between statements inside a block, reporting whether
// another statement is expected to follow.
func (p *Parser) consumeStatementSeparator() bool {
	if p.cur.Type != token.SEMI && p.cur.Type != token.NEWLINE {
		return false
	}
	for p.cur.Type == token.SEMI || p.cur.Type == token.NEWLINE {
		p.advance()
	}
	return p.cur.Type != token.RBRACE
}

// parseFunctionDef parses `define name(params) [auto a,b] { body }`.
func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	p.advance() // consume 'define'
	p.checker.EnterFunction()

	if p.cur.Type != token.IDENT {
		p.failSyntax("expected function name")
	}
	name := p.cur.Literal
	p.advance()

	p.expect(token.LPAREN, "\"(\"")
	params := p.parseNameList(token.RPAREN)
	p.expect(token.RPAREN, "\")\"")

	var autos []string
	if p.cur.Type == token.AUTO {
		p.advance()
		autos = p.parseNameList(token.LBRACE)
	}

	p.skipNewlines()
	body := p.parseBlock().(*ast.Block)

	fn := &ast.FunctionDef{Name: name, Params: params, Autos: autos, Body: body}
	p.tracker.Pop(1) // detach body, now owned by fn
	p.tracker.Push(fn)
	return fn
}

// parseNameList parses a comma-separated list of identifiers,
// declaring each with the checker (catching duplicate parameter/auto
// names), stopping before stop.
func (p *Parser) parseNameList(stop token.Type) []string {
	var names []string
	for p.cur.Type != stop {
		if p.cur.Type != token.IDENT {
			p.failSyntax("expected identifier")
		}
		tok := p.cur
		names = append(names, tok.Literal)
		p.checker.DeclareName(tok.Literal, tok)
		p.advance()
		if p.cur.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	return names
}
