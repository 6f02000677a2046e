/*
File    : gomix-bc/parser/parser_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/token"
)

// trackExpr records a freshly built leaf (zero tracked children) with
// the allocation tracker and returns it.
func (p *Parser) trackExpr(e ast.Expr) ast.Expr {
	p.tracker.Push(e)
	return e
}

// adoptExpr surrenders the n most recently tracked fragments (this
// node's already-parsed children) and tracks parent in their place.
func (p *Parser) adoptExpr(n int, parent ast.Expr) ast.Expr {
	p.tracker.Pop(n)
	p.tracker.Push(parent)
	return parent
}

func arithOpFor(t token.Type) ast.ArithOp {
	switch t {
	case token.PLUS:
		return ast.Plus
	case token.MINUS:
		return ast.Minus
	case token.STAR:
		return ast.Mul
	case token.SLASH:
		return ast.Div
	case token.PERCENT:
		return ast.Mod
	case token.CARET:
		return ast.Pow
	}
	panic("parser: arithOpFor called with non-arithmetic token")
}

func cmpOpFor(t token.Type) ast.CmpOp {
	switch t {
	case token.LT:
		return ast.Lt
	case token.LE:
		return ast.Le
	case token.GT:
		return ast.Gt
	case token.GE:
		return ast.Ge
	case token.EQ:
		return ast.Eq
	case token.NE:
		return ast.Ne
	case token.AND:
		return ast.And
	case token.OR:
		return ast.Or
	}
	panic("parser: cmpOpFor called with non-comparison token")
}

// parseConst parses a NUMBER literal. spec.md §6 numbers always match
// [0-9]+ | [0-9]+.[0-9]* | [0-9]*.[0-9]+, a subset strconv.ParseFloat
// always accepts, so the error return is unreachable in practice but
// checked anyway rather than discarded.
func (p *Parser) parseConst() ast.Expr {
	v, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.failSyntax("invalid number")
		return nil
	}
	p.advance()
	return p.trackExpr(&ast.Const{Value: v})
}

// parseGroup parses a parenthesized expression. The inner expression
// is already tracked by its own prefix function; a parenthesized
// expression introduces no new fragment of its own.
func (p *Parser) parseGroup() ast.Expr {
	p.advance() // consume '('
	inner := p.parseExpression(Lowest)
	p.expect(token.RPAREN, "\")\"")
	return inner
}

// parsePrefixNot parses `! e`. Its operand is bound at NotPrec: tighter
// operators (comparisons, assignment, arithmetic) are absorbed into
// the operand, but && and || are not — the precedence-table quirk
// spec.md §4.2 documents (! binds looser than comparisons but tighter
// than the logical connectives).
func (p *Parser) parsePrefixNot() ast.Expr {
	p.advance() // consume '!'
	x := p.parseExpression(NotPrec)
	return p.adoptExpr(1, &ast.Not{X: x})
}

// parsePrefixNeg parses unary `- e`, binding tighter than every binary
// operator except none (UnaryMinusPrec is the highest table entry a
// generic operand can be parsed at), so `-2^2` parses as `(-2)^2`.
func (p *Parser) parsePrefixNeg() ast.Expr {
	p.advance() // consume '-'
	x := p.parseExpression(UnaryMinusPrec)
	return p.adoptExpr(1, &ast.Neg{X: x})
}

// parsePrefixIncDec parses `++x` / `--x`. There is no lookahead
// ambiguity here (the operator always precedes a bare identifier), so
// the identifier is consumed directly without the note/consume dance.
func (p *Parser) parsePrefixIncDec() ast.Expr {
	op := ast.Incr
	if p.cur.Type == token.DECR {
		op = ast.Decr
	}
	p.advance()
	if p.cur.Type != token.IDENT {
		p.failSyntax("expected identifier after ++/--")
		return nil
	}
	name := p.cur.Literal
	p.advance()
	return p.trackExpr(&ast.PreOp{Name: name, Op: op})
}

// parseIdentExpr is the entry point for every expression beginning
// with an identifier: a bare variable read, a function call, a
// post-increment/decrement, or an assignment (plain or compound). The
// next token disambiguates which, so the identifier is noted with the
// tracker — not yet attached to any node — until that lookahead
// resolves it (spec.md §4.1: the reason note_string/consume_string
// exist at all).
func (p *Parser) parseIdentExpr() ast.Expr {
	name := p.cur.Literal
	p.tracker.NoteString(&name)
	p.advance()

	switch p.cur.Type {
	case token.LPAREN:
		p.tracker.ConsumeString(&name)
		return p.parseCall(name)

	case token.ASSIGN:
		p.tracker.ConsumeString(&name)
		p.advance()
		value := p.parseExpression(AssignPrec - 1) // right-assoc
		return p.adoptExpr(1, &ast.Assign{Name: name, Value: value})

	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.CARET_ASSIGN:
		p.tracker.ConsumeString(&name)
		op := compoundArithOp(p.cur.Type)
		p.advance()
		rhs := p.parseExpression(AssignPrec - 1)
		// x op= e desugars to x = x op e (spec.md §4.2): a fresh read
		// of x, not a captured value, so side effects inside e that
		// also touch x are observed the same way a literal rewrite
		// would observe them.
		read := p.trackExpr(&ast.Var{Name: name})
		sum := p.adoptExpr(2, &ast.Arith{Left: read, Right: rhs, Op: op})
		return p.adoptExpr(1, &ast.Assign{Name: name, Value: sum})

	case token.INCR, token.DECR:
		op := ast.Incr
		if p.cur.Type == token.DECR {
			op = ast.Decr
		}
		p.tracker.ConsumeString(&name)
		p.advance()
		return p.trackExpr(&ast.PostOp{Name: name, Op: op})

	default:
		p.tracker.ConsumeString(&name)
		return p.trackExpr(&ast.Var{Name: name})
	}
}

func compoundArithOp(t token.Type) ast.ArithOp {
	switch t {
	case token.PLUS_ASSIGN:
		return ast.Plus
	case token.MINUS_ASSIGN:
		return ast.Minus
	case token.STAR_ASSIGN:
		return ast.Mul
	case token.SLASH_ASSIGN:
		return ast.Div
	case token.PERCENT_ASSIGN:
		return ast.Mod
	case token.CARET_ASSIGN:
		return ast.Pow
	}
	panic("parser: compoundArithOp called with non-compound-assign token")
}

// parseCall parses the argument list of a call whose name has already
// been consumed; cur is '('.
func (p *Parser) parseCall(name string) ast.Expr {
	p.advance() // consume '('
	var args []ast.Expr
	for p.cur.Type != token.RPAREN {
		args = append(args, p.parseExpression(Lowest))
		if p.cur.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, "\")\"")
	return p.adoptExpr(len(args), &ast.Call{Name: name, Args: args})
}

// parseArith parses a binary +, -, *, /, %, or ^ expression. All are
// left-associative (spec.md §4.2, including ^ — unlike most languages
// this grammar does not make exponentiation right-associative), so the
// right operand is parsed at this operator's own precedence.
func (p *Parser) parseArith(left ast.Expr) ast.Expr {
	op := arithOpFor(p.cur.Type)
	prec := precedenceOf(p.cur.Type)
	p.advance()
	right := p.parseExpression(prec)
	return p.adoptExpr(2, &ast.Arith{Left: left, Right: right, Op: op})
}

// parseCompare parses a left-associative comparison.
func (p *Parser) parseCompare(left ast.Expr) ast.Expr {
	op := cmpOpFor(p.cur.Type)
	prec := precedenceOf(p.cur.Type)
	p.advance()
	right := p.parseExpression(prec)
	return p.adoptExpr(2, &ast.Cmp{Left: left, Right: right, Op: op})
}

// parseLogical parses a left-associative && or ||, reusing ast.Cmp
// (both are non-short-circuit — see package eval).
func (p *Parser) parseLogical(left ast.Expr) ast.Expr {
	op := cmpOpFor(p.cur.Type)
	prec := precedenceOf(p.cur.Type)
	p.advance()
	right := p.parseExpression(prec)
	return p.adoptExpr(2, &ast.Cmp{Left: left, Right: right, Op: op})
}
