/*
File    : gomix-bc/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/token"
)

// Operator precedence, following spec.md §4.2's table (lowest to
// highest); higher number binds tighter. Each level is the spec's own
// level number times ten, leaving room between levels for nothing in
// particular — it just keeps the constants readable against the
// table they come from.
const (
	Lowest         = 0
	OrPrec         = 10 // ||
	AndPrec        = 20 // &&
	NotPrec        = 30 // ! (prefix; bounds its own operand, see parsePrefixNot)
	CmpPrec        = 40 // < <= > >= == !=
	AssignPrec     = 50 // = += -= *= /= %= ^= (right-assoc; handled by lookahead, not this table)
	AddPrec        = 60 // binary + -
	MulPrec        = 70 // * / %
	PowPrec        = 80 // ^
	UnaryMinusPrec = 90 // unary -
	// Level 10 (++ --) has no table entry: pre-increment is a prefix
	// function keyed directly off token.INCR/token.DECR, and
	// post-increment is resolved by the one-token lookahead inside the
	// identifier prefix function, so no infix precedence ever applies
	// to these tokens.
)

// precedenceOf returns the infix binding power of t, or Lowest if t
// never introduces an infix operator.
func precedenceOf(t token.Type) int {
	switch t {
	case token.OR:
		return OrPrec
	case token.AND:
		return AndPrec
	case token.LT, token.LE, token.GT, token.GE, token.EQ, token.NE:
		return CmpPrec
	case token.PLUS, token.MINUS:
		return AddPrec
	case token.STAR, token.SLASH, token.PERCENT:
		return MulPrec
	case token.CARET:
		return PowPrec
	default:
		return Lowest
	}
}

// registerGrammar wires every token type that can begin or continue an
// expression to its parse function, the teacher's UnaryFuncs/
// BinaryFuncs registration idiom adapted to this language's token set.
func (p *Parser) registerGrammar() {
	p.prefixFns[token.NUMBER] = p.parseConst
	p.prefixFns[token.IDENT] = p.parseIdentExpr
	p.prefixFns[token.LPAREN] = p.parseGroup
	p.prefixFns[token.NOT] = p.parsePrefixNot
	p.prefixFns[token.MINUS] = p.parsePrefixNeg
	p.prefixFns[token.INCR] = p.parsePrefixIncDec
	p.prefixFns[token.DECR] = p.parsePrefixIncDec

	p.infixFns[token.OR] = p.parseLogical
	p.infixFns[token.AND] = p.parseLogical
	p.infixFns[token.LT] = p.parseCompare
	p.infixFns[token.LE] = p.parseCompare
	p.infixFns[token.GT] = p.parseCompare
	p.infixFns[token.GE] = p.parseCompare
	p.infixFns[token.EQ] = p.parseCompare
	p.infixFns[token.NE] = p.parseCompare
	p.infixFns[token.PLUS] = p.parseArith
	p.infixFns[token.MINUS] = p.parseArith
	p.infixFns[token.STAR] = p.parseArith
	p.infixFns[token.SLASH] = p.parseArith
	p.infixFns[token.PERCENT] = p.parseArith
	p.infixFns[token.CARET] = p.parseArith
}

// parseExpression is the Pratt core: parse one prefix unit, then keep
// folding in infix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	prefixFn, ok := p.prefixFns[p.cur.Type]
	if !ok {
		// failSyntax itself recognizes an ILLEGAL token (an unrecognized
		// byte the lexer could not classify — spec.md §2 — never fails
		// the lexer, only becomes a diagnostic token) and reports the
		// dedicated illegal-character format instead of a generic one.
		p.failSyntax("expected expression, found")
		return nil
	}
	left := prefixFn()

	for precedenceOf(p.cur.Type) > minPrec {
		infixFn, ok := p.infixFns[p.cur.Type]
		if !ok {
			break
		}
		left = infixFn(left)
	}
	return left
}
