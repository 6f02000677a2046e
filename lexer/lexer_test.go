/*
File    : gomix-bc/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-bc/token"
)

func TestLexer_Numbers(t *testing.T) {
	l := New("12 3.14 .5 6.")
	want := []string{"12", "3.14", ".5", "6."}
	for _, w := range want {
		tok := l.NextToken()
		assert.Equal(t, token.NUMBER, tok.Type)
		assert.Equal(t, w, tok.Literal)
	}
	assert.Equal(t, token.EOF, l.NextToken().Type)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	l := New("define auto if else while break continue return halt foo_1")
	want := []token.Type{
		token.DEFINE, token.AUTO, token.IF, token.ELSE, token.WHILE,
		token.BREAK, token.CONTINUE, token.RETURN, token.HALT, token.IDENT,
	}
	for _, w := range want {
		assert.Equal(t, w, l.NextToken().Type)
	}
}

func TestLexer_Operators(t *testing.T) {
	src := "+ - * / % ^ += -= *= /= %= ^= < <= > >= == != && || ! = ++ -- ( ) { } , ;"
	want := []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET,
		token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.CARET_ASSIGN,
		token.LT, token.LE, token.GT, token.GE, token.EQ, token.NE,
		token.AND, token.OR, token.NOT, token.ASSIGN,
		token.INCR, token.DECR,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA, token.SEMI,
	}
	l := New(src)
	for _, w := range want {
		tok := l.NextToken()
		assert.Equal(t, w, tok.Type, "literal=%q", tok.Literal)
	}
}

func TestLexer_NewlineIsSignificant(t *testing.T) {
	l := New("1\n2")
	assert.Equal(t, token.NUMBER, l.NextToken().Type)
	assert.Equal(t, token.NEWLINE, l.NextToken().Type)
	assert.Equal(t, token.NUMBER, l.NextToken().Type)
}

func TestLexer_Comments(t *testing.T) {
	l := New("1 # trailing comment\n/* block\nspans lines */2")
	assert.Equal(t, token.NUMBER, l.NextToken().Type)
	assert.Equal(t, token.NEWLINE, l.NextToken().Type)
	tok := l.NextToken()
	assert.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, "2", tok.Literal)
}

func TestLexer_IllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

func TestLexer_IllegalControlAndHighByte(t *testing.T) {
	assert.Equal(t, "^A", RenderByte(1))
	assert.Equal(t, "\\200", RenderByte(0x80))
	assert.Equal(t, "~", RenderByte('~'))
}

func TestLexer_LineColumnTracking(t *testing.T) {
	l := New("1\n  22")
	first := l.NextToken()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)
	l.NextToken() // newline
	second := l.NextToken()
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 3, second.Column)
}
