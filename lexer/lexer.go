/*
File    : gomix-bc/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns calculator source text into a lazy sequence of
// tokens. It is a hand-written byte scanner in the teacher's style
// (position tracked as the scan proceeds, no regexp), but unlike the
// teacher it treats NEWLINE as a significant token rather than
// whitespace: the grammar in spec.md §4.2 uses line breaks to
// terminate commands and statements.
package lexer

import (
	"fmt"

	"github.com/akashmaji946/gomix-bc/token"
)

// Lexer scans Src one byte at a time, tracking 1-indexed line and
// column for diagnostics.
type Lexer struct {
	Src      string
	Position int
	Current  byte
	Line     int
	Column   int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{Src: src, Line: 1, Column: 1}
	if len(src) > 0 {
		lex.Current = src[0]
	}
	return lex
}

// advance consumes the current byte and moves to the next, updating
// line/column bookkeeping.
func (l *Lexer) advance() {
	if l.Current == '\n' {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
	l.Position++
	if l.Position >= len(l.Src) {
		l.Current = 0
		return
	}
	l.Current = l.Src[l.Position]
}

// peek returns the byte after Current without consuming anything.
func (l *Lexer) peek() byte {
	if l.Position+1 >= len(l.Src) {
		return 0
	}
	return l.Src[l.Position+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isIdentStart(c byte) bool {
	return isLower(c)
}

func isIdentCont(c byte) bool {
	return isLower(c) || isDigit(c) || c == '_'
}

// skipWhitespaceAndComments skips spaces, tabs, '#' line comments, and
// '/* ... */' block comments (which may span lines). NEWLINE is not
// skipped here: it is a token in its own right.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.Current == ' ' || l.Current == '\t' || l.Current == '\r':
			l.advance()
		case l.Current == '#':
			for l.Current != '\n' && l.Current != 0 {
				l.advance()
			}
		case l.Current == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for !(l.Current == '*' && l.peek() == '/') && l.Current != 0 {
				l.advance()
			}
			if l.Current != 0 {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token, or an EOF token once the
// source is exhausted. It never panics: a byte that matches no
// production becomes an ILLEGAL token carrying the rendered form of
// the offending octet (see renderByte), leaving error reporting to
// the parser.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, col := l.Line, l.Column

	if l.Current == 0 {
		return token.New(token.EOF, "", line, col)
	}

	if l.Current == '\n' {
		l.advance()
		return token.New(token.NEWLINE, "\n", line, col)
	}

	if isDigit(l.Current) || (l.Current == '.' && isDigit(l.peek())) {
		return l.readNumber()
	}

	if isIdentStart(l.Current) {
		return l.readIdentifier()
	}

	return l.readOperator(line, col)
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.Line, l.Column
	start := l.Position
	for isDigit(l.Current) {
		l.advance()
	}
	if l.Current == '.' {
		l.advance()
		for isDigit(l.Current) {
			l.advance()
		}
	}
	return token.New(token.NUMBER, l.Src[start:l.Position], line, col)
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.Line, l.Column
	start := l.Position
	for isIdentCont(l.Current) {
		l.advance()
	}
	lit := l.Src[start:l.Position]
	return token.New(token.LookupIdent(lit), lit, line, col)
}

// two builds a two-character operator token, consuming the second
// byte (the first was already current when dispatched).
func (l *Lexer) two(t token.Type, lit string, line, col int) token.Token {
	l.advance()
	l.advance()
	return token.New(t, lit, line, col)
}

func (l *Lexer) one(t token.Type, line, col int) token.Token {
	lit := string(l.Current)
	l.advance()
	return token.New(t, lit, line, col)
}

func (l *Lexer) readOperator(line, col int) token.Token {
	c := l.Current
	switch c {
	case '+':
		if l.peek() == '+' {
			return l.two(token.INCR, "++", line, col)
		}
		if l.peek() == '=' {
			return l.two(token.PLUS_ASSIGN, "+=", line, col)
		}
		return l.one(token.PLUS, line, col)
	case '-':
		if l.peek() == '-' {
			return l.two(token.DECR, "--", line, col)
		}
		if l.peek() == '=' {
			return l.two(token.MINUS_ASSIGN, "-=", line, col)
		}
		return l.one(token.MINUS, line, col)
	case '*':
		if l.peek() == '=' {
			return l.two(token.STAR_ASSIGN, "*=", line, col)
		}
		return l.one(token.STAR, line, col)
	case '/':
		if l.peek() == '=' {
			return l.two(token.SLASH_ASSIGN, "/=", line, col)
		}
		return l.one(token.SLASH, line, col)
	case '%':
		if l.peek() == '=' {
			return l.two(token.PERCENT_ASSIGN, "%=", line, col)
		}
		return l.one(token.PERCENT, line, col)
	case '^':
		if l.peek() == '=' {
			return l.two(token.CARET_ASSIGN, "^=", line, col)
		}
		return l.one(token.CARET, line, col)
	case '=':
		if l.peek() == '=' {
			return l.two(token.EQ, "==", line, col)
		}
		return l.one(token.ASSIGN, line, col)
	case '!':
		if l.peek() == '=' {
			return l.two(token.NE, "!=", line, col)
		}
		return l.one(token.NOT, line, col)
	case '<':
		if l.peek() == '=' {
			return l.two(token.LE, "<=", line, col)
		}
		return l.one(token.LT, line, col)
	case '>':
		if l.peek() == '=' {
			return l.two(token.GE, ">=", line, col)
		}
		return l.one(token.GT, line, col)
	case '&':
		if l.peek() == '&' {
			return l.two(token.AND, "&&", line, col)
		}
	case '|':
		if l.peek() == '|' {
			return l.two(token.OR, "||", line, col)
		}
	case '(':
		return l.one(token.LPAREN, line, col)
	case ')':
		return l.one(token.RPAREN, line, col)
	case '{':
		return l.one(token.LBRACE, line, col)
	case '}':
		return l.one(token.RBRACE, line, col)
	case ',':
		return l.one(token.COMMA, line, col)
	case ';':
		return l.one(token.SEMI, line, col)
	}

	// No production matches: emit an illegal-character diagnostic
	// token and keep scanning past the offending byte.
	rendered := RenderByte(c)
	l.advance()
	return token.New(token.ILLEGAL, rendered, line, col)
}

// RenderByte formats a raw byte the way spec.md §6 requires for
// illegal-character diagnostics: the byte's own glyph when printable,
// "^X" for a C0 control code, and "\ooo" (octal) for anything else,
// including high (non-ASCII) bytes.
func RenderByte(c byte) string {
	switch {
	case c >= 0x20 && c < 0x7f:
		return string(c)
	case c < 0x20:
		return fmt.Sprintf("^%c", c+'@')
	default:
		return fmt.Sprintf("\\%03o", c)
	}
}
