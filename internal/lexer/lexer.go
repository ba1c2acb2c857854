// Package lexer turns source text into a flat token stream. It is a
// single-pass, rune-at-a-time scanner modeled on the classic hand-written
// lexer: one current rune, one-rune lookahead, line/column tracked per
// token, a keyword table for reserved words.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/nyxc/internal/token"
)

type Lexer struct {
	input        string
	position     int // current position in input (points to current char)
	readPosition int // current reading position (after current char)
	ch           rune
	line         int
	column       int
}

// New returns a lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
	if l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

// NextToken scans and returns the next token, advancing the lexer.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column
	var tok token.Token

	switch l.ch {
	case '\n':
		tok = token.Token{Type: token.NEWLINE, Lexeme: "\n", Line: line, Column: col}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.ASSIGN, Lexeme: "=", Line: line, Column: col}
		}
	case '+':
		tok = token.Token{Type: token.PLUS, Lexeme: "+", Line: line, Column: col}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.MINUS, Lexeme: "-", Line: line, Column: col}
		}
	case '*':
		tok = token.Token{Type: token.STAR, Lexeme: "*", Line: line, Column: col}
	case '/':
		tok = token.Token{Type: token.SLASH, Lexeme: "/", Line: line, Column: col}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NEQ, Lexeme: "!=", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.BANG, Lexeme: "!", Line: line, Column: col}
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.LT, Lexeme: "<", Line: line, Column: col}
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.GT, Lexeme: ">", Line: line, Column: col}
		}
	case ':':
		tok = token.Token{Type: token.COLON, Lexeme: ":", Line: line, Column: col}
	case ',':
		tok = token.Token{Type: token.COMMA, Lexeme: ",", Line: line, Column: col}
	case '(':
		tok = token.Token{Type: token.LPAREN, Lexeme: "(", Line: line, Column: col}
	case ')':
		tok = token.Token{Type: token.RPAREN, Lexeme: ")", Line: line, Column: col}
	case '{':
		tok = token.Token{Type: token.LBRACE, Lexeme: "{", Line: line, Column: col}
	case '}':
		tok = token.Token{Type: token.RBRACE, Lexeme: "}", Line: line, Column: col}
	case '[':
		tok = token.Token{Type: token.LBRACKET, Lexeme: "[", Line: line, Column: col}
	case ']':
		tok = token.Token{Type: token.RBRACKET, Lexeme: "]", Line: line, Column: col}
	case '"':
		s := l.readString()
		return token.Token{Type: token.STRING, Lexeme: s, Line: line, Column: col}
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: line, Column: col}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Line: line, Column: col}
		}
		if isDigit(l.ch) {
			lexeme, typ := l.readNumber()
			return token.Token{Type: typ, Lexeme: lexeme, Line: line, Column: col}
		}
		tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: line, Column: col}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() (string, token.Type) {
	start := l.position
	typ := token.INT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		typ = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position], typ
}

func (l *Lexer) readString() string {
	var out []rune
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, l.ch)
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return string(out)
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}
