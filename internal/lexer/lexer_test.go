package lexer_test

import (
	"testing"

	"github.com/funvibe/nyxc/internal/lexer"
	"github.com/funvibe/nyxc/internal/token"
)

func tokenTypes(t *testing.T, input string) []token.Type {
	t.Helper()
	l := lexer.New(input)
	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	return types
}

func TestNextTokenOperators(t *testing.T) {
	input := "= == != < <= > >= + - * / ! -> :"
	want := []token.Type{
		token.ASSIGN, token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.BANG, token.ARROW,
		token.COLON, token.EOF,
	}
	got := tokenTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d = %s, want %s", i, got[i], tt)
		}
	}
}

func TestNextTokenKeywordsAndIdents(t *testing.T) {
	input := "print return if else while fn and or true false none x foo_bar"
	want := []token.Type{
		token.PRINT, token.RETURN, token.IF, token.ELSE, token.WHILE, token.FN,
		token.AND, token.OR, token.TRUE, token.FALSE, token.NONE,
		token.IDENT, token.IDENT, token.EOF,
	}
	got := tokenTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d = %s, want %s", i, got[i], tt)
		}
	}
}

func TestNextTokenLiterals(t *testing.T) {
	l := lexer.New(`42 3.14 "hello\nworld"`)

	tok := l.NextToken()
	if tok.Type != token.INT || tok.Lexeme != "42" {
		t.Fatalf("got %v, want INT 42", tok)
	}

	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Lexeme != "3.14" {
		t.Fatalf("got %v, want FLOAT 3.14", tok)
	}

	tok = l.NextToken()
	if tok.Type != token.STRING || tok.Lexeme != "hello\nworld" {
		t.Fatalf("got %v, want STRING hello\\nworld", tok)
	}
}

func TestNextTokenTracksLines(t *testing.T) {
	l := lexer.New("a\nb\nc")
	var lines []int
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.NEWLINE {
			continue
		}
		lines = append(lines, tok.Line)
	}
	want := []int{1, 2, 3}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("ident %d line = %d, want %d", i, lines[i], w)
		}
	}
}

func TestNextTokenSkipsComments(t *testing.T) {
	got := tokenTypes(t, "x # a trailing comment\ny")
	want := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d = %s, want %s", i, got[i], tt)
		}
	}
}
