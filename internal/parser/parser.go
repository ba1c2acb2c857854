// Package parser implements a Pratt expression parser plus a recursive-
// descent statement parser, modeled on the classic prefix/infix parse-fn
// table design: one function per token type registered in two maps, a
// precedence table driving how far an infix chain extends.
package parser

import (
	"strconv"

	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/diag"
	"github.com/funvibe/nyxc/internal/lexer"
	"github.com/funvibe/nyxc/internal/token"
)

const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL_PREC
	INDEX
)

var precedences = map[token.Type]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GT:       LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL_PREC,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into an *ast.Program. It collects the first
// error it hits and stops; there is no error recovery.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	err error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New returns a parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.INT:      p.parseIntLiteral,
		token.FLOAT:    p.parseFloatLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBoolLiteral,
		token.FALSE:    p.parseBoolLiteral,
		token.NONE:     p.parseNoneLiteral,
		token.IDENT:    p.parseIdentifierOrAssignOrCallOrAccess,
		token.MINUS:    p.parseUnaryExpression,
		token.BANG:     p.parseUnaryExpression,
		token.LPAREN:   p.parseGroupExpression,
		token.LBRACKET: p.parseListLiteral,
		token.LBRACE:   p.parseDictLiteral,
		token.FN:       p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:  p.parseBinaryExpression,
		token.MINUS: p.parseBinaryExpression,
		token.STAR:  p.parseBinaryExpression,
		token.SLASH: p.parseBinaryExpression,
		token.EQ:    p.parseBinaryExpression,
		token.NEQ:   p.parseBinaryExpression,
		token.LT:    p.parseBinaryExpression,
		token.LTE:   p.parseBinaryExpression,
		token.GT:    p.parseBinaryExpression,
		token.GTE:   p.parseBinaryExpression,
		token.AND:   p.parseLogicalExpression,
		token.OR:    p.parseLogicalExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	if p.err == nil {
		p.err = diag.New(diag.Parse, p.peekToken.Line, "expected next token to be %s, got %s", t, p.peekToken.Type)
	}
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// Parse runs the recursive-descent statement loop over the whole token
// stream and returns the resulting program, or the first error hit.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}

	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		if p.err != nil {
			return nil, p.err
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
		p.skipNewlines()
	}
	return prog, nil
}

func (p *Parser) parseIntLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.err = diag.New(diag.Parse, p.curToken.Line, "invalid integer literal %q", p.curToken.Lexeme)
		return nil
	}
	return &ast.IntLiteral{TokLine: p.curToken.Line, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.err = diag.New(diag.Parse, p.curToken.Line, "invalid float literal %q", p.curToken.Lexeme)
		return nil
	}
	return &ast.FloatLiteral{TokLine: p.curToken.Line, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{TokLine: p.curToken.Line, Value: p.curToken.Lexeme}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{TokLine: p.curToken.Line, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expression {
	return &ast.NoneLiteral{TokLine: p.curToken.Line}
}

func (p *Parser) parseGroupExpression() ast.Expression {
	line := p.curToken.Line
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.GroupExpression{TokLine: line, Inner: inner}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	op := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{TokLine: op.Line, Operator: op.Type, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op := p.curToken
	precedence := precedences[op.Type]
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryExpression{TokLine: op.Line, Operator: op.Type, Left: left, Right: right}
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	op := p.curToken
	precedence := precedences[op.Type]
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.LogicalExpression{TokLine: op.Line, Operator: op.Type, Left: left, Right: right}
}

func (p *Parser) parseListLiteral() ast.Expression {
	line := p.curToken.Line
	var elems []ast.Expression
	for !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListLiteral{TokLine: line, Elements: elems}
}

func (p *Parser) parseDictLiteral() ast.Expression {
	line := p.curToken.Line
	var keys []string
	var values []ast.Expression
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if !p.curTokenIs(token.STRING) {
			p.err = diag.New(diag.Parse, p.curToken.Line, "dictionary keys must be string literals, got %s", p.curToken.Type)
			return nil
		}
		keys = append(keys, p.curToken.Lexeme)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		values = append(values, p.parseExpression(LOWEST))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.DictLiteral{TokLine: line, Keys: keys, Values: values}
}

// parseIdentifierOrAssignOrCallOrAccess disambiguates the five surface
// forms that start with a bare NAME: a reference, `NAME = EXPR`,
// `NAME(args)`, `NAME[idx]`, and `NAME[idx] = EXPR`.
func (p *Parser) parseIdentifierOrAssignOrCallOrAccess() ast.Expression {
	name := p.curToken
	switch p.peekToken.Type {
	case token.ASSIGN:
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.Assignment{TokLine: name.Line, Name: name.Lexeme, Value: value}
	case token.LPAREN:
		p.nextToken()
		args := p.parseCallArgs()
		return &ast.Call{TokLine: name.Line, Callee: name.Lexeme, Args: args}
	case token.LBRACKET:
		p.nextToken() // consume '['
		p.nextToken() // first token of index expr
		idx := p.parseExpression(LOWEST)
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			value := p.parseExpression(LOWEST)
			return &ast.IndexAssignment{TokLine: name.Line, Container: name.Lexeme, Index: idx, Value: value}
		}
		return &ast.Access{TokLine: name.Line, Container: name.Lexeme, Index: idx}
	default:
		return &ast.Identifier{TokLine: name.Line, Name: name.Lexeme}
	}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	line := p.curToken.Line
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParameters()
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	retType := p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.FunctionLiteral{TokLine: line, Parameters: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseParameters() []ast.Parameter {
	var params []ast.Parameter
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParameter())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParameter())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseOneParameter() ast.Parameter {
	name := p.curToken.Lexeme
	p.expectPeek(token.COLON)
	p.expectPeek(token.IDENT)
	return ast.Parameter{Name: name, Type: p.curToken.Lexeme}
}

// parseExpression is the Pratt loop: a prefix parse function builds the
// left operand, then infix parse functions extend it while the upcoming
// operator binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		if p.err == nil {
			p.err = diag.New(diag.Parse, p.curToken.Line, "no prefix parse function for %s", p.curToken.Type)
		}
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}
