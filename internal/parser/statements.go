package parser

import (
	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/diag"
	"github.com/funvibe/nyxc/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRINT:
		return p.parsePrintStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			return p.parseDeclaration()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	line := p.curToken.Line
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.PrintStatement{TokLine: line, Value: value}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	line := p.curToken.Line
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.ReturnStatement{TokLine: line, Value: value}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	line := p.curToken.Line
	expr := p.parseExpression(LOWEST)
	return &ast.ExpressionStatement{TokLine: line, Expression: expr}
}

// parseDeclaration handles `NAME : TYPE [= EXPR]`.
func (p *Parser) parseDeclaration() ast.Statement {
	line := p.curToken.Line
	name := p.curToken.Lexeme
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	typ := p.curToken.Lexeme

	var init ast.Expression
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		init = p.parseExpression(LOWEST)
	}
	return &ast.Declaration{TokLine: line, Name: name, Type: typ, Init: init}
}

func (p *Parser) parseIfStatement() ast.Statement {
	line := p.curToken.Line
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	then := p.parseBlock()

	// `else` must appear on the same line as the closing brace; this
	// grammar does not skip newlines to look for one.
	var elseBlock []ast.Statement
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		elseBlock = p.parseBlock()
	}

	return &ast.IfStatement{TokLine: line, Condition: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	line := p.curToken.Line
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.WhileStatement{TokLine: line, Condition: cond, Body: body}
}

// parseBlock consumes statements up to (and including) the closing RBRACE.
// curToken is LBRACE on entry; curToken is RBRACE on return.
func (p *Parser) parseBlock() []ast.Statement {
	var stmts []ast.Statement
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if p.err != nil {
			return stmts
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.err = diag.New(diag.Parse, p.curToken.Line, "expected } to close block, got %s", p.curToken.Type)
	}
	return stmts
}
