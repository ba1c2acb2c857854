// Package ast defines the tree of parsed source constructs the emitter
// consumes. It is a closed tagged sum over statement and expression
// variants — each variant is a distinct Go type implementing Statement or
// Expression, so the emitter's type switch is an exhaustive pattern match
// rather than a downcast from a single polymorphic base node.
package ast

import "github.com/funvibe/nyxc/internal/token"

// Node is any AST node; every node knows the source line it came from.
type Node interface {
	Line() int
}

// Statement is a Node that appears where statements are expected.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears where a value-producing construct is
// expected.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a flat list of top-level statements.
type Program struct {
	Statements []Statement
}

// PrintStatement is `print EXPR`.
type PrintStatement struct {
	TokLine int
	Value   Expression
}

func (s *PrintStatement) Line() int    { return s.TokLine }
func (s *PrintStatement) statementNode() {}

// ExpressionStatement wraps an expression used for its side effect; the
// emitter discards the residual value with a POP.
type ExpressionStatement struct {
	TokLine    int
	Expression Expression
}

func (s *ExpressionStatement) Line() int    { return s.TokLine }
func (s *ExpressionStatement) statementNode() {}

// Declaration is `NAME : TYPE [= EXPR]`.
type Declaration struct {
	TokLine int
	Name    string
	Type    string
	Init    Expression // nil when there is no initializer
}

func (s *Declaration) Line() int    { return s.TokLine }
func (s *Declaration) statementNode() {}

// ReturnStatement is `return EXPR`.
type ReturnStatement struct {
	TokLine int
	Value   Expression
}

func (s *ReturnStatement) Line() int    { return s.TokLine }
func (s *ReturnStatement) statementNode() {}

// IfStatement is `if EXPR { STMT* } [else { STMT* }]`. Else is nil when
// absent; a non-empty Else reaches the emitter's explicitly unimplemented
// arm (spec open question #1).
type IfStatement struct {
	TokLine   int
	Condition Expression
	Then      []Statement
	Else      []Statement
}

func (s *IfStatement) Line() int    { return s.TokLine }
func (s *IfStatement) statementNode() {}

// WhileStatement is `while EXPR { STMT* }`.
type WhileStatement struct {
	TokLine   int
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) Line() int    { return s.TokLine }
func (s *WhileStatement) statementNode() {}

// Parameter is one `NAME: TYPE` entry in a function literal's parameter
// list — the name/type pair of a Declaration without an initializer. The
// emitter writes a DECLARE with name and type constants for each one
// directly, without going through its Declaration statement rule.
type Parameter struct {
	Name string
	Type string
}

// OperatorToken names the lexical operator a Unary/Binary/Logical node
// carries; the emitter's second-level dispatch maps it to an opcode.
type OperatorToken = token.Type
