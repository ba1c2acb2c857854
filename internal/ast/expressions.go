package ast

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	TokLine int
	Value   int64
}

func (e *IntLiteral) Line() int     { return e.TokLine }
func (e *IntLiteral) expressionNode() {}

// FloatLiteral is a decimal float literal.
type FloatLiteral struct {
	TokLine int
	Value   float64
}

func (e *FloatLiteral) Line() int     { return e.TokLine }
func (e *FloatLiteral) expressionNode() {}

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	TokLine int
	Value   string
}

func (e *StringLiteral) Line() int     { return e.TokLine }
func (e *StringLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	TokLine int
	Value   bool
}

func (e *BoolLiteral) Line() int     { return e.TokLine }
func (e *BoolLiteral) expressionNode() {}

// NoneLiteral is the `none` literal.
type NoneLiteral struct {
	TokLine int
}

func (e *NoneLiteral) Line() int     { return e.TokLine }
func (e *NoneLiteral) expressionNode() {}

// ListLiteral is `[e, e, ...]`. Elements is in declared (source) order;
// the emitter is responsible for reversing at emission time.
type ListLiteral struct {
	TokLine  int
	Elements []Expression
}

func (e *ListLiteral) Line() int     { return e.TokLine }
func (e *ListLiteral) expressionNode() {}

// DictLiteral is `{"k": e, ...}`. Keys and Values are parallel slices in
// declared (insertion) order, taken directly from the parser — never from
// a hash-ordered map.
type DictLiteral struct {
	TokLine int
	Keys    []string
	Values  []Expression
}

func (e *DictLiteral) Line() int     { return e.TokLine }
func (e *DictLiteral) expressionNode() {}

// GroupExpression is a parenthesized `(e)`; the emitter unwraps it
// transparently.
type GroupExpression struct {
	TokLine int
	Inner   Expression
}

func (e *GroupExpression) Line() int     { return e.TokLine }
func (e *GroupExpression) expressionNode() {}

// UnaryExpression is a prefix `-e` or `!e`.
type UnaryExpression struct {
	TokLine  int
	Operator OperatorToken
	Operand  Expression
}

func (e *UnaryExpression) Line() int     { return e.TokLine }
func (e *UnaryExpression) expressionNode() {}

// BinaryExpression is an infix arithmetic or comparison expression.
type BinaryExpression struct {
	TokLine  int
	Operator OperatorToken
	Left     Expression
	Right    Expression
}

func (e *BinaryExpression) Line() int     { return e.TokLine }
func (e *BinaryExpression) expressionNode() {}

// LogicalExpression is `a and b` / `a or b`. It shares the binary emission
// rule (left, right, operator) with BinaryExpression but carries its own
// node type because `and`/`or` are not in the emitter's recognized
// operator-token set — emitting one reaches the fatal "operator token
// outside the recognized set" arm, mirroring the if/else open question.
type LogicalExpression struct {
	TokLine  int
	Operator OperatorToken
	Left     Expression
	Right    Expression
}

func (e *LogicalExpression) Line() int     { return e.TokLine }
func (e *LogicalExpression) expressionNode() {}

// Identifier is a bare variable reference.
type Identifier struct {
	TokLine int
	Name    string
}

func (e *Identifier) Line() int     { return e.TokLine }
func (e *Identifier) expressionNode() {}

// Assignment is `NAME = EXPR`. It is an expression: the stored value
// remains on the stack after emission.
type Assignment struct {
	TokLine int
	Name    string
	Value   Expression
}

func (e *Assignment) Line() int     { return e.TokLine }
func (e *Assignment) expressionNode() {}

// IndexAssignment is `NAME[idx] = EXPR`.
type IndexAssignment struct {
	TokLine   int
	Container string
	Index     Expression
	Value     Expression
}

func (e *IndexAssignment) Line() int     { return e.TokLine }
func (e *IndexAssignment) expressionNode() {}

// Access is `NAME[idx]`.
type Access struct {
	TokLine   int
	Container string
	Index     Expression
}

func (e *Access) Line() int     { return e.TokLine }
func (e *Access) expressionNode() {}

// FunctionLiteral is `fn(NAME: TYPE, ...) -> TYPE { STMT* }`.
type FunctionLiteral struct {
	TokLine    int
	Parameters []Parameter
	ReturnType string
	Body       []Statement
}

func (e *FunctionLiteral) Line() int     { return e.TokLine }
func (e *FunctionLiteral) expressionNode() {}

// Call is `NAME(e, ...)`. The callee is a name, not an arbitrary
// expression — spec open question #4: CALL addresses the callee by name
// constant, so first-class function values produced by FunctionLiteral
// cannot be invoked through anything but their declared name.
type Call struct {
	TokLine int
	Callee  string
	Args    []Expression
}

func (e *Call) Line() int     { return e.TokLine }
func (e *Call) expressionNode() {}
