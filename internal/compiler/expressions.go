package compiler

import (
	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/value"
)

// emitExpression dispatches on expression kind. Like emitStatement, this
// switch is exhaustive over ast's closed expression sum.
func (c *Compiler) emitExpression(expr ast.Expression) error {
	c.line = expr.Line()

	switch e := expr.(type) {
	case *ast.IntLiteral:
		return c.emitLiteral(value.Int(e.Value))
	case *ast.FloatLiteral:
		return c.emitLiteral(value.Float(e.Value))
	case *ast.StringLiteral:
		return c.emitLiteral(value.String(e.Value))
	case *ast.BoolLiteral:
		return c.emitLiteral(value.Bool(e.Value))
	case *ast.NoneLiteral:
		return c.emitLiteral(value.Nil())
	case *ast.ListLiteral:
		return c.emitListLiteral(e)
	case *ast.DictLiteral:
		return c.emitDictLiteral(e)
	case *ast.GroupExpression:
		return c.emitExpression(e.Inner)
	case *ast.UnaryExpression:
		return c.emitUnaryExpression(e)
	case *ast.BinaryExpression:
		return c.emitBinaryExpression(e)
	case *ast.LogicalExpression:
		return c.emitLogicalExpression(e)
	case *ast.Identifier:
		return c.emitIdentifier(e)
	case *ast.Assignment:
		return c.emitAssignment(e)
	case *ast.IndexAssignment:
		return c.emitIndexAssignment(e)
	case *ast.Access:
		return c.emitAccess(e)
	case *ast.FunctionLiteral:
		return c.emitFunctionLiteral(e)
	case *ast.Call:
		return c.emitCall(e)
	default:
		return c.fatalf(expr.Line(), "unrecognized expression node %T", expr)
	}
}

// emitLiteral implements every literal kind: PUSH followed by the literal
// as a constant.
func (c *Compiler) emitLiteral(v value.Value) error {
	r := c.region()
	r.EmitOp(bytecode.PUSH, c.line)
	r.InternConstant(v, c.line)
	return nil
}

// emitListLiteral emits elements in reverse source order so a VM that
// pops in stack order reconstructs the original order.
func (c *Compiler) emitListLiteral(e *ast.ListLiteral) error {
	for i := len(e.Elements) - 1; i >= 0; i-- {
		if err := c.emitExpression(e.Elements[i]); err != nil {
			return err
		}
	}
	line := c.line
	r := c.region()
	r.EmitOp(bytecode.LIST, line)
	r.InternConstant(value.Int(int64(len(e.Elements))), line)
	return nil
}

// emitDictLiteral emits key/value pairs in reverse declared order; for
// each pair the key is PUSHed as a constant, then the value expression is
// emitted. Key ordering comes from the parser's insertion-order slices,
// never from a hash-ordered map.
func (c *Compiler) emitDictLiteral(e *ast.DictLiteral) error {
	for i := len(e.Keys) - 1; i >= 0; i-- {
		line := e.Values[i].Line()
		r := c.region()
		r.EmitOp(bytecode.PUSH, line)
		r.InternConstant(value.String(e.Keys[i]), line)
		if err := c.emitExpression(e.Values[i]); err != nil {
			return err
		}
	}
	line := c.line
	r := c.region()
	r.EmitOp(bytecode.DICTIONARY, line)
	r.InternConstant(value.Int(int64(len(e.Keys))), line)
	return nil
}

func (c *Compiler) emitUnaryExpression(e *ast.UnaryExpression) error {
	if err := c.emitExpression(e.Operand); err != nil {
		return err
	}
	return c.emitOperator(e.Operator, true, c.line)
}

// emitBinaryExpression emits the left operand, then the right, then the
// operator — postfix order for a stack machine.
func (c *Compiler) emitBinaryExpression(e *ast.BinaryExpression) error {
	if err := c.emitExpression(e.Left); err != nil {
		return err
	}
	if err := c.emitExpression(e.Right); err != nil {
		return err
	}
	return c.emitOperator(e.Operator, false, c.line)
}

// emitLogicalExpression shares the binary emission shape; the operator
// itself (and/or) is outside the recognized operator-token set and
// reaches the fatal arm in emitOperator.
func (c *Compiler) emitLogicalExpression(e *ast.LogicalExpression) error {
	if err := c.emitExpression(e.Left); err != nil {
		return err
	}
	if err := c.emitExpression(e.Right); err != nil {
		return err
	}
	return c.emitOperator(e.Operator, false, c.line)
}

func (c *Compiler) emitIdentifier(e *ast.Identifier) error {
	r := c.region()
	r.EmitOp(bytecode.LOAD, c.line)
	r.InternConstant(value.String(e.Name), c.line)
	return nil
}

// emitAssignment implements `NAME = EXPR`; STORE leaves the assigned
// value on the stack, so assignment is an expression.
func (c *Compiler) emitAssignment(e *ast.Assignment) error {
	if err := c.emitExpression(e.Value); err != nil {
		return err
	}
	r := c.region()
	r.EmitOp(bytecode.STORE, c.line)
	r.InternConstant(value.String(e.Name), c.line)
	return nil
}

func (c *Compiler) emitIndexAssignment(e *ast.IndexAssignment) error {
	if err := c.emitExpression(e.Value); err != nil {
		return err
	}
	if err := c.emitExpression(e.Index); err != nil {
		return err
	}
	r := c.region()
	r.EmitOp(bytecode.STORE_ACCESS, c.line)
	r.InternConstant(value.String(e.Container), c.line)
	return nil
}

func (c *Compiler) emitAccess(e *ast.Access) error {
	if err := c.emitExpression(e.Index); err != nil {
		return err
	}
	r := c.region()
	r.EmitOp(bytecode.ACCESS, c.line)
	r.InternConstant(value.String(e.Container), c.line)
	return nil
}

// emitFunctionLiteral switches the active region to Functions for the
// duration of the body, then restores the previous selector — on every
// exit path, including an error returned mid-body — before emitting the
// FUNCTION opcode into the calling region. Nested function literals are
// supported by this save/restore discipline alone.
func (c *Compiler) emitFunctionLiteral(e *ast.FunctionLiteral) error {
	previous := c.program.Active
	c.program.Active = bytecode.FunctionsRegion
	start := c.program.Functions.Len()

	err := c.emitFunctionBody(e)

	c.program.Active = previous
	if err != nil {
		return err
	}

	line := e.Line()
	r := c.region()
	r.EmitOp(bytecode.FUNCTION, line)
	r.InternConstant(value.Int(int64(start)), line)
	r.InternConstant(value.Type(e.ReturnType), line)
	return nil
}

func (c *Compiler) emitFunctionBody(e *ast.FunctionLiteral) error {
	line := e.Line()
	r := c.region()

	for _, param := range e.Parameters {
		r.EmitOp(bytecode.DECLARE, line)
		r.InternConstant(value.String(param.Name), line)
		r.InternConstant(value.Type(param.Type), line)
	}

	// Arguments are popped in reverse declared order: CALL pushes them in
	// declared order, so the last-declared parameter is on top of the
	// stack at function entry.
	for i := len(e.Parameters) - 1; i >= 0; i-- {
		r.EmitOp(bytecode.ONLY_STORE, line)
		r.InternConstant(value.String(e.Parameters[i].Name), line)
	}

	for _, stmt := range e.Body {
		if err := c.emitStatement(stmt); err != nil {
			return err
		}
	}

	// Every function body ends with this trailer regardless of earlier
	// explicit returns, so falling off the end returns nil.
	r.EmitOp(bytecode.PUSH, c.line)
	r.InternConstant(value.Nil(), c.line)
	r.EmitOp(bytecode.RETURN, c.line)
	return nil
}

func (c *Compiler) emitCall(e *ast.Call) error {
	for _, arg := range e.Args {
		if err := c.emitExpression(arg); err != nil {
			return err
		}
	}
	line := c.line
	r := c.region()
	r.EmitOp(bytecode.CALL, line)
	r.InternConstant(value.String(e.Callee), line)
	r.InternConstant(value.Int(int64(len(e.Args))), line)
	return nil
}
