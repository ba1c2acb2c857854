package compiler

import (
	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/value"
)

// emitStatement dispatches on statement kind. The switch is exhaustive
// over ast's closed statement sum; the default arm exists only to turn an
// impossible case into a diagnosed fatal error rather than a panic.
func (c *Compiler) emitStatement(stmt ast.Statement) error {
	c.line = stmt.Line()

	switch s := stmt.(type) {
	case *ast.PrintStatement:
		return c.emitPrintStatement(s)
	case *ast.ExpressionStatement:
		return c.emitExpressionStatement(s)
	case *ast.Declaration:
		return c.emitDeclaration(s)
	case *ast.ReturnStatement:
		return c.emitReturnStatement(s)
	case *ast.IfStatement:
		return c.emitIfStatement(s)
	case *ast.WhileStatement:
		return c.emitWhileStatement(s)
	default:
		return c.fatalf(stmt.Line(), "unrecognized statement node %T", stmt)
	}
}

func (c *Compiler) emitPrintStatement(s *ast.PrintStatement) error {
	if err := c.emitExpression(s.Value); err != nil {
		return err
	}
	c.region().EmitOp(bytecode.PRINT, c.line)
	return nil
}

// emitExpressionStatement emits the child expression, then POPs its
// residual value — the expression's result is unused as a statement.
func (c *Compiler) emitExpressionStatement(s *ast.ExpressionStatement) error {
	if err := c.emitExpression(s.Expression); err != nil {
		return err
	}
	c.region().EmitOp(bytecode.POP, c.line)
	return nil
}

// emitDeclaration implements `name: T [= init]`. Declarations are
// statements, not expressions: when an initializer is present, the value
// STORE leaves on the stack is discarded with an explicit POP.
func (c *Compiler) emitDeclaration(s *ast.Declaration) error {
	line := c.line
	r := c.region()
	r.EmitOp(bytecode.DECLARE, line)
	r.InternConstant(value.String(s.Name), line)
	r.InternConstant(value.Type(s.Type), line)

	if s.Init == nil {
		return nil
	}
	if err := c.emitExpression(s.Init); err != nil {
		return err
	}
	r.EmitOp(bytecode.STORE, c.line)
	r.InternConstant(value.String(s.Name), c.line)
	r.EmitOp(bytecode.POP, c.line)
	return nil
}

func (c *Compiler) emitReturnStatement(s *ast.ReturnStatement) error {
	if err := c.emitExpression(s.Value); err != nil {
		return err
	}
	c.region().EmitOp(bytecode.RETURN, c.line)
	return nil
}

// emitIfStatement implements the if-without-else form. A non-empty Else
// reaches the explicitly unimplemented arm preserved from the spec's open
// question #1: this emitter never fabricates else-branch semantics.
func (c *Compiler) emitIfStatement(s *ast.IfStatement) error {
	line := c.line
	if len(s.Else) > 0 {
		return c.fatalf(line, "if/else emission is not implemented")
	}

	if err := c.emitExpression(s.Condition); err != nil {
		return err
	}

	r := c.region()
	r.EmitOp(bytecode.BRANCH_FALSE, line)
	patchIndex := r.EmitPlaceholder(value.Int(0), line)
	recordedLength := r.Len()

	for _, stmt := range s.Then {
		if err := c.emitStatement(stmt); err != nil {
			return err
		}
	}

	offset := r.Len() - recordedLength
	r.PatchConstant(patchIndex, value.Int(int64(offset)))
	return nil
}

// emitWhileStatement implements `while COND { BODY }`. The BRANCH_FALSE
// placeholder is patched to the code length after the closing RJUMP's
// operand minus the body start, plus one; counted from the slot after the
// BRANCH_FALSE operand (as emitIfStatement's offset is), that target is one
// slot past the RJUMP's operand. The RJUMP offset is the negative distance from the slot after its
// own operand back to the loop head, so taking the jump re-evaluates the
// condition.
func (c *Compiler) emitWhileStatement(s *ast.WhileStatement) error {
	line := c.line
	r := c.region()
	loopHead := r.Len()

	if err := c.emitExpression(s.Condition); err != nil {
		return err
	}

	r.EmitOp(bytecode.BRANCH_FALSE, line)
	exitPatchIndex := r.EmitPlaceholder(value.Int(0), line)
	bodyStart := r.Len()

	for _, stmt := range s.Body {
		if err := c.emitStatement(stmt); err != nil {
			return err
		}
	}

	r.EmitOp(bytecode.RJUMP, c.line)
	lengthBeforeOperand := r.Len()
	backOffset := -(lengthBeforeOperand + 1 - loopHead)
	r.InternConstant(value.Int(int64(backOffset)), c.line)

	exitOffset := r.Len() - bodyStart + 1
	r.PatchConstant(exitPatchIndex, value.Int(int64(exitOffset)))
	return nil
}
