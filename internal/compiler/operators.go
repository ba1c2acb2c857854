package compiler

import (
	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/token"
)

// emitOperator is the second-level dispatch mapping a lexical operator
// token to an opcode. unary disambiguates `-` between SUB (binary) and
// MINUS (unary negate). Any token outside this set is a fatal structural
// error — there is no silent fallback.
func (c *Compiler) emitOperator(op token.Type, unary bool, line int) error {
	r := c.region()

	switch op {
	case token.PLUS:
		r.EmitOp(bytecode.ADD, line)
	case token.MINUS:
		if unary {
			r.EmitOp(bytecode.MINUS, line)
		} else {
			r.EmitOp(bytecode.SUB, line)
		}
	case token.STAR:
		r.EmitOp(bytecode.MUL, line)
	case token.SLASH:
		r.EmitOp(bytecode.DIV, line)
	case token.BANG:
		r.EmitOp(bytecode.NOT, line)
	case token.ASSIGN:
		// `=` as an operator token, distinct from the Assignment expression
		// node's own emission rule. Spec open question #3: likely dead code
		// since Assignment never routes through here; preserved, not
		// extended.
		r.EmitOp(bytecode.STORE, line)
	case token.EQ:
		r.EmitOp(bytecode.EQ, line)
	case token.NEQ:
		r.EmitOp(bytecode.NEQ, line)
	case token.LT:
		r.EmitOp(bytecode.LT, line)
	case token.LTE:
		r.EmitOp(bytecode.LTE, line)
	case token.GT:
		r.EmitOp(bytecode.HT, line)
	case token.GTE:
		r.EmitOp(bytecode.HTE, line)
	default:
		return c.fatalf(line, "operator token %s is outside the recognized set", op)
	}
	return nil
}
