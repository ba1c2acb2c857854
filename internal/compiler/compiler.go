// Package compiler is the emitter core: the recursive AST walker that
// turns a parsed ast.Program into a bytecode.Program. It is a pure,
// single-pass, synchronous translation — no AST node is visited more than
// once, and the compiler performs no I/O beyond what the caller already
// did to produce the AST.
package compiler

import (
	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/diag"
)

// Compiler holds the emission state for one compilation: the program
// container being built and the source line of the AST node currently
// being visited. It has no other mutable state — region selection lives
// on the Program itself so it can be saved and restored around function
// literals.
type Compiler struct {
	program *bytecode.Program
	line    int
}

// New returns a compiler with an empty three-region program, ready to
// emit into the top-level Program region.
func New() *Compiler {
	return &Compiler{program: bytecode.NewProgram()}
}

// Compile walks every top-level statement of prog, emitting into the
// program region, then appends EXIT and returns the finished container.
// Ownership of the returned Program transfers to the caller.
func Compile(prog *ast.Program) (*bytecode.Program, error) {
	c := New()
	for _, stmt := range prog.Statements {
		if err := c.emitStatement(stmt); err != nil {
			return nil, err
		}
	}
	c.program.Active = bytecode.ProgramRegion
	c.program.Program.EmitOp(bytecode.EXIT, c.line)
	return c.program, nil
}

// region returns the region currently selected for emission.
func (c *Compiler) region() *bytecode.Region {
	return c.program.Region()
}

func (c *Compiler) fatalf(line int, format string, args ...any) error {
	return diag.New(diag.Emit, line, format, args...)
}
