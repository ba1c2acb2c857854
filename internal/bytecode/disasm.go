package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of a single region, one
// instruction per line, with the owning line number and the decoded
// constant-pool operands.
func Disassemble(r *Region, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s ==\n", name)

	offset := 0
	for offset < len(r.Code) {
		offset = disassembleInstruction(&sb, r, offset)
	}
	return sb.String()
}

// DisassembleProgram disassembles all three regions of p in order.
func DisassembleProgram(p *Program) string {
	var sb strings.Builder
	sb.WriteString(Disassemble(p.Program, "program"))
	sb.WriteString(Disassemble(p.Functions, "functions"))
	sb.WriteString(Disassemble(p.Classes, "classes"))
	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, r *Region, offset int) int {
	fmt.Fprintf(sb, "%04d ", offset)

	if offset > 0 && r.Lines[offset] == r.Lines[offset-1] {
		sb.WriteString("   | ")
	} else {
		fmt.Fprintf(sb, "%4d ", r.Lines[offset])
	}

	op := Op(r.Code[offset])
	sb.WriteString(op.String())

	n := op.OperandCount()
	next := offset + 1
	for i := 0; i < n && next < len(r.Code); i++ {
		idx := int(r.Code[next])
		if idx >= 0 && idx < len(r.Constants) {
			fmt.Fprintf(sb, " %d(%s)", idx, r.Constants[idx].String())
		} else {
			fmt.Fprintf(sb, " %d(?)", idx)
		}
		next++
	}
	sb.WriteString("\n")
	return next
}
