package compiler_test

import (
	"testing"

	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/compiler"
	"github.com/funvibe/nyxc/internal/lexer"
	"github.com/funvibe/nyxc/internal/parser"
)

// FuzzCompile feeds random short programs through the full lex/parse/emit
// pipeline and checks the two decode-time properties spec'd for this
// emitter: every BRANCH_FALSE/RJUMP patched offset lands on a valid
// opcode boundary when simulated, and every pool index read during a
// simulated decode is in range. Parse/compile errors are expected for
// most mutations and are not themselves failures — only a panic, or a
// program that violates one of the two properties, is.
func FuzzCompile(f *testing.F) {
	seeds := []string{
		"print 1 + 2",
		"x: int = 5",
		"if a == 1 {\nprint a\n}",
		"while a < 10 {\na = a + 1\n}",
		"f = fn(x: int) -> int { return x + 1 }\nf(2)",
		"[1, 2, 3]",
		`{"k": 1}`,
		"a[0] = 1",
		"print -1\nprint !true",
		"x: int\nreturn x",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		p := parser.New(lexer.New(src))
		astProg, err := p.Parse()
		if err != nil {
			return
		}

		prog, err := compiler.Compile(astProg)
		if err != nil {
			return
		}

		for _, r := range []*bytecode.Region{prog.Program, prog.Functions, prog.Classes} {
			checkDecodeInvariants(t, r)
		}
	})
}

// checkDecodeInvariants walks r the way a VM's PC would: each opcode's
// operand count determines how many constant-pool-index slots follow it.
// Every slot visited this way must be a valid pool index, and any
// BRANCH_FALSE/RJUMP offset must land on the start of some instruction
// (or exactly at len(Code), the natural end of the stream) rather than
// inside another instruction's operand.
func checkDecodeInvariants(t *testing.T, r *bytecode.Region) {
	t.Helper()

	boundaries := make(map[int]bool)
	pc := 0
	for pc < len(r.Code) {
		boundaries[pc] = true
		op := bytecode.Op(r.Code[pc])
		n := op.OperandCount()

		for k := 1; k <= n; k++ {
			slot := pc + k
			if slot >= len(r.Code) {
				t.Fatalf("opcode %s at %d is missing operand %d", op, pc, k)
			}
			idx := int(r.Code[slot])
			if idx < 0 || idx >= len(r.Constants) {
				t.Fatalf("opcode %s at %d: operand %d index %d out of range (pool size %d)", op, pc, k, idx, len(r.Constants))
			}
		}

		if op == bytecode.BRANCH_FALSE {
			target := pc + 2 + int(r.Constants[r.Code[pc+1]].I)
			if target < 0 || target > len(r.Code) {
				t.Fatalf("BRANCH_FALSE at %d targets out-of-range offset %d", pc, target)
			}
			assertLandsOnBoundary(t, r, target, "BRANCH_FALSE", pc)
		}
		if op == bytecode.RJUMP {
			target := pc + 2 + int(r.Constants[r.Code[pc+1]].I)
			if target < 0 || target > len(r.Code) {
				t.Fatalf("RJUMP at %d targets out-of-range offset %d", pc, target)
			}
			assertLandsOnBoundary(t, r, target, "RJUMP", pc)
		}

		pc += 1 + n
	}
	boundaries[len(r.Code)] = true
}

// assertLandsOnBoundary re-walks the stream up to target to confirm it is
// a real instruction boundary (or exactly the end of the stream), not an
// address inside another instruction's operand.
func assertLandsOnBoundary(t *testing.T, r *bytecode.Region, target int, kind string, from int) {
	t.Helper()
	pc := 0
	for pc < target {
		if pc >= len(r.Code) {
			t.Fatalf("%s at %d: target %d is unreachable", kind, from, target)
		}
		op := bytecode.Op(r.Code[pc])
		pc += 1 + op.OperandCount()
	}
	if pc != target {
		t.Fatalf("%s at %d: target %d lands mid-instruction (next boundary at %d)", kind, from, target, pc)
	}
}
