package parser_test

import (
	"testing"

	"github.com/funvibe/nyxc/internal/ast"
	"github.com/funvibe/nyxc/internal/lexer"
	"github.com/funvibe/nyxc/internal/parser"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(input))
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParsePrintStatement(t *testing.T) {
	prog := parse(t, "print 1 + 2")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	stmt, ok := prog.Statements[0].(*ast.PrintStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStatement", prog.Statements[0])
	}
	bin, ok := stmt.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpression", stmt.Value)
	}
	if _, ok := bin.Left.(*ast.IntLiteral); !ok {
		t.Errorf("left operand is %T, want *ast.IntLiteral", bin.Left)
	}
}

func TestParseDeclaration(t *testing.T) {
	prog := parse(t, "x: int = 5")
	decl, ok := prog.Statements[0].(*ast.Declaration)
	if !ok {
		t.Fatalf("got %T, want *ast.Declaration", prog.Statements[0])
	}
	if decl.Name != "x" || decl.Type != "int" {
		t.Errorf("got name=%s type=%s, want x/int", decl.Name, decl.Type)
	}
	if decl.Init == nil {
		t.Fatal("expected an initializer")
	}
}

func TestParseDeclarationWithoutInit(t *testing.T) {
	prog := parse(t, "x: int")
	decl := prog.Statements[0].(*ast.Declaration)
	if decl.Init != nil {
		t.Errorf("expected no initializer, got %T", decl.Init)
	}
}

func TestParseIfStatement(t *testing.T) {
	prog := parse(t, "if a == 1 {\nprint a\n}")
	ifs, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStatement", prog.Statements[0])
	}
	if len(ifs.Then) != 1 {
		t.Fatalf("then-branch has %d statements, want 1", len(ifs.Then))
	}
	if ifs.Else != nil {
		t.Errorf("expected nil else branch, got %v", ifs.Else)
	}
}

func TestParseIfElseStatement(t *testing.T) {
	prog := parse(t, "if a { print 1 } else { print 2 }")
	ifs := prog.Statements[0].(*ast.IfStatement)
	if len(ifs.Else) != 1 {
		t.Fatalf("else-branch has %d statements, want 1", len(ifs.Else))
	}
}

func TestParseWhileStatement(t *testing.T) {
	prog := parse(t, "while a < 10 {\na = a + 1\n}")
	ws, ok := prog.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStatement", prog.Statements[0])
	}
	if len(ws.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(ws.Body))
	}
	if _, ok := ws.Body[0].(*ast.ExpressionStatement); !ok {
		t.Errorf("body[0] is %T, want *ast.ExpressionStatement", ws.Body[0])
	}
}

func TestParseListLiteral(t *testing.T) {
	prog := parse(t, "[1, 2, 3]")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	list, ok := stmt.Expression.(*ast.ListLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.ListLiteral", stmt.Expression)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(list.Elements))
	}
}

func TestParseDictLiteralPreservesKeyOrder(t *testing.T) {
	prog := parse(t, `{"b": 1, "a": 2}`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	dict := stmt.Expression.(*ast.DictLiteral)
	want := []string{"b", "a"}
	for i, k := range want {
		if dict.Keys[i] != k {
			t.Errorf("key %d = %s, want %s", i, dict.Keys[i], k)
		}
	}
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	prog := parse(t, "f = fn(x: int) -> int { return x + 1 }\nf(2)")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}

	assignStmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign, ok := assignStmt.Expression.(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", assignStmt.Expression)
	}
	fn, ok := assign.Value.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionLiteral", assign.Value)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Name != "x" || fn.Parameters[0].Type != "int" {
		t.Errorf("unexpected parameters: %+v", fn.Parameters)
	}
	if fn.ReturnType != "int" {
		t.Errorf("return type = %s, want int", fn.ReturnType)
	}

	callStmt := prog.Statements[1].(*ast.ExpressionStatement)
	call, ok := callStmt.Expression.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call", callStmt.Expression)
	}
	if call.Callee != "f" || len(call.Args) != 1 {
		t.Errorf("unexpected call: %+v", call)
	}
}

func TestParseIndexedAccessAndAssignment(t *testing.T) {
	prog := parse(t, "a[0]\na[0] = 5")
	access := prog.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Access)
	if access.Container != "a" {
		t.Errorf("container = %s, want a", access.Container)
	}

	idxAssign := prog.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.IndexAssignment)
	if idxAssign.Container != "a" {
		t.Errorf("container = %s, want a", idxAssign.Container)
	}
}
