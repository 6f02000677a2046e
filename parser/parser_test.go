/*
File    : gomix-bc/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix-bc/ast"
	"github.com/akashmaji946/gomix-bc/diag"
)

// parseOneExpr parses src as a single top-level command and returns
// its one statement's expression, failing the test on any error.
func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := New(src)
	cmd, err := p.ParseCommand()
	require.NoError(t, err)
	require.NotNil(t, cmd)
	require.NotNil(t, cmd.Stmts)
	require.Len(t, cmd.Stmts.Stmts, 1)
	es, ok := cmd.Stmts.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	return es.X
}

func TestParser_AssignBindsTighterThanComparison(t *testing.T) {
	expr := parseOneExpr(t, "x = y < z\n")
	cmp, ok := expr.(*ast.Cmp)
	require.True(t, ok, "expected top-level Cmp, got %T", expr)
	assert.Equal(t, ast.Lt, cmp.Op)
	assign, ok := cmp.Left.(*ast.Assign)
	require.True(t, ok, "expected (x=y) on the left, got %T", cmp.Left)
	assert.Equal(t, "x", assign.Name)
	assert.Equal(t, &ast.Var{Name: "y"}, assign.Value)
	assert.Equal(t, &ast.Var{Name: "z"}, cmp.Right)
}

func TestParser_NotBindsTighterThanAndOr(t *testing.T) {
	// !a && b  ==  (!a) && b
	expr := parseOneExpr(t, "!a && b\n")
	cmp, ok := expr.(*ast.Cmp)
	require.True(t, ok)
	assert.Equal(t, ast.And, cmp.Op)
	not, ok := cmp.Left.(*ast.Not)
	require.True(t, ok, "expected !a on the left, got %T", cmp.Left)
	assert.Equal(t, &ast.Var{Name: "a"}, not.X)
}

func TestParser_NotAbsorbsComparison(t *testing.T) {
	// !a < b  ==  !(a < b)
	expr := parseOneExpr(t, "!a < b\n")
	not, ok := expr.(*ast.Not)
	require.True(t, ok, "expected top-level Not, got %T", expr)
	cmp, ok := not.X.(*ast.Cmp)
	require.True(t, ok)
	assert.Equal(t, ast.Lt, cmp.Op)
}

func TestParser_UnaryMinusBindsTighterThanPow(t *testing.T) {
	// -a^b == (-a)^b
	expr := parseOneExpr(t, "-a^b\n")
	arith, ok := expr.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, arith.Op)
	neg, ok := arith.Left.(*ast.Neg)
	require.True(t, ok, "expected (-a) on the left, got %T", arith.Left)
	assert.Equal(t, &ast.Var{Name: "a"}, neg.X)
}

func TestParser_ArithPrecedenceAndLeftAssoc(t *testing.T) {
	expr := parseOneExpr(t, "1+2*3\n")
	arith, ok := expr.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, arith.Op)
	assert.Equal(t, &ast.Const{Value: 1}, arith.Left)
	right, ok := arith.Right.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, right.Op)
}

func TestParser_PowIsLeftAssociative(t *testing.T) {
	// 2^3^2 == (2^3)^2
	expr := parseOneExpr(t, "2^3^2\n")
	outer, ok := expr.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, outer.Op)
	inner, ok := outer.Left.(*ast.Arith)
	require.True(t, ok, "expected (2^3) on the left, got %T", outer.Left)
	assert.Equal(t, ast.Pow, inner.Op)
	assert.Equal(t, &ast.Const{Value: 3}, inner.Right)
}

func TestParser_ChainedAssignIsRightAssociative(t *testing.T) {
	// x = y = 3 == x = (y = 3)
	expr := parseOneExpr(t, "x = y = 3\n")
	outer, ok := expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Name)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok, "expected (y=3) nested inside, got %T", outer.Value)
	assert.Equal(t, "y", inner.Name)
	assert.Equal(t, &ast.Const{Value: 3}, inner.Value)
}

func TestParser_CompoundAssignDesugars(t *testing.T) {
	expr := parseOneExpr(t, "x += 2\n")
	assign, ok := expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	arith, ok := assign.Value.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, arith.Op)
	assert.Equal(t, &ast.Var{Name: "x"}, arith.Left)
	assert.Equal(t, &ast.Const{Value: 2}, arith.Right)
}

func TestParser_CallArguments(t *testing.T) {
	expr := parseOneExpr(t, "f(1, n-1)\n")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, &ast.Const{Value: 1}, call.Args[0])
	assert.IsType(t, &ast.Arith{}, call.Args[1])
}

func TestParser_PreAndPostIncDec(t *testing.T) {
	pre := parseOneExpr(t, "++x\n")
	assert.Equal(t, &ast.PreOp{Name: "x", Op: ast.Incr}, pre)

	post := parseOneExpr(t, "x--\n")
	assert.Equal(t, &ast.PostOp{Name: "x", Op: ast.Decr}, post)
}

func TestParser_TrackerEmptyAfterSuccess(t *testing.T) {
	p := New("1+2*3 - f(4)\n")
	_, err := p.ParseCommand()
	require.NoError(t, err)
	assert.Equal(t, 0, p.tracker.Len())
}

func TestParser_SyntaxErrorResyncsAndTrackerIsEmpty(t *testing.T) {
	p := New("1 +\n2\n")
	cmd1, err1 := p.ParseCommand()
	require.Error(t, err1)
	assert.Nil(t, cmd1)
	var se *diag.SyntaxError
	assert.ErrorAs(t, err1, &se)
	assert.Equal(t, 0, p.tracker.Len())

	cmd2, err2 := p.ParseCommand()
	require.NoError(t, err2)
	require.NotNil(t, cmd2)
	assert.Equal(t, &ast.Const{Value: 2}, cmd2.Stmts.Stmts[0].(*ast.ExprStmt).X)
}

func TestParser_IllegalCharacterDiagnostic(t *testing.T) {
	p := New("1 @ 2\n")
	cmd, err := p.ParseCommand()
	assert.Nil(t, cmd)
	require.Error(t, err)
	var ice *diag.IllegalCharError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, "@", ice.Rendered)
}

func TestParser_BreakOutsideWhileIsSemanticError(t *testing.T) {
	p := New("break\n")
	cmd, err := p.ParseCommand()
	assert.Nil(t, cmd)
	require.Error(t, err)
	var se *diag.SemanticError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "break outside while", se.Message)
	assert.Equal(t, 0, p.tracker.Len())
}

func TestParser_DuplicateParamAndAutoName(t *testing.T) {
	p := New("define f(x) auto x { return x; }\n")
	cmd, err := p.ParseCommand()
	assert.Nil(t, cmd)
	require.Error(t, err)
	var se *diag.SemanticError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "duplicate name in parameter or auto variable list", se.Message)
}

func TestParser_FunctionDefinitionWithIfAndReturn(t *testing.T) {
	p := New("define f(n) { if (n<=1) return 1; return n*f(n-1); }\n")
	cmd, err := p.ParseCommand()
	require.NoError(t, err)
	require.NotNil(t, cmd.FuncDef)
	fn := cmd.FuncDef
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)
	require.Len(t, fn.Body.Stmts, 2)
	assert.IsType(t, &ast.If{}, fn.Body.Stmts[0])
	assert.IsType(t, &ast.Return{}, fn.Body.Stmts[1])
	assert.Equal(t, 0, p.tracker.Len())
}

func TestParser_WhileLoopBody(t *testing.T) {
	p := New("while (i<3) { i; i=i+1; }\n")
	cmd, err := p.ParseCommand()
	require.NoError(t, err)
	stmt := cmd.Stmts.Stmts[0]
	while, ok := stmt.(*ast.While)
	require.True(t, ok)
	cmp, ok := while.Cond.(*ast.Cmp)
	require.True(t, ok)
	assert.Equal(t, ast.Lt, cmp.Op)
	block, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Stmts, 2)
}

func TestParser_MultipleCommandsAcrossLines(t *testing.T) {
	p := New("1+2*3\ndefine f(n) { return n; }\nf(5)\n")

	cmd1, err1 := p.ParseCommand()
	require.NoError(t, err1)
	assert.NotNil(t, cmd1.Stmts)

	cmd2, err2 := p.ParseCommand()
	require.NoError(t, err2)
	assert.NotNil(t, cmd2.FuncDef)

	cmd3, err3 := p.ParseCommand()
	require.NoError(t, err3)
	call, ok := cmd3.Stmts.Stmts[0].(*ast.ExprStmt).X.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)

	assert.True(t, p.AtEOF())
}

func TestParser_HaltAndAssignDoNotPrintButExistAsStatements(t *testing.T) {
	assignExpr := parseOneExpr(t, "x = 3\n")
	assert.False(t, assignExpr.Displayable())

	p := New("halt\n")
	cmd, err := p.ParseCommand()
	require.NoError(t, err)
	assert.IsType(t, &ast.Halt{}, cmd.Stmts.Stmts[0])
}
