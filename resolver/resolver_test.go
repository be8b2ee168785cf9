/*
File    : go-lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-lox/parser"
)

// resolveProgram parses and resolves src, returning the side table and the
// resolver. Parse errors fail the test immediately.
func resolveProgram(t *testing.T, src string) (map[parser.ExpressionNode]int, *Resolver, *parser.RootNode) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	locals := make(map[parser.ExpressionNode]int)
	res := NewResolver(locals)
	res.Resolve(root)
	return locals, res, root
}

func TestResolver_GlobalReferencesAreNotTracked(t *testing.T) {
	locals, res, _ := resolveProgram(t, `var a = 1; print a; a = 2;`)
	assert.False(t, res.HasErrors())
	// top-level names fall through to dynamic global lookup
	assert.Equal(t, 0, len(locals))
}

func TestResolver_SameBlockReferenceHasDistanceZero(t *testing.T) {
	locals, res, root := resolveProgram(t, `{ var a = 1; print a; }`)
	require.False(t, res.HasErrors())

	block := root.Statements[0].(*parser.BlockStatementNode)
	printStmt := block.Statements[1].(*parser.PrintStatementNode)
	ident := printStmt.Expr.(*parser.IdentifierExpressionNode)

	distance, ok := locals[ident]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolver_NestedBlockReferenceCountsHops(t *testing.T) {
	locals, res, root := resolveProgram(t, `{ var a = 1; { { print a; } } }`)
	require.False(t, res.HasErrors())

	outer := root.Statements[0].(*parser.BlockStatementNode)
	mid := outer.Statements[1].(*parser.BlockStatementNode)
	inner := mid.Statements[0].(*parser.BlockStatementNode)
	printStmt := inner.Statements[0].(*parser.PrintStatementNode)
	ident := printStmt.Expr.(*parser.IdentifierExpressionNode)

	distance, ok := locals[ident]
	require.True(t, ok)
	assert.Equal(t, 2, distance)
}

func TestResolver_ShadowingResolvesToInnermost(t *testing.T) {
	locals, res, root := resolveProgram(t, `{ var a = 1; { var a = 2; print a; } }`)
	require.False(t, res.HasErrors())

	outer := root.Statements[0].(*parser.BlockStatementNode)
	inner := outer.Statements[1].(*parser.BlockStatementNode)
	printStmt := inner.Statements[1].(*parser.PrintStatementNode)
	ident := printStmt.Expr.(*parser.IdentifierExpressionNode)

	distance, ok := locals[ident]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolver_ParameterReferenceHasDistanceZero(t *testing.T) {
	locals, res, root := resolveProgram(t, `fun f(x) { return x; }`)
	require.False(t, res.HasErrors())

	fn := root.Statements[0].(*parser.FunctionStatementNode)
	ret := fn.FuncBody.Statements[0].(*parser.ReturnStatementNode)
	ident := ret.Expr.(*parser.IdentifierExpressionNode)

	distance, ok := locals[ident]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolver_ClosureCapturesEnclosingFunctionScope(t *testing.T) {
	locals, res, root := resolveProgram(t, `
fun outer() {
  var captured = 1;
  fun inner() {
    return captured;
  }
  return inner;
}`)
	require.False(t, res.HasErrors())

	outerFn := root.Statements[0].(*parser.FunctionStatementNode)
	innerFn := outerFn.FuncBody.Statements[1].(*parser.FunctionStatementNode)
	ret := innerFn.FuncBody.Statements[0].(*parser.ReturnStatementNode)
	ident := ret.Expr.(*parser.IdentifierExpressionNode)

	distance, ok := locals[ident]
	require.True(t, ok)
	assert.Equal(t, 1, distance)
}

func TestResolver_AssignmentTargetGetsDistance(t *testing.T) {
	locals, res, root := resolveProgram(t, `{ var a = 1; { a = 2; } }`)
	require.False(t, res.HasErrors())

	outer := root.Statements[0].(*parser.BlockStatementNode)
	inner := outer.Statements[1].(*parser.BlockStatementNode)
	exprStmt := inner.Statements[0].(*parser.ExpressionStatementNode)
	assign := exprStmt.Expr.(*parser.AssignmentExpressionNode)

	distance, ok := locals[assign]
	require.True(t, ok)
	assert.Equal(t, 1, distance)
}

// The canonical closure-stability setup: the reference inside the function
// resolves (to the global, here by absence from the table) once, and a later
// declaration in the block cannot rebind it.
func TestResolver_LaterDeclarationDoesNotCaptureEarlierFunction(t *testing.T) {
	locals, res, root := resolveProgram(t, `
var a = "global";
{
  fun showA() { print a; }
  showA();
  var a = "block";
  showA();
}`)
	require.False(t, res.HasErrors())

	block := root.Statements[1].(*parser.BlockStatementNode)
	showA := block.Statements[0].(*parser.FunctionStatementNode)
	printStmt := showA.FuncBody.Statements[0].(*parser.PrintStatementNode)
	ident := printStmt.Expr.(*parser.IdentifierExpressionNode)

	// 'a' was not in any local scope when the body was resolved, so it is
	// global: no side-table entry
	_, ok := locals[ident]
	assert.False(t, ok)

	// the calls to showA themselves are locals of the block
	call := block.Statements[1].(*parser.ExpressionStatementNode).Expr.(*parser.CallExpressionNode)
	callee := call.Callee.(*parser.IdentifierExpressionNode)
	distance, ok := locals[callee]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolver_SelfReferentialInitializerIsAStaticError(t *testing.T) {
	_, res, _ := resolveProgram(t, `{ var a = a; }`)
	require.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0].Message, "Can't read local variable in its own initializer.")
}

func TestResolver_GlobalSelfReferenceIsPermitted(t *testing.T) {
	// at top level the initializer reads whatever 'a' already means; this
	// fails at runtime, not statically
	_, res, _ := resolveProgram(t, `var a = a;`)
	assert.False(t, res.HasErrors())
}

func TestResolver_TopLevelReturnIsAStaticError(t *testing.T) {
	_, res, _ := resolveProgram(t, `return 1;`)
	require.True(t, res.HasErrors())
	err := res.GetErrors()[0]
	assert.Equal(t, "Can't return from top-level code.", err.Message)
	assert.Equal(t, 1, err.Line)
	assert.Contains(t, err.Error(), "RESOLVE ERROR")
}

func TestResolver_ReturnInsideFunctionIsFine(t *testing.T) {
	_, res, _ := resolveProgram(t, `fun f() { if (true) { return 1; } return 2; }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_FunctionNameSupportsRecursion(t *testing.T) {
	locals, res, root := resolveProgram(t, `{ fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } }`)
	require.False(t, res.HasErrors())

	block := root.Statements[0].(*parser.BlockStatementNode)
	fib := block.Statements[0].(*parser.FunctionStatementNode)
	ret := fib.FuncBody.Statements[1].(*parser.ReturnStatementNode)
	sum := ret.Expr.(*parser.BinaryExpressionNode)
	call := sum.Left.(*parser.CallExpressionNode)
	callee := call.Callee.(*parser.IdentifierExpressionNode)

	// one hop out of the function scope to the block scope holding fib
	distance, ok := locals[callee]
	require.True(t, ok)
	assert.Equal(t, 1, distance)
}

func TestResolver_RedefinitionInSameScopeIsPermitted(t *testing.T) {
	_, res, _ := resolveProgram(t, `{ var x = 1; var x = 2; print x; }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_SideTableEntriesAreWrittenOnce(t *testing.T) {
	locals, res, _ := resolveProgram(t, `{ var a = 1; print a; print a; }`)
	require.False(t, res.HasErrors())
	// two distinct reference nodes, two entries
	assert.Equal(t, 2, len(locals))
}
