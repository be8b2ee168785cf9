/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
)

// runProgram drives the full pipeline for src: parse, resolve, evaluate.
// It returns the final result object and everything the program printed.
// Parse and static errors fail the test; runtime errors come back as the
// result object for the caller to inspect.
func runProgram(t *testing.T, src string) (objects.LoxObject, string) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	ev := NewEvaluator()
	var buf bytes.Buffer
	ev.SetWriter(&buf)

	res := resolver.NewResolver(ev.Locals)
	res.Resolve(root)
	require.False(t, res.HasErrors(), "unexpected static errors: %v", res.GetErrors())

	result := ev.Eval(root)
	return result, buf.String()
}

func TestEvaluator_ArithmeticAndDisplay(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print 1 + 2;`, "3\n"},
		{`print 7 - 10;`, "-3\n"},
		{`print 3 * 4;`, "12\n"},
		{`print 10 / 4;`, "2.5\n"},
		{`print 1 + 2 * 3 + 4;`, "11\n"},
		{`print (1 + 2) * 3;`, "9\n"},
		{`print -5 + 3;`, "-2\n"},
		{`print 0.1 * 10;`, "1\n"},
		{`print 3.14;`, "3.14\n"},
	}
	for _, tt := range tests {
		_, out := runProgram(t, tt.src)
		assert.Equal(t, tt.expected, out, "program: %s", tt.src)
	}
}

func TestEvaluator_NumbersDisplayWithoutTrailingPointZero(t *testing.T) {
	_, out := runProgram(t, `print 4 / 2; print 2.5 + 2.5;`)
	assert.Equal(t, "2\n5\n", out)
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	_, out := runProgram(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestEvaluator_ComparisonOperators(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print 1 < 2;`, "true\n"},
		{`print 2 <= 2;`, "true\n"},
		{`print 3 > 4;`, "false\n"},
		{`print 4 >= 5;`, "false\n"},
	}
	for _, tt := range tests {
		_, out := runProgram(t, tt.src)
		assert.Equal(t, tt.expected, out, "program: %s", tt.src)
	}
}

func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print 1 == 1;`, "true\n"},
		{`print 1 == 2;`, "false\n"},
		{`print 1 != 2;`, "true\n"},
		{`print "a" == "a";`, "true\n"},
		{`print "a" == "b";`, "false\n"},
		{`print true == true;`, "true\n"},
		{`print nil == nil;`, "true\n"},
		// cross-kind comparisons are false, never errors
		{`print 1 == "1";`, "false\n"},
		{`print nil == false;`, "false\n"},
		{`print 0 == false;`, "false\n"},
	}
	for _, tt := range tests {
		_, out := runProgram(t, tt.src)
		assert.Equal(t, tt.expected, out, "program: %s", tt.src)
	}
}

func TestEvaluator_NaNIsNotEqualToItself(t *testing.T) {
	_, out := runProgram(t, `var nan = 0 / 0; print nan == nan;`)
	assert.Equal(t, "false\n", out)
}

func TestEvaluator_DivisionByZeroIsNotAnError(t *testing.T) {
	result, out := runProgram(t, `var inf = 1 / 0; print inf > 1000000; print 0 - 1 / 0 < 0;`)
	assert.False(t, IsError(result))
	assert.Equal(t, "true\ntrue\n", out)
}

func TestEvaluator_FunctionsAreNeverEqual(t *testing.T) {
	_, out := runProgram(t, `fun f() { return 1; } print f == f; print f != f; print clock == clock;`)
	assert.Equal(t, "false\ntrue\nfalse\n", out)
}

func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print !nil;`, "true\n"},
		{`print !false;`, "true\n"},
		{`print !true;`, "false\n"},
		{`print !0;`, "false\n"},     // zero is truthy
		{`print !"";`, "false\n"},    // the empty string is truthy
		{`print !clock;`, "false\n"}, // callables are truthy
	}
	for _, tt := range tests {
		_, out := runProgram(t, tt.src)
		assert.Equal(t, tt.expected, out, "program: %s", tt.src)
	}
}

func TestEvaluator_LogicalOperatorsReturnOperandValues(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print nil or "x";`, "x\n"},
		{`print 0 or "y";`, "0\n"}, // zero is truthy, so it decides the or
		{`print false or 2;`, "2\n"},
		{`print 1 and 2;`, "2\n"},
		{`print nil and 2;`, "nil\n"},
		{`print false and 2;`, "false\n"},
	}
	for _, tt := range tests {
		_, out := runProgram(t, tt.src)
		assert.Equal(t, tt.expected, out, "program: %s", tt.src)
	}
}

func TestEvaluator_LogicalOperatorsShortCircuit(t *testing.T) {
	// 'crash' is undefined; evaluating it would be a runtime error, so
	// these only pass if the right side is skipped
	result, out := runProgram(t, `print false and crash; print true or crash;`)
	assert.False(t, IsError(result))
	assert.Equal(t, "false\ntrue\n", out)
}

func TestEvaluator_VariableDeclarationAndAssignment(t *testing.T) {
	_, out := runProgram(t, `var x = 1; x = x + 1; print x;`)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_UninitializedVariableIsNil(t *testing.T) {
	_, out := runProgram(t, `var x; print x;`)
	assert.Equal(t, "nil\n", out)
}

func TestEvaluator_AssignmentIsAnExpression(t *testing.T) {
	_, out := runProgram(t, `var a = 1; var b = 2; print a = b = 7; print a; print b;`)
	assert.Equal(t, "7\n7\n7\n", out)
}

func TestEvaluator_BlockScopingAndShadowing(t *testing.T) {
	_, out := runProgram(t, `var a = "global"; { var a = "local"; print a; } print a;`)
	assert.Equal(t, "local\nglobal\n", out)
}

func TestEvaluator_BlockAssignmentReachesOuterScope(t *testing.T) {
	_, out := runProgram(t, `var a = 1; { a = 2; } print a;`)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_IfElse(t *testing.T) {
	_, out := runProgram(t, `if (1 < 2) print "then"; else print "else";`)
	assert.Equal(t, "then\n", out)

	_, out = runProgram(t, `if (1 > 2) print "then"; else print "else";`)
	assert.Equal(t, "else\n", out)

	_, out = runProgram(t, `if (nil) print "then";`)
	assert.Equal(t, "", out)
}

func TestEvaluator_WhileLoop(t *testing.T) {
	_, out := runProgram(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvaluator_ForLoopDesugaring(t *testing.T) {
	_, out := runProgram(t, `var s = 0; for (var i = 0; i < 4; i = i + 1) { s = s + i; } print s;`)
	assert.Equal(t, "6\n", out)
}

func TestEvaluator_FunctionCallAndReturn(t *testing.T) {
	_, out := runProgram(t, `fun add(a, b) { return a + b; } print add(1, 2);`)
	assert.Equal(t, "3\n", out)
}

func TestEvaluator_FunctionWithoutReturnYieldsNil(t *testing.T) {
	_, out := runProgram(t, `fun noop() { 1 + 1; } print noop();`)
	assert.Equal(t, "nil\n", out)
}

func TestEvaluator_BareReturnYieldsNil(t *testing.T) {
	_, out := runProgram(t, `fun f() { return; } print f();`)
	assert.Equal(t, "nil\n", out)
}

func TestEvaluator_ReturnUnwindsNestedBlocksAndLoops(t *testing.T) {
	_, out := runProgram(t, `fun f() { while (true) { return 42; } } print f();`)
	assert.Equal(t, "42\n", out)
}

func TestEvaluator_Recursion(t *testing.T) {
	_, out := runProgram(t, `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);`)
	assert.Equal(t, "55\n", out)
}

func TestEvaluator_MutualRecursionThroughGlobals(t *testing.T) {
	// isOdd is referenced before its declaration is evaluated; globals
	// resolve dynamically, so forward references work at top level
	_, out := runProgram(t, `
fun isEven(n) {
  if (n == 0) return true;
  return isOdd(n - 1);
}
fun isOdd(n) {
  if (n == 0) return false;
  return isEven(n - 1);
}
print isEven(10);`)
	assert.Equal(t, "true\n", out)
}

func TestEvaluator_ClosureCapturesFrameNotValue(t *testing.T) {
	_, out := runProgram(t, `
var a = "global";
{
  fun showA() { print a; }
  showA();
  var a = "block";
  showA();
}`)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestEvaluator_CounterClosure(t *testing.T) {
	_, out := runProgram(t, `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
var fresh = makeCounter();
print fresh();`)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestEvaluator_TwoClosuresShareOneFrame(t *testing.T) {
	_, out := runProgram(t, `
fun makePair() {
  var value = 0;
  fun set(v) { value = v; return nil; }
  fun get() { return value; }
  set(41);
  print get();
  value = value + 1;
  print get();
}
makePair();`)
	assert.Equal(t, "41\n42\n", out)
}

func TestEvaluator_FunctionDisplayStrings(t *testing.T) {
	_, out := runProgram(t, `fun add(a, b) { return a + b; } print add; print clock;`)
	assert.Equal(t, "<fn add>\n<native fn clock>\n", out)
}

func TestEvaluator_ClockReturnsPlausibleSeconds(t *testing.T) {
	// seconds since the epoch: positive and far past year 2000
	_, out := runProgram(t, `print clock() > 946684800;`)
	assert.Equal(t, "true\n", out)
}

func TestEvaluator_RuntimeError_UnaryOperandMustBeNumber(t *testing.T) {
	result, _ := runProgram(t, `-"abc";`)
	AssertError(t, result, "Operand must be a number.")
}

func TestEvaluator_RuntimeError_BinaryOperandsMustBeNumbers(t *testing.T) {
	tests := []string{
		`"a" < "b";`,
		`1 > nil;`,
		`true - 1;`,
		`"x" * 2;`,
	}
	for _, src := range tests {
		result, _ := runProgram(t, src)
		AssertError(t, result, "Operands must be numbers.")
	}
}

func TestEvaluator_RuntimeError_PlusRejectsMixedOperands(t *testing.T) {
	result, _ := runProgram(t, `"x" + 1;`)
	AssertError(t, result, "Operands must be two numbers or two strings.")

	result, _ = runProgram(t, `1 + "x";`)
	AssertError(t, result, "Operands must be two numbers or two strings.")
}

func TestEvaluator_RuntimeError_UndefinedVariable(t *testing.T) {
	result, _ := runProgram(t, `print ghost;`)
	AssertError(t, result, "Undefined variable 'ghost'.")

	result, _ = runProgram(t, `ghost = 1;`)
	AssertError(t, result, "Undefined variable 'ghost'.")
}

func TestEvaluator_RuntimeError_CallingANonCallable(t *testing.T) {
	result, _ := runProgram(t, `"not a function"();`)
	AssertError(t, result, "Can only call functions and classes.")

	result, _ = runProgram(t, `var x = 4; x();`)
	AssertError(t, result, "Can only call functions and classes.")
}

func TestEvaluator_RuntimeError_ArityMismatch(t *testing.T) {
	result, _ := runProgram(t, `fun f(a) { return a; } f();`)
	AssertError(t, result, "Expected 1 arguments but got 0.")

	result, _ = runProgram(t, `fun g() { return 1; } g(1, 2);`)
	AssertError(t, result, "Expected 0 arguments but got 2.")

	result, _ = runProgram(t, `clock(1);`)
	AssertError(t, result, "Expected 0 arguments but got 1.")
}

func TestEvaluator_RuntimeErrorCarriesPosition(t *testing.T) {
	result, _ := runProgram(t, "var ok = 1;\n-\"abc\";")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, 2, errObj.Line)
	assert.Contains(t, result.ToString(), "RUNTIME ERROR")
}

func TestEvaluator_RuntimeErrorHaltsExecution(t *testing.T) {
	result, out := runProgram(t, `print "before"; 1 + nil; print "after";`)
	assert.True(t, IsError(result))
	assert.Equal(t, "before\n", out)
}

func TestEvaluator_ErrorInsideCallPropagatesOut(t *testing.T) {
	result, out := runProgram(t, `
fun boom() { return 1 + nil; }
fun wrapper() { return boom(); }
print "start";
wrapper();
print "unreached";`)
	assert.True(t, IsError(result))
	assert.Equal(t, "start\n", out)
}

func TestEvaluator_EvaluationOrderIsLeftToRight(t *testing.T) {
	_, out := runProgram(t, `
fun trace(label, value) {
  print label;
  return value;
}
print trace("left", 1) + trace("right", 2);`)
	assert.Equal(t, "left\nright\n3\n", out)
}

func TestEvaluator_RedefinitionInSameScopeRebinds(t *testing.T) {
	_, out := runProgram(t, `{ var x = 1; var x = 2; print x; }`)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_CallFunctionRuntimeInterface(t *testing.T) {
	par := parser.NewParser(`fun double(n) { return n * 2; }`)
	root := par.Parse()
	require.False(t, par.HasErrors())

	ev := NewEvaluator()
	res := resolver.NewResolver(ev.Locals)
	res.Resolve(root)
	require.False(t, res.HasErrors())
	ev.Eval(root)

	fn, ok := ev.Globals.LookUp("double")
	require.True(t, ok)

	result := ev.CallFunction(fn, &objects.Number{Value: 21})
	assert.Equal(t, "42", result.ToString())

	// arity and type are checked by CallFunction as well
	AssertError(t, ev.CallFunction(fn), "Expected 1 arguments but got 0.")
	AssertError(t, ev.CallFunction(&objects.Number{Value: 1}), "Can only call functions and classes.")
}
