/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
	"github.com/akashmaji946/go-lox/std"
)

// Evaluator holds the state for executing Lox AST nodes: the global scope,
// the cursor for the currently active scope, the resolution side table, and
// the output writer.
//
// The scope cursor moves as execution enters and leaves blocks and function
// calls; Globals never changes and is the fallback for every variable
// reference the resolver left unresolved.
type Evaluator struct {
	Globals *scope.Scope                  // The global (root) scope; holds builtins and top-level bindings
	Scp     *scope.Scope                  // Current scope for variable bindings and lexical scoping
	Locals  map[parser.ExpressionNode]int // Resolution side table: node identity -> lexical hop count
	Writer  io.Writer                     // Output writer for print statements and builtins (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance.
//
// This constructor:
// - Creates the global scope and points the cursor at it
// - Binds every registered builtin (e.g., clock) into the global scope as a
//   first-class value
// - Creates an empty resolution side table, ready for the resolver to fill
// - Sets the output writer to os.Stdout
//
// Example usage:
//
//	ev := NewEvaluator()
//	res := resolver.NewResolver(ev.Locals)
//	res.Resolve(root)
//	result := ev.Eval(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range std.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[parser.ExpressionNode]int),
		Writer:  os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for print statements and
// builtin functions.
//
// This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Custom output handling: sending output to buffers, network streams, etc.
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// RegisterFunction creates a function object for a declaration and binds it
// in the current scope.
//
// The function captures the scope that is current at the declaration site
// (not a copy of it): every later invocation chains its call scope to this
// captured scope, so closures observe subsequent mutations of the captured
// variables, and multiple closures over the same scope share state.
//
// Example:
//
//	fun add(a, b) { return a + b; }  // Creates and binds 'add'
func (e *Evaluator) RegisterFunction(n *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Name:   n.FuncName.Name,
		Params: n.FuncParams,
		Body:   n.FuncBody,
		Scp:    e.Scp, // Reference the current scope directly, not a copy
	}
	e.Scp.Bind(n.FuncName.Name, fn)
	return fn
}

// CallFunction executes a callable value with the provided arguments.
// This implements the std.Runtime interface, so builtins can call back into
// Lox functions. The callee's type and arity are checked here.
func (e *Evaluator) CallFunction(fn objects.LoxObject, args ...objects.LoxObject) objects.LoxObject {
	switch callee := fn.(type) {
	case *function.Function:
		if len(args) != callee.Arity() {
			return &objects.Error{Message: fmt.Sprintf("Expected %d arguments but got %d.", callee.Arity(), len(args))}
		}
		return e.invokeFunction(callee, args)
	case *std.Builtin:
		if len(args) != callee.ArityCount {
			return &objects.Error{Message: fmt.Sprintf("Expected %d arguments but got %d.", callee.ArityCount, len(args))}
		}
		return callee.Callback(e, e.Writer, args...)
	default:
		return &objects.Error{Message: "Can only call functions and classes."}
	}
}

// invokeFunction runs a user function's body against a fresh call scope.
//
// The fresh scope's parent is the scope the function captured at declaration
// time, never the caller's scope; the parameters are bound into it in order,
// and the body statements execute directly in it (the body block does not
// open a second scope, matching how the resolver numbered the hops).
//
// On a return statement the wrapper is caught and unwrapped here, at the
// call boundary; normal completion of the body yields nil. The caller's
// scope cursor is restored on every exit path.
func (e *Evaluator) invokeFunction(fn *function.Function, args []objects.LoxObject) objects.LoxObject {
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		callScope.Bind(param.Name, args[i])
	}

	prevScope := e.Scp
	e.Scp = callScope
	result := e.evalStatements(fn.Body.Statements)
	e.Scp = prevScope

	if IsError(result) {
		return result
	}
	if returnValue, isReturn := result.(*objects.ReturnValue); isReturn {
		return returnValue.Value
	}
	// Normal completion without a return statement yields nil
	return &objects.Nil{}
}

// createError creates a runtime error positioned at the given token.
//
// Runtime errors are ordinary values; they propagate up through evaluation
// and halt the program when they reach the top.
//
// Example usage:
//
//	return e.createError(op, "Operands must be numbers.")
func (e *Evaluator) createError(token lexer.Token, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, a...),
		Line:    token.Line,
		Column:  token.Column,
	}
}
