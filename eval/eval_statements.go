/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalStatements evaluates a sequence of statements in order, with early
// termination support.
//
// Two control-flow behaviors are implemented here:
//  1. Error propagation: if any statement produces an error, evaluation stops
//     immediately and the error is returned
//  2. Return handling: if any statement produces a ReturnValue, evaluation
//     stops and the wrapper is propagated outward (it is unwrapped only at
//     the enclosing function-call boundary)
//
// For normal execution, the method continues through all statements and
// returns the result of the last one, or Nil for an empty list.
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.LoxObject {
	var result objects.LoxObject = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.Eval(stmt)

		if IsError(result) {
			return result
		}
		// Stop evaluation if we hit a return statement
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates a block in a fresh lexical scope.
//
// The scope is pushed on entry and popped on every exit path, including
// early exits through return wrappers and runtime errors, which travel as
// ordinary result values. The push/pop pairing is what keeps resolver hop
// counts aligned with the runtime scope chain.
//
// Example:
//
//	{
//	    var x = 10;   // lives only inside this block
//	    print x;
//	}
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.LoxObject {
	prevScope := e.Scp
	e.Scp = scope.NewScope(prevScope)
	result := e.evalStatements(n.Statements)
	e.Scp = prevScope
	return result
}

// evalDeclarativeStatement handles variable declarations.
//
// The initializer is evaluated first (or nil is used if it was omitted), then
// the name is bound in the current scope. Redeclaring a name in the same
// scope silently rebinds it.
//
// Example:
//
//	var x = 10;
//	var y;        // bound to nil
func (e *Evaluator) evalDeclarativeStatement(n *parser.DeclarativeStatementNode) objects.LoxObject {
	var val objects.LoxObject = &objects.Nil{}
	if n.Expr != nil {
		val = e.Eval(n.Expr)
		if IsError(val) {
			return val
		}
	}
	e.Scp.Bind(n.Identifier.Name, val)
	return val
}

// evalPrintStatement evaluates the expression and writes its display string
// to the evaluator's writer, followed by a newline.
//
// Example:
//
//	print 1 + 2;   // writes "3\n"
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.LoxObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}
	fmt.Fprintln(e.Writer, val.ToString())
	return &objects.Nil{}
}

// evalIfStatement evaluates if-else conditional statements.
//
// The condition is evaluated once and checked for truthiness (everything is
// truthy except nil and false); the chosen branch's result is returned so
// return wrappers and errors keep propagating.
//
// Example:
//
//	if (x > 10) print "big"; else print "small";
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.LoxObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if IsTruthy(condition) {
		return e.Eval(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return e.Eval(n.ElseBranch)
	}
	return &objects.Nil{}
}

// evalWhileLoop evaluates while loops (including desugared for loops).
//
// The condition is re-evaluated before each iteration. A return wrapper or
// error produced by the body unwinds the loop immediately.
//
// Example:
//
//	while (x < 10) { x = x + 1; }
func (e *Evaluator) evalWhileLoop(n *parser.WhileLoopStatementNode) objects.LoxObject {
	for {
		condition := e.Eval(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !IsTruthy(condition) {
			break
		}

		result := e.Eval(n.Body)
		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
	return &objects.Nil{}
}

// evalReturnStatement evaluates the optional value (nil when absent) and
// wraps it in a ReturnValue, which unwinds statement evaluation out to the
// enclosing function-call boundary.
//
// Example:
//
//	return x + y;
//	return;        // yields nil
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.LoxObject {
	var val objects.LoxObject = &objects.Nil{}
	if n.Expr != nil {
		val = e.Eval(n.Expr)
		if IsError(val) {
			return val
		}
	}
	return &objects.ReturnValue{Value: val}
}
