/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/std"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime objects.
//
// This method serves as the central hub of the evaluation process, routing
// each node type to its appropriate evaluation handler:
// - Literal expressions return their corresponding object values directly
// - Unary/binary/logical expressions compute and return results
// - Control flow handles if-else, loops, and return statements
// - Function declarations and calls build and invoke callables
// - Variable references and assignments consult the resolution side table
//
// The evaluation process is recursive: complex expressions are broken down
// into sub-expressions that are evaluated in turn, strictly left to right.
func (e *Evaluator) Eval(n parser.Node) objects.LoxObject {
	switch n := n.(type) {
	case *parser.RootNode:
		result := e.evalStatements(n.Statements)
		return UnwrapReturnValue(result)
	case *parser.NumberLiteralExpressionNode:
		return n.Value
	case *parser.StringLiteralExpressionNode:
		return n.Value
	case *parser.BooleanLiteralExpressionNode:
		return n.Value
	case *parser.NilLiteralExpressionNode:
		return n.Value
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(n.Expr)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoop(n)
	case *parser.FunctionStatementNode:
		return e.RegisterFunction(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	default:
		return &objects.Nil{}
	}
}

// evalIdentifierExpression resolves a variable reference to its value.
//
// If the resolver recorded a distance for this node, the value is read from
// the scope exactly that many hops up the chain; otherwise the reference is
// a global and is looked up dynamically in the global scope. Reading a name
// with no binding is a runtime error at the identifier token.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.LoxObject {
	if distance, ok := e.Locals[n]; ok {
		if obj, found := e.Scp.LookUpAt(distance, n.Name); found {
			return obj
		}
		return e.createError(n.NameToken, "Undefined variable '%s'.", n.Name)
	}
	if obj, found := e.Globals.LookUp(n.Name); found {
		return obj
	}
	return e.createError(n.NameToken, "Undefined variable '%s'.", n.Name)
}

// evalAssignmentExpression assigns a new value to an existing variable.
//
// The right-hand side is evaluated first; the target is then written either
// at the resolver-recorded distance or, for globals, dynamically in the
// global scope. Assignment never creates a binding, and the assigned value
// is the result of the expression.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) objects.LoxObject {
	val := e.Eval(n.Right)
	if IsError(val) {
		return val
	}

	if distance, ok := e.Locals[n]; ok {
		if !e.Scp.AssignAt(distance, n.Name, val) {
			return e.createError(n.NameToken, "Undefined variable '%s'.", n.Name)
		}
		return val
	}
	if !e.Globals.Assign(n.Name, val) {
		return e.createError(n.NameToken, "Undefined variable '%s'.", n.Name)
	}
	return val
}

// evalUnaryExpression evaluates unary (prefix) expressions.
//
// Supported operators:
//
//	-x : numeric negation; the operand must be a number
//	!x : logical NOT over truthiness; never errors
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		num, isNum := right.(*objects.Number)
		if !isNum {
			return e.createError(n.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !IsTruthy(right)}
	default:
		return e.createError(n.Operation, "unknown unary operator: %s", n.Operation.Literal)
	}
}

// evalBinaryExpression evaluates arithmetic, comparison and equality
// expressions. Both operands are evaluated, left first, before any type
// checking happens.
//
// Type rules:
//
//	> >= < <= - * /  : both operands must be numbers
//	+                : two numbers add, two strings concatenate, anything
//	                   else is an error (no implicit coercion)
//	== !=            : structural equality across the value types; never errors
//
// Division follows IEEE-754: dividing by zero produces an infinity or NaN,
// not an error.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	op := n.Operation

	// Equality applies to every value kind and never errors
	switch op.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: loxEquals(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !loxEquals(left, right)}
	}

	// '+' is the one overloaded operator: numbers add, strings concatenate
	if op.Type == lexer.PLUS_OP {
		leftNum, leftIsNum := left.(*objects.Number)
		rightNum, rightIsNum := right.(*objects.Number)
		if leftIsNum && rightIsNum {
			return &objects.Number{Value: leftNum.Value + rightNum.Value}
		}
		leftStr, leftIsStr := left.(*objects.String)
		rightStr, rightIsStr := right.(*objects.String)
		if leftIsStr && rightIsStr {
			return &objects.String{Value: leftStr.Value + rightStr.Value}
		}
		return e.createError(op, "Operands must be two numbers or two strings.")
	}

	// Every remaining operator requires two numbers
	leftNum, leftIsNum := left.(*objects.Number)
	rightNum, rightIsNum := right.(*objects.Number)
	if !leftIsNum || !rightIsNum {
		return e.createError(op, "Operands must be numbers.")
	}

	l := leftNum.Value
	r := rightNum.Value
	switch op.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: l - r}
	case lexer.MUL_OP:
		return &objects.Number{Value: l * r}
	case lexer.DIV_OP:
		return &objects.Number{Value: l / r}
	case lexer.GT_OP:
		return &objects.Boolean{Value: l > r}
	case lexer.GE_OP:
		return &objects.Boolean{Value: l >= r}
	case lexer.LT_OP:
		return &objects.Boolean{Value: l < r}
	case lexer.LE_OP:
		return &objects.Boolean{Value: l <= r}
	default:
		return e.createError(op, "unknown binary operator: %s", op.Literal)
	}
}

// evalLogicalExpression evaluates the short-circuiting and/or operators.
//
// The left operand always evaluates; the right operand evaluates only when
// the left does not already decide the result. The produced value is the
// deciding operand itself, not a coerced boolean:
//
//	nil or "x"    yields "x"
//	0 or "y"      yields 0 (numbers are truthy, including zero)
//	false and f() yields false without calling f
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}

	if n.Operation.Type == lexer.OR_KEY {
		if IsTruthy(left) {
			return left
		}
	} else {
		if !IsTruthy(left) {
			return left
		}
	}
	return e.Eval(n.Right)
}

// evalCallExpression evaluates a function call.
//
// The callee expression evaluates first, then the arguments strictly left to
// right. Calling a value that is neither a user function nor a builtin, or
// passing the wrong number of arguments, is a runtime error at the closing
// parenthesis of the call.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.LoxObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(n.Arguments))
	for _, argNode := range n.Arguments {
		arg := e.Eval(argNode)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return e.createError(n.ParenToken, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return e.invokeFunction(fn, args)
	case *std.Builtin:
		if len(args) != fn.ArityCount {
			return e.createError(n.ParenToken, "Expected %d arguments but got %d.", fn.ArityCount, len(args))
		}
		return fn.Callback(e, e.Writer, args...)
	default:
		return e.createError(n.ParenToken, "Can only call functions and classes.")
	}
}
