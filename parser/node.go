/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or analysis without switching on
// node types at every call site.
type NodeVisitor interface {
	VisitRootNode(node *RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode)   // Number literals: 42, 3.14
	VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitNilLiteralExpressionNode(node *NilLiteralExpressionNode)         // Nil literal

	// Expression visitors - handle operations and computations
	VisitBinaryExpressionNode(node *BinaryExpressionNode)               // Binary operations: + - * / > >= < <= == !=
	VisitLogicalExpressionNode(node *LogicalExpressionNode)             // Short-circuiting and/or
	VisitUnaryExpressionNode(node *UnaryExpressionNode)                 // Unary operations: - !
	VisitParenthesizedExpressionNode(node *ParenthesizedExpressionNode) // Parenthesized expressions: (expr)
	VisitIdentifierExpressionNode(node *IdentifierExpressionNode)       // Variable references: x, myVar
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode)       // Assignments: x = 10
	VisitCallExpressionNode(node *CallExpressionNode)                   // Function calls: f(a, b)

	// Statement visitors
	VisitExpressionStatementNode(node *ExpressionStatementNode) // Expression statements: expr;
	VisitPrintStatementNode(node *PrintStatementNode)           // Print statements: print expr;
	VisitDeclarativeStatementNode(node *DeclarativeStatementNode) // Variable declarations: var x = 10;
	VisitBlockStatementNode(node *BlockStatementNode)           // Code blocks: { stmt1 stmt2 }
	VisitIfStatementNode(node *IfStatementNode)                 // If-else conditionals
	VisitWhileLoopStatementNode(node *WhileLoopStatementNode)   // While loops (and desugared for loops)
	VisitFunctionStatementNode(node *FunctionStatementNode)     // Function declarations
	VisitReturnStatementNode(node *ReturnStatementNode)         // Return statements
}

// Node: base interface for all nodes of the AST
// Literal(): returns the source-text rendering of the node
// Accept(): accepts a visitor
//
// Every node is constructed exactly once by the parser and is never copied or
// rewritten afterwards; the resolver keys its side table by node pointer, so
// node identity must stay stable for the lifetime of the program.
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): source rendering of the whole program.
// The rendering is valid Lox: re-parsing it produces a structurally
// equal tree.
func (root *RootNode) Literal() string {
	parts := make([]string, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, " ")
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(root)
}

// NumberLiteralExpressionNode: represents a number literal
// Example: 42, 3.14
type NumberLiteralExpressionNode struct {
	Token lexer.Token       // The number token with its literal text
	Value objects.LoxObject // The number object value
}

func (node *NumberLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumberLiteralExpressionNode(node)
}

func (node *NumberLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode: represents a string literal in the source code
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token       // The string token; Literal holds the raw contents
	Value objects.LoxObject // The string object value
}

// Literal() re-quotes the contents so the rendering is valid source text
func (node *StringLiteralExpressionNode) Literal() string {
	return "\"" + node.Token.Literal + "\""
}

func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(node)
}

func (node *StringLiteralExpressionNode) Expression() {}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token       // The boolean token (true/false)
	Value objects.LoxObject // The boolean object value
}

func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(node)
}

func (node *BooleanLiteralExpressionNode) Expression() {}

// NilLiteralExpressionNode: represents the nil literal
type NilLiteralExpressionNode struct {
	Token lexer.Token       // The nil token
	Value objects.LoxObject // The nil object value
}

func (node *NilLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *NilLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNilLiteralExpressionNode(node)
}

func (node *NilLiteralExpressionNode) Expression() {}

// BinaryExpressionNode: represents a binary operation with two operands.
// Covers arithmetic, comparison and equality operators; the short-circuiting
// and/or operators use LogicalExpressionNode instead.
// Example: 2 + 3, x * y, a <= b, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode: represents a short-circuiting and/or expression.
// Unlike BinaryExpressionNode, the right operand is evaluated only when the
// left operand does not already decide the result, and the produced value is
// the deciding operand itself, not a coerced boolean.
// Example: a or b, ready and go()
type LogicalExpressionNode struct {
	Operation lexer.Token    // The logical operator token (and/or)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(node)
}

func (node *LogicalExpressionNode) Expression() {}

// UnaryExpressionNode: represents a unary operation with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (- or !)
	Right     ExpressionNode // The operand expression
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

func (node *UnaryExpressionNode) Expression() {}

// ParenthesizedExpressionNode: represents an expression wrapped in parentheses
// for precedence control
// Example: (2 + 3) * 4
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (node *ParenthesizedExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

func (node *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitParenthesizedExpressionNode(node)
}

func (node *ParenthesizedExpressionNode) Expression() {}

// IdentifierExpressionNode: represents a variable reference
// Example: x, myVar, clock
//
// The resolver records, for each of these nodes, how many scopes outward the
// referenced binding lives; nodes with no recorded distance resolve in the
// global scope at runtime.
type IdentifierExpressionNode struct {
	Name      string      // The identifier name
	NameToken lexer.Token // The identifier token, for error positions
}

func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(node)
}

func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode: represents a variable assignment expression.
// The target is always a plain variable name; the parser rejects any other
// assignment target. Assignment is itself an expression producing the
// assigned value.
// Example: x = 10, count = count + 1
type AssignmentExpressionNode struct {
	Name      string         // The name of the variable being assigned
	NameToken lexer.Token    // The target identifier token
	Operation lexer.Token    // The assignment operator token (=)
	Right     ExpressionNode // The expression being assigned
}

func (node *AssignmentExpressionNode) Literal() string {
	return node.Name + " " + node.Operation.Literal + " " + node.Right.Literal()
}

func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

func (node *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: represents a function call expression.
// The callee is an arbitrary expression, so chained calls like f()() and
// grouped callees like (f)() work.
// Example: myFunc(arg1, arg2), clock()
type CallExpressionNode struct {
	Callee     ExpressionNode   // The expression producing the callable
	ParenToken lexer.Token      // The closing ')' token, for error positions
	Arguments  []ExpressionNode // List of argument expressions
}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}

func (node *CallExpressionNode) Expression() {}

// ExpressionStatementNode: represents an expression used as a statement.
// The expression is evaluated and its result discarded.
// Example: counter(); x = 5;
type ExpressionStatementNode struct {
	Expr ExpressionNode // The expression to evaluate
}

func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode: represents a print statement
// Example: print "hello"; print 1 + 2;
type PrintStatementNode struct {
	PrintToken lexer.Token    // The 'print' keyword token
	Expr       ExpressionNode // The expression whose value is printed
}

func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(node)
}

func (node *PrintStatementNode) Statement() {}

// DeclarativeStatementNode: represents a variable declaration statement.
// The initializer is optional; a variable declared without one starts nil.
// Example: var x = 10; var y;
type DeclarativeStatementNode struct {
	VarToken   lexer.Token              // The 'var' keyword token
	Identifier IdentifierExpressionNode // The variable identifier being declared
	Expr       ExpressionNode           // The initialization expression, or nil
}

func (node *DeclarativeStatementNode) Literal() string {
	if node.Expr == nil {
		return "var " + node.Identifier.Name + ";"
	}
	return "var " + node.Identifier.Name + " = " + node.Expr.Literal() + ";"
}

func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(node)
}

func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: represents a block of statements enclosed in braces.
// Each block introduces a fresh lexical scope at runtime.
// Example: { var x = 5; print x; }
type BlockStatementNode struct {
	Statements []StatementNode // List of statements in the block
}

func (node *BlockStatementNode) Literal() string {
	parts := make([]string, 0, len(node.Statements)+2)
	parts = append(parts, "{")
	for _, stmt := range node.Statements {
		parts = append(parts, stmt.Literal())
	}
	parts = append(parts, "}")
	return strings.Join(parts, " ")
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

func (node *BlockStatementNode) Statement() {}

// IfStatementNode: represents an if statement with an optional else branch.
// The branches are arbitrary statements, not necessarily blocks.
// Example: if (x > 0) print x; else print "neg";
type IfStatementNode struct {
	IfToken    lexer.Token    // The 'if' keyword token
	Condition  ExpressionNode // The condition expression to evaluate
	ThenBranch StatementNode  // Statement to execute if the condition is truthy
	ElseBranch StatementNode  // Statement to execute otherwise, or nil
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

func (node *IfStatementNode) Statement() {}

// WhileLoopStatementNode: represents a while loop.
// For loops do not have their own node; the parser desugars them into a
// while loop, wrapped in a block only when the loop has an initializer.
// Example: while (x > 0) { x = x - 1; }
type WhileLoopStatementNode struct {
	WhileToken lexer.Token    // The 'while' keyword token
	Condition  ExpressionNode // The loop condition
	Body       StatementNode  // The loop body
}

func (node *WhileLoopStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

func (node *WhileLoopStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileLoopStatementNode(node)
}

func (node *WhileLoopStatementNode) Statement() {}

// FunctionStatementNode: represents a function declaration.
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	FunToken   lexer.Token                 // The 'fun' keyword token
	FuncName   IdentifierExpressionNode    // The function name identifier
	FuncParams []*IdentifierExpressionNode // Parameter identifiers, at most 255
	FuncBody   *BlockStatementNode         // The function body block
}

func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.FuncParams))
	for _, param := range node.FuncParams {
		params = append(params, param.Name)
	}
	return "fun " + node.FuncName.Name + "(" + strings.Join(params, ", ") + ") " + node.FuncBody.Literal()
}

func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(node)
}

func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: represents a return statement in a function.
// The value expression is optional; a bare return yields nil.
// Example: return x + 5; return;
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The expression to return, or nil
}

func (node *ReturnStatementNode) Literal() string {
	if node.Expr == nil {
		return "return;"
	}
	return "return " + node.Expr.Literal() + ";"
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}

func (node *ReturnStatementNode) Statement() {}
