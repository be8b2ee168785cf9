/*
File    : go-lox/main/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-lox/parser"
)

const INDENT_SIZE = 4 // Number of spaces per indentation level

// PrintingVisitor is a visitor that prints AST nodes in a formatted tree
// structure. It is used by the --ast debug mode to show how a program was
// parsed, one node per line with children indented under their parent.
type PrintingVisitor struct {
	Indent int          // Current indentation level for formatting
	Buf    bytes.Buffer // Buffer to accumulate the formatted output
}

// indent writes the current indentation level to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// emit writes one formatted node line at the current indentation
func (p *PrintingVisitor) emit(kind string, detail string) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting %13s Node [%s]\n", kind, detail))
}

// VisitRootNode visits the root node and prints all statements with indentation
func (p *PrintingVisitor) VisitRootNode(node *parser.RootNode) {
	p.emit("Root", node.Literal())
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitNumberLiteralExpressionNode visits a number literal node
func (p *PrintingVisitor) VisitNumberLiteralExpressionNode(node *parser.NumberLiteralExpressionNode) {
	p.emit("Number", node.Literal())
}

// VisitStringLiteralExpressionNode visits a string literal node
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node *parser.StringLiteralExpressionNode) {
	p.emit("String", node.Literal())
}

// VisitBooleanLiteralExpressionNode visits a boolean literal node
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node *parser.BooleanLiteralExpressionNode) {
	p.emit("Boolean", node.Literal())
}

// VisitNilLiteralExpressionNode visits the nil literal node
func (p *PrintingVisitor) VisitNilLiteralExpressionNode(node *parser.NilLiteralExpressionNode) {
	p.emit("Nil", node.Literal())
}

// VisitBinaryExpressionNode visits a binary expression node and prints the
// operator with both operands indented below it
func (p *PrintingVisitor) VisitBinaryExpressionNode(node *parser.BinaryExpressionNode) {
	p.emit("Binary", node.Operation.Literal)
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitLogicalExpressionNode visits a logical and/or expression node
func (p *PrintingVisitor) VisitLogicalExpressionNode(node *parser.LogicalExpressionNode) {
	p.emit("Logical", node.Operation.Literal)
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitUnaryExpressionNode visits a unary expression node and prints the
// operator with its operand indented below it
func (p *PrintingVisitor) VisitUnaryExpressionNode(node *parser.UnaryExpressionNode) {
	p.emit("Unary", node.Operation.Literal)
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitParenthesizedExpressionNode visits a grouping node and prints the
// enclosed expression
func (p *PrintingVisitor) VisitParenthesizedExpressionNode(node *parser.ParenthesizedExpressionNode) {
	p.emit("Parenthesized", node.Literal())
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitIdentifierExpressionNode visits a variable reference node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node *parser.IdentifierExpressionNode) {
	p.emit("Identifier", node.Name)
}

// VisitAssignmentExpressionNode visits an assignment node and prints the
// target name with the assigned expression indented below it
func (p *PrintingVisitor) VisitAssignmentExpressionNode(node *parser.AssignmentExpressionNode) {
	p.emit("Assignment", node.Name)
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a call node and prints the callee and
// arguments indented below it
func (p *PrintingVisitor) VisitCallExpressionNode(node *parser.CallExpressionNode) {
	p.emit("Call", node.Literal())
	p.Indent += INDENT_SIZE
	node.Callee.Accept(p)
	for _, arg := range node.Arguments {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitExpressionStatementNode visits an expression statement node
func (p *PrintingVisitor) VisitExpressionStatementNode(node *parser.ExpressionStatementNode) {
	p.emit("ExprStatement", node.Literal())
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitPrintStatementNode visits a print statement node
func (p *PrintingVisitor) VisitPrintStatementNode(node *parser.PrintStatementNode) {
	p.emit("Print", node.Literal())
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitDeclarativeStatementNode visits a variable declaration node
func (p *PrintingVisitor) VisitDeclarativeStatementNode(node *parser.DeclarativeStatementNode) {
	p.emit("Declaration", node.Identifier.Name)
	if node.Expr != nil {
		p.Indent += INDENT_SIZE
		node.Expr.Accept(p)
		p.Indent -= INDENT_SIZE
	}
}

// VisitBlockStatementNode visits a block node and prints every contained
// statement indented below it
func (p *PrintingVisitor) VisitBlockStatementNode(node *parser.BlockStatementNode) {
	p.emit("Block", "{...}")
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIfStatementNode visits an if statement node and prints the condition
// and both branches indented below it
func (p *PrintingVisitor) VisitIfStatementNode(node *parser.IfStatementNode) {
	p.emit("If", node.Condition.Literal())
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.ThenBranch.Accept(p)
	if node.ElseBranch != nil {
		node.ElseBranch.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitWhileLoopStatementNode visits a while loop node and prints the
// condition and body indented below it
func (p *PrintingVisitor) VisitWhileLoopStatementNode(node *parser.WhileLoopStatementNode) {
	p.emit("While", node.Condition.Literal())
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitFunctionStatementNode visits a function declaration node and prints
// the body indented below it
func (p *PrintingVisitor) VisitFunctionStatementNode(node *parser.FunctionStatementNode) {
	p.emit("Function", node.FuncName.Name)
	p.Indent += INDENT_SIZE
	node.FuncBody.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits a return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node *parser.ReturnStatementNode) {
	p.emit("Return", node.Literal())
	if node.Expr != nil {
		p.Indent += INDENT_SIZE
		node.Expr.Accept(p)
		p.Indent -= INDENT_SIZE
	}
}
