/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// MAX_CALL_ARITY is the most parameters a function may declare and the most
// arguments a call may pass. Exactly 255 is accepted; 256 is a syntax error.
const MAX_CALL_ARITY = 255

// parseExpression is the entry point for parsing expressions.
// It delegates to parseInternal with minimum precedence, allowing
// all operators to be parsed.
//
// This function uses the Pratt parsing algorithm, which handles
// operator precedence and associativity elegantly.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the core of the Pratt parsing algorithm.
// It parses expressions while respecting operator precedence.
//
// Algorithm:
//  1. Parse a prefix expression (unary operator or primary expression)
//  2. While the next operator has precedence at or above currPrecedence:
//     a. Parse the operator as an infix expression
//     b. The result becomes the new left operand
//  3. Return the final expression
//
// Left-associative operators pass their own precedence plus one when parsing
// their right operand; the right-associative assignment operator passes its
// own precedence unchanged, so "a = b = 5" nests as "a = (b = 5)".
func (par *Parser) parseInternal(currPrecedence int) ExpressionNode {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		par.addError(par.CurrToken, "unexpected token: %s", par.CurrToken.Literal)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF_TYPE && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		par.advance()
		if !has {
			par.addError(par.CurrToken, "unexpected operator: %s", par.CurrToken.Literal)
			return nil
		}
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseParenthesizedExpression parses expressions enclosed in parentheses.
// Parentheses are used for grouping and overriding operator precedence.
//
// Syntax:
//
//	(expression)
//
// Examples:
//
//	(5 + 3) * 2  - Parentheses force addition before multiplication
//	(a and b) or c
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	// we are already at the LEFT_PAREN, so just advance
	par.advance()
	paren := &ParenthesizedExpressionNode{}
	paren.Expr = par.parseExpression()
	if paren.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return paren
}

// parseNumberLiteral parses number literal expressions.
// All Lox numbers are 64-bit floats, whether written with a fractional
// part or not.
//
// Examples:
//
//	42, 3.14, 0.5
func (par *Parser) parseNumberLiteral() ExpressionNode {
	token := par.CurrToken
	val, err := strconv.ParseFloat(token.Literal, 64)
	if err != nil {
		par.addError(token, "could not parse number literal: %s", token.Literal)
		return nil
	}
	return &NumberLiteralExpressionNode{
		Token: token,
		Value: &objects.Number{Value: val},
	}
}

// parseStringLiteral parses string literal expressions.
//
// Examples:
//
//	"hello", "world"
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.String{Value: par.CurrToken.Literal},
	}
}

// parseBooleanLiteral parses boolean literal expressions.
//
// Examples:
//
//	true, false
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	token := par.CurrToken
	return &BooleanLiteralExpressionNode{
		Token: token,
		Value: &objects.Boolean{Value: token.Type == lexer.TRUE_KEY},
	}
}

// parseNilLiteral parses the nil literal.
// Nil represents the absence of a value.
func (par *Parser) parseNilLiteral() ExpressionNode {
	return &NilLiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Nil{},
	}
}

// parseIdentifierExpression parses a variable reference.
// Function calls are not handled here; the call operator is a postfix
// binary function, so any expression can be called.
//
// Examples:
//
//	x          - Variable reference
//	myFunc(3)  - parseIdentifierExpression yields myFunc, the call operator
//	             then wraps it in a CallExpressionNode
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{
		Name:      par.CurrToken.Literal,
		NameToken: par.CurrToken,
	}
}

// parseUnaryExpression parses unary (prefix) expressions.
// Unary expressions have an operator followed by an operand and nest
// right-associatively.
//
// Supported operators:
//
//	! (logical NOT)    - Produces the negated truthiness of the operand
//	- (unary minus)    - Negates numbers
//
// Examples:
//
//	!true, -5, !!ready
func (par *Parser) parseUnaryExpression() ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}

	return &UnaryExpressionNode{
		Operation: op,
		Right:     right,
	}
}

// parseBinaryExpression parses binary (infix) expressions.
// Binary expressions have the form: left operator right, and all of them
// associate to the left.
//
// Supported operators:
//
//	Arithmetic: +, -, *, /
//	Comparison: <, >, <=, >=
//	Equality:   ==, !=
//
// Examples:
//
//	5 + 3, a * b, x <= 2, y != nil
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}

	return &BinaryExpressionNode{
		Left:      left,
		Operation: op,
		Right:     right,
	}
}

// parseLogicalExpression parses the short-circuiting and/or operators.
// The node is distinct from BinaryExpressionNode because evaluation of the
// right operand is conditional and the result is an operand value, not a
// coerced boolean.
//
// Examples:
//
//	a or b, ready and go()
func (par *Parser) parseLogicalExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}

	return &LogicalExpressionNode{
		Left:      left,
		Operation: op,
		Right:     right,
	}
}

// parseAssignmentExpression parses assignment expressions.
// The left side has already been parsed as a full expression; it is a valid
// assignment target only if it is a plain variable reference. Anything else
// ("a + b = c", "(a) = 3") is reported at the '=' token.
//
// Assignment is right-associative: the right operand is parsed at the
// assignment precedence itself, so "a = b = 5" becomes "a = (b = 5)".
//
// Examples:
//
//	x = 10
//	count = count + 1
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(ASSIGN_PRIORITY)
	if right == nil {
		return nil
	}

	ident, isIdent := left.(*IdentifierExpressionNode)
	if !isIdent {
		par.addError(op, "Invalid assignment target.")
		return nil
	}

	return &AssignmentExpressionNode{
		Name:      ident.Name,
		NameToken: ident.NameToken,
		Operation: op,
		Right:     right,
	}
}

// parseCallExpression parses function call expressions.
// The call operator is postfix, so the callee is whatever expression was
// parsed to its left: a name, a grouping, or another call.
//
// Syntax:
//
//	callee(arg1, arg2, ...)
//	callee()  (no arguments)
//
// At most 255 arguments are accepted; the 256th is a syntax error at the
// offending argument.
//
// Examples:
//
//	clock()
//	add(5, 3)
//	makeCounter()()
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	callNode := &CallExpressionNode{
		Callee: left,
	}

	// current token is the opening paren
	// if there are arguments, parse them
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		for {
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			callNode.Arguments = append(callNode.Arguments, arg)
			if len(callNode.Arguments) == MAX_CALL_ARITY+1 {
				par.addError(par.CurrToken, "Can't have more than 255 arguments.")
				return nil
			}
			if par.NextToken.Type == lexer.COMMA_DELIM {
				par.advance()
				par.advance()
			} else {
				break
			}
		}
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	callNode.ParenToken = par.CurrToken
	return callNode
}
