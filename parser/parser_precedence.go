/*
File    : go-lox/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-lox/lexer"

// Operator precedence constants for the Lox expression grammar.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/Prefix operators
// 9. Call operator (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment operator (lowest precedence, right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	// Example: a or b or c is parsed left-to-right
	OR_PRIORITY = 20

	// Logical AND: and
	// Example: a and b binds tighter than a or b
	AND_PRIORITY = 30

	// Equality operators: == !=
	// Example: a == b, a != b
	EQUALITY_PRIORITY = 40

	// Relational operators: < > <= >=
	// Example: a < b, a >= b
	RELATIONAL_PRIORITY = 50

	// Additive operators: + -
	// Example: a + b, a - b
	PLUS_PRIORITY = 60

	// Multiplicative operators: * /
	// Example: a * b, a / b
	MUL_PRIORITY = 70

	// Unary/Prefix operators: ! -
	// Example: !a, -b
	PREFIX_PRIORITY = 80

	// Call operator (highest precedence, postfix)
	// Example: f(a), getFn()()
	CALL_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns -1 for tokens that are not operators
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Call operator - highest precedence for postfix
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < > <= >=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Logical AND: and
	case lexer.AND_KEY:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR_KEY:
		return OR_PRIORITY

	// Assignment operator (lowest precedence)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing binary expressions.
// Binary expressions have a left operand, an operator, and a right operand.
//
// Example: For "a + b", when parsing "+", the left operand "a" is passed in,
// and the function parses "b" and returns the complete "a + b" expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing unary/prefix expressions
// and primary expressions (literals, identifiers, groupings).
//
// Example: For "-5", the function parses the entire expression and returns
// a unary expression node representing the negation of 5.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
//
// This allows one parsing function to handle multiple related token types.
// For example, parseUnaryExpression handles both ! and - operators.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
//
// This allows one parsing function to handle multiple related token types.
// For example, parseBinaryExpression handles all arithmetic and comparison
// operators.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
