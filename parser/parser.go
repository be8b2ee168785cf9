/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence parser)
for the Lox programming language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax
Tree (AST). It handles:
- Expressions (binary, logical, unary, literals, variables, assignments, calls)
- Statements (declarations, print, blocks, control flow, functions, returns)
- Operator precedence and associativity
- For-loop desugaring into while loops

Key Features:
- Pratt parsing algorithm for expression parsing
- Error collection with statement-level resynchronization (the parser does not
  stop at the first error; it skips to the next statement boundary and
  continues, so a single run reports every syntax error)
- Stable node identity: every AST node is allocated exactly once and never
  copied, which the resolver relies on for its side table
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and primary expressions
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/infix/postfix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []ParseError
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the expression grammar of the Lox language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]ParseError, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Number literals: 42, 3.14
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)

	// String literals: "hello"
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// Nil literal: nil
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_KEY)

	// Identifiers: variable and function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Unary operators: ! -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: + - * /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison and equality operators: > < >= <= == !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP)

	// Short-circuiting logical operators: and, or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Assignment operator: =
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Call operator (postfix): callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions
// based on the current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a semicolon next,
// and if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError(par.NextToken, "expected %s, got %s", expected, par.NextToken.Type)
		return false
	}
	return true
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the file (EOF),
// building up a RootNode that contains all the parsed statements.
//
// When a statement fails to parse, the parser resynchronizes: it discards
// tokens up to the next statement boundary (a semicolon or a statement
// keyword) and continues, so later errors are still reported. A parse with
// any errors yields no usable AST; callers must check HasErrors() before
// resolving or evaluating.
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of file
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		} else {
			par.synchronize()
		}
		par.advance()
	}

	return root
}
