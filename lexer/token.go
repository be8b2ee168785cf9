/*
File    : go-lox/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Lox language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Lox language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / unary negation
	MUL_OP   TokenType = "*" // Multiplication
	DIV_OP   TokenType = "/" // Division

	// Comparison Operators
	GT_OP     TokenType = ">"  // Greater than
	LT_OP     TokenType = "<"  // Less than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LE_OP     TokenType = "<=" // Less than or equal to
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	NOT_OP    TokenType = "!"  // Logical NOT operator

	// Keywords
	// Language keywords for control flow and declarations
	AND_KEY    TokenType = "and"    // Logical AND (short-circuiting)
	CLASS_KEY  TokenType = "class"  // Reserved for classes (not implemented)
	ELSE_KEY   TokenType = "else"   // Conditional else keyword
	FALSE_KEY  TokenType = "false"  // Boolean false literal
	FOR_KEY    TokenType = "for"    // For loop keyword
	FUN_KEY    TokenType = "fun"    // Function declaration keyword
	IF_KEY     TokenType = "if"     // Conditional if keyword
	NIL_KEY    TokenType = "nil"    // Nil literal
	OR_KEY     TokenType = "or"     // Logical OR (short-circuiting)
	PRINT_KEY  TokenType = "print"  // Print statement keyword
	RETURN_KEY TokenType = "return" // Return statement keyword
	SUPER_KEY  TokenType = "super"  // Reserved for inheritance (not implemented)
	THIS_KEY   TokenType = "this"   // Reserved for methods (not implemented)
	TRUE_KEY   TokenType = "true"   // Boolean true literal
	VAR_KEY    TokenType = "var"    // Variable declaration keyword
	WHILE_KEY  TokenType = "while"  // While loop keyword

	// Identifiers and Literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined identifier (variable/function name)
	NUMBER_LIT    TokenType = "NumberLiteral" // Number literal (e.g., 42, 3.14)
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g., "hello")

	// Structural Tokens
	LEFT_PAREN  TokenType = "(" // Left parenthesis - function calls, grouping
	RIGHT_PAREN TokenType = ")" // Right parenthesis
	LEFT_BRACE  TokenType = "{" // Left brace - code blocks, scopes
	RIGHT_BRACE TokenType = "}" // Right brace

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator
	DOT_OP          TokenType = "." // Dot - reserved for property access (not implemented)
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined names).
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"and":    AND_KEY,    // Logical AND
	"class":  CLASS_KEY,  // Reserved word
	"else":   ELSE_KEY,   // Conditional else
	"false":  FALSE_KEY,  // Boolean false
	"for":    FOR_KEY,    // For loop
	"fun":    FUN_KEY,    // Function declaration
	"if":     IF_KEY,     // Conditional if
	"nil":    NIL_KEY,    // Nil literal
	"or":     OR_KEY,     // Logical OR
	"print":  PRINT_KEY,  // Print statement
	"return": RETURN_KEY, // Return from function
	"super":  SUPER_KEY,  // Reserved word
	"this":   THIS_KEY,   // Reserved word
	"true":   TRUE_KEY,   // Boolean true
	"var":    VAR_KEY,    // Variable declaration
	"while":  WHILE_KEY,  // While loop
}

// Token represents a single lexical token in the Lox source code.
// It contains the token's type, its literal string representation from the source,
// and metadata about its position in the source file (line and column numbers).
//
// For NUMBER_LIT tokens, Literal holds the digits as written in the source;
// for STRING_LIT tokens, Literal holds the raw contents between the quotes
// (the quotes themselves are not part of the payload).
//
// Example:
//
//	For the source code "var x = 123" at line 5, column 10:
//	Token{Type: VAR_KEY, Literal: "var", Line: 5, Column: 10}
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source file (1-indexed)
	Column  int       // Column number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including position.
// This constructor should be used during lexical analysis to preserve source
// location information, which is essential for error reporting.
//
// Example:
//
//	token := NewTokenWithMetadata(NUMBER_LIT, "42", 10, 5)
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Print outputs a human-readable representation of the token to standard output.
// The format is "literal:type", which shows both the actual text and its
// classification. This is primarily used for debugging.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in
// KEYWORDS_MAP. If found, it returns the corresponding keyword token type;
// otherwise, it returns IDENTIFIER_ID for a user-defined identifier.
//
// Example:
//
//	lookupIdent("if")    -> IF_KEY
//	lookupIdent("myVar") -> IDENTIFIER_ID
func lookupIdent(ident string) TokenType {
	// Check if the identifier is a keyword
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	// Not a keyword, so it's a user-defined identifier
	return IDENTIFIER_ID
}
