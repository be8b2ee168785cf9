/*
File    : go-lox/parser/parser_error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
)

// ParseError is the carrier for a single syntax error.
// It records the message together with the source position of the token the
// parser was looking at, so diagnostics always point into the source text.
type ParseError struct {
	Message string // Description of what went wrong
	Line    int    // Line of the offending token (1-indexed)
	Column  int    // Column of the offending token (1-indexed)
}

// Error implements the error interface, rendering the positioned message.
func (pe ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] PARSER ERROR: %s", pe.Line, pe.Column, pe.Message)
}

// addError records a syntax error at the position of the given token.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
func (par *Parser) addError(token lexer.Token, format string, a ...interface{}) {
	par.Errors = append(par.Errors, ParseError{
		Message: fmt.Sprintf(format, a...),
		Line:    token.Line,
		Column:  token.Column,
	})
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing; a parse with errors produces no
// usable AST.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
func (par *Parser) GetErrors() []ParseError {
	return par.Errors
}

// synchronize discards tokens until a likely statement boundary.
//
// After a syntax error the parser's position is unreliable; blindly parsing
// on would report an avalanche of follow-on errors for a single mistake.
// Instead the parser skips forward until it sees a semicolon (end of the
// broken statement) or a keyword that starts a new statement, and resumes
// parsing there.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		// A semicolon ends the broken statement; the main loop advances past it
		if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
			return
		}
		// A statement keyword up next is a safe place to resume
		switch par.NextToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}
