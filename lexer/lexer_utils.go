/*
File: go-lox/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace checks if the given byte is a whitespace character.
// Uses Unicode's definition of whitespace, which includes:
//   - Space, tab, newline, carriage return, form feed, vertical tab
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is an alphanumeric character.
// This includes both letters (a-z, A-Z) and digits (0-9).
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isDigitASCII(curr)
}

// isNumeric checks if the given byte is a numeric digit (0-9).
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals must be enclosed in double quotes ("). There are no escape
// sequences; the token payload is the raw text between the quotes. Strings
// may span multiple lines, and each newline inside the literal advances the
// line counter.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A STRING_LIT token with the string content, or INVALID_TYPE if
//     the string is not terminated before end of file
//
// Example:
//
//	Source: "hello world"
//	Returns: Token{Type: STRING_LIT, Literal: "hello world"}
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column // Position of the opening quote
	lex.Advance()                        // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote
	for lex.Current != '"' {
		// Check for unterminated string
		if lex.Current == 0 {
			return NewTokenWithMetadata(INVALID_TYPE, "\"", lex.Line, lex.Column)
		}

		// Newlines are allowed inside string literals
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // Advance moves it to 1
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), line, column)
}

// readNumber reads and tokenizes a numeric literal from the source.
// All Lox numbers are 64-bit floats; the supported source forms are a digit
// run (123) or a digit run, a dot, and another digit run (123.45). A leading
// or trailing dot is not part of the number: "1." scans as the number 1
// followed by a dot token.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A NUMBER_LIT token with the digits as written in the source
//
// Example:
//
//	Source: "123.45"
//	Returns: Token{Type: NUMBER_LIT, Literal: "123.45"}
func readNumber(lex *Lexer) Token {
	start := lex.Position
	column := lex.Column
	src := lex.Src
	n := lex.SrcLength

	i := start + 1 // already know src[start] is a digit
	for i < n && isDigitASCII(src[i]) {
		i++
	}

	// A fractional part requires a digit after the dot
	if i+1 < n && src[i] == '.' && isDigitASCII(src[i+1]) {
		i += 2
		for i < n && isDigitASCII(src[i]) {
			i++
		}
	}

	lex.Column += i - start
	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}

	return NewTokenWithMetadata(NUMBER_LIT, src[start:i], lex.Line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, function names, or language keywords.
//
// Rules:
//   - Must start with a letter (a-z, A-Z) or underscore (_)
//   - Can contain letters, digits, or underscores
//   - Keywords are identified using the lookupIdent function
//
// Example:
//
//	Source: "myVariable"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "myVariable"}
//
//	Source: "if"
//	Returns: Token{Type: IF_KEY, Literal: "if"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	lex.Advance() // already know the first character is a letter or underscore

	// Continue reading alphanumeric characters and underscores
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, column)
}
