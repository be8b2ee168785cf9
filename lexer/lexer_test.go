/*
File    : go-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_SingleCharacterTokens(t *testing.T) {
	lex := NewLexer("( ) { } , . - + ; / *")
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA_DELIM,
		DOT_OP, MINUS_OP, PLUS_OP, SEMICOLON_DELIM, DIV_OP, MUL_OP,
	}
	for _, want := range expected {
		tok := lex.NextToken()
		assert.Equal(t, want, tok.Type)
	}
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

func TestLexer_OneOrTwoCharacterTokens(t *testing.T) {
	lex := NewLexer("! != = == > >= < <=")
	expected := []TokenType{
		NOT_OP, NE_OP, ASSIGN_OP, EQ_OP, GT_OP, GE_OP, LT_OP, LE_OP,
	}
	for _, want := range expected {
		tok := lex.NextToken()
		assert.Equal(t, want, tok.Type)
	}
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

func TestLexer_Keywords(t *testing.T) {
	lex := NewLexer("and class else false for fun if nil or print return super this true var while")
	expected := []TokenType{
		AND_KEY, CLASS_KEY, ELSE_KEY, FALSE_KEY, FOR_KEY, FUN_KEY, IF_KEY,
		NIL_KEY, OR_KEY, PRINT_KEY, RETURN_KEY, SUPER_KEY, THIS_KEY,
		TRUE_KEY, VAR_KEY, WHILE_KEY,
	}
	for _, want := range expected {
		tok := lex.NextToken()
		assert.Equal(t, want, tok.Type)
		assert.Equal(t, string(want), tok.Literal)
	}
}

func TestLexer_Identifiers(t *testing.T) {
	lex := NewLexer("foo _bar baz123 andika")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 4, len(tokens))
	for _, tok := range tokens {
		assert.Equal(t, IDENTIFIER_ID, tok.Type)
	}
	// "andika" starts with the keyword "and" but is a single identifier
	assert.Equal(t, "andika", tokens[3].Literal)
}

func TestLexer_NumberLiterals(t *testing.T) {
	lex := NewLexer("0 42 3.14 123.456")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 4, len(tokens))
	literals := []string{"0", "42", "3.14", "123.456"}
	for i, tok := range tokens {
		assert.Equal(t, NUMBER_LIT, tok.Type)
		assert.Equal(t, literals[i], tok.Literal)
	}
}

func TestLexer_TrailingDotIsNotPartOfNumber(t *testing.T) {
	// "1." scans as the number 1 followed by a dot token
	lex := NewLexer("1.")
	first := lex.NextToken()
	assert.Equal(t, NUMBER_LIT, first.Type)
	assert.Equal(t, "1", first.Literal)
	second := lex.NextToken()
	assert.Equal(t, DOT_OP, second.Type)
}

func TestLexer_LeadingDotIsNotPartOfNumber(t *testing.T) {
	lex := NewLexer(".5")
	first := lex.NextToken()
	assert.Equal(t, DOT_OP, first.Type)
	second := lex.NextToken()
	assert.Equal(t, NUMBER_LIT, second.Type)
	assert.Equal(t, "5", second.Literal)
}

func TestLexer_StringLiteral(t *testing.T) {
	lex := NewLexer(`"hello world"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	// The payload is the raw contents, without the quotes
	assert.Equal(t, "hello world", tok.Literal)
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

func TestLexer_MultilineStringAdvancesLineCounter(t *testing.T) {
	lex := NewLexer("\"line one\nline two\"\nfoo")
	str := lex.NextToken()
	assert.Equal(t, STRING_LIT, str.Type)
	assert.Equal(t, "line one\nline two", str.Literal)

	ident := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, ident.Type)
	assert.Equal(t, 3, ident.Line)
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"never closed`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}

func TestLexer_CommentsAreDiscarded(t *testing.T) {
	src := `// leading comment
var x = 1; // trailing comment
// another`
	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, VAR_KEY, tokens[0].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[1].Type)
	assert.Equal(t, ASSIGN_OP, tokens[2].Type)
	assert.Equal(t, NUMBER_LIT, tokens[3].Type)
	assert.Equal(t, SEMICOLON_DELIM, tokens[4].Type)
}

func TestLexer_LineTracking(t *testing.T) {
	lex := NewLexer("one\ntwo\nthree")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
	third := lex.NextToken()
	assert.Equal(t, 3, third.Line)
}

func TestLexer_InvalidCharacter(t *testing.T) {
	lex := NewLexer("@")
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

func TestLexer_EmptySource(t *testing.T) {
	lex := NewLexer("")
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	// EOF is sticky
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}
