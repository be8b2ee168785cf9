/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// parseStatement parses a single statement.
// This is the main dispatcher that determines what type of statement to parse
// based on the current token.
//
// Returns:
//
//	A StatementNode representing the parsed statement, or nil on a syntax
//	error (the caller resynchronizes)
//
// Supported statement types:
//   - Variable declarations (var)
//   - Print statements
//   - Block statements ({ ... })
//   - If statements
//   - While loops
//   - For loops (desugared into while loops)
//   - Function declarations (fun)
//   - Return statements
//   - Expression statements (any expression followed by a semicolon)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {

	// var a = 10;
	case lexer.VAR_KEY:
		return par.parseDeclarativeStatement()

	// print a;
	case lexer.PRINT_KEY:
		return par.parsePrintStatement()

	// {.....}
	case lexer.LEFT_BRACE:
		block := par.parseBlockStatement()
		if block == nil {
			return nil
		}
		return block

	case lexer.IF_KEY:
		return par.parseIfStatement()

	case lexer.WHILE_KEY:
		return par.parseWhileLoop()

	case lexer.FOR_KEY:
		return par.parseForLoop()

	case lexer.FUN_KEY:
		return par.parseFunctionStatement()

	case lexer.RETURN_KEY:
		return par.parseReturnStatement()

	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses an expression used as a statement.
//
// Syntax:
//
//	expression;
//
// Examples:
//
//	counter();
//	x = x + 1;
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}

// parseDeclarativeStatement parses variable declaration statements.
//
// Syntax:
//
//	var identifier = expression;
//	var identifier;                (initializer omitted, starts nil)
//
// Redeclaring a name that already exists in the same scope is permitted and
// simply rebinds it.
//
// Examples:
//
//	var x = 10;
//	var name;
func (par *Parser) parseDeclarativeStatement() StatementNode {
	varToken := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	identifier := par.CurrToken

	var expr ExpressionNode
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // move to =
		par.advance() // move past =
		expr = par.parseExpression()
		if expr == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}

	return &DeclarativeStatementNode{
		VarToken:   varToken,
		Identifier: IdentifierExpressionNode{Name: identifier.Literal, NameToken: identifier},
		Expr:       expr,
	}
}

// parsePrintStatement parses print statements.
//
// Syntax:
//
//	print expression;
//
// Examples:
//
//	print "hello";
//	print 1 + 2 * 3;
func (par *Parser) parsePrintStatement() StatementNode {
	printToken := par.CurrToken
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &PrintStatementNode{
		PrintToken: printToken,
		Expr:       expr,
	}
}

// parseBlockStatement parses block statements (code blocks).
// A block is a sequence of statements enclosed in curly braces; it opens a
// fresh lexical scope at runtime.
//
// Syntax:
//
//	{ statement1 statement2 ... }
//
// Examples:
//
//	{ var x = 5; print x; }
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{}
	block.Statements = make([]StatementNode, 0)
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			par.synchronize()
		}
		par.advance()
	}

	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError(par.CurrToken, "expected %s, got %s", lexer.RIGHT_BRACE, par.CurrToken.Type)
		return nil
	}

	return block
}

// parseIfStatement parses if statements with an optional else branch.
// The branches are arbitrary statements; a dangling else binds to the
// nearest if.
//
// Syntax:
//
//	if (condition) statement
//	if (condition) statement else statement
//
// Examples:
//
//	if (x > 0) print "positive";
//	if (x > 0) { print "positive"; } else { print "non-positive"; }
func (par *Parser) parseIfStatement() StatementNode {
	ifToken := par.CurrToken
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	thenBranch := par.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch StatementNode
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // move to else
		par.advance() // move past else
		elseBranch = par.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}

	return &IfStatementNode{
		IfToken:    ifToken,
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}
}

// parseWhileLoop parses while loop statements.
//
// Syntax:
//
//	while (condition) statement
//
// Examples:
//
//	while (x < 10) { x = x + 1; }
func (par *Parser) parseWhileLoop() StatementNode {
	whileToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileLoopStatementNode{
		WhileToken: whileToken,
		Condition:  condition,
		Body:       body,
	}
}

// parseForLoop parses a for loop and desugars it into a while loop.
// There is no for node in the AST.
//
// Syntax:
//
//	for (initializer; condition; update) statement
//
// All three header slots are optional. The desugaring:
//
//	for (I; C; U) S   becomes   { I; while (C) { S U; } }
//
// where a missing C becomes the literal true, the update statement is
// appended to the loop body only if U was present, and the outer block is
// elided if I was absent.
//
// Examples:
//
//	for (var i = 0; i < 4; i = i + 1) { s = s + i; }
//	for (;;) print "forever";
func (par *Parser) parseForLoop() StatementNode {
	forToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	// Initializer: a var declaration, an expression statement, or just ';'
	var initializer StatementNode
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // consume the lone ';'
	} else {
		par.advance()
		if par.CurrToken.Type == lexer.VAR_KEY {
			initializer = par.parseDeclarativeStatement()
		} else {
			initializer = par.parseExpressionStatement()
		}
		if initializer == nil {
			return nil
		}
	}

	// Condition: empty means loop forever
	var condition ExpressionNode
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		par.advance()
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}

	// Update: runs after each iteration of the body
	var update ExpressionNode
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		update = par.parseExpression()
		if update == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar: append the update to the body, wrap in while, prepend the
	// initializer in an enclosing block
	if update != nil {
		body = &BlockStatementNode{
			Statements: []StatementNode{body, &ExpressionStatementNode{Expr: update}},
		}
	}

	if condition == nil {
		trueToken := lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", forToken.Line, forToken.Column)
		condition = &BooleanLiteralExpressionNode{
			Token: trueToken,
			Value: &objects.Boolean{Value: true},
		}
	}

	var loop StatementNode = &WhileLoopStatementNode{
		WhileToken: forToken,
		Condition:  condition,
		Body:       body,
	}

	if initializer != nil {
		loop = &BlockStatementNode{
			Statements: []StatementNode{initializer, loop},
		}
	}

	return loop
}

// parseFunctionStatement parses named function declarations.
//
// Syntax:
//
//	fun functionName(param1, param2, ...) { body }
//
// At most 255 parameters are accepted; the 256th is a syntax error at the
// offending parameter.
//
// Examples:
//
//	fun add(a, b) { return a + b; }
//	fun greet() { print "Hello!"; }
func (par *Parser) parseFunctionStatement() StatementNode {
	funcNode := &FunctionStatementNode{
		FunToken:   par.CurrToken,
		FuncParams: make([]*IdentifierExpressionNode, 0),
	}
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	funcNode.FuncName = IdentifierExpressionNode{
		Name:      par.CurrToken.Literal,
		NameToken: par.CurrToken,
	}
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	// Handle empty parameters case
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		// First parameter
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		funcNode.FuncParams = append(funcNode.FuncParams, &IdentifierExpressionNode{
			Name:      par.CurrToken.Literal,
			NameToken: par.CurrToken,
		})

		// Subsequent parameters
		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance() // Consume comma
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			funcNode.FuncParams = append(funcNode.FuncParams, &IdentifierExpressionNode{
				Name:      par.CurrToken.Literal,
				NameToken: par.CurrToken,
			})
			if len(funcNode.FuncParams) == MAX_CALL_ARITY+1 {
				par.addError(par.CurrToken, "Can't have more than 255 parameters.")
				return nil
			}
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}
	funcNode.FuncBody = body
	return funcNode
}

// parseReturnStatement parses return statements.
//
// Syntax:
//
//	return expression;
//	return;              (yields nil)
//
// Examples:
//
//	return 42;
//	return x + y;
func (par *Parser) parseReturnStatement() StatementNode {
	returnToken := par.CurrToken

	var expr ExpressionNode
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // consume the ';'
	} else {
		par.advance()
		expr = par.parseExpression()
		if expr == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
			return nil
		}
	}

	return &ReturnStatementNode{
		ReturnToken: returnToken,
		Expr:        expr,
	}
}
