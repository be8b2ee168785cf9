/*
File    : go-lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static scope-resolution pass of the Lox
// interpreter. It runs between parsing and evaluation, walking the whole
// program once and computing, for every variable reference and assignment,
// the number of lexical scopes between the reference and the binding it
// refers to. The evaluator later uses those distances to jump straight to
// the right scope instead of searching the chain, which is what makes
// closure captures stable: a variable declared after a closure was created
// can never change which binding the closure sees.
//
// Global bindings are deliberately not tracked here; references that resolve
// to no local scope are left out of the side table and fall back to dynamic
// lookup in the global scope. This keeps forward references between
// top-level functions legal.
package resolver

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
)

// FunctionType records what kind of function body the resolver is currently
// inside. It exists so `return` outside any function can be rejected
// statically.
type FunctionType int

const (
	FunctionTypeNone     FunctionType = iota // top-level code
	FunctionTypeFunction                     // inside a fun declaration
)

// ResolveError is the carrier for a single static error.
// Like parser.ParseError it records the source position of the offending
// token; static errors halt the pipeline before evaluation starts.
type ResolveError struct {
	Message string // Description of what went wrong
	Line    int    // Line of the offending token (1-indexed)
	Column  int    // Column of the offending token (1-indexed)
}

// Error implements the error interface, rendering the positioned message.
func (re ResolveError) Error() string {
	return fmt.Sprintf("[%d:%d] RESOLVE ERROR: %s", re.Line, re.Column, re.Message)
}

// Resolver holds the state of the resolution pass.
//
// The scopes stack mirrors, at analysis time, the chain of scopes the
// evaluator will push at run time: one entry per block, one per function
// body (parameters and body statements share it). Each entry maps a name to
// its readiness: false while the name's own initializer is being resolved,
// true once the binding is usable. The stack never contains the global
// scope.
//
// locals is the resolution side table. It is owned by the evaluator and
// handed to the resolver by reference, keyed by AST node identity; each
// entry is written exactly once, when the node is resolved.
type Resolver struct {
	locals   map[parser.ExpressionNode]int // node identity -> lexical hop count
	scopes   []map[string]bool             // innermost scope is the last entry
	funcType FunctionType                  // what kind of function we are inside
	Errors   []ResolveError                // collected static errors
}

// NewResolver creates a resolver that records distances into the given side
// table. Pass the evaluator's table (the Evaluator.Locals field) so the evaluator
// sees every resolution; the table may already contain entries from earlier
// runs, as in the REPL, and they are preserved.
func NewResolver(locals map[parser.ExpressionNode]int) *Resolver {
	return &Resolver{
		locals: locals,
		scopes: make([]map[string]bool, 0),
		Errors: make([]ResolveError, 0),
	}
}

// HasErrors returns true if the walk found static errors.
// A program with static errors must not be evaluated.
func (res *Resolver) HasErrors() bool {
	return len(res.Errors) > 0
}

// GetErrors returns all static errors collected during resolution.
func (res *Resolver) GetErrors() []ResolveError {
	return res.Errors
}

// addError records a static error at the position of the given token.
func (res *Resolver) addError(token lexer.Token, format string, a ...interface{}) {
	res.Errors = append(res.Errors, ResolveError{
		Message: fmt.Sprintf(format, a...),
		Line:    token.Line,
		Column:  token.Column,
	})
}

// Resolve walks the whole program in statement order.
// This is the entry point of the pass; after it returns, every local
// variable reference in the program has its distance recorded in the side
// table, and Errors holds any static violations.
func (res *Resolver) Resolve(root *parser.RootNode) {
	for _, stmt := range root.Statements {
		res.resolveStatement(stmt)
	}
}

// beginScope pushes a fresh empty scope onto the stack.
func (res *Resolver) beginScope() {
	res.scopes = append(res.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (res *Resolver) endScope() {
	res.scopes = res.scopes[:len(res.scopes)-1]
}

// declare inserts a name into the innermost scope, marked not-ready.
// At top level there is no scope to declare into; globals resolve
// dynamically. Redeclaring a name already present in the scope is permitted
// and simply resets it.
func (res *Resolver) declare(name string) {
	if len(res.scopes) == 0 {
		return
	}
	res.scopes[len(res.scopes)-1][name] = false
}

// define marks a declared name as ready for use.
func (res *Resolver) define(name string) {
	if len(res.scopes) == 0 {
		return
	}
	res.scopes[len(res.scopes)-1][name] = true
}

// resolveLocal finds the innermost scope containing name and records the hop
// count from the reference to that scope in the side table. If no local
// scope contains the name, nothing is recorded and the evaluator treats the
// reference as global.
func (res *Resolver) resolveLocal(expr parser.ExpressionNode, name string) {
	last := len(res.scopes) - 1
	for i := last; i >= 0; i-- {
		if _, ok := res.scopes[i][name]; ok {
			res.locals[expr] = last - i
			return
		}
	}
}

// resolveStatement dispatches on the statement type and recurses into
// children. Only declarations and blocks touch the scope stack; everything
// else just walks inward.
func (res *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch n := stmt.(type) {

	case *parser.DeclarativeStatementNode:
		// Declare before resolving the initializer, so a reference to the
		// name inside its own initializer is caught as not-ready
		res.declare(n.Identifier.Name)
		if n.Expr != nil {
			res.resolveExpression(n.Expr)
		}
		res.define(n.Identifier.Name)

	case *parser.FunctionStatementNode:
		// The function's own name becomes usable immediately, so the body
		// can recurse
		res.declare(n.FuncName.Name)
		res.define(n.FuncName.Name)
		res.resolveFunction(n)

	case *parser.BlockStatementNode:
		res.beginScope()
		for _, child := range n.Statements {
			res.resolveStatement(child)
		}
		res.endScope()

	case *parser.ExpressionStatementNode:
		res.resolveExpression(n.Expr)

	case *parser.PrintStatementNode:
		res.resolveExpression(n.Expr)

	case *parser.IfStatementNode:
		res.resolveExpression(n.Condition)
		res.resolveStatement(n.ThenBranch)
		if n.ElseBranch != nil {
			res.resolveStatement(n.ElseBranch)
		}

	case *parser.WhileLoopStatementNode:
		res.resolveExpression(n.Condition)
		res.resolveStatement(n.Body)

	case *parser.ReturnStatementNode:
		if res.funcType == FunctionTypeNone {
			res.addError(n.ReturnToken, "Can't return from top-level code.")
		}
		if n.Expr != nil {
			res.resolveExpression(n.Expr)
		}
	}
}

// resolveFunction resolves a function declaration's parameters and body.
// Parameters and body statements share a single scope, mirroring the single
// scope the evaluator pushes per call. The enclosing function kind is
// saved and restored so nested declarations work.
func (res *Resolver) resolveFunction(fd *parser.FunctionStatementNode) {
	enclosingFnType := res.funcType
	res.funcType = FunctionTypeFunction

	res.beginScope()
	for _, param := range fd.FuncParams {
		res.declare(param.Name)
		res.define(param.Name)
	}
	for _, stmt := range fd.FuncBody.Statements {
		res.resolveStatement(stmt)
	}
	res.endScope()

	res.funcType = enclosingFnType
}

// resolveExpression dispatches on the expression type.
// Variable references and assignment targets are the only nodes that get
// side-table entries; every other case just recurses.
func (res *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch n := expr.(type) {

	case *parser.IdentifierExpressionNode:
		// Reading a local inside its own initializer is a static error:
		// the name is declared in the innermost scope but not yet ready
		if len(res.scopes) > 0 {
			ready, declared := res.scopes[len(res.scopes)-1][n.Name]
			if declared && !ready {
				res.addError(n.NameToken, "Can't read local variable in its own initializer.")
			}
		}
		res.resolveLocal(n, n.Name)

	case *parser.AssignmentExpressionNode:
		res.resolveExpression(n.Right)
		res.resolveLocal(n, n.Name)

	case *parser.BinaryExpressionNode:
		res.resolveExpression(n.Left)
		res.resolveExpression(n.Right)

	case *parser.LogicalExpressionNode:
		res.resolveExpression(n.Left)
		res.resolveExpression(n.Right)

	case *parser.UnaryExpressionNode:
		res.resolveExpression(n.Right)

	case *parser.ParenthesizedExpressionNode:
		res.resolveExpression(n.Expr)

	case *parser.CallExpressionNode:
		res.resolveExpression(n.Callee)
		for _, arg := range n.Arguments {
			res.resolveExpression(arg)
		}

		// Literals carry no names; nothing to resolve
	}
}
