/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined function object in Lox.
// It captures the function's name, parameters, body, and the scope that was
// current at its declaration site.
//
// Fields:
//   - Name: The name of the function as declared in the source code.
//   - Params: The parameter identifier nodes from the declaration. These are
//     bound to argument values when the function is called; their count is
//     the function's arity.
//   - Body: The function's body block from the declaration. The node is
//     borrowed from the AST, never copied, so the resolver's side-table keys
//     stay valid across every call.
//   - Scp: The scope captured at the declaration site. Every invocation
//     chains its fresh call scope to this one, which is what makes closures
//     see (and share) the variables of their defining scope rather than the
//     caller's.
type Function struct {
	Name   string                             // Name of the function
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function object.
// This implements the objects.LoxObject interface.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// Arity returns the number of parameters the function declares.
// A call must pass exactly this many arguments.
func (f *Function) Arity() int {
	return len(f.Params)
}

// ToString returns the display string of the function.
//
// Example:
//
//	If f.Name = "add", this returns: "<fn add>"
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// ToObject returns a detailed string representation of the function,
// including its name and parameter names. This is useful for debugging and
// inspection.
//
// Example:
//
//	If f.Name = "add" and Params = ["a", "b"], this returns:
//	"<fn[add(a, b)]>"
func (f *Function) ToObject() string {
	// Build a comma-separated list of parameter names
	args := ""
	for i, param := range f.Params {
		if i > 0 {
			args += ", " // Add comma between parameters
		}
		args += param.Name
	}
	// Return the formatted function representation
	return fmt.Sprintf("<fn[%s(%s)]>", f.Name, args)
}
