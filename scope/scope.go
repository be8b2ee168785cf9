/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function body, braces) has its own scope
//
// The parent pointer is the scope's lexical ancestor, which for a function-call
// scope is the scope captured at the function's declaration site, not the
// caller's scope. The resolver computes, for every variable reference, the
// number of ancestor hops to the scope holding the binding; LookUpAt and
// AssignAt follow exactly that many hops without any fallback search.
//
// Scopes are garbage-collected Go values: a scope stays alive for as long as a
// function object captures it, which is exactly the lifetime closure semantics
// require.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing lexical scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Example usage:
//
//	globalScope := NewScope(nil)            // Create global scope
//	functionScope := NewScope(globalScope)  // Create function scope
//	blockScope := NewScope(functionScope)   // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the dynamic variable resolution used for global
// (unresolved) names:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.LoxObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a variable binding in the current scope only.
//
// This is the `var` declaration operation: it inserts or overwrites the name
// in this scope without touching parents, so shadowing an outer variable and
// silently redefining a name in the same scope are both permitted.
//
// Returns:
//   - bool: true if the variable already existed in THIS scope (redefinition)
func (s *Scope) Bind(varName string, obj objects.LoxObject) bool {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return has
}

// Assign updates an existing variable in the scope where it was defined.
//
// Unlike Bind (which creates new bindings in the current scope), Assign:
// 1. Searches for the variable in the current scope
// 2. If found, updates it in place
// 3. If not found, recursively searches parent scopes
// 4. Updates the variable in the scope where it was originally defined
//
// Assignment never creates a binding; assigning to an undefined name fails.
//
// Returns:
//   - bool: true if the variable was found and updated, false otherwise
func (s *Scope) Assign(varName string, obj objects.LoxObject) bool {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// Ancestor follows exactly distance parent hops from this scope.
//
// The resolver guarantees the hop count is valid for every reference it
// resolves, so a nil result indicates a resolver/evaluator mismatch rather
// than a user error.
func (s *Scope) Ancestor(distance int) *Scope {
	scp := s
	for i := 0; i < distance && scp != nil; i++ {
		scp = scp.Parent
	}
	return scp
}

// LookUpAt reads a variable from the scope exactly distance hops up the chain.
//
// There is no fallback search: the resolver has already determined which
// scope holds the binding, and this method goes straight to it. This is what
// makes closure reads stable even when a later declaration shadows the name
// in an intervening scope.
//
// Returns:
//   - objects.LoxObject: The value bound at that scope (if present)
//   - bool: true if the binding exists in exactly that scope
func (s *Scope) LookUpAt(distance int, varName string) (objects.LoxObject, bool) {
	scp := s.Ancestor(distance)
	if scp == nil || scp.Variables == nil {
		return nil, false
	}
	obj, ok := scp.Variables[varName]
	return obj, ok
}

// AssignAt writes a variable in the scope exactly distance hops up the chain.
//
// Like LookUpAt, this performs no search; the target scope is the one the
// resolver computed for the assignment's name.
//
// Returns:
//   - bool: true if the binding existed in exactly that scope and was updated
func (s *Scope) AssignAt(distance int, varName string, obj objects.LoxObject) bool {
	scp := s.Ancestor(distance)
	if scp == nil || scp.Variables == nil {
		return false
	}
	if _, ok := scp.Variables[varName]; !ok {
		return false
	}
	scp.Variables[varName] = obj
	return true
}
