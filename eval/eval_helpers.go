/*
File    : go-lox/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"
	"testing"

	"github.com/akashmaji946/go-lox/objects"
)

// IsError checks if a LoxObject represents a runtime error.
//
// This helper is used throughout the evaluator to detect error objects and
// enable early termination: when an error is detected it is propagated up
// rather than evaluated further.
//
// Example usage:
//
//	result := e.Eval(node)
//	if IsError(result) {
//	    return result  // Propagate error up
//	}
func IsError(obj objects.LoxObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// IsTruthy reports the truthiness of a value.
//
// Only nil and false are falsy; every other value is truthy, including the
// number zero, the empty string, and every callable.
func IsTruthy(obj objects.LoxObject) bool {
	switch obj := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return obj.Value
	default:
		return true
	}
}

// loxEquals implements value equality for == and !=.
//
// Equality is structural for numbers, strings, booleans and nil, and values
// of different kinds are never equal. Number equality is IEEE-754 equality,
// so NaN is not equal to itself. Callables (user functions and builtins)
// are never equal to anything, including themselves.
func loxEquals(a, b objects.LoxObject) bool {
	if a.GetType() != b.GetType() {
		return false
	}
	switch a := a.(type) {
	case *objects.Nil:
		return true
	case *objects.Number:
		return a.Value == b.(*objects.Number).Value
	case *objects.String:
		return a.Value == b.(*objects.String).Value
	case *objects.Boolean:
		return a.Value == b.(*objects.Boolean).Value
	default:
		// Functions and builtins compare unequal even to themselves
		return false
	}
}

// UnwrapReturnValue extracts the actual value from a ReturnValue wrapper.
//
// Return statements create ReturnValue wrappers to signal early termination;
// once evaluation has exited the function context, the wrapper is stripped
// to recover the returned value. Non-wrapper values pass through unchanged,
// so the function is safe to call on any object.
//
// Example flow:
//
//	fun add(a, b) { return a + b; }  // Creates ReturnValue(Number(8))
//	add(5, 3)                        // UnwrapReturnValue extracts Number(8)
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if retVal, isReturn := obj.(*objects.ReturnValue); isReturn {
		return retVal.Value
	}
	return obj
}

// AssertError is a test helper that validates error objects and their
// messages.
//
// It verifies that the object is actually an Error and that the error
// message contains the expected substring. Substring matching (rather than
// exact matching) lets tests focus on the key error information without
// being brittle to position prefixes.
//
// Example usage in tests:
//
//	result := ev.Eval(root)
//	AssertError(t, result, "Operands must be numbers.")
func AssertError(t *testing.T, obj objects.LoxObject, expected string) {
	errObj, ok := obj.(*objects.Error)
	if !ok {
		t.Errorf("not error. got=%T (%+v)", obj, obj)
		return
	}
	if !strings.Contains(errObj.Message, expected) {
		t.Errorf("wrong error message. expected to contain=%q, got=%q", expected, errObj.Message)
	}
}
