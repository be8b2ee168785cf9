/*
File    : go-lox/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the core runtime value types for the Lox language.
// It provides implementations for the primitive types (numbers, strings,
// booleans, nil), the error object used to carry runtime failures, and the
// return-value wrapper used to unwind the `return` statement. All types
// implement the LoxObject interface, which allows for type checking, string
// representation, and object inspection.
package objects

import (
	"fmt"
	"strconv"
)

// LoxType represents the type of a Lox object as a string constant.
// These constants are used to identify the type of objects in the language,
// enabling type checking and polymorphic behavior across object types.
type LoxType string

const (
	// NumberType represents 64-bit floating-point values (the only numeric type)
	NumberType LoxType = "number"
	// StringType represents string values
	StringType LoxType = "string"
	// BooleanType represents boolean (true/false) values
	BooleanType LoxType = "bool"
	// NilType represents the nil value
	NilType LoxType = "nil"
	// ErrorType represents runtime error objects with messages and positions
	ErrorType LoxType = "error"
	// FunctionType represents user-defined function objects (defined elsewhere)
	FunctionType LoxType = "func"
	// BuiltinType represents native function objects (defined elsewhere)
	BuiltinType LoxType = "builtin"
	// ReturnValueType represents the wrapper carrying a `return` payload
	ReturnValueType LoxType = "return"
)

// LoxObject is the core interface that all Lox runtime values must implement.
// It provides methods for type identification, string representation for
// display, and object inspection for debugging purposes.
type LoxObject interface {
	// GetType returns the LoxType of the object, used for type checking
	GetType() LoxType
	// ToString returns the display string of the object's value, exactly as
	// the `print` statement writes it
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and object inspection
	ToObject() string
}

// Number represents a 64-bit floating-point value in Lox.
// All Lox numbers are doubles; integral values display without a trailing
// fractional part (7, not 7.0), and the display text round-trips through the
// lexer for the integer range.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number object
func (n *Number) GetType() LoxType {
	return NumberType
}

// ToString returns the display string of the number (e.g., "42" or "3.14")
func (n *Number) ToString() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// ToObject returns a detailed representation including type info (e.g., "<number(42)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in Lox.
// It wraps a Go string and provides methods for type identification and display.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() LoxType {
	return StringType
}

// ToString returns the string value itself, with no surrounding quotes
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g., "<string(hello)>")
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Boolean represents a boolean value in Lox.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() LoxType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Nil represents the absence of a value in Lox.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() LoxType {
	return NilType
}

// ToString returns the string "nil"
func (n *Nil) ToString() string {
	return "nil"
}

// ToObject returns a detailed representation "<nil()>"
func (n *Nil) ToObject() string {
	return "<nil()>"
}

// Error represents a runtime error in Lox.
// It carries the error message together with the source position of the
// offending token, so diagnostics always point at the construct that failed.
// Errors propagate up through evaluation as ordinary values and halt the
// program when they reach the top.
type Error struct {
	Message string // The error message
	Line    int    // Line of the offending token (1-indexed)
	Column  int    // Column of the offending token (1-indexed)
}

// GetType returns the type of the Error object
func (e *Error) GetType() LoxType {
	return ErrorType
}

// ToString returns the positioned error message (e.g., "[3:7] RUNTIME ERROR: ...").
// Errors raised with no source position (builtin callbacks) omit the prefix.
func (e *Error) ToString() string {
	if e.Line == 0 {
		return fmt.Sprintf("RUNTIME ERROR: %s", e.Message)
	}
	return fmt.Sprintf("[%d:%d] RUNTIME ERROR: %s", e.Line, e.Column, e.Message)
}

// ToObject returns a detailed representation including type info
func (e *Error) ToObject() string {
	return fmt.Sprintf("<error(%s)>", e.Message)
}

// ReturnValue wraps a value produced by a `return` statement.
// It travels up through statement evaluation until the enclosing function
// call unwraps it; it must never escape past a call boundary. Wrapping the
// payload in a distinct type is what keeps a returned error-free value from
// being confused with a runtime error.
type ReturnValue struct {
	Value LoxObject // The wrapped Lox object returned from a function
}

// GetType returns ReturnValueType, so statement evaluation can detect the unwind
func (r *ReturnValue) GetType() LoxType {
	return ReturnValueType
}

// ToString returns the string representation of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToString())
}
