/*
File    : go-lox/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - builtins.go
// This file defines the native function machinery of the Lox interpreter.
// Builtins are first-class values: they live in the global scope like any
// user function, can be printed, passed around, and called. They are
// registered globally during package initialization and bound into the
// evaluator's global scope when it is created.
package std

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-lox/objects"
)

// Runtime defines the interface the evaluator presents to builtins, so a
// native function can call back into Lox functions without the std package
// importing the evaluator.
type Runtime interface {
	CallFunction(fn objects.LoxObject, args ...objects.LoxObject) objects.LoxObject
}

// CallbackFunc is the function signature for builtin functions.
// It takes the runtime, an io.Writer for output, and the evaluated argument
// values, returning a LoxObject result (or an error object if something goes
// wrong). The argument count has already been checked against ArityCount by
// the time the callback runs.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.LoxObject) objects.LoxObject

// Builtin represents a native function with a name, a fixed arity, and its
// implementation callback. Builtins satisfy objects.LoxObject, so they are
// ordinary runtime values; like user functions they are never equal to
// anything under ==, not even themselves.
type Builtin struct {
	Name       string       // The name of the builtin function (e.g., "clock")
	ArityCount int          // The exact number of arguments the builtin takes
	Callback   CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() objects.LoxType {
	return objects.BuiltinType
}

// ToString returns the display string of the builtin (e.g., "<native fn clock>")
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<native fn %s>", b.Name)
}

// ToObject returns a detailed representation including type info
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<builtin(%s/%d)>", b.Name, b.ArityCount)
}

// Builtins is a global slice of pointers to Builtin structs.
// It holds all the native functions available in the language.
// Functions are added to this slice during package initialization.
var Builtins = make([]*Builtin, 0)
