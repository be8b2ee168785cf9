/*
File    : go-lox/std/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"io"
	"time"

	"github.com/akashmaji946/go-lox/objects"
)

var timeMethods = []*Builtin{
	{Name: "clock", ArityCount: 0, Callback: clock}, // Seconds since the Unix epoch
}

// init registers the time methods as global builtins.
func init() {
	Builtins = append(Builtins, timeMethods...)
}

// clock returns the current wall-clock time as seconds since the Unix epoch,
// with fractional precision. It is the benchmark primitive of the language.
//
// Syntax: clock()
//
// Example:
//
//	var start = clock();
//	// ... work ...
//	print clock() - start;
func clock(rt Runtime, writer io.Writer, args ...objects.LoxObject) objects.LoxObject {
	seconds := float64(time.Now().UnixNano()) / float64(time.Second)
	return &objects.Number{Value: seconds}
}
