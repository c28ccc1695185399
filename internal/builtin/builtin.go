// Package builtin implements Volt's built-in method tables for strings,
// lists, and dicts (spec §4.8), grounded on the teacher's approach of a
// fixed per-kind dispatch (callable.go's Callable interface) but generalized
// from "every callable is a user function" to "every callable is either a
// user function or a native Go closure wrapped the same way."
//
// Caller lets a method like list.map(fn) invoke a Volt-level callback
// (lambda or named function) without this package importing internal/interp
// (which would create an import cycle, since interp imports builtin to serve
// member-access dispatch).
package builtin

import "github.com/voltlang/volt/internal/object"

type Caller interface {
	Call(fn object.Value, args []object.Value) (object.Value, error)
}

// native builds a NativeFunc value for a zero-arg-bound-at-dispatch method,
// matching the "dispatch yields a callable, calling it runs the method"
// shape CallExpr already expects for BoundMethod.
func native(name string, fn func(args []object.Value) (object.Value, error)) object.Value {
	return &object.NativeFunc{Name: name, Fn: fn}
}
