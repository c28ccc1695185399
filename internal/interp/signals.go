package interp

import "github.com/voltlang/volt/internal/object"

// Volt needs four distinct non-local exits (return/break/continue/throw)
// where the teacher's Lox only ever needed one (return, carried as a
// `(Object, bool)` tuple threaded through every Stmt.Run return value). Once
// a second signal kind (throw, to support try/catch/finally, spec §4.6)
// entered the picture, threading every combination through an ever-growing
// tuple stops being idiomatic; Go's panic/recover is the standard mechanism
// for unwinding an arbitrary number of stack frames to a known handler, so
// each signal is a typed value panicked by its statement and recovered by
// the nearest construct that understands it (a function call site for
// return, a loop body for break/continue, a try statement for throw).
type returnSignal struct{ Value object.Value }
type breakSignal struct{}
type continueSignal struct{}

// throwSignal carries a user-level exception value (spec §4.6's `throw
// EXPR`); it is distinct from a Go error because Volt code can catch and
// inspect it, which a plain Go panic payload normally isn't designed for.
type throwSignal struct{ Value object.Value }
