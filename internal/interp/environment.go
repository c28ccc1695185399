// Package interp implements the tree-walking evaluator over the AST (spec
// §4.5): a chained-scope Environment grounded on the teacher's
// environment.go, and an Evaluator grounded on the teacher's evaluate.go,
// generalized from the teacher's single `Run`/`Evaluate` pair (no break/
// continue/throw, no classes-with-inheritance) to Volt's full statement and
// expression set, including panic/recover-based control-flow signals for
// return/break/continue/throw (spec §4.6).
package interp

import "github.com/voltlang/volt/internal/object"

// Environment is a chained lexical scope (spec §4.5); it satisfies
// object.Environment so *object.Func closures can carry one without an
// import cycle.
type Environment struct {
	parent *Environment
	values map[string]object.Value
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]object.Value, 8)}
}

// Define creates or overwrites a binding in this scope, matching the
// teacher's Environment.Define (redeclaration is allowed, not an error).
func (e *Environment) Define(name string, val object.Value) {
	e.values[name] = val
}

// Assign mutates the nearest enclosing binding, walking outward through
// parents; it reports false, changing nothing, if no such binding exists
// (execSet then defines the name in the innermost scope).
func (e *Environment) Assign(name string, val object.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, found := env.values[name]; found {
			env.values[name] = val
			return true
		}
	}
	return false
}

// Get looks up a variable, walking outward through parents.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, found := env.values[name]; found {
			return v, true
		}
	}
	return nil, false
}
