package object

import (
	"fmt"
	"strings"

	"github.com/voltlang/volt/internal/ast"
)

// Func is a user-defined function or method closing over the environment in
// which it was declared (spec §3/§4.5). Closure is an opaque *interp.Environment
// stored behind an interface to avoid an object<->interp import cycle.
type Func struct {
	Name    string
	Params  []ast.Param
	Body    []ast.Stmt
	Closure Environment
	// IsInit marks the implicit/explicit `init` method of a class: its
	// return value is ignored and calling it always yields the instance.
	IsInit bool
	// defClass is the class this Func was declared inside, used to resolve
	// `super` lexically; nil for a plain (non-method) function.
	defClass *Class
}

// DefClass returns the class this Func was declared as a method of, or nil
// for an ordinary function.
func (f *Func) DefClass() *Class { return f.defClass }

// SetDefClass records the declaring class, called once at class-declaration
// time (see interp.execClassDecl).
func (f *Func) SetDefClass(c *Class) { f.defClass = c }

func (*Func) Kind() Kind { return KindFunc }
func (f *Func) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s>", name)
}

// Environment is the subset of interp.Environment that object.Func needs in
// order to remain a self-contained value type; interp.Environment satisfies
// it structurally.
type Environment interface {
	Define(name string, val Value)
	Get(name string) (Value, bool)
}

// BoundMethod pairs a Func with the Instance it was looked up on, so calling
// it sees `this` already bound (spec §4.5 method dispatch).
type BoundMethod struct {
	Receiver *Instance
	Method   *Func
}

func (*BoundMethod) Kind() Kind { return KindBoundMethod }
func (b *BoundMethod) String() string {
	return fmt.Sprintf("<bound method %s of %s>", b.Method.Name, b.Receiver.Class.Name)
}

// NativeFunc wraps a Go function as a Volt-callable builtin or stdlib entry.
type NativeFunc struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*NativeFunc) Kind() Kind       { return KindFunc }
func (n *NativeFunc) String() string { return fmt.Sprintf("<native function %s>", n.Name) }

// Class is a first-class object-system value (spec §4.7): single
// inheritance, method table shared by all instances.
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]*Func
}

func (*Class) Kind() Kind     { return KindClass }
func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

// FindMethod walks the inheritance chain starting at c, returning the first
// matching method (spec: child methods shadow parent methods).
func (c *Class) FindMethod(name string) (*Func, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// IsSubclassOf reports whether c is class or a descendant of class, used by
// isinstance() (spec §4.7).
func (c *Class) IsSubclassOf(class *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == class {
			return true
		}
	}
	return false
}

// Instance is reference-shared (spec §3): attribute mutation is visible
// through every alias of the same instance. FieldOrder records first-assignment
// order so the no-toString fallback rendering is deterministic.
type Instance struct {
	Class      *Class
	Fields     map[string]Value
	FieldOrder []string
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: map[string]Value{}}
}

// SetField assigns a field, recording first-assignment order.
func (i *Instance) SetField(name string, val Value) {
	if _, exists := i.Fields[name]; !exists {
		i.FieldOrder = append(i.FieldOrder, name)
	}
	i.Fields[name] = val
}

func (*Instance) Kind() Kind { return KindInstance }

// String renders via the instance's own toString() method when present
// (resolved by the evaluator, not here, since that requires invoking Volt
// code); this fallback covers instances with no toString, per the
// field-assignment-order resolution of the corresponding Open Question:
// `ClassName(field1=val1, field2=val2, ...)` in first-assignment order. The
// evaluator overrides this whenever a toString method exists.
func (i *Instance) String() string {
	parts := make([]string, 0, len(i.FieldOrder))
	for _, k := range i.FieldOrder {
		parts = append(parts, fmt.Sprintf("%s=%s", k, i.Fields[k].String()))
	}
	return fmt.Sprintf("%s(%s)", i.Class.Name, strings.Join(parts, ", "))
}

// Module is a namespace of native bindings (spec §4.9 stdlib modules).
type Module struct {
	Name    string
	Members map[string]Value
}

func (*Module) Kind() Kind     { return KindModule }
func (m *Module) String() string { return fmt.Sprintf("<module %s>", m.Name) }
