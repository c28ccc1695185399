// Package object implements Volt's runtime value model (spec §3): a tagged
// union of Null/Bool/Int/Float/Str/List/Dict/Func/BoundMethod/Class/Instance/
// Module, grounded on the teacher's object.go (an `Object` interface plus one
// concrete type per variant, `Type()`/`String()` methods, `IsXxx` extractor
// helpers) but generalized to Volt's richer value set: arbitrary-precision-
// flavored Int/Float split, reference-shared List/Dict/Instance, first-class
// Class/Module, and code-point (not byte) string semantics.
package object

import (
	"fmt"
	"strconv"
	"strings"

	omap "github.com/wk8/go-ordered-map/v2"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindList
	KindDict
	KindFunc
	KindBoundMethod
	KindClass
	KindInstance
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindFunc:
		return "function"
	case KindBoundMethod:
		return "bound method"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// Value is implemented by every runtime value variant.
type Value interface {
	Kind() Kind
	String() string
}

// --------------------------------------------------------------- Null/Bool

type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) String() string { return "null" }

var TheNull = Null{}

type Bool struct{ Val bool }

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(b.Val) }

var (
	True  = Bool{Val: true}
	False = Bool{Val: false}
)

func NewBool(v bool) Bool {
	if v {
		return True
	}
	return False
}

// ------------------------------------------------------------- Int/Float

type Int struct{ Val int64 }

func (Int) Kind() Kind       { return KindInt }
func (i Int) String() string { return strconv.FormatInt(i.Val, 10) }

type Float struct{ Val float64 }

func (Float) Kind() Kind { return KindFloat }
func (f Float) String() string {
	if f.Val == float64(int64(f.Val)) && !isInfOrNaN(f.Val) {
		// an integral float prints without a decimal point or exponent,
		// the same text as an Int of that value.
		return strconv.FormatFloat(f.Val, 'f', -1, 64)
	}
	return strconv.FormatFloat(f.Val, 'g', -1, 64)
}

func isInfOrNaN(f float64) bool {
	return f != f || f > 1e308 || f < -1e308
}

// ------------------------------------------------------------------- Str

// Str is an immutable, code-point indexed string (spec §3).
type Str struct {
	runes []rune
}

func NewStr(s string) Str { return Str{runes: []rune(s)} }

func (Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return string(s.runes) }
func (s Str) Runes() []rune  { return s.runes }
func (s Str) Len() int       { return len(s.runes) }

// --------------------------------------------------------------- List/Dict

// List is reference-shared (spec §3): aliasing a List variable shares the
// same backing slice via this pointer wrapper.
type List struct {
	Elems []Value
}

func NewList(elems []Value) *List { return &List{Elems: elems} }

func (*List) Kind() Kind { return KindList }
func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = displayString(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dict is reference-shared and preserves insertion order (spec §3), backed
// by go-ordered-map so repeated iteration and `keys()`/`values()` are O(n)
// and reassigning an existing key never moves its position.
type Dict struct {
	om *omap.OrderedMap[string, Value]
}

func NewDict() *Dict {
	return &Dict{om: omap.New[string, Value]()}
}

func (*Dict) Kind() Kind { return KindDict }

func (d *Dict) Get(key string) (Value, bool) {
	return d.om.Get(key)
}

func (d *Dict) Set(key string, val Value) {
	d.om.Set(key, val)
}

func (d *Dict) Delete(key string) bool {
	_, ok := d.om.Delete(key)
	return ok
}

func (d *Dict) Len() int { return d.om.Len() }

// Each calls fn for every key/value pair in insertion order.
func (d *Dict) Each(fn func(key string, val Value)) {
	for pair := d.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.om.Len())
	d.Each(func(k string, _ Value) { keys = append(keys, k) })
	return keys
}

func (d *Dict) Values() []Value {
	vals := make([]Value, 0, d.om.Len())
	d.Each(func(_ string, v Value) { vals = append(vals, v) })
	return vals
}

func (d *Dict) String() string {
	parts := make([]string, 0, d.om.Len())
	d.Each(func(k string, v Value) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, displayString(v)))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

// Clone returns a shallow copy with its own backing map (used by merge()).
func (d *Dict) Clone() *Dict {
	nd := NewDict()
	d.Each(func(k string, v Value) { nd.Set(k, v) })
	return nd
}

// displayString is the string shown for an element nested inside a list or
// dict's own String(): strings are quoted there so `[1, "a"]` is legible,
// matching the teacher's fmt.Sprintf-based Object.String() convention
// generalized to containers.
func displayString(v Value) string {
	if s, ok := v.(Str); ok {
		return strconv.Quote(s.String())
	}
	return v.String()
}
