package interp

import (
	"github.com/voltlang/volt/internal/builtin"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/volterr"
)

// getMember resolves `obj.name` (spec §4.5): an instance checks its own
// attribute map first, then its class's method chain (yielding a
// BoundMethod); a dict reads the key `name` when present and otherwise
// falls back to its method table (no IndexError, unlike `["name"]`); a module
// looks up an exported binding; every built-in kind falls through to its
// method table (spec §4.8) so `"x".upper` and `list.push` resolve the same
// way a method on a user class would.
func (it *Interp) getMember(obj object.Value, name string, line, col int) object.Value {
	switch v := obj.(type) {
	case *object.Instance:
		if field, ok := v.Fields[name]; ok {
			return field
		}
		if method, ok := v.Class.FindMethod(name); ok {
			return &object.BoundMethod{Receiver: v, Method: method}
		}
		panic(volterr.NewAt(volterr.NameError, line, col, "%s has no attribute %q", v.Class.Name, name))
	case *object.Dict:
		if val, ok := v.Get(name); ok {
			return val
		}
		return it.dictMethod(v, name, line, col)
	case *object.Module:
		if val, ok := v.Members[name]; ok {
			return val
		}
		panic(volterr.NewAt(volterr.NameError, line, col, "module %s has no member %q", v.Name, name))
	case object.Str:
		return it.stringMethod(v, name, line, col)
	case *object.List:
		return it.listMethod(v, name, line, col)
	case *object.Class:
		panic(volterr.NewAt(volterr.NameError, line, col, "class %s has no member %q", v.Name, name))
	default:
		panic(volterr.NewAt(volterr.TypeError, line, col, "cannot access %q on a %s", name, obj.Kind()))
	}
}

func (it *Interp) setMember(obj object.Value, name string, val object.Value, line int) {
	switch v := obj.(type) {
	case *object.Instance:
		v.SetField(name, val)
	case *object.Dict:
		v.Set(name, val)
	default:
		panic(volterr.NewAt(volterr.TypeError, line, 0, "cannot assign to %q on a %s", name, obj.Kind()))
	}
}

// getIndex implements spec §4.5 "Indexing": zero-based list access with
// negative indices uniformly treated as out-of-range, and dict access that
// requires an existing key.
func (it *Interp) getIndex(obj, idx object.Value, line, col int) object.Value {
	switch v := obj.(type) {
	case *object.List:
		i, err := object.ToInt64(idx)
		if err != nil || i < 0 || i >= int64(len(v.Elems)) {
			panic(volterr.NewAt(volterr.IndexError, line, col, "list index out of range"))
		}
		return v.Elems[i]
	case *object.Dict:
		key, err := object.ToGoString(idx)
		if err != nil {
			panic(volterr.NewAt(volterr.TypeError, line, col, "dict keys must be strings"))
		}
		val, ok := v.Get(key)
		if !ok {
			panic(volterr.NewAt(volterr.IndexError, line, col, "missing dict key %q", key))
		}
		return val
	case object.Str:
		i, err := object.ToInt64(idx)
		runes := v.Runes()
		if err != nil || i < 0 || i >= int64(len(runes)) {
			panic(volterr.NewAt(volterr.IndexError, line, col, "string index out of range"))
		}
		return object.NewStr(string(runes[i]))
	default:
		panic(volterr.NewAt(volterr.TypeError, line, col, "cannot index a %s", obj.Kind()))
	}
}

func (it *Interp) setIndex(obj, idx, val object.Value, line int) {
	switch v := obj.(type) {
	case *object.List:
		i, err := object.ToInt64(idx)
		if err != nil || i < 0 || i >= int64(len(v.Elems)) {
			panic(volterr.NewAt(volterr.IndexError, line, 0, "list index out of range"))
		}
		v.Elems[i] = val
	case *object.Dict:
		key, err := object.ToGoString(idx)
		if err != nil {
			panic(volterr.NewAt(volterr.TypeError, line, 0, "dict keys must be strings"))
		}
		v.Set(key, val)
	default:
		panic(volterr.NewAt(volterr.TypeError, line, 0, "cannot index-assign a %s", obj.Kind()))
	}
}

// stringMethod/listMethod/dictMethod delegate to the builtin package's
// method tables, adapting the `func(args) (Value, error)` shape the CallExpr
// path expects into a NativeFunc bound to the receiver, and adapting the
// callback-accepting methods (map/filter/reduce/find/every/some/filter) to
// invoke back into this Interp through the builtin.Caller indirection (so
// internal/builtin never needs to import internal/interp).
func (it *Interp) stringMethod(s object.Str, name string, line, col int) object.Value {
	fn, ok := builtin.StringMethod(s, name, it)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, line, col, "string has no method %q", name))
	}
	return fn
}

func (it *Interp) listMethod(l *object.List, name string, line, col int) object.Value {
	fn, ok := builtin.ListMethod(l, name, it)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, line, col, "list has no method %q", name))
	}
	return fn
}

func (it *Interp) dictMethod(d *object.Dict, name string, line, col int) object.Value {
	fn, ok := builtin.DictMethod(d, name, it)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, line, col, "dict has no method %q", name))
	}
	return fn
}

// Call implements builtin.Caller so method tables can invoke user-supplied
// callback values (lambdas or named functions passed to map/filter/reduce/…)
// without internal/builtin importing internal/interp.
func (it *Interp) Call(fn object.Value, args []object.Value) (object.Value, error) {
	var ret object.Value
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if verr, ok := r.(*volterr.Error); ok {
					err = verr
					return
				}
				panic(r)
			}
		}()
		ret = it.callValue(fn, args, 0)
		return nil
	}()
	return ret, err
}
