package builtin

import (
	"fmt"

	"github.com/voltlang/volt/internal/object"
)

// DictMethod resolves spec §4.8's dict method table. `keys`/`values` lean on
// object.Dict's go-ordered-map backing to guarantee insertion order.
func DictMethod(d *object.Dict, name string, caller Caller) (object.Value, bool) {
	switch name {
	case "keys":
		return native(name, func(args []object.Value) (object.Value, error) {
			keys := d.Keys()
			elems := make([]object.Value, len(keys))
			for i, k := range keys {
				elems[i] = object.NewStr(k)
			}
			return object.NewList(elems), nil
		}), true
	case "values":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewList(d.Values()), nil
		}), true
	case "has":
		return native(name, func(args []object.Value) (object.Value, error) {
			key, err := argString(args, 0, "has(k)")
			if err != nil {
				return nil, err
			}
			_, ok := d.Get(key)
			return object.NewBool(ok), nil
		}), true
	case "size":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.Int{Val: int64(d.Len())}, nil
		}), true
	case "merge":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("merge(other) expects 1 argument")
			}
			other, ok := args[0].(*object.Dict)
			if !ok {
				return nil, fmt.Errorf("merge(other) requires a dict")
			}
			merged := d.Clone()
			other.Each(func(k string, v object.Value) { merged.Set(k, v) })
			return merged, nil
		}), true
	case "filter":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			out := object.NewDict()
			var callErr error
			d.Each(func(k string, v object.Value) {
				if callErr != nil {
					return
				}
				ret, err := caller.Call(fn, []object.Value{object.NewStr(k), v})
				if err != nil {
					callErr = err
					return
				}
				if object.Truthy(ret) {
					out.Set(k, v)
				}
			})
			if callErr != nil {
				return nil, callErr
			}
			return out, nil
		}), true
	default:
		return nil, false
	}
}
