package builtin

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/voltlang/volt/internal/object"
)

// ListMethod resolves spec §4.8's list method table. reverse and join lean
// on samber/lo's generic slice helpers, which work cleanly here because
// they only ever move object.Value handles around — the uncomparable
// concrete types behind the interface (*List, *Dict backed by slice/map)
// never need Go's `==` for these particular operations. map/filter/reduce
// are plain loops so a callback's error can stop the walk. includes/indexOf/
// unique, however, need value equality (object.Equal, not `==`), so they're
// hand-rolled instead of using lo.Contains/lo.IndexOf/lo.Uniq, which would
// require object.Value to satisfy `comparable`.
func ListMethod(l *object.List, name string, caller Caller) (object.Value, bool) {
	switch name {
	case "push":
		return native(name, func(args []object.Value) (object.Value, error) {
			l.Elems = append(l.Elems, args...)
			return object.Int{Val: int64(len(l.Elems))}, nil
		}), true
	case "length":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.Int{Val: int64(len(l.Elems))}, nil
		}), true
	case "isEmpty":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewBool(len(l.Elems) == 0), nil
		}), true
	case "first":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(l.Elems) == 0 {
				return object.TheNull, nil
			}
			return l.Elems[0], nil
		}), true
	case "last":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(l.Elems) == 0 {
				return object.TheNull, nil
			}
			return l.Elems[len(l.Elems)-1], nil
		}), true
	case "sort":
		return native(name, func(args []object.Value) (object.Value, error) {
			sortStable(l.Elems)
			return l, nil
		}), true
	case "reverse":
		return native(name, func(args []object.Value) (object.Value, error) {
			l.Elems = lo.Reverse(l.Elems)
			return l, nil
		}), true
	case "unique":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewList(uniqueBy(l.Elems)), nil
		}), true
	case "sum":
		return native(name, func(args []object.Value) (object.Value, error) {
			return sumList(l.Elems)
		}), true
	case "includes":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("includes(v) expects 1 argument")
			}
			return object.NewBool(indexOfEqual(l.Elems, args[0]) >= 0), nil
		}), true
	case "indexOf":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("indexOf(v) expects 1 argument")
			}
			return object.Int{Val: int64(indexOfEqual(l.Elems, args[0]))}, nil
		}), true
	case "slice":
		return native(name, func(args []object.Value) (object.Value, error) {
			start, end, err := sliceBounds(args, len(l.Elems))
			if err != nil {
				return nil, err
			}
			out := make([]object.Value, end-start)
			copy(out, l.Elems[start:end])
			return object.NewList(out), nil
		}), true
	case "map":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			return mapList(caller, l.Elems, fn)
		}), true
	case "filter":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			return filterList(caller, l.Elems, fn)
		}), true
	case "reduce":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("reduce(fn, init) expects 2 arguments")
			}
			return reduceList(caller, l.Elems, args[0], args[1])
		}), true
	case "find":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			for _, el := range l.Elems {
				ok, err := callTruthy(caller, fn, el)
				if err != nil {
					return nil, err
				}
				if ok {
					return el, nil
				}
			}
			return object.TheNull, nil
		}), true
	case "every":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			for _, el := range l.Elems {
				ok, err := callTruthy(caller, fn, el)
				if err != nil {
					return nil, err
				}
				if !ok {
					return object.False, nil
				}
			}
			return object.True, nil
		}), true
	case "some":
		return native(name, func(args []object.Value) (object.Value, error) {
			fn, err := argCallable(args)
			if err != nil {
				return nil, err
			}
			for _, el := range l.Elems {
				ok, err := callTruthy(caller, fn, el)
				if err != nil {
					return nil, err
				}
				if ok {
					return object.True, nil
				}
			}
			return object.False, nil
		}), true
	case "join":
		return native(name, func(args []object.Value) (object.Value, error) {
			sep, err := argString(args, 0, "join(sep)")
			if err != nil {
				return nil, err
			}
			parts := lo.Map(l.Elems, func(v object.Value, _ int) string {
				if s, ok := v.(object.Str); ok {
					return s.String()
				}
				return v.String()
			})
			out := ""
			for i, p := range parts {
				if i > 0 {
					out += sep
				}
				out += p
			}
			return object.NewStr(out), nil
		}), true
	default:
		return nil, false
	}
}

func argCallable(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expects exactly 1 callback argument")
	}
	return args[0], nil
}

func callTruthy(caller Caller, fn object.Value, args ...object.Value) (bool, error) {
	ret, err := caller.Call(fn, args)
	if err != nil {
		return false, err
	}
	return object.Truthy(ret), nil
}

func mapList(caller Caller, elems []object.Value, fn object.Value) (object.Value, error) {
	out := make([]object.Value, len(elems))
	for i, el := range elems {
		ret, err := caller.Call(fn, []object.Value{el})
		if err != nil {
			return nil, err
		}
		out[i] = ret
	}
	return object.NewList(out), nil
}

func filterList(caller Caller, elems []object.Value, fn object.Value) (object.Value, error) {
	out := make([]object.Value, 0, len(elems))
	for _, el := range elems {
		ok, err := callTruthy(caller, fn, el)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, el)
		}
	}
	return object.NewList(out), nil
}

func reduceList(caller Caller, elems []object.Value, fn, init object.Value) (object.Value, error) {
	acc := init
	for _, el := range elems {
		ret, err := caller.Call(fn, []object.Value{acc, el})
		if err != nil {
			return nil, err
		}
		acc = ret
	}
	return acc, nil
}

func indexOfEqual(elems []object.Value, target object.Value) int {
	for i, el := range elems {
		if object.Equal(el, target) {
			return i
		}
	}
	return -1
}

func uniqueBy(elems []object.Value) []object.Value {
	var out []object.Value
	for _, el := range elems {
		if indexOfEqual(out, el) < 0 {
			out = append(out, el)
		}
	}
	return out
}

func sumList(elems []object.Value) (object.Value, error) {
	var total float64
	allInt := true
	var intTotal int64
	for _, el := range elems {
		f, ok := object.AsFloat64(el)
		if !ok {
			return nil, fmt.Errorf("sum(): element is not a number")
		}
		total += f
		if n, ok := el.(object.Int); ok {
			intTotal += n.Val
		} else {
			allInt = false
		}
	}
	if allInt {
		return object.Int{Val: intTotal}, nil
	}
	return object.Float{Val: total}, nil
}

// sortStable orders numbers < strings < everything-else (spec §9's
// resolution of the sort Open Question: stable, non-comparable elements
// retain relative input order, sorted after all numbers/strings).
func sortStable(elems []object.Value) {
	rank := func(v object.Value) int {
		switch v.(type) {
		case object.Int, object.Float:
			return 0
		case object.Str:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(elems, func(i, j int) bool {
		ri, rj := rank(elems[i]), rank(elems[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 2 {
			return false // non-comparable: preserve relative order
		}
		cmp, ok := object.Compare(elems[i], elems[j])
		return ok && cmp < 0
	})
}
