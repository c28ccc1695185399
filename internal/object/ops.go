package object

// Truthy implements spec §4.3's truthiness rule: false, null, 0, 0.0, "",
// an empty list, and an empty dict are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Null:
		return false
	case Bool:
		return x.Val
	case Int:
		return x.Val != 0
	case Float:
		return x.Val != 0
	case Str:
		return x.Len() > 0
	case *List:
		return len(x.Elems) > 0
	case *Dict:
		return x.Len() > 0
	default:
		return true
	}
}

// Equal implements value equality (spec §4.3): numbers compare across
// Int/Float by numeric value, strings/bools/null structurally, and
// List/Dict/Instance/Func/Class/Module by reference identity.
func Equal(a, b Value) bool {
	if an, aNum := asFloat(a); aNum {
		if bn, bNum := asFloat(b); bNum {
			return an == bn
		}
		return false
	}
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x.Val == y.Val
	case Str:
		y, ok := b.(Str)
		return ok && x.String() == y.String()
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	case *Dict:
		y, ok := b.(*Dict)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	case *Class:
		y, ok := b.(*Class)
		return ok && x == y
	case *Module:
		y, ok := b.(*Module)
		return ok && x == y
	case *Func:
		y, ok := b.(*Func)
		return ok && x == y
	case *NativeFunc:
		y, ok := b.(*NativeFunc)
		return ok && x == y
	case *BoundMethod:
		y, ok := b.(*BoundMethod)
		return ok && x.Receiver == y.Receiver && x.Method == y.Method
	default:
		return false
	}
}

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x.Val), true
	case Float:
		return x.Val, true
	default:
		return 0, false
	}
}

// Compare orders two values for relational operators and list.sort() (spec
// §4.3/§4.8): numbers order numerically, strings lexicographically by code
// point. ok is false for operand kinds that have no defined ordering.
func Compare(a, b Value) (cmp int, ok bool) {
	if an, aNum := asFloat(a); aNum {
		if bn, bNum := asFloat(b); bNum {
			switch {
			case an < bn:
				return -1, true
			case an > bn:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}
	as, aStr := a.(Str)
	bs, bStr := b.(Str)
	if aStr && bStr {
		ar, br := as.Runes(), bs.Runes()
		for i := 0; i < len(ar) && i < len(br); i++ {
			if ar[i] != br[i] {
				if ar[i] < br[i] {
					return -1, true
				}
				return 1, true
			}
		}
		switch {
		case len(ar) < len(br):
			return -1, true
		case len(ar) > len(br):
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

// IsNumber reports whether v is an Int or Float.
func IsNumber(v Value) bool {
	_, ok := asFloat(v)
	return ok
}

// AsFloat64 extracts a float64 from an Int or Float value.
func AsFloat64(v Value) (float64, bool) { return asFloat(v) }
