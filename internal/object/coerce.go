package object

import (
	"fmt"

	"github.com/spf13/cast"
)

// ToInt64 coerces a Volt Int or Float value to an int64, used wherever a
// builtin or stdlib function (spec §4.8/§4.9) needs a native Go integer,
// e.g. list indices, string repeat counts, math.gcd's operands.
func ToInt64(v Value) (int64, error) {
	switch x := v.(type) {
	case Int:
		return x.Val, nil
	case Float:
		return cast.ToInt64E(x.Val)
	default:
		return 0, fmt.Errorf("expected a number, got %s", v.Kind())
	}
}

// ToFloat64 coerces a Volt Int or Float value to a float64.
func ToFloat64(v Value) (float64, error) {
	switch x := v.(type) {
	case Int:
		return float64(x.Val), nil
	case Float:
		return x.Val, nil
	default:
		return 0, fmt.Errorf("expected a number, got %s", v.Kind())
	}
}

// ToGoString coerces a Volt Str value to a Go string.
func ToGoString(v Value) (string, error) {
	s, ok := v.(Str)
	if !ok {
		return "", fmt.Errorf("expected a string, got %s", v.Kind())
	}
	return s.String(), nil
}

// FromGoInt wraps a Go integer-ish value back into a Volt Int, using cast to
// accept whatever concrete numeric type a stdlib wrapper produced.
func FromGoInt(v any) Value {
	return Int{Val: cast.ToInt64(v)}
}

// FromGoFloat wraps a Go float-ish value back into a Volt Float.
func FromGoFloat(v any) Value {
	return Float{Val: cast.ToFloat64(v)}
}
