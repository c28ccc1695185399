// Package stdlib implements Volt's four standard-library modules (spec
// §4.9): math, random, time, file. Each is built as an *object.Module whose
// Members are *object.NativeFunc/plain values, grounded on the teacher's
// one bolted-on native ("clock", evaluate.go's CallExpr special case) but
// generalized into a proper, registerable module table instead of a
// special-cased identifier check.
package stdlib

import (
	"fmt"
	"math"

	"github.com/voltlang/volt/internal/object"
)

func fn(name string, f func(args []object.Value) (object.Value, error)) object.Value {
	return &object.NativeFunc{Name: name, Fn: f}
}

func num1(name string, f func(float64) float64) object.Value {
	return fn(name, func(args []object.Value) (object.Value, error) {
		x, err := arg1(args, name)
		if err != nil {
			return nil, err
		}
		return object.Float{Val: f(x)}, nil
	})
}

func arg1(args []object.Value, name string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument", name)
	}
	return object.ToFloat64(args[0])
}

// Math builds the `math` module (spec §4.9): constants pi/e, and sqrt, pow,
// floor, ceil, abs, sin, cos, tan, log, gcd, min, max.
func Math() *object.Module {
	return &object.Module{
		Name: "math",
		Members: map[string]object.Value{
			"pi": object.Float{Val: math.Pi},
			"e":  object.Float{Val: math.E},
			"sqrt": num1("sqrt", math.Sqrt),
			"floor": num1("floor", math.Floor),
			"ceil":  num1("ceil", math.Ceil),
			"sin":   num1("sin", math.Sin),
			"cos":   num1("cos", math.Cos),
			"tan":   num1("tan", math.Tan),
			"abs": fn("abs", func(args []object.Value) (object.Value, error) {
				if len(args) != 1 {
					return nil, fmt.Errorf("abs expects 1 argument")
				}
				if n, ok := args[0].(object.Int); ok {
					if n.Val < 0 {
						return object.Int{Val: -n.Val}, nil
					}
					return n, nil
				}
				x, err := object.ToFloat64(args[0])
				if err != nil {
					return nil, err
				}
				return object.Float{Val: math.Abs(x)}, nil
			}),
			"pow": fn("pow", func(args []object.Value) (object.Value, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("pow(x, y) expects 2 arguments")
				}
				x, err := object.ToFloat64(args[0])
				if err != nil {
					return nil, err
				}
				y, err := object.ToFloat64(args[1])
				if err != nil {
					return nil, err
				}
				return object.Float{Val: math.Pow(x, y)}, nil
			}),
			"log": fn("log", func(args []object.Value) (object.Value, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("log(x, base) expects 2 arguments")
				}
				x, err := object.ToFloat64(args[0])
				if err != nil {
					return nil, err
				}
				base, err := object.ToFloat64(args[1])
				if err != nil {
					return nil, err
				}
				return object.Float{Val: math.Log(x) / math.Log(base)}, nil
			}),
			"gcd": fn("gcd", func(args []object.Value) (object.Value, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("gcd(a, b) expects 2 arguments")
				}
				a, err := object.ToInt64(args[0])
				if err != nil {
					return nil, err
				}
				b, err := object.ToInt64(args[1])
				if err != nil {
					return nil, err
				}
				return object.Int{Val: gcd(a, b)}, nil
			}),
			"min": fn("min", func(args []object.Value) (object.Value, error) {
				return minMax(args, true)
			}),
			"max": fn("max", func(args []object.Value) (object.Value, error) {
				return minMax(args, false)
			}),
		},
	}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func minMax(args []object.Value, wantMin bool) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expects 2 arguments")
	}
	cmp, ok := object.Compare(args[0], args[1])
	if !ok {
		return nil, fmt.Errorf("arguments are not comparable numbers")
	}
	if (wantMin && cmp <= 0) || (!wantMin && cmp >= 0) {
		return args[0], nil
	}
	return args[1], nil
}
