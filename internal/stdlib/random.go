package stdlib

import (
	"fmt"
	"math/rand"

	"github.com/voltlang/volt/internal/object"
)

// Random builds the `random` module (spec §4.9), drawing from the *Interp's
// injected *rand.Rand (spec §9: "the RNG seed... injected into the evaluator
// at construction") so `VOLT_SEED` makes every call reproducible.
func Random(rng *rand.Rand) *object.Module {
	return &object.Module{
		Name: "random",
		Members: map[string]object.Value{
			"int": fn("int", func(args []object.Value) (object.Value, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("int(lo, hi) expects 2 arguments")
				}
				lo, err := object.ToInt64(args[0])
				if err != nil {
					return nil, err
				}
				hi, err := object.ToInt64(args[1])
				if err != nil {
					return nil, err
				}
				if hi < lo {
					return nil, fmt.Errorf("int(lo, hi) requires hi >= lo")
				}
				return object.Int{Val: lo + rng.Int63n(hi-lo+1)}, nil
			}),
			"float": fn("float", func(args []object.Value) (object.Value, error) {
				return object.Float{Val: rng.Float64()}, nil
			}),
			"bool": fn("bool", func(args []object.Value) (object.Value, error) {
				return object.NewBool(rng.Intn(2) == 1), nil
			}),
			"choice": fn("choice", func(args []object.Value) (object.Value, error) {
				list, err := argList(args, "choice(list)")
				if err != nil {
					return nil, err
				}
				if len(list.Elems) == 0 {
					return nil, fmt.Errorf("choice(list) requires a non-empty list")
				}
				return list.Elems[rng.Intn(len(list.Elems))], nil
			}),
			"shuffle": fn("shuffle", func(args []object.Value) (object.Value, error) {
				list, err := argList(args, "shuffle(list)")
				if err != nil {
					return nil, err
				}
				out := make([]object.Value, len(list.Elems))
				copy(out, list.Elems)
				rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
				return object.NewList(out), nil
			}),
		},
	}
}

func argList(args []object.Value, usage string) (*object.List, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s expects 1 argument", usage)
	}
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, fmt.Errorf("%s requires a list", usage)
	}
	return list, nil
}
