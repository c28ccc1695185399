package stdlib

import (
	"fmt"
	"time"

	"github.com/voltlang/volt/internal/object"
)

// Time builds the `time` module (spec §4.9): now/date/year/month read the
// wall clock, elapsed tracks a monotonic start point captured at module
// construction so `elapsed()` with no arguments measures "since the program
// started" and the one-argument form measures since a caller-supplied `t0`.
func Time() *object.Module {
	start := time.Now()
	return &object.Module{
		Name: "time",
		Members: map[string]object.Value{
			"now": fn("now", func(args []object.Value) (object.Value, error) {
				return object.Int{Val: time.Now().Unix()}, nil
			}),
			"date": fn("date", func(args []object.Value) (object.Value, error) {
				return object.NewStr(time.Now().Format("2006-01-02")), nil
			}),
			"year": fn("year", func(args []object.Value) (object.Value, error) {
				return object.Int{Val: int64(time.Now().Year())}, nil
			}),
			"month": fn("month", func(args []object.Value) (object.Value, error) {
				return object.Int{Val: int64(time.Now().Month())}, nil
			}),
			"elapsed": fn("elapsed", func(args []object.Value) (object.Value, error) {
				switch len(args) {
				case 0:
					return object.Float{Val: time.Since(start).Seconds()}, nil
				case 1:
					t0, err := object.ToFloat64(args[0])
					if err != nil {
						return nil, err
					}
					now := time.Since(start).Seconds()
					return object.Float{Val: now - t0}, nil
				default:
					return nil, fmt.Errorf("elapsed() or elapsed(t0) expects 0 or 1 arguments")
				}
			}),
		},
	}
}
