package builtin

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/volterr"
)

// StringMethod resolves one of spec §4.8's string methods against a
// receiver, grounded on the teacher's string-handling helpers in object.go
// (NewString/IsString) but generalized to a full method table since the
// teacher's Lox has no string methods at all.
func StringMethod(s object.Str, name string, _ Caller) (object.Value, bool) {
	switch name {
	case "trim":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewStr(strings.TrimSpace(s.String())), nil
		}), true
	case "upper":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewStr(strings.ToUpper(s.String())), nil
		}), true
	case "lower":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.NewStr(strings.ToLower(s.String())), nil
		}), true
	case "replace":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("replace(old, new) expects 2 arguments")
			}
			old, err := object.ToGoString(args[0])
			if err != nil {
				return nil, err
			}
			repl, err := object.ToGoString(args[1])
			if err != nil {
				return nil, err
			}
			return object.NewStr(strings.ReplaceAll(s.String(), old, repl)), nil
		}), true
	case "split":
		return native(name, func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("split(sep) expects 1 argument")
			}
			sep, err := object.ToGoString(args[0])
			if err != nil {
				return nil, err
			}
			parts := strings.Split(s.String(), sep)
			elems := make([]object.Value, len(parts))
			for i, p := range parts {
				elems[i] = object.NewStr(p)
			}
			return object.NewList(elems), nil
		}), true
	case "startsWith":
		return native(name, func(args []object.Value) (object.Value, error) {
			prefix, err := argString(args, 0, "startsWith(s)")
			if err != nil {
				return nil, err
			}
			return object.NewBool(strings.HasPrefix(s.String(), prefix)), nil
		}), true
	case "endsWith":
		return native(name, func(args []object.Value) (object.Value, error) {
			suffix, err := argString(args, 0, "endsWith(s)")
			if err != nil {
				return nil, err
			}
			return object.NewBool(strings.HasSuffix(s.String(), suffix)), nil
		}), true
	case "indexOf":
		return native(name, func(args []object.Value) (object.Value, error) {
			needle, err := argString(args, 0, "indexOf(s)")
			if err != nil {
				return nil, err
			}
			runes := s.Runes()
			sub := []rune(needle)
			for i := 0; i+len(sub) <= len(runes); i++ {
				if string(runes[i:i+len(sub)]) == needle {
					return object.Int{Val: int64(i)}, nil
				}
			}
			return object.Int{Val: -1}, nil
		}), true
	case "slice":
		return native(name, func(args []object.Value) (object.Value, error) {
			runes := s.Runes()
			start, end, err := sliceBounds(args, len(runes))
			if err != nil {
				return nil, err
			}
			return object.NewStr(string(runes[start:end])), nil
		}), true
	case "repeat":
		return native(name, func(args []object.Value) (object.Value, error) {
			n, err := argInt(args, 0, "repeat(n)")
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, fmt.Errorf("repeat(n) requires n >= 0")
			}
			return object.NewStr(strings.Repeat(s.String(), int(n))), nil
		}), true
	case "reverse":
		return native(name, func(args []object.Value) (object.Value, error) {
			runes := s.Runes()
			out := make([]rune, len(runes))
			for i, r := range runes {
				out[len(runes)-1-i] = r
			}
			return object.NewStr(string(out)), nil
		}), true
	case "contains":
		return native(name, func(args []object.Value) (object.Value, error) {
			needle, err := argString(args, 0, "contains(s)")
			if err != nil {
				return nil, err
			}
			return object.NewBool(strings.Contains(s.String(), needle)), nil
		}), true
	case "length":
		return native(name, func(args []object.Value) (object.Value, error) {
			return object.Int{Val: int64(s.Len())}, nil
		}), true
	case "toInt":
		return native(name, func(args []object.Value) (object.Value, error) {
			n, err := cast.ToInt64E(strings.TrimSpace(s.String()))
			if err != nil {
				return nil, volterr.New(volterr.ValueError, "toInt(): %q is not numeric", s.String())
			}
			return object.Int{Val: n}, nil
		}), true
	case "toList":
		return native(name, func(args []object.Value) (object.Value, error) {
			runes := s.Runes()
			elems := make([]object.Value, len(runes))
			for i, r := range runes {
				elems[i] = object.NewStr(string(r))
			}
			return object.NewList(elems), nil
		}), true
	case "padStart":
		return native(name, func(args []object.Value) (object.Value, error) {
			return pad(s, args, true)
		}), true
	case "padEnd":
		return native(name, func(args []object.Value) (object.Value, error) {
			return pad(s, args, false)
		}), true
	default:
		return nil, false
	}
}

func pad(s object.Str, args []object.Value, start bool) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pad expects (n, ch)")
	}
	n, err := object.ToInt64(args[0])
	if err != nil {
		return nil, err
	}
	ch, err := object.ToGoString(args[1])
	if err != nil {
		return nil, err
	}
	runes := s.Runes()
	padCount := int(n) - len(runes)
	if padCount <= 0 {
		return s, nil
	}
	filler := strings.Repeat(ch, padCount)
	if len([]rune(filler)) > padCount {
		filler = string([]rune(filler)[:padCount])
	}
	if start {
		return object.NewStr(filler + s.String()), nil
	}
	return object.NewStr(s.String() + filler), nil
}

func argString(args []object.Value, i int, usage string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: missing argument", usage)
	}
	return object.ToGoString(args[i])
}

func argInt(args []object.Value, i int, usage string) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument", usage)
	}
	return object.ToInt64(args[i])
}

// sliceBounds implements the shared (start, end) clamping for
// string.slice/list.slice (spec §4.8: "end exclusive").
func sliceBounds(args []object.Value, length int) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("slice(start, end) expects 2 arguments")
	}
	start, err := object.ToInt64(args[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := object.ToInt64(args[1])
	if err != nil {
		return 0, 0, err
	}
	if start < 0 {
		start = 0
	}
	if end > int64(length) {
		end = int64(length)
	}
	if start > end {
		start = end
	}
	return int(start), int(end), nil
}
