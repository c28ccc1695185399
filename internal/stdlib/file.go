package stdlib

import (
	"bufio"
	"fmt"
	"os"

	"github.com/voltlang/volt/internal/object"
)

// File builds the `file` module (spec §4.9): write/read/readlines/exists/
// size/delete against the host filesystem. The evaluator's callValue wraps
// NativeFunc errors into a volterr.Error of kind TypeError by default;
// filesystem failures are instead returned wrapped by wrapIOErr, which
// IsIOError recognizes so they surface as IOError. Argument errors (wrong
// count or type) stay plain errors and surface as TypeError.
func File() *object.Module {
	return &object.Module{
		Name: "file",
		Members: map[string]object.Value{
			"write": fn("write", func(args []object.Value) (object.Value, error) {
				path, text, err := pathAndText(args, "write(path, text)")
				if err != nil {
					return nil, err
				}
				if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
					return nil, wrapIOErr(err)
				}
				return object.TheNull, nil
			}),
			"read": fn("read", func(args []object.Value) (object.Value, error) {
				path, err := argString(args, "read(path)")
				if err != nil {
					return nil, err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, wrapIOErr(err)
				}
				return object.NewStr(string(data)), nil
			}),
			"readlines": fn("readlines", func(args []object.Value) (object.Value, error) {
				path, err := argString(args, "readlines(path)")
				if err != nil {
					return nil, err
				}
				f, err := os.Open(path)
				if err != nil {
					return nil, wrapIOErr(err)
				}
				defer f.Close()
				var elems []object.Value
				sc := bufio.NewScanner(f)
				for sc.Scan() {
					elems = append(elems, object.NewStr(sc.Text()))
				}
				if err := sc.Err(); err != nil {
					return nil, wrapIOErr(err)
				}
				return object.NewList(elems), nil
			}),
			"exists": fn("exists", func(args []object.Value) (object.Value, error) {
				path, err := argString(args, "exists(path)")
				if err != nil {
					return nil, err
				}
				_, statErr := os.Stat(path)
				return object.NewBool(statErr == nil), nil
			}),
			"size": fn("size", func(args []object.Value) (object.Value, error) {
				path, err := argString(args, "size(path)")
				if err != nil {
					return nil, err
				}
				info, err := os.Stat(path)
				if err != nil {
					return nil, wrapIOErr(err)
				}
				return object.Int{Val: info.Size()}, nil
			}),
			"delete": fn("delete", func(args []object.Value) (object.Value, error) {
				path, err := argString(args, "delete(path)")
				if err != nil {
					return nil, err
				}
				if err := os.Remove(path); err != nil {
					return nil, wrapIOErr(err)
				}
				return object.TheNull, nil
			}),
		},
	}
}

// ioErr marks an error as file-system-originated so the evaluator's call
// path can label it IOError instead of the generic TypeError it uses for
// every other native-function failure.
type ioErr struct{ msg string }

func (e *ioErr) Error() string { return e.msg }

func wrapIOErr(err error) error { return &ioErr{msg: err.Error()} }

// IsIOError reports whether err originated from a file.* operation, so the
// interpreter's NativeFunc call path (internal/interp/call.go) can surface
// it as volterr.IOError rather than the default TypeError.
func IsIOError(err error) bool {
	_, ok := err.(*ioErr)
	return ok
}

func argString(args []object.Value, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s expects 1 argument", usage)
	}
	return object.ToGoString(args[0])
}

func pathAndText(args []object.Value, usage string) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%s expects 2 arguments", usage)
	}
	path, err := object.ToGoString(args[0])
	if err != nil {
		return "", "", err
	}
	text, err := object.ToGoString(args[1])
	if err != nil {
		return "", "", err
	}
	return path, text, nil
}
