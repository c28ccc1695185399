package interp

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/volterr"
)

func defaultSeed() int64 { return time.Now().UnixNano() }

// Interp holds the evaluator's injected global state (spec §9: "Global
// state is the module namespace registry and the RNG seed; both are
// injected into the evaluator at construction"), grounded on the teacher's
// Interpreter (interpreter.go), generalized to carry a module registry and
// an explicit I/O sink/source instead of hardcoding os.Stdout/os.Stdin.
type Interp struct {
	Globals *Environment
	Out     io.Writer
	In      *bufio.Reader
	Rand    *rand.Rand
	modules map[string]*object.Module
}

// New constructs an interpreter ready to run a program. seed is used only
// when seeded is true (--seed or VOLT_SEED given, spec §6); otherwise the
// RNG is seeded from the current time and random is non-deterministic.
func New(out io.Writer, in io.Reader, seed int64, seeded bool) *Interp {
	src := rand.NewSource(seed)
	if !seeded {
		src = rand.NewSource(defaultSeed())
	}
	it := &Interp{
		Globals: NewEnvironment(nil),
		Out:     out,
		In:      bufio.NewReader(in),
		Rand:    rand.New(src),
		modules: map[string]*object.Module{},
	}
	return it
}

// RegisterModule makes a stdlib module available to `use "name"`.
func (it *Interp) RegisterModule(name string, mod *object.Module) {
	it.modules[name] = mod
}

// Run executes a complete program's top-level declarations, reporting an
// uncaught throw or host error as a Go error (the CLI driver prints it and
// sets the process exit code per spec §7).
func (it *Interp) Run(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = unwindToError(r)
		}
	}()
	it.execBlock(prog.Decls, it.Globals)
	return nil
}

// unwindToError converts a recovered panic value into a returnable error: an
// uncaught throwSignal becomes a UserError carrying its payload's
// stringification, a returnSignal/break/continueSignal reaching the top
// level is a no-op (bare top-level control flow just ends the program), and
// any other panic (a programming bug) is re-raised.
func unwindToError(r any) error {
	switch sig := r.(type) {
	case throwSignal:
		return volterr.New(volterr.UserError, "%s", sig.Value.String())
	case returnSignal, breakSignal, continueSignal:
		return nil
	case *volterr.Error:
		return sig
	default:
		panic(r)
	}
}
