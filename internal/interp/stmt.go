package interp

import (
	"fmt"
	"strings"

	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/volterr"
)

// execBlock runs a sequence of statements in env, matching the teacher's
// per-statement Run loop (evaluate.go/resolver.go) but generalized to
// dispatch over Volt's larger statement surface via a type switch instead of
// a method on each node (keeping ast a pure, interp-independent package).
func (it *Interp) execBlock(stmts []ast.Stmt, env *Environment) {
	for _, s := range stmts {
		it.exec(s, env)
	}
}

func (it *Interp) exec(stmt ast.Stmt, env *Environment) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		it.eval(s.X, env)
	case *ast.SetStmt:
		it.execSet(s, env)
	case *ast.FuncDecl:
		env.Define(s.Name, it.makeFunc(s, env, nil))
	case *ast.ClassDecl:
		it.execClassDecl(s, env)
	case *ast.IfStmt:
		it.execIf(s, env)
	case *ast.WhileStmt:
		it.execWhile(s, env)
	case *ast.ForInStmt:
		it.execForIn(s, env)
	case *ast.ForRangeStmt:
		it.execForRange(s, env)
	case *ast.MatchStmt:
		it.execMatch(s, env)
	case *ast.TryStmt:
		it.execTry(s, env)
	case *ast.ThrowStmt:
		panic(throwSignal{Value: it.eval(s.Value, env)})
	case *ast.ReturnStmt:
		var v object.Value = object.TheNull
		if s.Value != nil {
			v = it.eval(s.Value, env)
		}
		panic(returnSignal{Value: v})
	case *ast.BreakStmt:
		panic(breakSignal{})
	case *ast.ContinueStmt:
		panic(continueSignal{})
	case *ast.UseStmt:
		it.execUse(s, env)
	case *ast.ShowStmt:
		fmt.Fprintln(it.Out, it.display(it.eval(s.Value, env)))
	case *ast.AskStmt:
		it.execAsk(s, env)
	default:
		panic(volterr.NewAt(volterr.TypeError, 0, 0, "unsupported statement %T", stmt))
	}
}

func (it *Interp) execSet(s *ast.SetStmt, env *Environment) {
	val := it.eval(s.Value, env)
	switch t := s.Target.(type) {
	case *ast.IdentTarget:
		if !env.Assign(t.Name, val) {
			env.Define(t.Name, val)
		}
	case *ast.MemberTarget:
		obj := it.eval(t.Object, env)
		it.setMember(obj, t.Name, val, s.Line)
	case *ast.IndexTarget:
		obj := it.eval(t.Object, env)
		idx := it.eval(t.Index, env)
		it.setIndex(obj, idx, val, s.Line)
	case *ast.ListPatternTarget:
		it.destructureList(t.Names, val, env, s.Line)
	case *ast.DictPatternTarget:
		it.destructureDict(t.Names, val, env, s.Line)
	default:
		panic(volterr.NewAt(volterr.TypeError, s.Line, 0, "unsupported assignment target %T", s.Target))
	}
}

func (it *Interp) destructureList(names []string, val object.Value, env *Environment, line int) {
	list, ok := val.(*object.List)
	if !ok {
		panic(volterr.NewAt(volterr.TypeError, line, 0, "cannot destructure a %s as a list", val.Kind()))
	}
	for i, name := range names {
		if i < len(list.Elems) {
			env.Define(name, list.Elems[i])
		} else {
			env.Define(name, object.TheNull)
		}
	}
}

func (it *Interp) destructureDict(names []string, val object.Value, env *Environment, line int) {
	dict, ok := val.(*object.Dict)
	if !ok {
		panic(volterr.NewAt(volterr.TypeError, line, 0, "cannot destructure a %s as a dict", val.Kind()))
	}
	for _, name := range names {
		if v, found := dict.Get(name); found {
			env.Define(name, v)
		} else {
			env.Define(name, object.TheNull)
		}
	}
}

func (it *Interp) execIf(s *ast.IfStmt, env *Environment) {
	if object.Truthy(it.eval(s.Cond, env)) {
		it.execBlock(s.Then, NewEnvironment(env))
		return
	}
	if s.Else != nil {
		it.execBlock(s.Else, NewEnvironment(env))
	}
}

func (it *Interp) execWhile(s *ast.WhileStmt, env *Environment) {
	for object.Truthy(it.eval(s.Cond, env)) {
		if it.runLoopBody(s.Body, NewEnvironment(env)) {
			break
		}
	}
}

// runLoopBody executes one loop iteration, catching break (reported to the
// caller via the bool return so it can stop iterating) and continue
// (swallowed here so the caller proceeds to the next iteration).
func (it *Interp) runLoopBody(body []ast.Stmt, env *Environment) (brk bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				brk = true
			case continueSignal:
				brk = false
			default:
				panic(r)
			}
		}
	}()
	it.execBlock(body, env)
	return false
}

func (it *Interp) execForIn(s *ast.ForInStmt, env *Environment) {
	iterable := it.eval(s.Iterable, env)
	switch v := iterable.(type) {
	case *object.List:
		for i, elem := range v.Elems {
			loopEnv := NewEnvironment(env)
			if s.KeyName != "" {
				loopEnv.Define(s.KeyName, object.Int{Val: int64(i)})
			}
			loopEnv.Define(s.ValueName, elem)
			if it.runLoopBody(s.Body, loopEnv) {
				break
			}
		}
	case *object.Dict:
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			loopEnv := NewEnvironment(env)
			if s.KeyName != "" {
				loopEnv.Define(s.KeyName, object.NewStr(k))
			}
			loopEnv.Define(s.ValueName, val)
			if it.runLoopBody(s.Body, loopEnv) {
				break
			}
		}
	case object.Str:
		for i, r := range v.Runes() {
			loopEnv := NewEnvironment(env)
			if s.KeyName != "" {
				loopEnv.Define(s.KeyName, object.Int{Val: int64(i)})
			}
			loopEnv.Define(s.ValueName, object.NewStr(string(r)))
			if it.runLoopBody(s.Body, loopEnv) {
				break
			}
		}
	default:
		panic(volterr.NewAt(volterr.TypeError, s.Line, 0, "cannot iterate over a %s", iterable.Kind()))
	}
}

func (it *Interp) execForRange(s *ast.ForRangeStmt, env *Environment) {
	from := it.evalInt(s.From, env, s.Line)
	to := it.evalInt(s.To, env, s.Line)
	for i := from; i < to; i++ {
		loopEnv := NewEnvironment(env)
		loopEnv.Define(s.Name, object.Int{Val: i})
		if it.runLoopBody(s.Body, loopEnv) {
			break
		}
	}
}

func (it *Interp) evalInt(e ast.Expr, env *Environment, line int) int64 {
	v := it.eval(e, env)
	n, ok := v.(object.Int)
	if !ok {
		if f, ok := v.(object.Float); ok {
			return int64(f.Val)
		}
		panic(volterr.NewAt(volterr.TypeError, line, 0, "expected an integer, got %s", v.Kind()))
	}
	return n.Val
}

func (it *Interp) execMatch(s *ast.MatchStmt, env *Environment) {
	subject := it.eval(s.Subject, env)
	for _, c := range s.Cases {
		pattern := it.eval(c.Pattern, env)
		if object.Equal(subject, pattern) {
			it.execBlock(c.Body, NewEnvironment(env))
			return
		}
	}
	if s.Default != nil {
		it.execBlock(s.Default, NewEnvironment(env))
	}
}

func (it *Interp) execTry(s *ast.TryStmt, env *Environment) {
	if s.HasFinally {
		defer it.execBlock(s.Finally, NewEnvironment(env))
	}
	it.runTryCatch(s, env)
}

// runTryCatch runs the try body, catching a throwSignal and dispatching it
// to the catch clause if present; any other signal (return/break/continue)
// or an uncaught throw propagates onward, still subject to the deferred
// `finally` in execTry running on the way out (spec §4.6: "finally always
// runs... if finally throws, that exception replaces any in-flight one").
func (it *Interp) runTryCatch(s *ast.TryStmt, env *Environment) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(throwSignal)
			if !ok || !s.HasCatch {
				panic(r)
			}
			catchEnv := NewEnvironment(env)
			catchEnv.Define(s.CatchName, sig.Value)
			it.execBlock(s.Catch, catchEnv)
		}
	}()
	it.execBlock(s.Try, NewEnvironment(env))
}

func (it *Interp) execUse(s *ast.UseStmt, env *Environment) {
	mod, ok := it.modules[s.Name]
	if !ok {
		panic(volterr.NewAt(volterr.NameError, s.Line, 0, "unknown module %q", s.Name))
	}
	env.Define(s.Name, mod)
}

func (it *Interp) execAsk(s *ast.AskStmt, env *Environment) {
	prompt := it.eval(s.Prompt, env)
	fmt.Fprint(it.Out, it.display(prompt))
	line, err := it.In.ReadString('\n')
	if err != nil && line == "" {
		env.Define(s.Target, object.TheNull)
		return
	}
	env.Define(s.Target, object.NewStr(strings.TrimRight(line, "\r\n")))
}

// display renders a value for `show`/`ask` output, preferring a
// user-defined toString() method on instances (spec §9's Open Question
// resolution) over the default field-dump fallback.
func (it *Interp) display(v object.Value) string {
	if inst, ok := v.(*object.Instance); ok {
		if m, found := inst.Class.FindMethod("toString"); found {
			result, err := it.callFunc(m, inst, nil, 0)
			if err == nil {
				if s, ok := result.(object.Str); ok {
					return s.String()
				}
				return result.String()
			}
		}
	}
	return v.String()
}
