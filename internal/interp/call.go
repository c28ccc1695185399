package interp

import (
	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/stdlib"
	"github.com/voltlang/volt/internal/volterr"
)

// makeFunc wraps a function/method declaration as a closure over env,
// grounded on the teacher's LoxFunction construction (callable.go) but
// carrying defClass so a method body can resolve `super` lexically (see
// callFunc) rather than through a pre-bound "super" variable.
func (it *Interp) makeFunc(decl *ast.FuncDecl, env *Environment, defClass *object.Class) *object.Func {
	fn := &object.Func{
		Name:    decl.Name,
		Params:  decl.Params,
		Body:    decl.Body,
		Closure: env,
		IsInit:  decl.Name == "init",
	}
	if defClass != nil {
		fn.SetDefClass(defClass)
	}
	return fn
}

// callValue dispatches a call expression's callee to the right invocation
// path (spec §4.5's Calls/Method dispatch/Object system), mirroring the
// teacher's single `Callable` interface (callable.go) but widened to cover
// native functions, bound methods, and classes-as-constructors explicitly
// since Volt (unlike the teacher's Lox) exposes all of them as call targets.
func (it *Interp) callValue(callee object.Value, args []object.Value, line int) object.Value {
	switch fn := callee.(type) {
	case *object.Func:
		v, err := it.callFunc(fn, nil, args, line)
		if err != nil {
			panic(err)
		}
		return v
	case *object.BoundMethod:
		v, err := it.callFunc(fn.Method, fn.Receiver, args, line)
		if err != nil {
			panic(err)
		}
		return v
	case *object.NativeFunc:
		v, err := fn.Fn(args)
		if err != nil {
			if verr, ok := err.(*volterr.Error); ok {
				verr.Line = line
				panic(verr)
			}
			kind := volterr.TypeError
			if stdlib.IsIOError(err) {
				kind = volterr.IOError
			}
			panic(volterr.NewAt(kind, line, 0, "%s: %s", fn.Name, err))
		}
		return v
	case *object.Class:
		return it.instantiate(fn, args, line)
	default:
		panic(volterr.NewAt(volterr.TypeError, line, 0, "%s is not callable", callee.Kind()))
	}
}

// callFunc runs fn's body in a fresh child scope of its closure, binding
// `this` when receiver is non-nil and `__superclass__` when fn was defined
// inside a class, then filling parameters (missing trailing args draw
// default expressions evaluated fresh in that same scope, spec §4.5
// "Calls"). A returnSignal panicked by the body is the only expected
// non-local exit; anything else propagates to the caller unchanged.
func (it *Interp) callFunc(fn *object.Func, receiver *object.Instance, args []object.Value, line int) (ret object.Value, err error) {
	if len(args) > len(fn.Params) {
		return nil, volterr.NewAt(volterr.ArityError, line, 0,
			"%s expected at most %d argument(s), got %d", fnLabel(fn), len(fn.Params), len(args))
	}

	closureEnv, ok := fn.Closure.(*Environment)
	if !ok {
		return nil, volterr.NewAt(volterr.TypeError, line, 0, "function has no valid closure")
	}
	callEnv := NewEnvironment(closureEnv)

	if receiver != nil {
		callEnv.Define("this", receiver)
		if fn.DefClass() != nil {
			callEnv.Define("__superclass__", superOf(fn.DefClass()))
		}
	}

	for i, param := range fn.Params {
		if i < len(args) {
			callEnv.Define(param.Name, args[i])
			continue
		}
		if param.Default == nil {
			return nil, volterr.NewAt(volterr.ArityError, line, 0,
				"%s expected %d argument(s), got %d", fnLabel(fn), requiredParamCount(fn.Params), len(args))
		}
		callEnv.Define(param.Name, it.eval(param.Default, callEnv))
	}

	ret = object.TheNull
	func() {
		defer func() {
			if r := recover(); r != nil {
				if sig, ok := r.(returnSignal); ok {
					ret = sig.Value
					return
				}
				panic(r)
			}
		}()
		it.execBlock(fn.Body, callEnv)
	}()

	if fn.IsInit {
		return receiver, nil
	}
	return ret, nil
}

func requiredParamCount(params []ast.Param) int {
	n := 0
	for _, p := range params {
		if p.Default == nil {
			n++
		}
	}
	return n
}

func fnLabel(fn *object.Func) string {
	if fn.Name == "" {
		return "anonymous function"
	}
	return fn.Name
}

// superOf returns the Value form of fn's defining class's parent, or Null
// when there is none, so `super.x` inside a root class's method is a
// NameError rather than a nil-pointer fault.
func superOf(class *object.Class) object.Value {
	if class.Parent == nil {
		return object.TheNull
	}
	return class.Parent
}

// instantiate allocates a fresh Instance and runs its `init` method if
// present, bound to the new instance (spec §4.5 "new Class(args)").
func (it *Interp) instantiate(class *object.Class, args []object.Value, line int) object.Value {
	inst := object.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := it.callFunc(init, inst, args, line); err != nil {
			panic(err)
		}
	} else if len(args) > 0 {
		panic(volterr.NewAt(volterr.ArityError, line, 0, "%s has no constructor but got %d argument(s)", class.Name, len(args)))
	}
	return inst
}

func (it *Interp) execClassDecl(decl *ast.ClassDecl, env *Environment) {
	var parent *object.Class
	if decl.Parent != "" {
		pv, ok := env.Get(decl.Parent)
		if !ok {
			panic(volterr.NewAt(volterr.NameError, decl.Line, 0, "undefined parent class %q", decl.Parent))
		}
		parentClass, ok := pv.(*object.Class)
		if !ok {
			panic(volterr.NewAt(volterr.TypeError, decl.Line, 0, "%q is not a class", decl.Parent))
		}
		parent = parentClass
	}

	class := &object.Class{Name: decl.Name, Parent: parent, Methods: map[string]*object.Func{}}
	for _, m := range decl.Methods {
		class.Methods[m.Name] = it.makeFunc(m, env, class)
	}
	env.Define(decl.Name, class)
}
