package interp

import (
	"math"
	"strings"

	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/token"
	"github.com/voltlang/volt/internal/volterr"
)

// eval evaluates a single expression node, mirroring the teacher's
// per-node-type Evaluate methods (evaluate.go) collapsed into one type
// switch so ast stays free of any interp dependency.
func (it *Interp) eval(expr ast.Expr, env *Environment) object.Value {
	switch e := expr.(type) {
	case *ast.IntLit:
		return object.Int{Val: e.Value}
	case *ast.FloatLit:
		return object.Float{Val: e.Value}
	case *ast.StringLit:
		return object.NewStr(e.Value)
	case *ast.BoolLit:
		return object.NewBool(e.Value)
	case *ast.NullLit:
		return object.TheNull
	case *ast.FString:
		return it.evalFString(e, env)
	case *ast.ListLit:
		elems := make([]object.Value, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = it.eval(el, env)
		}
		return object.NewList(elems)
	case *ast.DictLit:
		d := object.NewDict()
		for i, k := range e.Keys {
			d.Set(k, it.eval(e.Values[i], env))
		}
		return d
	case *ast.LambdaExpr:
		return it.makeLambda(e, env)
	case *ast.Identifier:
		v, ok := env.Get(e.Name)
		if !ok {
			panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "undefined variable %q", e.Name))
		}
		return v
	case *ast.GroupExpr:
		return it.eval(e.Inner, env)
	case *ast.UnaryExpr:
		return it.evalUnary(e, env)
	case *ast.BinaryExpr:
		return it.evalBinary(e, env)
	case *ast.LogicalExpr:
		return it.evalLogical(e, env)
	case *ast.CallExpr:
		return it.evalCall(e, env)
	case *ast.MemberExpr:
		obj := it.eval(e.Object, env)
		return it.getMember(obj, e.Name, e.Line, e.Col)
	case *ast.IndexExpr:
		obj := it.eval(e.Object, env)
		idx := it.eval(e.Index, env)
		return it.getIndex(obj, idx, e.Line, e.Col)
	case *ast.NewExpr:
		return it.evalNew(e, env)
	case *ast.ThisExpr:
		v, ok := env.Get("this")
		if !ok {
			panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "'this' used outside a method"))
		}
		return v
	case *ast.SuperExpr:
		return it.evalSuper(e, env)
	case *ast.IsInstanceExpr:
		return it.evalIsInstance(e, env)
	default:
		panic(volterr.NewAt(volterr.TypeError, 0, 0, "unsupported expression %T", expr))
	}
}

func (it *Interp) evalFString(e *ast.FString, env *Environment) object.Value {
	var sb strings.Builder
	for _, part := range e.Parts {
		if part.Expr != nil {
			sb.WriteString(it.display(it.eval(part.Expr, env)))
		} else {
			sb.WriteString(part.Literal)
		}
	}
	return object.NewStr(sb.String())
}

func (it *Interp) makeLambda(e *ast.LambdaExpr, env *Environment) object.Value {
	body := []ast.Stmt{&ast.ReturnStmt{Value: e.Body, Line: e.Line}}
	return &object.Func{Name: "", Params: e.Params, Body: body, Closure: env}
}

func (it *Interp) evalUnary(e *ast.UnaryExpr, env *Environment) object.Value {
	right := it.eval(e.Right, env)
	switch e.Op {
	case token.NOT:
		return object.NewBool(!object.Truthy(right))
	case token.MINUS:
		switch n := right.(type) {
		case object.Int:
			return object.Int{Val: -n.Val}
		case object.Float:
			return object.Float{Val: -n.Val}
		default:
			panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "unary '-' requires a number, got %s", right.Kind()))
		}
	default:
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "unsupported unary operator %s", e.Op))
	}
}

func (it *Interp) evalLogical(e *ast.LogicalExpr, env *Environment) object.Value {
	left := it.eval(e.Left, env)
	if e.Op == token.OR {
		if object.Truthy(left) {
			return left
		}
		return it.eval(e.Right, env)
	}
	if !object.Truthy(left) {
		return left
	}
	return it.eval(e.Right, env)
}

func (it *Interp) evalBinary(e *ast.BinaryExpr, env *Environment) object.Value {
	left := it.eval(e.Left, env)
	right := it.eval(e.Right, env)

	switch e.Op {
	case token.EQ:
		return object.NewBool(object.Equal(left, right))
	case token.NEQ:
		return object.NewBool(!object.Equal(left, right))
	case token.LT, token.LE, token.GT, token.GE:
		return it.evalComparison(e, left, right)
	case token.PLUS:
		return it.evalPlus(e, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return it.evalArith(e, left, right)
	default:
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "unsupported binary operator %s", e.Op))
	}
}

func (it *Interp) evalComparison(e *ast.BinaryExpr, left, right object.Value) object.Value {
	cmp, ok := object.Compare(left, right)
	if !ok {
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "cannot compare %s and %s", left.Kind(), right.Kind()))
	}
	switch e.Op {
	case token.LT:
		return object.NewBool(cmp < 0)
	case token.LE:
		return object.NewBool(cmp <= 0)
	case token.GT:
		return object.NewBool(cmp > 0)
	default: // token.GE
		return object.NewBool(cmp >= 0)
	}
}

// evalPlus implements spec §4.3's overloaded `+`: numeric addition, or
// string concatenation that stringifies the non-string operand when either
// side is a string.
func (it *Interp) evalPlus(e *ast.BinaryExpr, left, right object.Value) object.Value {
	ls, lIsStr := left.(object.Str)
	rs, rIsStr := right.(object.Str)
	if lIsStr || rIsStr {
		if lIsStr && rIsStr {
			return object.NewStr(ls.String() + rs.String())
		}
		if lIsStr {
			return object.NewStr(ls.String() + it.display(right))
		}
		return object.NewStr(it.display(left) + rs.String())
	}
	return it.evalArith(e, left, right)
}

// evalArith implements the numeric-only operators (spec §4.3): integer
// arithmetic stays integer unless either operand is a float, division
// promotes to float unless both operands are Int and the division is
// exact, and division/modulus by zero is a DivisionError.
func (it *Interp) evalArith(e *ast.BinaryExpr, left, right object.Value) object.Value {
	li, lIsInt := left.(object.Int)
	ri, rIsInt := right.(object.Int)
	lf, lok := object.AsFloat64(left)
	rf, rok := object.AsFloat64(right)
	if !lok || !rok {
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "operator %s requires numbers, got %s and %s", e.Op, left.Kind(), right.Kind()))
	}

	switch e.Op {
	case token.MINUS:
		if lIsInt && rIsInt {
			return object.Int{Val: li.Val - ri.Val}
		}
		return object.Float{Val: lf - rf}
	case token.STAR:
		if lIsInt && rIsInt {
			return object.Int{Val: li.Val * ri.Val}
		}
		return object.Float{Val: lf * rf}
	case token.SLASH:
		if rf == 0 {
			panic(volterr.NewAt(volterr.DivisionError, e.Line, e.Col, "division by zero"))
		}
		if lIsInt && rIsInt {
			if ri.Val != 0 && li.Val%ri.Val == 0 {
				return object.Int{Val: li.Val / ri.Val}
			}
		}
		return object.Float{Val: lf / rf}
	case token.PERCENT:
		if lIsInt && rIsInt {
			if ri.Val == 0 {
				panic(volterr.NewAt(volterr.DivisionError, e.Line, e.Col, "modulus by zero"))
			}
			return object.Int{Val: li.Val % ri.Val}
		}
		if rf == 0 {
			panic(volterr.NewAt(volterr.DivisionError, e.Line, e.Col, "modulus by zero"))
		}
		return object.Float{Val: math.Mod(lf, rf)}
	default:
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "unsupported arithmetic operator %s", e.Op))
	}
}

func (it *Interp) evalCall(e *ast.CallExpr, env *Environment) object.Value {
	callee := it.eval(e.Callee, env)
	args := make([]object.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = it.eval(a, env)
	}
	return it.callValue(callee, args, e.Line)
}

func (it *Interp) evalNew(e *ast.NewExpr, env *Environment) object.Value {
	v, ok := env.Get(e.ClassName)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "undefined class %q", e.ClassName))
	}
	class, ok := v.(*object.Class)
	if !ok {
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "%q is not a class", e.ClassName))
	}
	args := make([]object.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = it.eval(a, env)
	}
	return it.instantiate(class, args, e.Line)
}

func (it *Interp) evalSuper(e *ast.SuperExpr, env *Environment) object.Value {
	sv, ok := env.Get("__superclass__")
	if !ok {
		panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "'super' used outside a subclass method"))
	}
	superClass, ok := sv.(*object.Class)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "class has no parent to call 'super' on"))
	}
	method, ok := superClass.FindMethod(e.Method)
	if !ok {
		panic(volterr.NewAt(volterr.NameError, e.Line, e.Col, "undefined method %q on parent class", e.Method))
	}
	thisV, _ := env.Get("this")
	this, _ := thisV.(*object.Instance)
	return &object.BoundMethod{Receiver: this, Method: method}
}

func (it *Interp) evalIsInstance(e *ast.IsInstanceExpr, env *Environment) object.Value {
	objV := it.eval(e.Object, env)
	classV := it.eval(e.Class, env)
	class, ok := classV.(*object.Class)
	if !ok {
		panic(volterr.NewAt(volterr.TypeError, e.Line, e.Col, "isinstance's second argument must be a class"))
	}
	inst, ok := objV.(*object.Instance)
	if !ok {
		return object.False
	}
	return object.NewBool(inst.Class.IsSubclassOf(class))
}

