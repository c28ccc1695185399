package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltlang/volt/internal/object"
)

func TestTruthy(t *testing.T) {
	falsy := []object.Value{
		object.TheNull,
		object.False,
		object.Int{Val: 0},
		object.Float{Val: 0},
		object.NewStr(""),
		object.NewList(nil),
		object.NewDict(),
	}
	for _, v := range falsy {
		assert.False(t, object.Truthy(v), "%v should be falsy", v)
	}

	truthy := []object.Value{
		object.True,
		object.Int{Val: 1},
		object.Float{Val: 0.1},
		object.NewStr("x"),
		object.NewList([]object.Value{object.Int{Val: 1}}),
	}
	for _, v := range truthy {
		assert.True(t, object.Truthy(v), "%v should be truthy", v)
	}
}

func TestEqualCrossNumericKind(t *testing.T) {
	assert.True(t, object.Equal(object.Int{Val: 2}, object.Float{Val: 2.0}))
	assert.False(t, object.Equal(object.Int{Val: 2}, object.NewStr("2")))
}

func TestEqualReferenceTypesCompareByIdentity(t *testing.T) {
	a := object.NewList([]object.Value{object.Int{Val: 1}})
	b := object.NewList([]object.Value{object.Int{Val: 1}})
	assert.False(t, object.Equal(a, b), "distinct lists with equal contents are not Equal")
	assert.True(t, object.Equal(a, a))
}

func TestCompareNumbersAndStrings(t *testing.T) {
	cmp, ok := object.Compare(object.Int{Val: 1}, object.Float{Val: 2})
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = object.Compare(object.NewStr("abc"), object.NewStr("abd"))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	_, ok = object.Compare(object.NewStr("x"), object.Int{Val: 1})
	assert.False(t, ok, "cross-type comparison has no defined order")
}

func TestDictPreservesInsertionOrderAndReassignmentDoesNotMove(t *testing.T) {
	d := object.NewDict()
	d.Set("a", object.Int{Val: 1})
	d.Set("b", object.Int{Val: 2})
	d.Set("c", object.Int{Val: 3})
	d.Set("a", object.Int{Val: 99})

	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Int{Val: 99}, v)
}

func TestDictCloneIsIndependent(t *testing.T) {
	d := object.NewDict()
	d.Set("a", object.Int{Val: 1})
	clone := d.Clone()
	clone.Set("a", object.Int{Val: 2})
	v, _ := d.Get("a")
	assert.Equal(t, object.Int{Val: 1}, v)
}

func TestStringifyShapes(t *testing.T) {
	assert.Equal(t, "3", object.Int{Val: 3}.String())
	assert.Equal(t, "true", object.True.String())
	assert.Equal(t, "null", object.TheNull.String())

	l := object.NewList([]object.Value{object.Int{Val: 1}, object.NewStr("a")})
	assert.Equal(t, `[1, "a"]`, l.String())

	d := object.NewDict()
	d.Set("k", object.Int{Val: 1})
	assert.Equal(t, `{k: 1}`, d.String())
}

func TestClassFindMethodWalksParentChain(t *testing.T) {
	parent := &object.Class{Name: "A", Methods: map[string]*object.Func{
		"hi": {Name: "hi"},
	}}
	child := &object.Class{Name: "B", Parent: parent, Methods: map[string]*object.Func{}}

	m, ok := child.FindMethod("hi")
	assert.True(t, ok)
	assert.Equal(t, "hi", m.Name)
	assert.True(t, child.IsSubclassOf(parent))
	assert.True(t, child.IsSubclassOf(child))
	assert.False(t, parent.IsSubclassOf(child))
}

func TestInstanceFieldOrderAndStringFallback(t *testing.T) {
	class := &object.Class{Name: "Point", Methods: map[string]*object.Func{}}
	inst := object.NewInstance(class)
	inst.SetField("y", object.Int{Val: 2})
	inst.SetField("x", object.Int{Val: 1})
	inst.SetField("y", object.Int{Val: 20}) // reassignment shouldn't move order

	assert.Equal(t, []string{"y", "x"}, inst.FieldOrder)
	assert.Equal(t, "Point(y=20, x=1)", inst.String())
}
