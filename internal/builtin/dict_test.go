package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/builtin"
	"github.com/voltlang/volt/internal/object"
)

func dictCall(t *testing.T, d *object.Dict, caller builtin.Caller, name string, args ...object.Value) object.Value {
	t.Helper()
	m, ok := builtin.DictMethod(d, name, caller)
	require.True(t, ok, "expected dict method %q to exist", name)
	nf, ok := m.(*object.NativeFunc)
	require.True(t, ok)
	out, err := nf.Fn(args)
	require.NoError(t, err)
	return out
}

func TestDictMergeOverridesAndLeavesOriginalsUnchanged(t *testing.T) {
	d1 := object.NewDict()
	d1.Set("a", object.Int{Val: 1})
	d1.Set("b", object.Int{Val: 2})
	d2 := object.NewDict()
	d2.Set("b", object.Int{Val: 3})
	d2.Set("c", object.Int{Val: 4})

	merged := dictCall(t, d1, nil, "merge", d2)
	md := merged.(*object.Dict)
	assert.Equal(t, []string{"a", "b", "c"}, md.Keys())
	v, _ := md.Get("b")
	assert.Equal(t, object.Int{Val: 3}, v)

	// d1 itself is unchanged
	v1, _ := d1.Get("b")
	assert.Equal(t, object.Int{Val: 2}, v1)
}

func TestDictKeysValuesHasSize(t *testing.T) {
	d := object.NewDict()
	d.Set("x", object.Int{Val: 1})
	d.Set("y", object.Int{Val: 2})

	keys := dictCall(t, d, nil, "keys").(*object.List)
	assert.Equal(t, []object.Value{object.NewStr("x"), object.NewStr("y")}, keys.Elems)

	values := dictCall(t, d, nil, "values").(*object.List)
	assert.Equal(t, []object.Value{object.Int{Val: 1}, object.Int{Val: 2}}, values.Elems)

	assert.Equal(t, object.True, dictCall(t, d, nil, "has", object.NewStr("x")))
	assert.Equal(t, object.False, dictCall(t, d, nil, "has", object.NewStr("z")))
	assert.Equal(t, object.Int{Val: 2}, dictCall(t, d, nil, "size"))
}

func TestDictFilterByPredicate(t *testing.T) {
	d := object.NewDict()
	d.Set("a", object.Int{Val: 1})
	d.Set("b", object.Int{Val: 2})
	d.Set("c", object.Int{Val: 3})

	keepEven := fakeCaller{fn: func(args []object.Value) (object.Value, error) {
		v := args[1].(object.Int).Val
		return object.NewBool(v%2 == 0), nil
	}}
	out := dictCall(t, d, keepEven, "filter", object.TheNull).(*object.Dict)
	assert.Equal(t, []string{"b"}, out.Keys())
}
