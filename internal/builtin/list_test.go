package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/builtin"
	"github.com/voltlang/volt/internal/object"
)

// fakeCaller lets tests exercise map/filter/reduce/find/every/some without a
// real interpreter, applying a plain Go function as the "callback".
type fakeCaller struct {
	fn func(args []object.Value) (object.Value, error)
}

func (c fakeCaller) Call(_ object.Value, args []object.Value) (object.Value, error) {
	return c.fn(args)
}

func ints(vs ...int64) []object.Value {
	out := make([]object.Value, len(vs))
	for i, v := range vs {
		out[i] = object.Int{Val: v}
	}
	return out
}

func newList(vs ...int64) *object.List { return object.NewList(ints(vs...)) }

func listCall(t *testing.T, l *object.List, caller builtin.Caller, name string, args ...object.Value) object.Value {
	t.Helper()
	m, ok := builtin.ListMethod(l, name, caller)
	require.True(t, ok, "expected list method %q to exist", name)
	nf, ok := m.(*object.NativeFunc)
	require.True(t, ok)
	out, err := nf.Fn(args)
	require.NoError(t, err)
	return out
}

func TestListPushReturnsNewLength(t *testing.T) {
	l := newList(1, 2)
	out := listCall(t, l, nil, "push", object.Int{Val: 3})
	assert.Equal(t, object.Int{Val: 3}, out)
	assert.Equal(t, []object.Value(ints(1, 2, 3)), l.Elems)
}

func TestListMapFilterAreFreshAndPure(t *testing.T) {
	l := newList(1, 2, 3)
	square := fakeCaller{fn: func(args []object.Value) (object.Value, error) {
		n := args[0].(object.Int).Val
		return object.Int{Val: n * n}, nil
	}}
	mapped := listCall(t, l, square, "map", object.TheNull)
	mappedList := mapped.(*object.List)
	assert.Equal(t, ints(1, 4, 9), mappedList.Elems)
	// source list unchanged
	assert.Equal(t, ints(1, 2, 3), l.Elems)

	isEven := fakeCaller{fn: func(args []object.Value) (object.Value, error) {
		n := args[0].(object.Int).Val
		return object.NewBool(n%2 == 0), nil
	}}
	filtered := listCall(t, l, isEven, "filter", object.TheNull)
	assert.Equal(t, ints(2), filtered.(*object.List).Elems)
	assert.Equal(t, ints(1, 2, 3), l.Elems)
}

func TestListReduceSum(t *testing.T) {
	l := newList(1, 2, 3, 4)
	add := fakeCaller{fn: func(args []object.Value) (object.Value, error) {
		a := args[0].(object.Int).Val
		b := args[1].(object.Int).Val
		return object.Int{Val: a + b}, nil
	}}
	out := listCall(t, l, add, "reduce", object.TheNull, object.Int{Val: 0})
	assert.Equal(t, object.Int{Val: 10}, out)
}

func TestListSortStableWithNonComparableTrailing(t *testing.T) {
	d1 := object.NewDict()
	d2 := object.NewDict()
	l := object.NewList([]object.Value{object.Int{Val: 3}, d1, object.Int{Val: 1}, d2, object.NewStr("a")})
	listCall(t, l, nil, "sort")
	// numbers first (ascending), then strings, then non-comparables in original relative order
	require.Len(t, l.Elems, 5)
	assert.Equal(t, object.Int{Val: 1}, l.Elems[0])
	assert.Equal(t, object.Int{Val: 3}, l.Elems[1])
	assert.Equal(t, object.NewStr("a"), l.Elems[2])
	assert.Same(t, d1, l.Elems[3])
	assert.Same(t, d2, l.Elems[4])
}

func TestListReverseMutatesAndReturnsSelf(t *testing.T) {
	l := newList(1, 2, 3)
	out := listCall(t, l, nil, "reverse")
	assert.Same(t, l, out)
	assert.Equal(t, ints(3, 2, 1), l.Elems)
}

func TestListUniquePreservesFirstOccurrence(t *testing.T) {
	l := object.NewList([]object.Value{object.Int{Val: 1}, object.Int{Val: 2}, object.Int{Val: 1}, object.Int{Val: 3}, object.Int{Val: 2}})
	out := listCall(t, l, nil, "unique")
	assert.Equal(t, ints(1, 2, 3), out.(*object.List).Elems)
}

func TestListSliceEndExclusiveReturnsFreshList(t *testing.T) {
	l := newList(1, 2, 3, 4, 5)
	out := listCall(t, l, nil, "slice", object.Int{Val: 1}, object.Int{Val: 3})
	assert.Equal(t, ints(2, 3), out.(*object.List).Elems)
	out.(*object.List).Elems[0] = object.Int{Val: 999}
	assert.Equal(t, ints(1, 2, 3, 4, 5), l.Elems)
}

func TestListIncludesAndIndexOfUseValueEquality(t *testing.T) {
	l := newList(10, 20, 30)
	assert.Equal(t, object.True, listCall(t, l, nil, "includes", object.Int{Val: 20}))
	assert.Equal(t, object.Int{Val: 1}, listCall(t, l, nil, "indexOf", object.Int{Val: 20}))
	assert.Equal(t, object.Int{Val: -1}, listCall(t, l, nil, "indexOf", object.Int{Val: 99}))
}

func TestListJoin(t *testing.T) {
	l := object.NewList([]object.Value{object.NewStr("a"), object.NewStr("b"), object.NewStr("c")})
	out := listCall(t, l, nil, "join", object.NewStr(", "))
	assert.Equal(t, "a, b, c", out.String())
}
