package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/builtin"
	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/volterr"
)

func call(t *testing.T, v object.Value, args ...object.Value) object.Value {
	t.Helper()
	nf, ok := v.(*object.NativeFunc)
	require.True(t, ok)
	out, err := nf.Fn(args)
	require.NoError(t, err)
	return out
}

func strMethod(t *testing.T, s string, name string) object.Value {
	t.Helper()
	m, ok := builtin.StringMethod(object.NewStr(s), name, nil)
	require.True(t, ok, "expected string method %q to exist", name)
	return m
}

func TestStringMethodsPure(t *testing.T) {
	upper := call(t, strMethod(t, "  Hi  ", "trim"))
	assert.Equal(t, "Hi", upper.String())

	trimmedUpper := call(t, strMethod(t, "Hi", "upper"))
	assert.Equal(t, "HI", trimmedUpper.String())
}

func TestStringSliceEndExclusive(t *testing.T) {
	out := call(t, strMethod(t, "hello", "slice"), object.Int{Val: 1}, object.Int{Val: 4})
	assert.Equal(t, "ell", out.String())
}

func TestStringIndexOfAbsentReturnsNegativeOne(t *testing.T) {
	out := call(t, strMethod(t, "hello", "indexOf"), object.NewStr("z"))
	assert.Equal(t, object.Int{Val: -1}, out)
}

func TestStringReplaceAllOccurrences(t *testing.T) {
	out := call(t, strMethod(t, "a-b-c", "replace"), object.NewStr("-"), object.NewStr(":"))
	assert.Equal(t, "a:b:c", out.String())
}

func TestStringToIntOnNonNumericIsValueError(t *testing.T) {
	m, ok := builtin.StringMethod(object.NewStr("abc"), "toInt", nil)
	require.True(t, ok)
	nf := m.(*object.NativeFunc)
	_, err := nf.Fn(nil)
	require.Error(t, err)
	verr, ok := err.(*volterr.Error)
	require.True(t, ok)
	assert.Equal(t, volterr.ValueError, verr.Kind)
}

func TestStringToListSplitsCodePoints(t *testing.T) {
	out := call(t, strMethod(t, "héllo", "toList"))
	list, ok := out.(*object.List)
	require.True(t, ok)
	assert.Len(t, list.Elems, 5)
	assert.Equal(t, "é", list.Elems[1].String())
}

func TestStringPadStartAndPadEnd(t *testing.T) {
	start := call(t, strMethod(t, "7", "padStart"), object.Int{Val: 3}, object.NewStr("0"))
	assert.Equal(t, "007", start.String())

	end := call(t, strMethod(t, "7", "padEnd"), object.Int{Val: 3}, object.NewStr("0"))
	assert.Equal(t, "700", end.String())
}

func TestStringUnknownMethodNotFound(t *testing.T) {
	_, ok := builtin.StringMethod(object.NewStr("x"), "nope", nil)
	assert.False(t, ok)
}
