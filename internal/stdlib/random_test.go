package stdlib_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/object"
	"github.com/voltlang/volt/internal/stdlib"
)

func TestRandomIntIsWithinInclusiveRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := stdlib.Random(rng)
	for i := 0; i < 50; i++ {
		out := callMember(t, m, "int", object.Int{Val: 1}, object.Int{Val: 3})
		n := out.(object.Int).Val
		assert.True(t, n >= 1 && n <= 3)
	}
}

func TestRandomFloatIsWithinUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := stdlib.Random(rng)
	out := callMember(t, m, "float")
	f := out.(object.Float).Val
	assert.True(t, f >= 0 && f < 1)
}

func TestRandomChoiceReturnsAnElement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := stdlib.Random(rng)
	list := object.NewList([]object.Value{object.Int{Val: 10}, object.Int{Val: 20}, object.Int{Val: 30}})
	out := callMember(t, m, "choice", list)
	assert.Contains(t, list.Elems, out)
}

func TestRandomShuffleReturnsNewListLeavingOriginalUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := stdlib.Random(rng)
	original := object.NewList([]object.Value{object.Int{Val: 1}, object.Int{Val: 2}, object.Int{Val: 3}, object.Int{Val: 4}})
	originalCopy := append([]object.Value{}, original.Elems...)

	out := callMember(t, m, "shuffle", original)
	shuffled, ok := out.(*object.List)
	require.True(t, ok)
	assert.NotSame(t, original, shuffled)
	assert.Equal(t, originalCopy, original.Elems, "shuffle must not mutate its argument")
	assert.ElementsMatch(t, originalCopy, shuffled.Elems)
}
