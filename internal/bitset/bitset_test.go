package bitset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearGet(t *testing.T) {
	var b Bitset
	require.False(t, b.Get(5))

	b.Set(5)
	require.True(t, b.Get(5))
	require.False(t, b.Get(4))

	b.Clear(5)
	require.False(t, b.Get(5))
}

func TestSetRange(t *testing.T) {
	var b Bitset
	b.SetRange(3, 8)
	for i := uint(0); i < 20; i++ {
		want := i >= 3 && i < 8
		require.Equal(t, want, b.Get(i), "bit %d", i)
	}
}

func TestCardinality(t *testing.T) {
	var b Bitset
	require.Equal(t, 0, b.Cardinality())
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(200)
	require.Equal(t, 4, b.Cardinality())
}

func TestNextSetBit(t *testing.T) {
	var b Bitset
	b.Set(2)
	b.Set(130)

	i, ok := b.NextSetBit(0)
	require.True(t, ok)
	require.EqualValues(t, 2, i)

	i, ok = b.NextSetBit(3)
	require.True(t, ok)
	require.EqualValues(t, 130, i)

	_, ok = b.NextSetBit(131)
	require.False(t, ok)
}

func TestOrAndXor(t *testing.T) {
	var a, b Bitset
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	union := a.Clone()
	union.Or(b)
	require.Equal(t, 3, union.Cardinality())
	require.True(t, union.Get(1))
	require.True(t, union.Get(3))

	inter := a.Clone()
	inter.And(b)
	require.Equal(t, 1, inter.Cardinality())
	require.True(t, inter.Get(2))

	sym := a.Clone()
	sym.Xor(b)
	require.Equal(t, 2, sym.Cardinality())
	require.True(t, sym.Get(1))
	require.True(t, sym.Get(3))
	require.False(t, sym.Get(2))
}

func TestEquals(t *testing.T) {
	var a, b Bitset
	a.Set(5)
	b.Set(5)
	require.True(t, a.Equals(b))

	b.Set(500)
	require.False(t, a.Equals(b))

	// trailing all-zero words must not affect equality
	c := New(1000)
	c.Set(5)
	require.True(t, a.Equals(c))
}

func TestKeyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		var b Bitset
		n := rng.IntN(64)
		for i := 0; i < n; i++ {
			b.Set(uint(rng.IntN(300)))
		}
		key := b.Key()
		round := FromString(key, 300)
		require.True(t, b.Equals(round), "round trip failed for %q", key)
	}
}

func TestKeyOrdering(t *testing.T) {
	var a, b Bitset
	a.Set(1)
	a.Set(300)
	b.Set(300)
	b.Set(1)
	require.Equal(t, a.Key(), b.Key(), "key must not depend on insertion order")
}
