package keys_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhybrid/keys"
)

func TestSymbol_RoundTrip(t *testing.T) {
	k := keys.Symbol('x', 42)
	assert.Equal(t, byte('x'), k.Chr())
	assert.Equal(t, uint64(42), k.Index())
	assert.Equal(t, "x42", k.String())
	assert.Equal(t, "7", keys.Key(7).String())
}

func TestNewDiscreteKey_Cardinality(t *testing.T) {
	_, err := keys.NewDiscreteKey(keys.Symbol('m', 1), 1)
	assert.ErrorIs(t, err, keys.ErrInvalidCardinality)

	dk, err := keys.NewDiscreteKey(keys.Symbol('m', 1), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, dk.Cardinality)
	assert.Equal(t, "m1(3)", dk.String())
}

func TestKeyVector_EqualIsOrderSensitive(t *testing.T) {
	a := keys.KeyVector{1, 2, 3}
	assert.True(t, a.Equal(keys.KeyVector{1, 2, 3}))
	assert.False(t, a.Equal(keys.KeyVector{3, 2, 1}))
	assert.False(t, a.Equal(keys.KeyVector{1, 2}))
	assert.True(t, a.Contains(2))
	assert.False(t, a.Contains(9))
}

func TestKeySet_SortedUnique(t *testing.T) {
	s := keys.NewKeySet(5, 1, 3, 1, 5)
	assert.Equal(t, 3, s.Len())
	if diff := cmp.Diff(keys.KeyVector{1, 3, 5}, s.Slice()); diff != "" {
		t.Fatalf("unexpected set (-want +got):\n%s", diff)
	}
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Insert(3))
	assert.True(t, s.Insert(4))
}

func TestDiscreteKeys_Projections(t *testing.T) {
	d := keys.DiscreteKeys{{Key: 10, Cardinality: 2}, {Key: 11, Cardinality: 3}}
	assert.Equal(t, keys.KeyVector{10, 11}, d.Keys())
	assert.Equal(t, []int{2, 3}, d.Cardinalities())

	dk, ok := d.Find(11)
	assert.True(t, ok)
	assert.Equal(t, 3, dk.Cardinality)
	_, ok = d.Find(12)
	assert.False(t, ok)

	assert.True(t, d.Equal(d.Clone()))
	assert.False(t, d.Equal(keys.DiscreteKeys{{Key: 10, Cardinality: 2}, {Key: 11, Cardinality: 4}}))
}

func TestDiscreteValues_Check(t *testing.T) {
	m := keys.DiscreteKey{Key: keys.Symbol('m', 1), Cardinality: 2}
	vals := keys.DiscreteValues{m.Key: 1}

	v, err := vals.Check(m)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = keys.DiscreteValues{}.Check(m)
	assert.ErrorIs(t, err, keys.ErrMissingKey)

	_, err = keys.DiscreteValues{m.Key: 2}.Check(m)
	assert.ErrorIs(t, err, keys.ErrOutOfDomain)

	_, err = keys.DiscreteValues{m.Key: -1}.Check(m)
	assert.ErrorIs(t, err, keys.ErrOutOfDomain)

	assert.Equal(t, "m1=1", vals.String())
}
