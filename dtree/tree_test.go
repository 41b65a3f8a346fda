package dtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhybrid/dtree"
	"github.com/katalvlaran/lvhybrid/keys"
)

var (
	A = keys.DiscreteKey{Key: keys.Symbol('a', 1), Cardinality: 2}
	B = keys.DiscreteKey{Key: keys.Symbol('b', 1), Cardinality: 3}
	C = keys.DiscreteKey{Key: keys.Symbol('c', 1), Cardinality: 2}
)

func intEq(a, b int) bool { return a == b }

// grid builds the 2×3 tree over A,B with leaf a*3+b.
func grid(t *testing.T) dtree.Tree[int] {
	t.Helper()
	tr, err := dtree.New(keys.DiscreteKeys{A, B}, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	return tr
}

func TestNew_LookupEveryAssignment(t *testing.T) {
	tr := grid(t)
	assert.Equal(t, 6, tr.NrLeaves())
	assert.Equal(t, 6, tr.NrAssignments())
	assert.Equal(t, keys.DiscreteKeys{A, B}, tr.Labels())

	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			v, err := tr.Lookup(keys.DiscreteValues{A.Key: a, B.Key: b})
			require.NoError(t, err)
			assert.Equal(t, a*3+b, v, "a=%d b=%d", a, b)
		}
	}
}

func TestLookup_Failures(t *testing.T) {
	tr := grid(t)

	_, err := tr.Lookup(keys.DiscreteValues{A.Key: 0})
	assert.ErrorIs(t, err, keys.ErrMissingKey)

	_, err = tr.Lookup(keys.DiscreteValues{A.Key: 0, B.Key: 3})
	assert.ErrorIs(t, err, keys.ErrOutOfDomain)

	_, err = dtree.Tree[int]{}.Lookup(keys.DiscreteValues{})
	assert.ErrorIs(t, err, dtree.ErrEmptyTree)

	// extra keys are ignored
	v, err := tr.Lookup(keys.DiscreteValues{A.Key: 1, B.Key: 1, C.Key: 7})
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestNew_Validation(t *testing.T) {
	_, err := dtree.New(keys.DiscreteKeys{A, B}, []int{0, 1, 2})
	assert.ErrorIs(t, err, dtree.ErrLeafCount)

	_, err = dtree.New(keys.DiscreteKeys{A, A}, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, dtree.ErrDuplicateLabel)

	_, err = dtree.New(keys.DiscreteKeys{{Key: 1, Cardinality: 1}}, []int{0})
	assert.ErrorIs(t, err, keys.ErrInvalidCardinality)

	tr, err := dtree.New(nil, []int{7})
	require.NoError(t, err)
	v, ok := tr.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestNewChoice_Validation(t *testing.T) {
	l := dtree.Leaf(1)

	_, err := dtree.NewChoice(A, l)
	assert.ErrorIs(t, err, dtree.ErrBranchCount)

	_, err = dtree.NewChoice(A, l, dtree.Tree[int]{})
	assert.ErrorIs(t, err, dtree.ErrEmptyTree)

	inner, err := dtree.NewChoice(A, l, l)
	require.NoError(t, err)
	_, err = dtree.NewChoice(A, inner, l)
	assert.ErrorIs(t, err, dtree.ErrDuplicateLabel)

	shared, err := dtree.NewChoice(B, inner, inner, inner)
	require.NoError(t, err)
	assert.Equal(t, 1, shared.NrLeaves(), "shared leaf stored once")
	assert.Equal(t, 3, shared.NrNodes(), "outer choice, shared inner choice, shared leaf")
	assert.Equal(t, 6, shared.NrAssignments())
}

func TestRestrict_Partial(t *testing.T) {
	tr := grid(t)

	sub, err := tr.Restrict(keys.DiscreteValues{A.Key: 1})
	require.NoError(t, err)
	assert.Equal(t, keys.DiscreteKeys{B}, sub.Labels())
	for b := 0; b < 3; b++ {
		v, err := sub.Lookup(keys.DiscreteValues{B.Key: b})
		require.NoError(t, err)
		assert.Equal(t, 3+b, v)
	}

	// fixing the inner key works through the root branch
	sub, err = tr.Choose(B.Key, 2)
	require.NoError(t, err)
	assert.Equal(t, keys.DiscreteKeys{A}, sub.Labels())
	v, err := sub.Lookup(keys.DiscreteValues{A.Key: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	leaf, err := tr.Restrict(keys.DiscreteValues{A.Key: 0, B.Key: 1})
	require.NoError(t, err)
	v, ok := leaf.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, err = tr.Choose(A.Key, 5)
	assert.ErrorIs(t, err, keys.ErrOutOfDomain)

	same, err := tr.Choose(C.Key, 0)
	require.NoError(t, err)
	assert.True(t, dtree.Equal(tr, same, intEq))
}

func TestApply_SameKey(t *testing.T) {
	f, err := dtree.New(keys.DiscreteKeys{A}, []int{1, 2})
	require.NoError(t, err)
	g, err := dtree.New(keys.DiscreteKeys{A}, []int{10, 20})
	require.NoError(t, err)

	sum, err := dtree.Apply(f, g, func(x, y int) int { return x + y })
	require.NoError(t, err)
	assert.Equal(t, keys.DiscreteKeys{A}, sum.Labels())
	assert.Equal(t, 2, sum.NrLeaves())

	v0, err := sum.Lookup(keys.DiscreteValues{A.Key: 0})
	require.NoError(t, err)
	v1, err := sum.Lookup(keys.DiscreteValues{A.Key: 1})
	require.NoError(t, err)
	assert.Equal(t, 11, v0)
	assert.Equal(t, 22, v1)
}

func TestApply_KeyUnion(t *testing.T) {
	f, err := dtree.New(keys.DiscreteKeys{A}, []int{0, 100})
	require.NoError(t, err)
	g, err := dtree.New(keys.DiscreteKeys{B}, []int{0, 1, 2})
	require.NoError(t, err)

	sum, err := dtree.Apply(f, g, func(x, y int) int { return x + y })
	require.NoError(t, err)
	assert.Equal(t, keys.DiscreteKeys{A, B}, sum.Labels())
	assert.Equal(t, 6, sum.NrAssignments())

	sum.VisitAssignments(func(vals keys.DiscreteValues, v int) {
		assert.Equal(t, 100*vals[A.Key]+vals[B.Key], v)
	})

	// leaf on the left: labels come from the right tree
	l, err := dtree.Apply(dtree.Leaf(5), g, func(x, y int) int { return x * y })
	require.NoError(t, err)
	assert.Equal(t, keys.DiscreteKeys{B}, l.Labels())
}

func TestApply_Failures(t *testing.T) {
	f, err := dtree.New(keys.DiscreteKeys{A}, []int{0, 1})
	require.NoError(t, err)
	wide := keys.DiscreteKey{Key: A.Key, Cardinality: 3}
	g, err := dtree.New(keys.DiscreteKeys{wide}, []int{0, 1, 2})
	require.NoError(t, err)

	_, err = dtree.Apply(f, g, func(x, y int) int { return x + y })
	assert.ErrorIs(t, err, keys.ErrIncompatibleKeySet)

	_, err = dtree.Apply(f, dtree.Tree[int]{}, func(x, y int) int { return x + y })
	assert.ErrorIs(t, err, dtree.ErrEmptyTree)
}

func TestEqual_IgnoresSharingAndOrder(t *testing.T) {
	one := dtree.Leaf(1)
	shared, err := dtree.NewChoice(A, one, one)
	require.NoError(t, err)
	dup, err := dtree.NewChoice(A, dtree.Leaf(1), dtree.Leaf(1))
	require.NoError(t, err)

	assert.Equal(t, 1, shared.NrLeaves())
	assert.Equal(t, 2, dup.NrLeaves())
	assert.True(t, dtree.Equal(shared, dup, intEq))
	assert.True(t, dtree.Equal(shared, one, intEq), "constant branch equals its leaf")

	ab := grid(t)
	// same mapping, B at the root: leaf(b,a) = a*3+b
	ba, err := dtree.New(keys.DiscreteKeys{B, A}, []int{0, 3, 1, 4, 2, 5})
	require.NoError(t, err)
	assert.True(t, dtree.Equal(ab, ba, intEq))

	other, err := dtree.New(keys.DiscreteKeys{A, B}, []int{0, 1, 2, 3, 4, 6})
	require.NoError(t, err)
	assert.False(t, dtree.Equal(ab, other, intEq))

	assert.True(t, dtree.Equal(dtree.Tree[int]{}, dtree.Tree[int]{}, intEq))
	assert.False(t, dtree.Equal(ab, dtree.Tree[int]{}, intEq))
}

func TestCompact_SharesIdenticalLeaves(t *testing.T) {
	tr, err := dtree.New(keys.DiscreteKeys{A, B}, []int{1, 1, 1, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 6, tr.NrLeaves())

	c := dtree.Compact(tr, intEq)
	assert.Equal(t, 2, c.NrLeaves())
	assert.Equal(t, 6, c.NrAssignments())
	assert.Equal(t, tr.Labels(), c.Labels())
	assert.True(t, dtree.Equal(tr, c, intEq))

	// both B-subtrees under A are equal choices once leaves are shared
	flat, err := dtree.New(keys.DiscreteKeys{A, B}, []int{1, 2, 1, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2+1+1, dtree.Compact(flat, intEq).NrNodes())
}

func TestMap_PreservesSharing(t *testing.T) {
	one := dtree.Leaf(1)
	shared, err := dtree.NewChoice(B, one, one, one)
	require.NoError(t, err)

	calls := 0
	doubled := dtree.Map(shared, func(v int) int { calls++; return 2 * v })
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, doubled.NrLeaves())
	v, err := doubled.Lookup(keys.DiscreteValues{B.Key: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.True(t, dtree.Map(dtree.Tree[int]{}, func(v int) int { return v }).IsEmpty())
}

func TestMapErr_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := dtree.MapErr(grid(t), func(v int) (string, error) {
		if v == 4 {
			return "", boom
		}
		return "ok", nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestMapWithAssignment(t *testing.T) {
	one := dtree.Leaf(0)
	shared, err := dtree.NewChoice(A, one, one)
	require.NoError(t, err)

	out := dtree.MapWithAssignment(shared, func(vals keys.DiscreteValues, v int) int {
		return v + vals[A.Key]
	})
	assert.Equal(t, 2, out.NrLeaves())
	v, err := out.Lookup(keys.DiscreteValues{A.Key: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestVisit(t *testing.T) {
	var leaves []int
	grid(t).Visit(func(v int) { leaves = append(leaves, v) })
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, leaves)

	var order []string
	grid(t).VisitAssignments(func(vals keys.DiscreteValues, _ int) {
		order = append(order, vals.String())
	})
	assert.Equal(t, []string{
		"a1=0 b1=0", "a1=0 b1=1", "a1=0 b1=2",
		"a1=1 b1=0", "a1=1 b1=1", "a1=1 b1=2",
	}, order)
	assert.Equal(t, "Tree[a1(2) b1(3)]{leaves: 6}", grid(t).String())
	assert.Equal(t, "Tree{}", dtree.Tree[int]{}.String())
}
