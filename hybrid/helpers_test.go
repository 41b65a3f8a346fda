package hybrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvhybrid/dtree"
	"github.com/katalvlaran/lvhybrid/hybrid"
	"github.com/katalvlaran/lvhybrid/keys"
	"github.com/katalvlaran/lvhybrid/linear"
)

var (
	X1 = keys.Symbol('x', 1)
	X2 = keys.Symbol('x', 2)
	M1 = keys.DiscreteKey{Key: keys.Symbol('m', 1), Cardinality: 2}
	M2 = keys.DiscreteKey{Key: keys.Symbol('m', 2), Cardinality: 3}
)

// prior returns ½‖x − mean‖² on a 1-D variable.
func prior(t *testing.T, k keys.Key, mean float64) *linear.JacobianFactor {
	t.Helper()
	f, err := linear.NewJacobianFactor(mat.NewVecDense(1, []float64{mean}),
		linear.Term{Key: k, A: mat.NewDense(1, 1, []float64{1})})
	require.NoError(t, err)

	return f
}

// gc is a one-factor hypothesis: prior(k, mean) with a constant.
func gc(t *testing.T, k keys.Key, mean, constant float64) hybrid.GraphAndConstant {
	t.Helper()

	return hybrid.NewGraphAndConstant(linear.NewGaussianFactorGraph(prior(t, k, mean)), constant)
}

// mixtureFactor is a minimal hybrid factor: one hypothesis per discrete
// assignment, selected at evaluation time.
type mixtureFactor struct {
	hybrid.Base
	tree hybrid.GaussianFactorGraphTree
}

func newMixture(t *testing.T, continuous keys.KeyVector, discrete keys.DiscreteKeys, leaves ...hybrid.GraphAndConstant) *mixtureFactor {
	t.Helper()
	tree, err := hybrid.NewGraphTree(discrete, leaves)
	require.NoError(t, err)

	return &mixtureFactor{Base: hybrid.NewHybridBase(continuous, discrete), tree: tree}
}

func (m *mixtureFactor) Error(values *hybrid.Values) (float64, error) {
	if err := m.CheckValues(values); err != nil {
		return 0, err
	}
	leaf, err := m.tree.Lookup(values.Discrete())
	if err != nil {
		return 0, err
	}

	return leaf.Error(values.Continuous())
}

func (m *mixtureFactor) Equals(other hybrid.Factor, tol float64) bool {
	o, ok := other.(*mixtureFactor)

	return ok && m.Base.Equals(other, tol) && hybrid.EqualGraphTrees(m.tree, o.tree, tol)
}

func (m *mixtureFactor) AddToGraphTree(tree hybrid.GaussianFactorGraphTree) (hybrid.GaussianFactorGraphTree, error) {
	return hybrid.AddGraphTree(tree, m.tree)
}

// tableFactor is a discrete-only factor with cost −log p(assignment).
type tableFactor struct {
	hybrid.Base
	probs dtree.Tree[float64]
}

func newTable(t *testing.T, discrete keys.DiscreteKeys, probs ...float64) *tableFactor {
	t.Helper()
	tree, err := dtree.New(discrete, probs)
	require.NoError(t, err)

	return &tableFactor{Base: hybrid.NewDiscreteBase(discrete), probs: tree}
}

func (d *tableFactor) Error(values *hybrid.Values) (float64, error) {
	if err := d.CheckValues(values); err != nil {
		return 0, err
	}
	p, err := d.probs.Lookup(values.Discrete())
	if err != nil {
		return 0, err
	}

	return -math.Log(p), nil
}

func (d *tableFactor) Equals(other hybrid.Factor, tol float64) bool {
	o, ok := other.(*tableFactor)

	return ok && d.Base.Equals(other, tol) &&
		dtree.Equal(d.probs, o.probs, func(a, b float64) bool { return math.Abs(a-b) <= tol })
}

// bareFactor has keys but no Gaussian content and is not discrete-only.
type bareFactor struct {
	hybrid.Base
}

func (b *bareFactor) Error(values *hybrid.Values) (float64, error) {
	return 0, b.CheckValues(values)
}
