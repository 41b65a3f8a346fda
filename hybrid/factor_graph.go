// SPDX-License-Identifier: MIT

// Package hybrid - FactorGraph: an ordered bag of factors of any kind with
// the key bookkeeping and evaluation helpers elimination code relies on.
// It performs no inference.

package hybrid

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvhybrid/dtree"
	"github.com/katalvlaran/lvhybrid/keys"
	"github.com/katalvlaran/lvhybrid/linear"
)

// FactorGraph holds factors in insertion order.
type FactorGraph struct {
	factors []Factor
	log     logrus.FieldLogger
}

// NewFactorGraph returns an empty graph configured by opts.
func NewFactorGraph(opts ...Option) *FactorGraph {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &FactorGraph{
		factors: make([]Factor, 0, o.capacity),
		log:     o.logger,
	}
}

// Push appends factors in order. A nil factor, or a typed nil that reports
// IsNil, is ErrNilFactor and nothing from that call is added.
func (fg *FactorGraph) Push(factors ...Factor) error {
	for i, f := range factors {
		if isNil(f) {
			return errors.Wrapf(ErrNilFactor, "push argument %d", i)
		}
	}
	for _, f := range factors {
		fg.factors = append(fg.factors, f)
		fg.log.WithFields(logrus.Fields{
			"factor": len(fg.factors) - 1,
			"kind":   f.Kind().String(),
			"keys":   f.Keys().Format(nil),
		}).Debug("factor added")
	}

	return nil
}

// isNil catches interface nils and typed nils of factors implementing
// Nillable.
func isNil(f Factor) bool {
	if f == nil {
		return true
	}
	n, ok := f.(Nillable)

	return ok && n.IsNil()
}

// Size returns the number of factors.
func (fg *FactorGraph) Size() int { return len(fg.factors) }

// At returns factor i. It panics on an out-of-range index.
func (fg *FactorGraph) At(i int) Factor { return fg.factors[i] }

// Factors returns a copy of the factor list.
func (fg *FactorGraph) Factors() []Factor {
	out := make([]Factor, len(fg.factors))
	copy(out, fg.factors)

	return out
}

// DiscreteKeys lists the discrete keys of every factor in factor order,
// repeats included.
func (fg *FactorGraph) DiscreteKeys() keys.DiscreteKeys {
	var out keys.DiscreteKeys
	for _, f := range fg.factors {
		out = append(out, f.DiscreteKeys()...)
	}

	return out
}

// DiscreteKeySet returns the identifiers of all discrete keys.
func (fg *FactorGraph) DiscreteKeySet() keys.KeySet {
	var s keys.KeySet
	for _, dk := range fg.DiscreteKeys() {
		s.Insert(dk.Key)
	}

	return s
}

// DiscreteKeyMap maps each discrete identifier to its key. When factors
// disagree on a cardinality the last one wins; use CheckDiscreteKeys to
// detect that.
func (fg *FactorGraph) DiscreteKeyMap() map[keys.Key]keys.DiscreteKey {
	out := make(map[keys.Key]keys.DiscreteKey)
	for _, dk := range fg.DiscreteKeys() {
		out[dk.Key] = dk
	}

	return out
}

// CheckDiscreteKeys merges the discrete keys of all factors with
// CollectDiscreteKeys and reports keys.ErrIncompatibleKeySet on conflict.
func (fg *FactorGraph) CheckDiscreteKeys() (keys.DiscreteKeys, error) {
	var merged keys.DiscreteKeys
	for i, f := range fg.factors {
		var err error
		if merged, err = CollectDiscreteKeys(merged, f.DiscreteKeys()); err != nil {
			return nil, errors.Wrapf(err, "factor %d", i)
		}
	}

	return merged, nil
}

// ContinuousKeySet returns every continuous key used by some factor.
func (fg *FactorGraph) ContinuousKeySet() keys.KeySet {
	var s keys.KeySet
	for _, f := range fg.factors {
		for _, k := range f.ContinuousKeys() {
			s.Insert(k)
		}
	}

	return s
}

// Error sums the factors' errors on a full hybrid assignment.
func (fg *FactorGraph) Error(values *Values) (float64, error) {
	total := 0.0
	for i, f := range fg.factors {
		e, err := f.Error(values)
		if err != nil {
			return 0, errors.Wrapf(err, "factor %d", i)
		}
		total += e
	}
	fg.log.WithField("error", total).Debug("graph evaluated")

	return total, nil
}

// ProbPrime returns the unnormalized probability exp(−Error).
func (fg *FactorGraph) ProbPrime(values *Values) (float64, error) {
	e, err := fg.Error(values)
	if err != nil {
		return 0, err
	}

	return math.Exp(-e), nil
}

// AssembleGraphTree joins the Gaussian content of every factor into one
// tree over all their discrete keys. Discrete-only factors are skipped.
//
// Errors:
//   - ErrUnsupportedFactor for a non-discrete factor that is not a
//     GraphTreeContributor.
//   - keys.ErrIncompatibleKeySet when two factors disagree on a cardinality.
func (fg *FactorGraph) AssembleGraphTree() (GaussianFactorGraphTree, error) {
	var tree GaussianFactorGraphTree
	for i, f := range fg.factors {
		c, ok := f.(GraphTreeContributor)
		if !ok {
			if f.IsDiscrete() {
				continue
			}
			fg.log.WithFields(logrus.Fields{"factor": i, "kind": f.Kind().String()}).
				Warn("factor cannot be assembled into a graph tree")
			return GaussianFactorGraphTree{}, errors.Wrapf(ErrUnsupportedFactor, "factor %d (%s)", i, f.Kind())
		}
		var err error
		if tree, err = c.AddToGraphTree(tree); err != nil {
			return GaussianFactorGraphTree{}, errors.Wrapf(err, "factor %d", i)
		}
	}
	fg.log.WithFields(logrus.Fields{
		"leaves":      tree.NrLeaves(),
		"assignments": tree.NrAssignments(),
	}).Debug("graph tree assembled")

	return tree, nil
}

// ErrorTree evaluates the Gaussian content of the graph on a continuous
// assignment for every discrete hypothesis. Discrete-only factors are
// skipped; a graph without Gaussian content yields the single leaf 0.
func (fg *FactorGraph) ErrorTree(x linear.VectorValues) (dtree.Tree[float64], error) {
	tree, err := fg.AssembleGraphTree()
	if err != nil {
		return dtree.Tree[float64]{}, err
	}
	if tree.IsEmpty() {
		return dtree.Leaf(0.0), nil
	}

	return ErrorTree(tree, x)
}

// ProbPrimeTree is ErrorTree mapped through exp(−e): the unnormalized
// probability of every discrete hypothesis at x.
func (fg *FactorGraph) ProbPrimeTree(x linear.VectorValues) (dtree.Tree[float64], error) {
	errs, err := fg.ErrorTree(x)
	if err != nil {
		return dtree.Tree[float64]{}, err
	}

	return dtree.Map(errs, func(e float64) float64 { return math.Exp(-e) }), nil
}

// Equals compares factor by factor in order.
func (fg *FactorGraph) Equals(other *FactorGraph, tol float64) bool {
	if other == nil || len(fg.factors) != len(other.factors) {
		return false
	}
	for i, f := range fg.factors {
		if !f.Equals(other.factors[i], tol) {
			return false
		}
	}

	return true
}

// String renders the factor table (see FormatFactorGraph).
func (fg *FactorGraph) String() string {
	return FormatFactorGraph(fg)
}
