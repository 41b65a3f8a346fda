// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// GaussianFactorGraph is an immutable, ordered list of linear terms.
// Nil entries are allowed and stand for pruned terms; they contribute
// nothing to Error and are reported by HasNil.
type GaussianFactorGraph struct {
	factors []*JacobianFactor
}

// NewGaussianFactorGraph collects factors in order.
func NewGaussianFactorGraph(factors ...*JacobianFactor) GaussianFactorGraph {
	out := make([]*JacobianFactor, len(factors))
	copy(out, factors)

	return GaussianFactorGraph{factors: out}
}

// Len returns the number of entries, nil ones included.
func (g GaussianFactorGraph) Len() int { return len(g.factors) }

// Empty reports whether the graph has no entries.
func (g GaussianFactorGraph) Empty() bool { return len(g.factors) == 0 }

// At returns entry i (possibly nil). It panics on an out-of-range index,
// like slice indexing.
func (g GaussianFactorGraph) At(i int) *JacobianFactor { return g.factors[i] }

// HasNil reports whether any entry is nil.
func (g GaussianFactorGraph) HasNil() bool {
	for _, f := range g.factors {
		if f == nil {
			return true
		}
	}

	return false
}

// Append returns a new graph with factors added at the end. g is unchanged.
func (g GaussianFactorGraph) Append(factors ...*JacobianFactor) GaussianFactorGraph {
	out := make([]*JacobianFactor, 0, len(g.factors)+len(factors))
	out = append(out, g.factors...)
	out = append(out, factors...)

	return GaussianFactorGraph{factors: out}
}

// Concat returns g followed by other.
func (g GaussianFactorGraph) Concat(other GaussianFactorGraph) GaussianFactorGraph {
	return g.Append(other.factors...)
}

// Keys returns every continuous key used by a non-nil entry.
func (g GaussianFactorGraph) Keys() keys.KeySet {
	var s keys.KeySet
	for _, f := range g.factors {
		if f == nil {
			continue
		}
		for _, k := range f.keys {
			s.Insert(k)
		}
	}

	return s
}

// Error sums the errors of the non-nil entries.
func (g GaussianFactorGraph) Error(x VectorValues) (float64, error) {
	total := 0.0
	for i, f := range g.factors {
		if f == nil {
			continue
		}
		e, err := f.Error(x)
		if err != nil {
			return 0, errors.Wrapf(err, "graph factor %d", i)
		}
		total += e
	}

	return total, nil
}

// Equals compares entry by entry within tol; nil matches only nil.
func (g GaussianFactorGraph) Equals(other GaussianFactorGraph, tol float64) bool {
	if len(g.factors) != len(other.factors) {
		return false
	}
	for i := range g.factors {
		if !g.factors[i].Equals(other.factors[i], tol) {
			return false
		}
	}

	return true
}

// String prints each entry; pruned entries print as "<pruned>".
func (g GaussianFactorGraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size: %d\n", len(g.factors))
	for i, f := range g.factors {
		if f == nil {
			fmt.Fprintf(&sb, "factor %d: <pruned>\n", i)
			continue
		}
		fmt.Fprintf(&sb, "factor %d: keys [%s]\n", i, f.keys.Format(nil))
		sb.WriteString(f.String())
	}

	return sb.String()
}
