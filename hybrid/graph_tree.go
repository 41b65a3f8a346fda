// SPDX-License-Identifier: MIT

// Package hybrid - GaussianFactorGraphTree: the hybrid value tree.
//
// The combination rule for two hypotheses being joined is fixed here:
// the linear systems are concatenated and the constants summed. Every
// tree-level helper below is a thin composition of dtree primitives.

package hybrid

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/dtree"
	"github.com/katalvlaran/lvhybrid/keys"
	"github.com/katalvlaran/lvhybrid/linear"
)

// GaussianFactorGraphTree maps each discrete assignment to the continuous
// cost of that hypothesis.
type GaussianFactorGraphTree = dtree.Tree[GraphAndConstant]

// NewGraphTree builds a tree over dkeys from leaves in row-major order
// (first key at the root, last key fastest). See dtree.New.
func NewGraphTree(dkeys keys.DiscreteKeys, leaves []GraphAndConstant) (GaussianFactorGraphTree, error) {
	return dtree.New(dkeys, leaves)
}

// CombineGraphs joins two hypotheses: concatenated graphs, summed constants.
func CombineGraphs(a, b GraphAndConstant) GraphAndConstant {
	return NewGraphAndConstant(a.graph.Concat(b.graph), a.constant+b.constant)
}

// AddGaussian appends factor to every leaf. On an empty tree it returns the
// single leaf (graph{factor}, 0).
func AddGaussian(tree GaussianFactorGraphTree, factor *linear.JacobianFactor) GaussianFactorGraphTree {
	if tree.IsEmpty() {
		return dtree.Leaf(NewGraphAndConstant(linear.NewGaussianFactorGraph(factor), 0))
	}

	return dtree.Map(tree, func(gc GraphAndConstant) GraphAndConstant {
		return NewGraphAndConstant(gc.graph.Append(factor), gc.constant)
	})
}

// AddGraphTree joins two trees over the union of their discrete keys with
// CombineGraphs. An empty operand yields the other one.
//
// Errors:
//   - keys.ErrIncompatibleKeySet if a shared key has different cardinalities.
func AddGraphTree(a, b GaussianFactorGraphTree) (GaussianFactorGraphTree, error) {
	switch {
	case a.IsEmpty():
		return b, nil
	case b.IsEmpty():
		return a, nil
	}
	sum, err := dtree.Apply(a, b, CombineGraphs)
	if err != nil {
		return GaussianFactorGraphTree{}, errors.Wrap(err, "add graph tree")
	}

	return sum, nil
}

// RemoveEmpty replaces every leaf whose graph contains a pruned (nil) factor
// with (empty graph, 0).
func RemoveEmpty(tree GaussianFactorGraphTree) GaussianFactorGraphTree {
	return dtree.Map(tree, func(gc GraphAndConstant) GraphAndConstant {
		if gc.graph.HasNil() {
			return GraphAndConstant{}
		}
		return gc
	})
}

// ErrorTree evaluates every hypothesis on the continuous assignment x.
// The result has the branching of tree and leaves graph.Error(x)+constant.
func ErrorTree(tree GaussianFactorGraphTree, x linear.VectorValues) (dtree.Tree[float64], error) {
	return dtree.MapErr(tree, func(gc GraphAndConstant) (float64, error) {
		return gc.Error(x)
	})
}

// EqualGraphTrees compares the assignment→leaf mappings of a and b with
// GraphAndConstant.Equals.
func EqualGraphTrees(a, b GaussianFactorGraphTree, tol float64) bool {
	return dtree.Equal(a, b, func(x, y GraphAndConstant) bool { return x.Equals(y, tol) })
}

// CompactGraphTree shares leaves that are equal within tol.
func CompactGraphTree(tree GaussianFactorGraphTree, tol float64) GaussianFactorGraphTree {
	return dtree.Compact(tree, func(x, y GraphAndConstant) bool { return x.Equals(y, tol) })
}
