// SPDX-License-Identifier: MIT

// Package lvhybrid is the core of a hybrid discrete/continuous factor
// graph: factors whose cost depends on real-valued variables, on
// finite-domain "mode" variables, or on both.
//
// What is inside?
//
//	keys/   — variable identifiers, discrete keys (id + cardinality),
//	          key sets and discrete assignments
//	linear/ — Gaussian linear terms ½‖Σ A_j x_j − b‖² and ordered graphs
//	          of them, on gonum/mat
//	dtree/  — decision trees over discrete keys with shared subtrees:
//	          lookup, restrict, map, apply (key union), equality, compaction
//	          and a consistent branching order for several trees
//	hybrid/ — the Factor contract and its Base, key-merge helpers,
//	          GraphAndConstant and the GaussianFactorGraphTree, and a
//	          FactorGraph that evaluates and assembles hybrid models
//
// A mixture over a mode m1 with two hypotheses is a tree with one
// GraphAndConstant per value of m1; adding a continuous term appends it to
// every hypothesis, and joining two mixtures branches on the union of
// their modes:
//
//	m1 ──0──► {prior(x1, 0)}, c=0
//	   └─1──► {prior(x1, 2)}, c=0.1
//
// Elimination and inference are out of scope; this module supplies the
// bookkeeping and evaluation they build on.
//
//	go get github.com/katalvlaran/lvhybrid
package lvhybrid
