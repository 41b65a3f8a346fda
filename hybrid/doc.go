// SPDX-License-Identifier: MIT

// Package hybrid defines hybrid factors: factor-graph terms that couple
// discrete (finite-domain) and continuous (real-vector) variables.
//
// What & Why:
//
//	A hybrid factor's value is one Gaussian linear system per discrete
//	assignment. The family is stored as a GaussianFactorGraphTree: a decision
//	tree over discrete keys whose leaves are GraphAndConstant values (a linear
//	system plus an additive log-normalization constant). Identical leaves may
//	be shared between branches.
//
//	Factor is the polymorphic surface every kind of factor implements, so
//	discrete-only, continuous-only and hybrid factors sit in one FactorGraph
//	and are evaluated against one Values assignment. Base carries the key
//	bookkeeping and is embedded by concrete factors, which supply Error.
//
// Key merging:
//
//	CollectKeys, CollectContinuousKeys and CollectDiscreteKeys combine the key
//	sets of factors being joined. Discrete keys are merged by identifier;
//	a cardinality conflict is keys.ErrIncompatibleKeySet.
//
// Errors:
//
//	Assignments missing a declared key fail with keys.ErrMissingKey; discrete
//	values outside a key's domain with keys.ErrOutOfDomain. Nothing in this
//	package retries or recovers: errors propagate to the caller.
//
// Concurrency:
//
//	Build-then-freeze. Factors, trees and GraphAndConstant values are
//	immutable; FactorGraph.Push must complete before concurrent reads.
package hybrid
