// SPDX-License-Identifier: MIT

// Package keys defines the variable identifiers shared by every hybrid
// factor: continuous keys (opaque identifiers of real-vector variables),
// discrete keys (identifier plus finite cardinality) and the discrete part of
// an assignment.
//
// What & Why:
//
//	Factors only need to know WHICH variables they touch to take part in
//	graph bookkeeping. Dimensions of continuous variables are owned by the
//	linear systems using them, so a continuous key is just a Key.
//
// Errors:
//
//	The error taxonomy used across the module lives here (ErrMissingKey,
//	ErrOutOfDomain, ErrIncompatibleKeySet, ErrInvalidCardinality). Other
//	packages wrap these sentinels with context; match them with errors.Is.
//
// Complexity:
//
//	KeyVector and DiscreteKeys are plain slices: O(n) lookups, no hashing.
//	KeySet keeps its keys sorted: O(log n) Contains, O(n) Insert.
package keys
