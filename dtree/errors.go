// SPDX-License-Identifier: MIT

// Package dtree: sentinel errors. Missing and out-of-domain assignment values,
// and cardinality conflicts between trees, use the keys taxonomy
// (keys.ErrMissingKey, keys.ErrOutOfDomain, keys.ErrIncompatibleKeySet).

package dtree

import "github.com/pkg/errors"

var (
	// ErrEmptyTree is returned when an operation needs a tree but got the
	// zero Tree value.
	ErrEmptyTree = errors.New("dtree: empty tree")

	// ErrBranchCount indicates a choice whose number of branches differs
	// from the key's cardinality.
	ErrBranchCount = errors.New("dtree: branch count does not match cardinality")

	// ErrLeafCount indicates New received a number of leaves different from
	// the product of the cardinalities.
	ErrLeafCount = errors.New("dtree: leaf count does not match key cardinalities")

	// ErrDuplicateLabel indicates a key would appear twice on one path.
	ErrDuplicateLabel = errors.New("dtree: key repeated along a path")

	// ErrInconsistentOrder indicates trees disagree on which key branches first.
	ErrInconsistentOrder = errors.New("dtree: inconsistent branching order")
)
