// SPDX-License-Identifier: MIT

// Package keys: sentinel error set shared by the whole module.
// Every message is prefixed with "keys: ..." so it can be grepped in logs.
// Wrap at the detection site with errors.Wrapf(ErrX, "ctx") and match with
// errors.Is; never compare messages.

package keys

import "github.com/pkg/errors"

var (
	// ErrMissingKey is returned when an assignment (or a tree lookup) omits a
	// key the factor or tree declares.
	ErrMissingKey = errors.New("keys: missing key")

	// ErrOutOfDomain is returned when a discrete value lies outside
	// [0, cardinality) of its key.
	ErrOutOfDomain = errors.New("keys: discrete value out of domain")

	// ErrIncompatibleKeySet is returned when two key sets (or two trees)
	// share an identifier but disagree on its cardinality.
	ErrIncompatibleKeySet = errors.New("keys: incompatible key sets")

	// ErrInvalidCardinality is returned when a discrete key is created with
	// fewer than two values.
	ErrInvalidCardinality = errors.New("keys: cardinality must be >= 2")
)
