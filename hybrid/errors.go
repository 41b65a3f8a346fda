// SPDX-License-Identifier: MIT

// Package hybrid: sentinel errors specific to factor graphs. Key and domain
// failures reuse keys.ErrMissingKey, keys.ErrOutOfDomain and
// keys.ErrIncompatibleKeySet.

package hybrid

import "github.com/pkg/errors"

var (
	// ErrNilFactor indicates a nil factor was pushed or wrapped.
	ErrNilFactor = errors.New("hybrid: nil factor")

	// ErrUnsupportedFactor indicates a factor that cannot contribute to a
	// Gaussian factor graph tree and is not discrete-only.
	ErrUnsupportedFactor = errors.New("hybrid: factor cannot be assembled into a graph tree")
)
