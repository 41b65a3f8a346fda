// SPDX-License-Identifier: MIT

// Package linear: sentinel errors. Missing variables are reported with
// keys.ErrMissingKey so callers match one taxonomy across packages.

package linear

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch indicates incompatible shapes, e.g. a block whose
	// row count differs from len(b), or a vector whose length differs from the
	// block's column count.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrDuplicateKey indicates the same key was given twice to one factor.
	ErrDuplicateKey = errors.New("linear: duplicate key in factor")

	// ErrNilMatrix indicates a nil block or right-hand side.
	ErrNilMatrix = errors.New("linear: nil matrix")
)
