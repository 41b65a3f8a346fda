// SPDX-License-Identifier: MIT

// Package linear - JacobianFactor: a single whitened linear term.
//
// Purpose:
//   - Hold the blocks A_j (one per key) and the right-hand side b of
//     ½‖Σ_j A_j·x_j − b‖².
//   - Validate shapes at construction so evaluation only has to check the
//     incoming vectors.
//
// Inputs are copied; a JacobianFactor never aliases caller memory.

package linear

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvhybrid/keys"
)

// Term is one (key, block) pair of a JacobianFactor.
type Term struct {
	Key keys.Key
	A   *mat.Dense
}

// JacobianFactor is an immutable linear term over a few continuous keys.
type JacobianFactor struct {
	keys   keys.KeyVector
	blocks []*mat.Dense // blocks[i] multiplies x[keys[i]]
	b      *mat.VecDense
}

// NewJacobianFactor builds ½‖Σ A_j x_j − b‖² from b and its terms.
// A factor without terms is legal: its error is the constant ½‖b‖².
//
// Errors:
//   - ErrNilMatrix when b or any block is nil.
//   - ErrDimensionMismatch when a block's row count differs from b.Len().
//   - ErrDuplicateKey when a key appears twice.
func NewJacobianFactor(b *mat.VecDense, terms ...Term) (*JacobianFactor, error) {
	if b == nil {
		return nil, errors.Wrap(ErrNilMatrix, "jacobian: rhs")
	}
	rows := b.Len()
	f := &JacobianFactor{
		keys:   make(keys.KeyVector, 0, len(terms)),
		blocks: make([]*mat.Dense, 0, len(terms)),
		b:      mat.VecDenseCopyOf(b),
	}
	for _, t := range terms {
		if t.A == nil {
			return nil, errors.Wrapf(ErrNilMatrix, "jacobian: block %s", t.Key)
		}
		if r, _ := t.A.Dims(); r != rows {
			return nil, errors.Wrapf(ErrDimensionMismatch, "jacobian: block %s has %d rows, rhs has %d", t.Key, r, rows)
		}
		if f.keys.Contains(t.Key) {
			return nil, errors.Wrapf(ErrDuplicateKey, "jacobian: %s", t.Key)
		}
		f.keys = append(f.keys, t.Key)
		f.blocks = append(f.blocks, mat.DenseCopyOf(t.A))
	}

	return f, nil
}

// Keys returns the factor's keys in construction order.
func (f *JacobianFactor) Keys() keys.KeyVector { return f.keys.Clone() }

// Rows returns the number of rows (len(b)).
func (f *JacobianFactor) Rows() int { return f.b.Len() }

// A returns a copy of the block for k, or keys.ErrMissingKey.
func (f *JacobianFactor) A(k keys.Key) (*mat.Dense, error) {
	for i, x := range f.keys {
		if x == k {
			return mat.DenseCopyOf(f.blocks[i]), nil
		}
	}

	return nil, errors.Wrapf(keys.ErrMissingKey, "jacobian: block %s", k)
}

// B returns a copy of the right-hand side.
func (f *JacobianFactor) B() *mat.VecDense { return mat.VecDenseCopyOf(f.b) }

// Residual computes r = Σ A_j·x_j − b.
//
// Errors:
//   - keys.ErrMissingKey if x lacks one of the factor's keys.
//   - ErrDimensionMismatch if a vector's length differs from its block's columns.
func (f *JacobianFactor) Residual(x VectorValues) (*mat.VecDense, error) {
	r := mat.NewVecDense(f.b.Len(), nil)
	for i, k := range f.keys {
		xk, err := x.At(k)
		if err != nil {
			return nil, err
		}
		if _, c := f.blocks[i].Dims(); c != xk.Len() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "jacobian: %s expects dim %d, got %d", k, c, xk.Len())
		}
		var term mat.VecDense
		term.MulVec(f.blocks[i], xk)
		r.AddVec(r, &term)
	}
	r.SubVec(r, f.b)

	return r, nil
}

// Error returns ½‖Σ A_j·x_j − b‖².
func (f *JacobianFactor) Error(x VectorValues) (float64, error) {
	r, err := f.Residual(x)
	if err != nil {
		return 0, err
	}

	return 0.5 * mat.Dot(r, r), nil
}

// Equals compares keys (order-sensitive), blocks and rhs within tol.
func (f *JacobianFactor) Equals(other *JacobianFactor, tol float64) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if !f.keys.Equal(other.keys) || f.b.Len() != other.b.Len() {
		return false
	}
	for i := range f.blocks {
		ra, ca := f.blocks[i].Dims()
		rb, cb := other.blocks[i].Dims()
		if ra != rb || ca != cb || !mat.EqualApprox(f.blocks[i], other.blocks[i], tol) {
			return false
		}
	}

	return mat.EqualApprox(f.b, other.b, tol)
}

// String prints every block and the rhs.
func (f *JacobianFactor) String() string {
	var sb strings.Builder
	for i, k := range f.keys {
		fmt.Fprintf(&sb, "  A[%s] = %v\n", k, mat.Formatted(f.blocks[i], mat.Prefix("         "), mat.Squeeze()))
	}
	fmt.Fprintf(&sb, "  b = %s\n", formatVector(f.b))

	return sb.String()
}

// formatVector prints a vector on one line as "[a b c]".
func formatVector(v *mat.VecDense) string {
	if v == nil {
		return "[]"
	}
	parts := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		parts[i] = fmt.Sprintf("%g", v.AtVec(i))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
