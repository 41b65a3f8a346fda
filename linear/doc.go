// SPDX-License-Identifier: MIT

// Package linear is the Gaussian linear-system layer embedded in hybrid
// factors. It wraps gonum matrices into the two shapes the hybrid core needs:
//
//   - JacobianFactor: one whitened linear term ½‖Σ_j A_j·x_j − b‖² over a few
//     continuous keys;
//   - GaussianFactorGraph: an ordered, immutable list of such terms whose cost
//     is the sum of the terms' costs.
//
// The heavy numerics (QR, Cholesky, elimination) are deliberately absent: this
// package only builds, compares, prints and evaluates systems. All values are
// immutable after construction; "mutating" calls return new graphs that share
// the factor pointers of the original.
//
// Complexity:
//
//	JacobianFactor.Error: O(Σ_j rows·dim(x_j)).
//	GaussianFactorGraph.Append/Concat: O(n) copy of the factor slice.
package linear
