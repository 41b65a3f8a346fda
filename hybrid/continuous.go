// SPDX-License-Identifier: MIT

package hybrid

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/linear"
)

// ContinuousFactor lets a plain linear term sit in a hybrid graph as a
// continuous-only factor. Its cost does not depend on any discrete key.
type ContinuousFactor struct {
	Base
	factor *linear.JacobianFactor
}

var (
	_ Factor               = (*ContinuousFactor)(nil)
	_ GraphTreeContributor = (*ContinuousFactor)(nil)
	_ Nillable             = (*ContinuousFactor)(nil)
)

// NewContinuousFactor wraps f. A nil f is ErrNilFactor.
func NewContinuousFactor(f *linear.JacobianFactor) (*ContinuousFactor, error) {
	if f == nil {
		return nil, errors.Wrap(ErrNilFactor, "continuous factor")
	}

	return &ContinuousFactor{Base: NewContinuousBase(f.Keys()), factor: f}, nil
}

// IsNil reports a nil receiver.
func (c *ContinuousFactor) IsNil() bool { return c == nil }

// Inner returns the wrapped linear term.
func (c *ContinuousFactor) Inner() *linear.JacobianFactor { return c.factor }

// Error returns ½‖Σ A_j x_j − b‖² on the continuous part of values.
func (c *ContinuousFactor) Error(values *Values) (float64, error) {
	if err := c.CheckValues(values); err != nil {
		return 0, err
	}

	return c.factor.Error(values.Continuous())
}

// Equals extends Base.Equals with the linear term.
func (c *ContinuousFactor) Equals(other Factor, tol float64) bool {
	o, ok := other.(*ContinuousFactor)
	if !ok || !c.Base.Equals(other, tol) {
		return false
	}

	return c.factor.Equals(o.factor, tol)
}

// AddToGraphTree appends the linear term to every hypothesis.
func (c *ContinuousFactor) AddToGraphTree(tree GaussianFactorGraphTree) (GaussianFactorGraphTree, error) {
	return AddGaussian(tree, c.factor), nil
}
