// SPDX-License-Identifier: MIT

package hybrid

import (
	"github.com/katalvlaran/lvhybrid/keys"
	"github.com/katalvlaran/lvhybrid/linear"
)

// Values is a hybrid assignment: continuous vectors plus discrete values.
type Values struct {
	continuous linear.VectorValues
	discrete   keys.DiscreteValues
}

// NewValues wraps the two parts; nil parts become empty maps.
func NewValues(continuous linear.VectorValues, discrete keys.DiscreteValues) *Values {
	if continuous == nil {
		continuous = linear.NewVectorValues()
	}
	if discrete == nil {
		discrete = make(keys.DiscreteValues)
	}

	return &Values{continuous: continuous, discrete: discrete}
}

// Continuous returns the continuous part. A nil *Values has none.
func (v *Values) Continuous() linear.VectorValues {
	if v == nil {
		return nil
	}

	return v.continuous
}

// Discrete returns the discrete part. A nil *Values has none.
func (v *Values) Discrete() keys.DiscreteValues {
	if v == nil {
		return nil
	}

	return v.discrete
}

// String prints both parts. A nil *Values prints as empty.
func (v *Values) String() string {
	return "Continuous:\n" + v.Continuous().String() + "Discrete: " + v.Discrete().String() + "\n"
}
