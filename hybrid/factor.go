// SPDX-License-Identifier: MIT

// Package hybrid - the Factor contract and its embeddable Base.
//
// Base answers "which variables does this factor touch"; concrete factors
// answer "what does it cost". Graph-level bookkeeping only needs the former.

package hybrid

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// Kind records which constructor built a factor's key bookkeeping.
type Kind int

const (
	// KindNone: default construction, no keys.
	KindNone Kind = iota
	// KindContinuous: continuous keys only.
	KindContinuous
	// KindDiscrete: discrete keys only.
	KindDiscrete
	// KindHybrid: continuous and discrete keys.
	KindHybrid
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindContinuous:
		return "Continuous"
	case KindDiscrete:
		return "Discrete"
	case KindHybrid:
		return "Hybrid"
	default:
		return "None"
	}
}

// Factor is implemented by every factor that can live in a FactorGraph.
// Concrete types usually embed Base and add Error; an Equals override must
// call Base.Equals and then compare its own cost model.
type Factor interface {
	Kind() Kind
	IsDiscrete() bool
	IsContinuous() bool
	IsHybrid() bool
	NrContinuous() int
	Keys() keys.KeyVector
	DiscreteKeys() keys.DiscreteKeys
	ContinuousKeys() keys.KeyVector

	// Error evaluates the factor's cost on a full assignment. It fails with
	// keys.ErrMissingKey when values omits a declared key and with
	// keys.ErrOutOfDomain when a discrete value lies outside its domain.
	Error(values *Values) (float64, error)

	// Equals compares key bookkeeping and, in concrete types, the cost model.
	Equals(other Factor, tol float64) bool
}

// Nillable is implemented by pointer factor types so that FactorGraph.Push
// can reject a typed nil wrapped in a non-nil Factor.
type Nillable interface {
	IsNil() bool
}

// GraphTreeContributor is implemented by factors that carry Gaussian content
// and can add it to a GaussianFactorGraphTree (continuous factors append
// themselves to every leaf, mixtures join their own tree).
type GraphTreeContributor interface {
	AddToGraphTree(tree GaussianFactorGraphTree) (GaussianFactorGraphTree, error)
}

// Base is the key bookkeeping shared by all factors. It is immutable after
// construction; accessors return copies.
type Base struct {
	kind           Kind
	discreteKeys   keys.DiscreteKeys
	continuousKeys keys.KeyVector
}

// NewBase returns an empty Base: no keys, every flag false.
func NewBase() Base { return Base{} }

// NewContinuousBase builds the bookkeeping of a continuous-only factor.
func NewContinuousBase(continuous keys.KeyVector) Base {
	return Base{kind: KindContinuous, continuousKeys: continuous.Clone()}
}

// NewDiscreteBase builds the bookkeeping of a discrete-only factor.
func NewDiscreteBase(discrete keys.DiscreteKeys) Base {
	return Base{kind: KindDiscrete, discreteKeys: discrete.Clone()}
}

// NewHybridBase builds the bookkeeping of a factor over both kinds of keys;
// it then reports IsHybrid and IsContinuous. The kind follows which lists
// are non-empty, so an empty discrete list yields KindContinuous, an empty
// continuous list KindDiscrete, and two empty lists KindNone.
func NewHybridBase(continuous keys.KeyVector, discrete keys.DiscreteKeys) Base {
	b := Base{continuousKeys: continuous.Clone(), discreteKeys: discrete.Clone()}
	switch hasC, hasD := len(continuous) > 0, len(discrete) > 0; {
	case hasC && hasD:
		b.kind = KindHybrid
	case hasC:
		b.kind = KindContinuous
	case hasD:
		b.kind = KindDiscrete
	}

	return b
}

// Kind returns the constructor-determined kind.
func (b Base) Kind() Kind { return b.kind }

// IsDiscrete reports a discrete-only factor.
func (b Base) IsDiscrete() bool { return b.kind == KindDiscrete }

// IsContinuous reports a factor built with continuous keys; hybrid factors
// report true as well.
func (b Base) IsContinuous() bool { return b.kind == KindContinuous || b.kind == KindHybrid }

// IsHybrid reports a factor built with both kinds of keys.
func (b Base) IsHybrid() bool { return b.kind == KindHybrid }

// NrContinuous returns the number of continuous keys.
func (b Base) NrContinuous() int { return len(b.continuousKeys) }

// DiscreteKeys returns a copy of the discrete keys.
func (b Base) DiscreteKeys() keys.DiscreteKeys { return b.discreteKeys.Clone() }

// ContinuousKeys returns a copy of the continuous keys.
func (b Base) ContinuousKeys() keys.KeyVector { return b.continuousKeys.Clone() }

// Keys returns continuous keys followed by discrete identifiers.
func (b Base) Keys() keys.KeyVector { return CollectKeys(b.continuousKeys, b.discreteKeys) }

// Equals compares discrete keys, continuous keys (both order-sensitive) and
// kind. tol is unused at this level; concrete factors use it for their
// cost model.
func (b Base) Equals(other Factor, _ float64) bool {
	if other == nil {
		return false
	}

	return b.kind == other.Kind() &&
		b.discreteKeys.Equal(other.DiscreteKeys()) &&
		b.continuousKeys.Equal(other.ContinuousKeys())
}

// CheckValues verifies values covers every declared key with discrete values
// inside their domains. Concrete factors call it first in Error.
func (b Base) CheckValues(values *Values) error {
	for _, k := range b.continuousKeys {
		if _, err := values.Continuous().At(k); err != nil {
			return err
		}
	}
	for _, dk := range b.discreteKeys {
		if _, err := values.Discrete().Check(dk); err != nil {
			return errors.Wrapf(err, "discrete key %s", dk)
		}
	}

	return nil
}

// String prints the kind and both key lists.
func (b Base) String() string {
	dks := make([]string, len(b.discreteKeys))
	for i, dk := range b.discreteKeys {
		dks[i] = dk.String()
	}

	return fmt.Sprintf("%s factor: continuous [%s] discrete %v", b.kind, b.continuousKeys.Format(nil), dks)
}
