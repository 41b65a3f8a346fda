// SPDX-License-Identifier: MIT

package linear

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvhybrid/keys"
)

// VectorValues maps continuous keys to real vectors: the continuous part of
// an assignment.
type VectorValues map[keys.Key]*mat.VecDense

// NewVectorValues returns an empty assignment.
func NewVectorValues() VectorValues {
	return make(VectorValues)
}

// Insert stores a copy of data under k and returns v for chaining.
// Empty data stores nothing, so At keeps reporting k as missing.
func (v VectorValues) Insert(k keys.Key, data ...float64) VectorValues {
	if len(data) == 0 {
		return v
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	v[k] = mat.NewVecDense(len(buf), buf)

	return v
}

// At returns the vector stored under k or keys.ErrMissingKey.
func (v VectorValues) At(k keys.Key) (*mat.VecDense, error) {
	x, ok := v[k]
	if !ok || x == nil {
		return nil, errors.Wrapf(keys.ErrMissingKey, "vector values: %s", k)
	}

	return x, nil
}

// Keys returns the stored keys in ascending order.
func (v VectorValues) Keys() keys.KeyVector {
	out := make(keys.KeyVector, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Dim returns the total dimension over all stored vectors.
func (v VectorValues) Dim() int {
	n := 0
	for _, x := range v {
		if x != nil {
			n += x.Len()
		}
	}

	return n
}

// Equals compares key sets exactly and vectors within tol. A nil entry
// counts as absent, as in At.
func (v VectorValues) Equals(other VectorValues, tol float64) bool {
	for k, x := range v {
		y := other[k]
		switch {
		case x == nil && y == nil:
			continue
		case x == nil || y == nil:
			return false
		case x.Len() != y.Len() || !mat.EqualApprox(x, y, tol):
			return false
		}
	}
	for k, y := range other {
		if y != nil && v[k] == nil {
			return false
		}
	}

	return true
}

// String prints one "key: [a b c]" line per key in ascending order.
func (v VectorValues) String() string {
	var sb strings.Builder
	for _, k := range v.Keys() {
		sb.WriteString(k.String())
		sb.WriteString(": ")
		sb.WriteString(formatVector(v[k]))
		sb.WriteByte('\n')
	}

	return sb.String()
}
