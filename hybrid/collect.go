// SPDX-License-Identifier: MIT

// Package hybrid - key-merge utilities used when factors are joined.

package hybrid

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// CollectKeys lists the continuous keys followed by the identifiers of the
// discrete keys: the full key list of a hybrid factor.
func CollectKeys(continuous keys.KeyVector, discrete keys.DiscreteKeys) keys.KeyVector {
	out := make(keys.KeyVector, 0, len(continuous)+len(discrete))
	out = append(out, continuous...)
	for _, dk := range discrete {
		out = append(out, dk.Key)
	}

	return out
}

// CollectContinuousKeys concatenates two continuous key sequences. Duplicates
// are kept: a key in both inputs is a variable shared by both factors.
func CollectContinuousKeys(keys1, keys2 keys.KeyVector) keys.KeyVector {
	out := make(keys.KeyVector, 0, len(keys1)+len(keys2))
	out = append(out, keys1...)

	return append(out, keys2...)
}

// CollectDiscreteKeys unions two discrete key sequences by identifier,
// keeping first-seen order: keys1 in order, then the keys of keys2 not seen
// yet. A repeated identifier appears once.
//
// Errors:
//   - keys.ErrIncompatibleKeySet if one identifier is declared with two
//     different cardinalities.
func CollectDiscreteKeys(keys1, keys2 keys.DiscreteKeys) (keys.DiscreteKeys, error) {
	out := make(keys.DiscreteKeys, 0, len(keys1)+len(keys2))
	index := make(map[keys.Key]int, len(keys1)+len(keys2))
	for _, src := range [2]keys.DiscreteKeys{keys1, keys2} {
		for _, dk := range src {
			if card, seen := index[dk.Key]; seen {
				if card != dk.Cardinality {
					return nil, errors.Wrapf(keys.ErrIncompatibleKeySet,
						"key %s declared with cardinality %d and %d", dk.Key, card, dk.Cardinality)
				}
				continue
			}
			index[dk.Key] = dk.Cardinality
			out = append(out, dk)
		}
	}

	return out, nil
}
