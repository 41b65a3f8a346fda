// SPDX-License-Identifier: MIT

// Package keys: identifier types and small ordered collections over them.
// This file contains ONLY the domain types; error sentinels live in errors.go.
package keys

import (
	"sort"
	"strconv"
	"strings"
)

// Key identifies a variable. Continuous keys carry no dimension; discrete
// keys pair a Key with a cardinality (see DiscreteKey).
type Key uint64

const (
	symbolChrBits   = 8
	symbolIndexBits = 64 - symbolChrBits
	symbolIndexMask = (uint64(1) << symbolIndexBits) - 1
)

// Symbol packs a character and an index into a Key, e.g. Symbol('x', 1) for
// the first pose and Symbol('m', 1) for the first mode.
// Only the low 56 bits of index are kept.
func Symbol(chr byte, index uint64) Key {
	return Key(uint64(chr)<<symbolIndexBits | index&symbolIndexMask)
}

// Chr returns the character packed by Symbol, or 0 for plain integer keys.
func (k Key) Chr() byte {
	return byte(uint64(k) >> symbolIndexBits)
}

// Index returns the index packed by Symbol.
func (k Key) Index() uint64 {
	return uint64(k) & symbolIndexMask
}

// String prints symbolic keys as "x1" and plain keys as decimals.
func (k Key) String() string {
	c := k.Chr()
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return string(c) + strconv.FormatUint(k.Index(), 10)
	}

	return strconv.FormatUint(uint64(k), 10)
}

// KeyFormatter renders a Key for printing.
type KeyFormatter func(Key) string

// DefaultKeyFormatter uses Key.String.
func DefaultKeyFormatter(k Key) string { return k.String() }

// KeyVector is an ordered sequence of keys. Duplicates are allowed and
// meaningful (shared variables across factors).
type KeyVector []Key

// Equal reports order-sensitive equality.
func (v KeyVector) Equal(other KeyVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}

	return true
}

// Contains reports whether k occurs in v.
func (v KeyVector) Contains(k Key) bool {
	for _, x := range v {
		if x == k {
			return true
		}
	}

	return false
}

// Clone returns an independent copy (nil stays nil).
func (v KeyVector) Clone() KeyVector {
	if v == nil {
		return nil
	}
	out := make(KeyVector, len(v))
	copy(out, v)

	return out
}

// Format joins the keys with fmtFn (DefaultKeyFormatter when nil).
func (v KeyVector) Format(fmtFn KeyFormatter) string {
	if fmtFn == nil {
		fmtFn = DefaultKeyFormatter
	}
	parts := make([]string, len(v))
	for i, k := range v {
		parts[i] = fmtFn(k)
	}

	return strings.Join(parts, " ")
}

// KeySet is a sorted set of keys. The zero value is an empty set.
type KeySet struct {
	keys []Key // ascending, unique
}

// NewKeySet builds a set from any number of keys.
func NewKeySet(ks ...Key) KeySet {
	var s KeySet
	for _, k := range ks {
		s.Insert(k)
	}

	return s
}

// Insert adds k; it reports whether k was new.
func (s *KeySet) Insert(k Key) bool {
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })
	if i < len(s.keys) && s.keys[i] == k {
		return false
	}
	s.keys = append(s.keys, 0)
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = k

	return true
}

// Contains reports membership in O(log n).
func (s KeySet) Contains(k Key) bool {
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })

	return i < len(s.keys) && s.keys[i] == k
}

// Len returns the number of keys.
func (s KeySet) Len() int { return len(s.keys) }

// Slice returns the keys in ascending order as a fresh KeyVector.
func (s KeySet) Slice() KeyVector {
	out := make(KeyVector, len(s.keys))
	copy(out, s.keys)

	return out
}

// DiscreteKey identifies a finite-domain variable with values in
// [0, Cardinality). Cardinality is fixed at creation.
type DiscreteKey struct {
	Key         Key
	Cardinality int
}

// NewDiscreteKey validates card >= 2.
func NewDiscreteKey(k Key, card int) (DiscreteKey, error) {
	if card < 2 {
		return DiscreteKey{}, ErrInvalidCardinality
	}

	return DiscreteKey{Key: k, Cardinality: card}, nil
}

// String prints "m1(2)".
func (dk DiscreteKey) String() string {
	return dk.Key.String() + "(" + strconv.Itoa(dk.Cardinality) + ")"
}

// DiscreteKeys is an ordered sequence of discrete keys.
type DiscreteKeys []DiscreteKey

// Keys projects the identifiers, preserving order.
func (d DiscreteKeys) Keys() KeyVector {
	out := make(KeyVector, len(d))
	for i, dk := range d {
		out[i] = dk.Key
	}

	return out
}

// Cardinalities projects the cardinalities, preserving order.
func (d DiscreteKeys) Cardinalities() []int {
	out := make([]int, len(d))
	for i, dk := range d {
		out[i] = dk.Cardinality
	}

	return out
}

// Find returns the first discrete key with identifier k.
func (d DiscreteKeys) Find(k Key) (DiscreteKey, bool) {
	for _, dk := range d {
		if dk.Key == k {
			return dk, true
		}
	}

	return DiscreteKey{}, false
}

// Equal compares identifiers and cardinalities, order-sensitive.
func (d DiscreteKeys) Equal(other DiscreteKeys) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy (nil stays nil).
func (d DiscreteKeys) Clone() DiscreteKeys {
	if d == nil {
		return nil
	}
	out := make(DiscreteKeys, len(d))
	copy(out, d)

	return out
}

// DiscreteValues is the discrete part of an assignment: key -> value.
type DiscreteValues map[Key]int

// Check returns the value assigned to dk.
// Errors: ErrMissingKey when absent, ErrOutOfDomain when outside [0, card).
func (v DiscreteValues) Check(dk DiscreteKey) (int, error) {
	val, ok := v[dk.Key]
	if !ok {
		return 0, ErrMissingKey
	}
	if val < 0 || val >= dk.Cardinality {
		return 0, ErrOutOfDomain
	}

	return val, nil
}

// Clone returns an independent copy.
func (v DiscreteValues) Clone() DiscreteValues {
	out := make(DiscreteValues, len(v))
	for k, x := range v {
		out[k] = x
	}

	return out
}

// String prints the assignment in ascending key order: "m1=0 m2=1".
func (v DiscreteValues) String() string {
	ks := make([]Key, 0, len(v))
	for k := range v {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String() + "=" + strconv.Itoa(v[k])
	}

	return strings.Join(parts, " ")
}
