// SPDX-License-Identifier: MIT

// Package dtree - assignment access: full lookup and partial restriction.

package dtree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// Lookup follows the branches selected by vals and returns the leaf.
// Keys of vals the tree does not branch on are ignored.
//
// Errors:
//   - ErrEmptyTree on the zero Tree.
//   - keys.ErrMissingKey if vals omits a key met on the path.
//   - keys.ErrOutOfDomain if a value is outside [0, cardinality).
func (t Tree[L]) Lookup(vals keys.DiscreteValues) (L, error) {
	var zero L
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for !n.leaf {
		v, err := vals.Check(n.label)
		if err != nil {
			return zero, errors.Wrapf(err, "lookup %s", n.label)
		}
		n = n.children[v]
	}

	return n.value, nil
}

// Restrict fixes every key of vals the tree branches on and returns the
// remaining sub-tree. A full assignment yields a single leaf; an empty one
// yields t itself. Untouched subtrees stay shared with t.
//
// Errors:
//   - ErrEmptyTree on the zero Tree.
//   - keys.ErrOutOfDomain if a fixed value is outside its key's domain.
func (t Tree[L]) Restrict(vals keys.DiscreteValues) (Tree[L], error) {
	if t.root == nil {
		return Tree[L]{}, ErrEmptyTree
	}
	memo := make(map[*node[L]]*node[L])
	var walk func(n *node[L]) (*node[L], error)
	walk = func(n *node[L]) (*node[L], error) {
		if n.leaf {
			return n, nil
		}
		if r, ok := memo[n]; ok {
			return r, nil
		}
		var out *node[L]
		if _, fixed := vals[n.label.Key]; fixed {
			v, err := vals.Check(n.label)
			if err != nil {
				return nil, errors.Wrapf(err, "restrict %s", n.label)
			}
			if out, err = walk(n.children[v]); err != nil {
				return nil, err
			}
		} else {
			children, changed, err := mapChildren(n.children, walk)
			if err != nil {
				return nil, err
			}
			out = n
			if changed {
				out = &node[L]{label: n.label, children: children}
			}
		}
		memo[n] = out

		return out, nil
	}
	root, err := walk(t.root)
	if err != nil {
		return Tree[L]{}, err
	}

	return Tree[L]{root: root}, nil
}

// Choose is Restrict with a single key.
func (t Tree[L]) Choose(k keys.Key, value int) (Tree[L], error) {
	return t.Restrict(keys.DiscreteValues{k: value})
}

// mapChildren applies fn to each child and reports whether any changed.
func mapChildren[L any](children []*node[L], fn func(*node[L]) (*node[L], error)) ([]*node[L], bool, error) {
	out := make([]*node[L], len(children))
	changed := false
	for i, c := range children {
		r, err := fn(c)
		if err != nil {
			return nil, false, err
		}
		out[i] = r
		changed = changed || r != c
	}

	return out, changed, nil
}

// restrictKey memoizes restriction of one node on one (key, value).
type restrictKey[L any] struct {
	n *node[L]
	v int
}

// restrictor fixes a single discrete key, verifying cardinality agreement.
// It is used by Apply and Equal where the two sides may branch differently.
type restrictor[L any] struct {
	memo map[keys.Key]map[restrictKey[L]]*node[L]
}

func newRestrictor[L any]() *restrictor[L] {
	return &restrictor[L]{memo: make(map[keys.Key]map[restrictKey[L]]*node[L])}
}

// choose returns n with dk fixed to v. A node labelled dk.Key with another
// cardinality is keys.ErrIncompatibleKeySet.
func (r *restrictor[L]) choose(n *node[L], dk keys.DiscreteKey, v int) (*node[L], error) {
	if n.leaf {
		return n, nil
	}
	if n.label.Key == dk.Key {
		if n.label.Cardinality != dk.Cardinality {
			return nil, errors.Wrapf(keys.ErrIncompatibleKeySet, "%s vs %s", n.label, dk)
		}

		return n.children[v], nil
	}
	m := r.memo[dk.Key]
	if m == nil {
		m = make(map[restrictKey[L]]*node[L])
		r.memo[dk.Key] = m
	}
	rk := restrictKey[L]{n: n, v: v}
	if out, ok := m[rk]; ok {
		return out, nil
	}
	children, changed, err := mapChildren(n.children, func(c *node[L]) (*node[L], error) {
		return r.choose(c, dk, v)
	})
	if err != nil {
		return nil, err
	}
	out := n
	if changed {
		out = &node[L]{label: n.label, children: children}
	}
	m[rk] = out

	return out, nil
}
