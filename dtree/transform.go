// SPDX-License-Identifier: MIT

// Package dtree - leaf transforms and the binary combine primitive.
//
// Map/MapErr memoize on node identity, so a subtree shared k times in the
// input is transformed once and shared k times in the output.

package dtree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// Map returns a tree with the same branching whose leaves are fn(leaf).
func Map[L, M any](t Tree[L], fn func(L) M) Tree[M] {
	out, _ := MapErr(t, func(v L) (M, error) { return fn(v), nil })

	return out
}

// MapErr is Map with a fallible leaf function; the first error aborts.
// The empty tree maps to the empty tree.
func MapErr[L, M any](t Tree[L], fn func(L) (M, error)) (Tree[M], error) {
	if t.root == nil {
		return Tree[M]{}, nil
	}
	memo := make(map[*node[L]]*node[M])
	var walk func(n *node[L]) (*node[M], error)
	walk = func(n *node[L]) (*node[M], error) {
		if r, ok := memo[n]; ok {
			return r, nil
		}
		var out *node[M]
		if n.leaf {
			v, err := fn(n.value)
			if err != nil {
				return nil, err
			}
			out = &node[M]{leaf: true, value: v}
		} else {
			children := make([]*node[M], len(n.children))
			for i, c := range n.children {
				r, err := walk(c)
				if err != nil {
					return nil, err
				}
				children[i] = r
			}
			out = &node[M]{label: n.label, children: children}
		}
		memo[n] = out

		return out, nil
	}
	root, err := walk(t.root)
	if err != nil {
		return Tree[M]{}, err
	}

	return Tree[M]{root: root}, nil
}

// MapWithAssignment passes each leaf together with the assignment of the
// path that reaches it. Leaves reached by several paths are transformed once
// per path, so sharing is not preserved.
func MapWithAssignment[L, M any](t Tree[L], fn func(keys.DiscreteValues, L) M) Tree[M] {
	if t.root == nil {
		return Tree[M]{}
	}
	cur := make(keys.DiscreteValues)
	var walk func(n *node[L]) *node[M]
	walk = func(n *node[L]) *node[M] {
		if n.leaf {
			return &node[M]{leaf: true, value: fn(cur.Clone(), n.value)}
		}
		children := make([]*node[M], len(n.children))
		for v, c := range n.children {
			cur[n.label.Key] = v
			children[v] = walk(c)
		}
		delete(cur, n.label.Key)

		return &node[M]{label: n.label, children: children}
	}

	return Tree[M]{root: walk(t.root)}
}

// pairKey identifies a (node of a, node of b) pair during a joint traversal.
type pairKey[A, B any] struct {
	a *node[A]
	b *node[B]
}

// Apply combines a and b over the union of their keys: for every joint
// assignment σ the result maps σ to fn(a(σ), b(σ)). Keys of a branch first,
// then the keys only b branches on, so trees produced from the same factor
// set keep a consistent branching order.
//
// Errors:
//   - ErrEmptyTree if either input is empty.
//   - keys.ErrIncompatibleKeySet if a shared key has different cardinalities.
func Apply[A, B, C any](a Tree[A], b Tree[B], fn func(A, B) C) (Tree[C], error) {
	if a.root == nil || b.root == nil {
		return Tree[C]{}, errors.Wrap(ErrEmptyTree, "apply")
	}
	ap := &applier[A, B, C]{
		fn:   fn,
		memo: make(map[pairKey[A, B]]*node[C]),
		ra:   newRestrictor[A](),
		rb:   newRestrictor[B](),
	}
	root, err := ap.apply(a.root, b.root)
	if err != nil {
		return Tree[C]{}, err
	}

	return Tree[C]{root: root}, nil
}

// applier carries the memo tables of one Apply call.
type applier[A, B, C any] struct {
	fn   func(A, B) C
	memo map[pairKey[A, B]]*node[C]
	ra   *restrictor[A]
	rb   *restrictor[B]
}

func (ap *applier[A, B, C]) apply(a *node[A], b *node[B]) (*node[C], error) {
	pk := pairKey[A, B]{a: a, b: b}
	if r, ok := ap.memo[pk]; ok {
		return r, nil
	}
	var out *node[C]
	if a.leaf && b.leaf {
		out = &node[C]{leaf: true, value: ap.fn(a.value, b.value)}
	} else {
		label := b.label
		if !a.leaf {
			label = a.label
		}
		children := make([]*node[C], label.Cardinality)
		for v := range children {
			ca, err := ap.ra.choose(a, label, v)
			if err != nil {
				return nil, err
			}
			cb, err := ap.rb.choose(b, label, v)
			if err != nil {
				return nil, err
			}
			if children[v], err = ap.apply(ca, cb); err != nil {
				return nil, err
			}
		}
		out = &node[C]{label: label, children: children}
	}
	ap.memo[pk] = out

	return out, nil
}
