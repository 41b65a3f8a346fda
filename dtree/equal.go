// SPDX-License-Identifier: MIT

// Package dtree - logical equality and compaction.

package dtree

import (
	"fmt"
	"strings"
)

// Equal reports whether a and b map every joint assignment to equal leaves
// under eq. Sharing topology and branching order are irrelevant: a tree that
// branches on k with identical children equals the same children without the
// branch. Two empty trees are equal; an empty and a non-empty tree are not.
// A shared key with different cardinalities makes the trees unequal.
func Equal[L any](a, b Tree[L], eq func(L, L) bool) bool {
	if a.root == nil || b.root == nil {
		return a.root == nil && b.root == nil
	}
	c := &comparer[L]{
		eq:   eq,
		memo: make(map[pairKey[L, L]]bool),
		ra:   newRestrictor[L](),
		rb:   newRestrictor[L](),
	}
	ok, err := c.equal(a.root, b.root)

	return err == nil && ok
}

type comparer[L any] struct {
	eq   func(L, L) bool
	memo map[pairKey[L, L]]bool
	ra   *restrictor[L]
	rb   *restrictor[L]
}

func (c *comparer[L]) equal(a, b *node[L]) (bool, error) {
	if a == b {
		return true, nil
	}
	pk := pairKey[L, L]{a: a, b: b}
	if r, ok := c.memo[pk]; ok {
		return r, nil
	}
	result := true
	if a.leaf && b.leaf {
		result = c.eq(a.value, b.value)
	} else {
		label := b.label
		if !a.leaf {
			label = a.label
		}
		for v := 0; v < label.Cardinality && result; v++ {
			ca, err := c.ra.choose(a, label, v)
			if err != nil {
				return false, err
			}
			cb, err := c.rb.choose(b, label, v)
			if err != nil {
				return false, err
			}
			if result, err = c.equal(ca, cb); err != nil {
				return false, err
			}
		}
	}
	c.memo[pk] = result

	return result, nil
}

// Compact returns a tree with the same assignment→leaf mapping and maximal
// sharing: leaves equal under eq become one node, and choices with the same
// label and the same (compacted) children become one node. Branches are
// never removed, so Labels and NrAssignments are unchanged.
func Compact[L any](t Tree[L], eq func(L, L) bool) Tree[L] {
	if t.root == nil {
		return t
	}
	var uniqueLeaves []*node[L]
	choices := make(map[string]*node[L])
	memo := make(map[*node[L]]*node[L])

	var walk func(n *node[L]) *node[L]
	walk = func(n *node[L]) *node[L] {
		if r, ok := memo[n]; ok {
			return r
		}
		var out *node[L]
		if n.leaf {
			for _, u := range uniqueLeaves {
				if eq(u.value, n.value) {
					out = u
					break
				}
			}
			if out == nil {
				uniqueLeaves = append(uniqueLeaves, n)
				out = n
			}
		} else {
			children := make([]*node[L], len(n.children))
			var sig strings.Builder
			fmt.Fprintf(&sig, "%d/%d:", uint64(n.label.Key), n.label.Cardinality)
			for i, c := range n.children {
				children[i] = walk(c)
				fmt.Fprintf(&sig, "%p,", children[i])
			}
			if existing, ok := choices[sig.String()]; ok {
				out = existing
			} else {
				out = &node[L]{label: n.label, children: children}
				choices[sig.String()] = out
			}
		}
		memo[n] = out

		return out
	}

	return Tree[L]{root: walk(t.root)}
}
