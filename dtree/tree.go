// SPDX-License-Identifier: MIT

// Package dtree - node layout, construction and read-only accessors.

package dtree

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// node is immutable once linked into a tree. Leaves have leaf==true and a
// value; choices have a label and len(children)==label.Cardinality.
type node[L any] struct {
	leaf     bool
	value    L
	label    keys.DiscreteKey
	children []*node[L]
}

// Tree is a decision tree from discrete assignments to values of type L.
// The zero value is the empty tree. Trees are values: copying a Tree copies
// one pointer and shares every node.
type Tree[L any] struct {
	root *node[L]
}

// Leaf returns a tree with no branching that maps every assignment to v.
func Leaf[L any](v L) Tree[L] {
	return Tree[L]{root: &node[L]{leaf: true, value: v}}
}

// NewChoice branches on dk; branches[i] is taken when dk has value i.
// Branches may share nodes (pass the same Tree twice).
//
// Errors:
//   - keys.ErrInvalidCardinality if dk.Cardinality < 2.
//   - ErrBranchCount if len(branches) != dk.Cardinality.
//   - ErrEmptyTree if a branch is the zero Tree.
//   - ErrDuplicateLabel if a branch already branches on dk.Key.
func NewChoice[L any](dk keys.DiscreteKey, branches ...Tree[L]) (Tree[L], error) {
	if dk.Cardinality < 2 {
		return Tree[L]{}, errors.Wrapf(keys.ErrInvalidCardinality, "choice on %s", dk)
	}
	if len(branches) != dk.Cardinality {
		return Tree[L]{}, errors.Wrapf(ErrBranchCount, "choice on %s: got %d branches", dk, len(branches))
	}
	children := make([]*node[L], len(branches))
	seen := make(map[*node[L]]bool)
	for i, b := range branches {
		if b.root == nil {
			return Tree[L]{}, errors.Wrapf(ErrEmptyTree, "choice on %s: branch %d", dk, i)
		}
		if hasLabel(b.root, dk.Key, seen) {
			return Tree[L]{}, errors.Wrapf(ErrDuplicateLabel, "choice on %s: branch %d", dk, i)
		}
		children[i] = b.root
	}

	return Tree[L]{root: &node[L]{label: dk, children: children}}, nil
}

// New builds the full tree over dkeys from leaves listed in row-major order:
// the first key is the root and the last key varies fastest. With no keys,
// exactly one leaf is required and the result is Leaf(leaves[0]).
//
// Errors:
//   - keys.ErrInvalidCardinality for a key with cardinality < 2.
//   - ErrDuplicateLabel if a key identifier repeats in dkeys.
//   - ErrLeafCount if len(leaves) != Π cardinalities.
func New[L any](dkeys keys.DiscreteKeys, leaves []L) (Tree[L], error) {
	want := 1
	for i, dk := range dkeys {
		if dk.Cardinality < 2 {
			return Tree[L]{}, errors.Wrapf(keys.ErrInvalidCardinality, "key %s", dk)
		}
		for _, prev := range dkeys[:i] {
			if prev.Key == dk.Key {
				return Tree[L]{}, errors.Wrapf(ErrDuplicateLabel, "key %s", dk.Key)
			}
		}
		want *= dk.Cardinality
	}
	if len(leaves) != want {
		return Tree[L]{}, errors.Wrapf(ErrLeafCount, "want %d leaves, got %d", want, len(leaves))
	}

	return Tree[L]{root: build(dkeys, leaves)}, nil
}

// build recursively splits leaves into Cardinality equal chunks per level.
func build[L any](dkeys keys.DiscreteKeys, leaves []L) *node[L] {
	if len(dkeys) == 0 {
		return &node[L]{leaf: true, value: leaves[0]}
	}
	dk := dkeys[0]
	stride := len(leaves) / dk.Cardinality
	children := make([]*node[L], dk.Cardinality)
	for v := 0; v < dk.Cardinality; v++ {
		children[v] = build(dkeys[1:], leaves[v*stride:(v+1)*stride])
	}

	return &node[L]{label: dk, children: children}
}

// hasLabel reports whether k labels any node reachable from n.
// seen caches nodes already known NOT to contain k.
func hasLabel[L any](n *node[L], k keys.Key, seen map[*node[L]]bool) bool {
	if n.leaf || seen[n] {
		return false
	}
	if n.label.Key == k {
		return true
	}
	for _, c := range n.children {
		if hasLabel(c, k, seen) {
			return true
		}
	}
	seen[n] = true

	return false
}

// IsEmpty reports whether t is the zero Tree.
func (t Tree[L]) IsEmpty() bool { return t.root == nil }

// IsLeaf reports whether t is a single leaf.
func (t Tree[L]) IsLeaf() bool { return t.root != nil && t.root.leaf }

// Value returns the leaf value of a single-leaf tree. ok is false for empty
// trees and choices.
func (t Tree[L]) Value() (v L, ok bool) {
	if !t.IsLeaf() {
		return v, false
	}

	return t.root.value, true
}

// Labels returns the keys the tree branches on, in depth-first first-seen
// order (the root label first).
func (t Tree[L]) Labels() keys.DiscreteKeys {
	var out keys.DiscreteKeys
	if t.root == nil {
		return out
	}
	visited := make(map[*node[L]]bool)
	var walk func(n *node[L])
	walk = func(n *node[L]) {
		if n.leaf || visited[n] {
			return
		}
		visited[n] = true
		if _, ok := out.Find(n.label.Key); !ok {
			out = append(out, n.label)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)

	return out
}

// NrLeaves counts distinct leaf nodes: a leaf shared by several branches
// counts once.
func (t Tree[L]) NrLeaves() int {
	n := 0
	t.visitNodes(func(x *node[L]) {
		if x.leaf {
			n++
		}
	})

	return n
}

// NrNodes counts distinct nodes, leaves included.
func (t Tree[L]) NrNodes() int {
	n := 0
	t.visitNodes(func(*node[L]) { n++ })

	return n
}

// NrAssignments counts root-to-leaf paths, i.e. the number of assignments
// to the tree's labels when every path branches on every label.
func (t Tree[L]) NrAssignments() int {
	if t.root == nil {
		return 0
	}
	memo := make(map[*node[L]]int)
	var count func(n *node[L]) int
	count = func(n *node[L]) int {
		if n.leaf {
			return 1
		}
		if c, ok := memo[n]; ok {
			return c
		}
		total := 0
		for _, c := range n.children {
			total += count(c)
		}
		memo[n] = total

		return total
	}

	return count(t.root)
}

// Visit calls fn once per distinct leaf, depth-first, lower branch values first.
func (t Tree[L]) Visit(fn func(L)) {
	t.visitNodes(func(n *node[L]) {
		if n.leaf {
			fn(n.value)
		}
	})
}

// VisitAssignments calls fn for every root-to-leaf path with the assignment
// that selects it. Order is deterministic (lexicographic over branch values).
// fn receives its own copy of the assignment.
func (t Tree[L]) VisitAssignments(fn func(keys.DiscreteValues, L)) {
	if t.root == nil {
		return
	}
	cur := make(keys.DiscreteValues)
	var walk func(n *node[L])
	walk = func(n *node[L]) {
		if n.leaf {
			fn(cur.Clone(), n.value)
			return
		}
		for v, c := range n.children {
			cur[n.label.Key] = v
			walk(c)
		}
		delete(cur, n.label.Key)
	}
	walk(t.root)
}

// visitNodes walks each distinct node once in pre-order.
func (t Tree[L]) visitNodes(fn func(*node[L])) {
	if t.root == nil {
		return
	}
	visited := make(map[*node[L]]bool)
	var walk func(n *node[L])
	walk = func(n *node[L]) {
		if visited[n] {
			return
		}
		visited[n] = true
		fn(n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
}

// String summarizes the shape: "Tree[m1(2) m2(3)]{leaves: 6}".
func (t Tree[L]) String() string {
	if t.root == nil {
		return "Tree{}"
	}
	labels := t.Labels()
	parts := make([]string, len(labels))
	for i, dk := range labels {
		parts[i] = dk.String()
	}

	return fmt.Sprintf("Tree%v{leaves: %d}", parts, t.NrLeaves())
}
