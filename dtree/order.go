// SPDX-License-Identifier: MIT

// Package dtree - branching-order consistency across trees.
//
// ConsistentOrder builds a precedence digraph over discrete keys (an edge
// p→c whenever a choice on p has a child choosing on c, in any input tree)
// and topologically sorts it with a three-color DFS.
//
// Complexity:
//
//   - Time:   O(N + V + E) for N distinct tree nodes, V keys, E precedence edges.
//   - Memory: O(V + E).
package dtree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhybrid/keys"
)

// Vertex states of the topological DFS.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// precedence is an insertion-ordered adjacency list over keys.
type precedence struct {
	order []keys.Key              // vertices in first-seen order
	succ  map[keys.Key][]keys.Key // outgoing edges in first-seen order
	edge  map[[2]keys.Key]bool    // dedup of edges
}

func (p *precedence) addVertex(k keys.Key) {
	if _, ok := p.succ[k]; !ok {
		p.succ[k] = nil
		p.order = append(p.order, k)
	}
}

func (p *precedence) addEdge(from, to keys.Key) {
	p.addVertex(from)
	p.addVertex(to)
	e := [2]keys.Key{from, to}
	if !p.edge[e] {
		p.edge[e] = true
		p.succ[from] = append(p.succ[from], to)
	}
}

// topoSorter holds the state of one sort.
type topoSorter struct {
	graph *precedence
	state map[keys.Key]int
	post  []keys.Key
}

// ConsistentOrder returns one ordering of all keys used by the trees such that
// every tree branches on its keys in that relative order. The result is
// deterministic for a given input order; unrelated keys keep the order in
// which they were first seen.
//
// Errors:
//   - ErrInconsistentOrder if two trees (or two paths of one tree) branch on
//     some pair of keys in opposite orders.
func ConsistentOrder[L any](trees ...Tree[L]) (keys.KeyVector, error) {
	// 1. Collect precedence edges from every distinct choice node.
	g := &precedence{
		succ: make(map[keys.Key][]keys.Key),
		edge: make(map[[2]keys.Key]bool),
	}
	for _, t := range trees {
		t.visitNodes(func(n *node[L]) {
			if n.leaf {
				return
			}
			g.addVertex(n.label.Key)
			for _, c := range n.children {
				if !c.leaf {
					g.addEdge(n.label.Key, c.label.Key)
				}
			}
		})
	}
	// 2. Drive the DFS from every unvisited vertex, last-seen first, so the
	//    reversed post-order lists unrelated keys in first-seen order.
	s := &topoSorter{
		graph: g,
		state: make(map[keys.Key]int, len(g.order)),
		post:  make(keys.KeyVector, 0, len(g.order)),
	}
	for i := len(g.order) - 1; i >= 0; i-- {
		if k := g.order[i]; s.state[k] == white {
			if err := s.visit(k); err != nil {
				return nil, err
			}
		}
	}
	// 3. Reverse post-order is a topological order.
	for i, j := 0, len(s.post)-1; i < j; i, j = i+1, j-1 {
		s.post[i], s.post[j] = s.post[j], s.post[i]
	}

	return s.post, nil
}

// visit explores k; a gray successor is a back-edge, i.e. a cycle.
func (s *topoSorter) visit(k keys.Key) error {
	switch s.state[k] {
	case gray:
		return errors.Wrapf(ErrInconsistentOrder, "cycle through %s", k)
	case black:
		return nil
	}
	s.state[k] = gray
	for _, next := range s.graph.succ[k] {
		if err := s.visit(next); err != nil {
			return err
		}
	}
	s.state[k] = black
	s.post = append(s.post, k)

	return nil
}
