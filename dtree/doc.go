// SPDX-License-Identifier: MIT

// Package dtree implements decision trees over discrete variables whose
// leaves carry arbitrary values.
//
// What & Why:
//
//	A hybrid factor's value is one object per discrete assignment. Enumerating
//	them is exponential in the number of discrete keys, so the family is stored
//	as a tree that branches on one discrete key per level. Identical subtrees
//	may be the same node: in memory the tree is a DAG. Nodes are immutable and
//	shared by pointer, so a subtree lives exactly as long as some tree still
//	refers to it and cycles cannot be formed.
//
// Invariants:
//
//   - A choice node on key k has exactly k.Cardinality children.
//   - Along any root-to-leaf path a key appears at most once (exactly once
//     for trees built with New).
//   - Equality is defined over the assignment→leaf mapping: sharing topology
//     and branching order never matter (see Equal).
//
// Operations:
//
//	Leaf, NewChoice, New           construction.
//	Lookup, Restrict, Choose       full and partial assignment access.
//	Map, MapErr, MapWithAssignment  leaf transforms (sharing preserved).
//	Apply                          combine two trees over the union of their keys.
//	Equal, Compact                 logical equality and maximal sharing.
//	ConsistentOrder                a branching order compatible with many trees.
//
// Complexity:
//
//	Lookup is O(depth). Apply and Equal are O(|a|·|b|) in the worst case and
//	memoize on node pairs, so shared subtrees are processed once.
package dtree
