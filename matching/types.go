// Package matching implements bipartite matching over a plain adjacency-list
// graph between a left and a right vertex set, indexed densely by int (spec
// 9 "dense integer vertex ids"). Two interchangeable implementations satisfy
// the Matcher interface: Hopcroft-Karp and a simple augmenting-path matcher
// (spec 4.C), grounded on the teacher's BFS/DFS walker discipline
// (bfs.walker, dfs recursion) adapted from string-keyed core.Graph traversal
// to dense int-indexed adjacency, since the matcher is rebuilt at every
// binary-search step of assignment and string keys would dominate.
package matching

// Matcher is the common contract of every bipartite matcher in this package:
// Init wipes and (re)seeds internal state, Solve computes a maximum matching
// and returns its size, and GetMatching returns, for each left vertex index,
// its matched right-vertex index or -1 if unmatched (spec 4.C).
type Matcher interface {
	// Init (re)initializes the matcher for a bipartite graph with leftN left
	// vertices and rightN right vertices; adj[u] lists the right-vertex
	// indices adjacent to left vertex u. Must be safe to call repeatedly on
	// the same Matcher instance (spec 4.C "Must be reusable").
	Init(adj [][]int, leftN, rightN int)
	// Solve computes a maximum matching and returns its size.
	Solve() int
	// GetMatching returns, for each left index u, its matched right index or
	// -1. Symmetric with MatchedLeft.
	GetMatching() []int
	// MatchedLeft returns, for each right index v, its matched left index or
	// -1 (spec 4.C "partners are symmetric: m[u]=v <=> m[v]=u").
	MatchedLeft() []int
}
