package matching

import "math"

// HopcroftKarp implements the standard layered-BFS plus multi-DFS maximum
// bipartite matching algorithm, O(E*sqrt(V)) (spec 4.C). There is no NIL
// vertex: an unmatched vertex has partner -1 on either side, and a left
// vertex outside the current BFS layering has distance nilDist, mirroring the
// teacher's unreached-depth sentinel convention (bfs.BFSResult).
type HopcroftKarp struct {
	adj            [][]int
	leftN, rightN  int
	matchLeft      []int // matchLeft[u] = matched right vertex, or -1
	matchRight     []int // matchRight[v] = matched left vertex, or -1
	dist           []int
}

const nilDist = math.MaxInt32

// Init wipes all state and (re)seeds the matcher; see Matcher.Init.
func (h *HopcroftKarp) Init(adj [][]int, leftN, rightN int) {
	h.adj = adj
	h.leftN = leftN
	h.rightN = rightN
	h.matchLeft = make([]int, leftN)
	h.matchRight = make([]int, rightN)
	for i := range h.matchLeft {
		h.matchLeft[i] = -1
	}
	for i := range h.matchRight {
		h.matchRight[i] = -1
	}
	h.dist = make([]int, leftN)
}

// Solve runs Hopcroft-Karp phases until no augmenting path remains.
func (h *HopcroftKarp) Solve() int {
	matching := 0
	for h.bfs() {
		for u := 0; u < h.leftN; u++ {
			if h.matchLeft[u] == -1 {
				if h.dfs(u) {
					matching++
				}
			}
		}
	}
	return matching
}

// bfs builds alternating-path layers from every free left vertex. Returns
// true iff at least one augmenting path exists.
func (h *HopcroftKarp) bfs() bool {
	var queue []int
	for u := 0; u < h.leftN; u++ {
		if h.matchLeft[u] == -1 {
			h.dist[u] = 0
			queue = append(queue, u)
		} else {
			h.dist[u] = nilDist
		}
	}
	found := false
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range h.adj[u] {
			mu := h.matchRight[v]
			if mu == -1 {
				found = true
				continue
			}
			if h.dist[mu] == nilDist {
				h.dist[mu] = h.dist[u] + 1
				queue = append(queue, mu)
			}
		}
	}
	return found
}

// dfs attempts to extend the alternating-path layering from u into an
// augmenting path, flipping matched/unmatched edges along the way.
func (h *HopcroftKarp) dfs(u int) bool {
	for _, v := range h.adj[u] {
		mu := h.matchRight[v]
		if mu == -1 || (h.dist[mu] == h.dist[u]+1 && h.dfs(mu)) {
			h.matchLeft[u] = v
			h.matchRight[v] = u
			return true
		}
	}
	h.dist[u] = nilDist
	return false
}

// GetMatching returns matchLeft, see Matcher.GetMatching.
func (h *HopcroftKarp) GetMatching() []int {
	out := make([]int, len(h.matchLeft))
	copy(out, h.matchLeft)
	return out
}

// MatchedLeft returns matchRight, see Matcher.MatchedLeft.
func (h *HopcroftKarp) MatchedLeft() []int {
	out := make([]int, len(h.matchRight))
	copy(out, h.matchRight)
	return out
}
