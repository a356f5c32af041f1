// Package assignment implements the makespan bipartite-matching assignment
// of spec.md §4.D: binary search over a time bound T, asking "can every
// agent reach some target within T moves?" via the compressed oracle and a
// matching.Matcher, narrowing to the minimum feasible T.
package assignment

import (
	"errors"
	"fmt"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/matching"
	"github.com/mooshroom4422/honours-project/world"
)

// TMax is the binary-search upper bound named directly in spec.md §4.D:
// "2048 suffices for all supported maps". See DESIGN.md for how this was
// reconciled against original_source/src/matching.rs's much larger
// programmatic upper bound.
const TMax = 2048

// ErrInfeasible indicates no T in [0, TMax] admits a perfect agent-target
// matching (spec.md §7 "Infeasible plan").
var ErrInfeasible = errors.New("assignment: no feasible makespan within TMax")

// Result is the outcome of Solve: the minimal feasible makespan and the
// matching achieving it, indexed by agent/target position in the input
// slices.
type Result struct {
	Makespan int
	// AgentTarget[i] is the target index assigned to agents[i].
	AgentTarget []int
}

// Oracle is the subset of oracle.Oracle.Dist that Solve needs.
type Oracle interface {
	Dist(s, t grid.Point) (int, error)
}

// Solve finds the minimum feasible makespan T and a perfect matching between
// agents and targets such that dist(agent.Pos, target.AtTime(T)) <= T for
// every matched pair, via binary search plus m (spec.md §4.D).
func Solve(o Oracle, agents []*world.Agent, targets []*world.Target, m matching.Matcher) (Result, error) {
	n := len(agents)
	if len(targets) != n {
		return Result{}, fmt.Errorf("assignment: len(agents)=%d != len(targets)=%d", n, len(targets))
	}

	feasible := func(t int) (bool, []int, error) {
		adj := make([][]int, n)
		for i, a := range agents {
			for j, tgt := range targets {
				d, err := o.Dist(a.Pos, tgt.AtTime(t))
				if err != nil {
					return false, nil, err
				}
				if d <= t {
					adj[i] = append(adj[i], j)
				}
			}
		}
		m.Init(adj, n, n)
		size := m.Solve()
		return size == n, m.GetMatching(), nil
	}

	lo, hi := 0, TMax
	var bestMatch []int
	ok, match, err := feasible(hi)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, ErrInfeasible
	}
	bestMatch = match

	for lo < hi {
		mid := (lo + hi) / 2
		ok, match, err := feasible(mid)
		if err != nil {
			return Result{}, err
		}
		if ok {
			hi = mid
			bestMatch = match
		} else {
			lo = mid + 1
		}
	}

	return Result{Makespan: lo, AgentTarget: bestMatch}, nil
}
