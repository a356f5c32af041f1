// Package bench compares agent strategies' run length and wall-clock time
// across a shared batch of randomly generated scenarios, adapted from
// original_source/src/bench.rs's gen_set/bench pair into the teacher's own
// testing.B idiom (see bench_test.go).
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/mooshroom4422/honours-project/agentstrategy"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/scenario"
	"github.com/mooshroom4422/honours-project/simrunner"
	"github.com/mooshroom4422/honours-project/targetmotion"
	"github.com/mooshroom4422/honours-project/world"
)

// Scenario is one generated run: initial agent and target placements.
type Scenario struct {
	Agents  []*world.Agent
	Targets []*world.Target
}

// GenerateSet produces nRuns independent Scenarios, each with numAgents
// agents sampled from agentRegion and numTargets targets sampled from
// targetRegion, guaranteed not to share a cell with any agent in the same
// run (original_source/src/bench.rs's gen_set).
func GenerateSet(m *grid.Map, nRuns, numAgents, numTargets, restPeriod int, agentRegion, targetRegion scenario.Rect, rng *rand.Rand) ([]Scenario, error) {
	out := make([]Scenario, nRuns)
	for i := 0; i < nRuns; i++ {
		agentPts, err := scenario.PlacePoints(m, agentRegion, numAgents, rng)
		if err != nil {
			return nil, err
		}
		excluded := make(map[grid.Point]bool, numAgents)
		for _, p := range agentPts {
			excluded[p] = true
		}
		targetPts, err := scenario.PlacePointsExcluding(m, targetRegion, numTargets, excluded, rng)
		if err != nil {
			return nil, err
		}

		agents := make([]*world.Agent, numAgents)
		for j, p := range agentPts {
			agents[j] = world.NewAgent(p)
		}
		targets := make([]*world.Target, numTargets)
		for j, p := range targetPts {
			targets[j] = world.NewTarget(j, []grid.Point{p}, restPeriod)
		}
		out[i] = Scenario{Agents: agents, Targets: targets}
	}
	return out, nil
}

// Result summarises a batch run: mean ticks-to-completion, mean wall-clock
// time per run, and (optionally) every individual run's tick count.
type Result struct {
	AvgLength     float64
	AvgTime       time.Duration
	IndividualLen []int
}

// AgentStrategyFactory builds a fresh agentstrategy.Strategy for one run;
// fresh because MakespanGreedy/CollisionFree cache their solved
// assignment/plan on first Step and must not be reused across scenarios.
type AgentStrategyFactory func(m *grid.Map, s Scenario) agentstrategy.Strategy

// TargetStrategyFactory builds a fresh targetmotion.Strategy for one run.
type TargetStrategyFactory func(m *grid.Map, s Scenario, rng *rand.Rand) targetmotion.Strategy

// Run drives every Scenario in set through simrunner.Runner and reports
// aggregate timing and length, collecting individual lengths when
// collectIndividual is set (original_source/src/bench.rs's
// collect_individual flag).
func Run(m *grid.Map, set []Scenario, maxIter int, asFactory AgentStrategyFactory, tsFactory TargetStrategyFactory, rng *rand.Rand, collectIndividual bool) (Result, error) {
	var sumLen int64
	var sumTime time.Duration
	var individual []int

	for _, s := range set {
		start := time.Now()

		as := asFactory(m, s)
		ts := tsFactory(m, s, rng)
		r := simrunner.New(m, s.Agents, s.Targets, as, ts, rng, simrunner.Options{MaxIter: maxIter})

		err := r.Run(context.Background())
		if err != nil && err != simrunner.ErrMaxIterExceeded {
			return Result{}, err
		}

		sumTime += time.Since(start)
		sumLen += int64(r.Tick())
		if collectIndividual {
			individual = append(individual, r.Tick())
		}
	}

	n := float64(len(set))
	return Result{
		AvgLength:     float64(sumLen) / n,
		AvgTime:       time.Duration(float64(sumTime) / n),
		IndividualLen: individual,
	}, nil
}
