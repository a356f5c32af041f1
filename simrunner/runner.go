// Package simrunner drives the tick loop of component H: move targets, move
// agents, resolve captures, optionally record a frame, repeat until every
// target is captured or MaxIter ticks elapse. It owns the only mutation
// point for world.Agent/world.Target state, mirroring the teacher's
// single-owner "Runner" convention for long-lived stateful loops
// (gridgraph.GridGraph callers drive traversal from one call site; here the
// Runner plays the analogous role for the simulation).
package simrunner

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/mooshroom4422/honours-project/agentstrategy"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/targetmotion"
	"github.com/mooshroom4422/honours-project/world"
)

// ErrMaxIterExceeded is returned by Run when the tick loop is stopped by the
// MaxIter soft-timeout before every target was captured (spec.md §8
// "MAX_ITER").
var ErrMaxIterExceeded = errors.New("simrunner: MAX_ITER exceeded before all targets captured")

// FrameFunc is invoked once per tick, after capture resolution, with the
// current world state. gif.Recorder.Record has this signature.
type FrameFunc func(m *grid.Map, agents []*world.Agent, targets []*world.Target, tick int)

// Options configures a Runner's optional behaviour.
type Options struct {
	// MaxIter bounds the number of ticks Run will execute. 0 means no bound
	// (Run still returns once all targets are captured).
	MaxIter int
	// CheckInvariants enables the per-tick invariant assertions of
	// spec.md §8 (every active agent and every uncaptured target is on a
	// Free tile, plus the collision checks enabled by
	// CollisionFreeRegime). Intended for tests and debugging, not hot
	// paths, per the teacher's convention of gating expensive checks
	// behind an explicit flag (prim_kruskal.MSTOptions-style options
	// struct).
	CheckInvariants bool
	// CollisionFreeRegime narrows the invariant checks of spec.md §8 that
	// only hold under the collision-free planner (F): no two active agents
	// share a cell, and no two agents cross the same undirected edge in
	// opposite directions within one tick. Leave false for the greedy
	// makespan-assignment regime (D), which permits both.
	CollisionFreeRegime bool
	// OnFrame, if set, is called once per tick after capture resolution.
	OnFrame FrameFunc
	// Logger receives a Warn on MAX_ITER exceeded and Debug per tick when
	// non-nil. A nil Logger disables logging.
	Logger *zap.SugaredLogger
}

// Runner owns one simulation's map, agents, targets and motion strategies,
// and advances them tick by tick.
type Runner struct {
	Map     *grid.Map
	Agents  []*world.Agent
	Targets []*world.Target

	AgentStrategy  agentstrategy.Strategy
	TargetStrategy targetmotion.Strategy

	Opts Options

	tick    int
	rng     *rand.Rand
	prevPos []pointSnapshot
}

// New constructs a Runner. rng drives TargetStrategy's per-tick randomness.
func New(m *grid.Map, agents []*world.Agent, targets []*world.Target, as agentstrategy.Strategy, ts targetmotion.Strategy, rng *rand.Rand, opts Options) *Runner {
	return &Runner{
		Map:            m,
		Agents:         agents,
		Targets:        targets,
		AgentStrategy:  as,
		TargetStrategy: ts,
		Opts:           opts,
		rng:            rng,
	}
}

// Tick returns the number of ticks executed so far.
func (r *Runner) Tick() int { return r.tick }

// AllCaptured reports whether every target has been captured.
func (r *Runner) AllCaptured() bool {
	for _, t := range r.Targets {
		if !t.Captured {
			return false
		}
	}
	return true
}

// Run executes the tick loop: move targets, move agents, resolve captures,
// emit a frame, until AllCaptured or MaxIter ticks have elapsed or ctx is
// done. It returns ErrMaxIterExceeded if the loop stopped on the iteration
// bound rather than full capture.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if r.AllCaptured() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Opts.MaxIter > 0 && r.tick >= r.Opts.MaxIter {
			if r.Opts.Logger != nil {
				r.Opts.Logger.Warnw("MAX_ITER exceeded before all targets captured",
					"tick", r.tick, "maxIter", r.Opts.MaxIter)
			}
			return ErrMaxIterExceeded
		}

		r.step()
		r.tick++

		if r.Opts.CheckInvariants {
			if err := r.checkInvariants(); err != nil {
				return err
			}
		}
		if r.Opts.OnFrame != nil {
			r.Opts.OnFrame(r.Map, r.Agents, r.Targets, r.tick)
		}
		if r.Opts.Logger != nil {
			r.Opts.Logger.Debugw("tick complete", "tick", r.tick)
		}
	}
}
