// Command pursuitsim runs one cooperative multi-agent pursuit simulation
// from a map file, per spec.md §6 "runtime knobs" and SPEC_FULL.md §6.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mooshroom4422/honours-project/agentstrategy"
	"github.com/mooshroom4422/honours-project/gif"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/matching"
	"github.com/mooshroom4422/honours-project/oracle"
	"github.com/mooshroom4422/honours-project/scenario"
	"github.com/mooshroom4422/honours-project/simrunner"
	"github.com/mooshroom4422/honours-project/targetmotion"
	"github.com/mooshroom4422/honours-project/world"
)

func main() {
	app := &cli.App{
		Name:  "pursuitsim",
		Usage: "run a cooperative multi-agent pursuit simulation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Usage: "map file path", Required: true},
			&cli.BoolFlag{Name: "refresh", Usage: "ignore the oracle's .dist cache and recompute"},
			&cli.IntFlag{Name: "max-iter", Usage: "MAX_ITER soft timeout", Value: 1000},
			&cli.StringFlag{Name: "agent-strategy", Usage: "makespan|collisionfree", Value: "makespan"},
			&cli.StringFlag{Name: "target-strategy", Usage: "random|maximize", Value: "random"},
			&cli.Int64Flag{Name: "seed", Usage: "RNG seed", Value: 1},
			&cli.StringFlag{Name: "gif", Usage: "write an animated GIF of the run to this path"},
			&cli.BoolFlag{Name: "debug"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug|info|warn|error"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"), c.Bool("debug"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	f, err := os.Open(c.String("map"))
	if err != nil {
		return fmt.Errorf("pursuitsim: %w", err)
	}
	defer f.Close()

	m, err := grid.Load(f)
	if err != nil {
		return fmt.Errorf("pursuitsim: %w", err)
	}

	o, err := loadOrBuildOracle(m, c.String("map"), c.Bool("refresh"), sugar)
	if err != nil {
		return err
	}
	m.AttachOracle(o)

	rng := rand.New(rand.NewSource(c.Int64("seed")))
	region := scenario.FullMap(m)
	agentPts, err := scenario.PlacePoints(m, region, 2, rng)
	if err != nil {
		return fmt.Errorf("pursuitsim: %w", err)
	}
	excluded := make(map[grid.Point]bool, len(agentPts))
	for _, p := range agentPts {
		excluded[p] = true
	}
	targetPts, err := scenario.PlacePointsExcluding(m, region, 2, excluded, rng)
	if err != nil {
		return fmt.Errorf("pursuitsim: %w", err)
	}
	for _, tp := range targetPts {
		reachable, rerr := scenario.Reachable(m, agentPts[0], tp)
		if rerr != nil {
			return fmt.Errorf("pursuitsim: %w", rerr)
		}
		if !reachable {
			sugar.Warnw("target unreachable from first agent", "agent", agentPts[0], "target", tp)
		}
	}

	agents := make([]*world.Agent, len(agentPts))
	for i, p := range agentPts {
		agents[i] = world.NewAgent(p)
	}
	targets := make([]*world.Target, len(targetPts))
	for i, p := range targetPts {
		targets[i] = world.NewTarget(i, []grid.Point{p}, 2)
	}

	as, err := buildAgentStrategy(c.String("agent-strategy"), m)
	if err != nil {
		return err
	}
	ts, err := buildTargetStrategy(c.String("target-strategy"), m)
	if err != nil {
		return err
	}

	opts := simrunner.Options{
		MaxIter: c.Int("max-iter"),
		Logger:  sugar,
	}

	var rec *gif.Recorder
	if path := c.String("gif"); path != "" {
		rec = gif.NewRecorder(m)
		opts.OnFrame = rec.Record
	}

	r := simrunner.New(m, agents, targets, as, ts, rng, opts)
	runErr := r.Run(context.Background())
	if runErr != nil && runErr != simrunner.ErrMaxIterExceeded {
		return fmt.Errorf("pursuitsim: %w", runErr)
	}

	if rec != nil {
		out, ferr := os.Create(c.String("gif"))
		if ferr != nil {
			return fmt.Errorf("pursuitsim: %w", ferr)
		}
		defer out.Close()
		if err := rec.Save(out); err != nil {
			return fmt.Errorf("pursuitsim: %w", err)
		}
	}

	if runErr == simrunner.ErrMaxIterExceeded {
		sugar.Warnw("did not finish", "ticks", r.Tick())
		fmt.Println("did not finish")
		return nil
	}
	fmt.Printf("captured all targets in %d ticks\n", r.Tick())
	return nil
}

func newLogger(level string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("pursuitsim: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func loadOrBuildOracle(m *grid.Map, mapPath string, refresh bool, log *zap.SugaredLogger) (*oracle.Oracle, error) {
	cachePath := mapPath + ".dist"
	if !refresh {
		if o, err := oracle.LoadFromFile(cachePath, m.Width, m.Height); err == nil {
			log.Debugw("loaded oracle cache", "path", cachePath)
			return o, nil
		}
	}
	o := oracle.Build(m)
	if err := o.SaveToFile(cachePath); err != nil {
		log.Errorw("failed to write oracle cache", "path", cachePath, "error", err)
		return nil, fmt.Errorf("pursuitsim: %w", err)
	}
	return o, nil
}

func buildAgentStrategy(name string, m *grid.Map) (agentstrategy.Strategy, error) {
	switch name {
	case "makespan":
		var hk matching.HopcroftKarp
		return agentstrategy.NewMakespanGreedy(m, &hk), nil
	case "collisionfree":
		return agentstrategy.NewCollisionFree(m, 0), nil
	default:
		return nil, fmt.Errorf("pursuitsim: unknown agent-strategy %q", name)
	}
}

func buildTargetStrategy(name string, m *grid.Map) (targetmotion.Strategy, error) {
	switch name {
	case "random":
		return targetmotion.RandomTarget{}, nil
	case "maximize":
		return targetmotion.MaximizeMinDist{Oracle: m}, nil
	default:
		return nil, fmt.Errorf("pursuitsim: unknown target-strategy %q", name)
	}
}
