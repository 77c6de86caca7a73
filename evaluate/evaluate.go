// Package evaluate compares dispatch policies by running each one on independent buildings.
package evaluate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"elevsim/building"
	"elevsim/config"
	"elevsim/dispatch"
	"elevsim/util/logger"
)

// Ticks allowed to empty a building after the trailing steps.
const MAX_DRAIN_TICKS = 1000

var ErrNoCandidates = errors.New("nothing to evaluate")

// Candidate is a named policy. Its Decide must be safe to call from several goroutines.
type Candidate struct {
	Name   string
	Policy dispatch.Policy
}

// Builtins resolves built-in policies by name, every registered one when names is empty.
func Builtins(names ...string) ([]Candidate, error) {
	if len(names) == 0 {
		names = dispatch.Names()
	}
	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		p, err := dispatch.ByName(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Name: name, Policy: p})
	}
	return candidates, nil
}

type Result struct {
	RunID   uuid.UUID
	Policy  string
	Seed    uint64
	Drained bool // everyone was delivered before the drain limit
	Summary building.Summary
}

// Run plays every (candidate, seed) pair on its own building: cfg.Steps ticks with arrivals,
// cfg.TrailingSteps without, then a drain. At most workers runs proceed at once; zero means one
// per CPU. Results come back ordered by candidate, then seed. Cancelling ctx stops every run
// between ticks.
func Run(ctx context.Context, cfg config.SimConfig, candidates []Candidate, seeds []uint64, workers int) ([]Result, error) {
	if len(candidates) == 0 || len(seeds) == 0 {
		return nil, ErrNoCandidates
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(candidates)*len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ci, c := range candidates {
		for si, seed := range seeds {
			g.Go(func() error {
				res, err := runOne(ctx, cfg, c, seed)
				if err != nil {
					return fmt.Errorf("%s seed %d: %w", c.Name, seed, err)
				}
				results[ci*len(seeds)+si] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg config.SimConfig, c Candidate, seed uint64) (Result, error) {
	var runCfg config.SimConfig
	if err := deepcopy.Copy(&runCfg, cfg); err != nil {
		return Result{}, err
	}
	runCfg.Seed = seed

	res := Result{RunID: uuid.New(), Policy: c.Name, Seed: seed}
	log := logger.GetLogger().With().Str("run", res.RunID.String()).Str("policy", c.Name).Uint64("seed", seed).Logger()

	b, err := building.New(runCfg, c.Policy)
	if err != nil {
		return Result{}, err
	}
	for i := 0; i < runCfg.Steps+runCfg.TrailingSteps; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := b.Step(i < runCfg.Steps); err != nil {
			return Result{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if _, err := b.Drain(MAX_DRAIN_TICKS); err != nil {
		return Result{}, err
	}

	res.Summary = b.Summary()
	res.Drained = res.Summary.Active == 0
	log.Debug().Stringer("summary", res.Summary).Msg("run finished")
	return res, nil
}

// Ranking aggregates every run of one policy.
type Ranking struct {
	Policy    string
	Runs      int
	MeanCost  float64 // mean of the runs' average cost per person
	StdDev    float64
	Fitness   float64 // 1 / MeanCost, +Inf when nobody ever waited
	Undrained int     // runs that hit the drain limit
}

// Rank orders policies from lowest to highest mean average cost.
func Rank(results []Result) []Ranking {
	var order []string
	costs := map[string][]float64{}
	undrained := map[string]int{}
	for _, r := range results {
		if _, ok := costs[r.Policy]; !ok {
			order = append(order, r.Policy)
		}
		costs[r.Policy] = append(costs[r.Policy], r.Summary.AverageCost)
		if !r.Drained {
			undrained[r.Policy]++
		}
	}

	rankings := make([]Ranking, 0, len(order))
	for _, name := range order {
		xs := costs[name]
		r := Ranking{Policy: name, Runs: len(xs), MeanCost: stat.Mean(xs, nil), Undrained: undrained[name]}
		if len(xs) > 1 {
			r.StdDev = stat.StdDev(xs, nil)
		}
		r.Fitness = math.Inf(1)
		if r.MeanCost > 0 {
			r.Fitness = 1 / r.MeanCost
		}
		rankings = append(rankings, r)
	}
	slices.SortStableFunc(rankings, func(a, b Ranking) int {
		switch {
		case a.MeanCost < b.MeanCost:
			return -1
		case a.MeanCost > b.MeanCost:
			return 1
		}
		return 0
	})
	return rankings
}
