// Package sweep runs headless Life scenarios in parallel to compare cadence
// and density settings.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"lifebg/internal/sims/life"
)

// Params is one point in the sweep grid.
type Params struct {
	Density    float64
	StepEvery  int
	SpawnEvery int
}

func (p Params) String() string {
	return fmt.Sprintf("density=%.2f step=%d spawn=%d", p.Density, p.StepEvery, p.SpawnEvery)
}

// Scenario fixes everything except the swept parameters.
type Scenario struct {
	Base   life.Config
	ViewW  int
	ViewH  int
	Frames int
	Seeds  []int64
}

// Result aggregates one parameter set over all seeds.
type Result struct {
	Params      Params
	Runs        int
	DiedOut     int
	MeanFinal   float64
	MeanPeak    float64
	MinPop      int
	Generations uint64
}

// Survival is the fraction of runs still populated at the end.
func (r Result) Survival() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Runs-r.DiedOut) / float64(r.Runs)
}

type runResult struct {
	final       int
	peak        int
	min         int
	generations uint64
}

// Grid expands the option lists into every combination.
func Grid(densities []float64, stepEvery, spawnEvery []int) []Params {
	var sets []Params
	for _, d := range densities {
		for _, st := range stepEvery {
			for _, sp := range spawnEvery {
				sets = append(sets, Params{Density: d, StepEvery: st, SpawnEvery: sp})
			}
		}
	}
	return sets
}

// Evaluate runs one parameter set against every seed of the scenario.
func Evaluate(sc Scenario, p Params) (Result, error) {
	cfg := sc.Base
	cfg.Density = p.Density
	cfg.StepEvery = p.StepEvery
	cfg.SpawnEvery = p.SpawnEvery
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Params: p, MinPop: -1}
	for _, seed := range sc.Seeds {
		cfg.Seed = seed
		r := runOnce(cfg, sc.ViewW, sc.ViewH, sc.Frames)
		res.Runs++
		if r.final == 0 {
			res.DiedOut++
		}
		res.MeanFinal += float64(r.final)
		res.MeanPeak += float64(r.peak)
		if res.MinPop < 0 || r.min < res.MinPop {
			res.MinPop = r.min
		}
		res.Generations = r.generations
	}
	if res.Runs > 0 {
		res.MeanFinal /= float64(res.Runs)
		res.MeanPeak /= float64(res.Runs)
	}
	if res.MinPop < 0 {
		res.MinPop = 0
	}
	return res, nil
}

func runOnce(cfg life.Config, viewW, viewH, frames int) runResult {
	sim := life.New(cfg, viewW, viewH)
	pop := sim.Population()
	r := runResult{peak: pop, min: pop}
	for i := 0; i < frames; i++ {
		if !sim.Tick() {
			continue
		}
		pop = sim.Population()
		if pop > r.peak {
			r.peak = pop
		}
		if pop < r.min {
			r.min = pop
		}
	}
	r.final = sim.Population()
	r.generations = sim.Generation()
	return r
}

// Run evaluates sets on a pool of workers and returns results ordered by
// survival, then by mean final population.
func Run(ctx context.Context, sc Scenario, sets []Params, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Params)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := Evaluate(sc, p)
				if err != nil {
					errs <- fmt.Errorf("%s: %w", p, err)
					cancel()
					return
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, p := range sets {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		si, sj := all[i].Survival(), all[j].Survival()
		if si != sj {
			return si > sj
		}
		return all[i].MeanFinal > all[j].MeanFinal
	})
	return all, nil
}
