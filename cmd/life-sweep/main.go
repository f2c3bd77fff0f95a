package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"lifebg/internal/logging"
	"lifebg/internal/sims/life"
	"lifebg/internal/sweep"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	base := life.DefaultConfig()
	width, height := 1280, 800
	frames := 6000
	workers := runtime.NumCPU()
	seedCount := 4
	top := 10
	verbose := false
	var densities []float64
	var stepEvery, spawnEvery []int

	p := flaggy.NewParser("life-sweep")
	p.Description = "Sweeps density and cadence settings and reports how long the background stays alive."
	p.Int(&width, "x", "width", "Viewport width")
	p.Int(&height, "y", "height", "Viewport height")
	p.Int(&base.Pitch, "p", "pitch", "Viewport units per grid cell")
	p.Int(&frames, "n", "frames", "Rendered frames to simulate per run")
	p.Int(&workers, "w", "workers", "Number of worker goroutines")
	p.Int(&seedCount, "c", "seeds", "Seeds per parameter set, starting at --seed")
	p.Int64(&base.Seed, "r", "seed", "First seed")
	p.Int(&top, "t", "top", "Results to print")
	p.Float64Slice(&densities, "d", "density", "Density option, repeatable (default 0.1, 0.2, 0.3)")
	p.IntSlice(&stepEvery, "e", "step-every", "Step cadence option, repeatable (default 5, 10, 20)")
	p.IntSlice(&spawnEvery, "s", "spawn-every", "Spawn cadence option, repeatable (default 0, 100, 200, 400)")
	p.Bool(&verbose, "v", "verbose", "Log debug lines")
	if err := p.Parse(); err != nil {
		logging.New(os.Stderr, false, true).Errorf("parse flags: %v", err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, verbose, true)

	// flaggy appends to slice defaults, so they are filled in after parsing.
	if len(densities) == 0 {
		densities = []float64{0.1, 0.2, 0.3}
	}
	if len(stepEvery) == 0 {
		stepEvery = []int{5, 10, 20}
	}
	if len(spawnEvery) == 0 {
		spawnEvery = []int{0, 100, 200, 400}
	}

	seeds := make([]int64, max(seedCount, 1))
	for i := range seeds {
		seeds[i] = base.Seed + int64(i)
	}
	sc := sweep.Scenario{Base: base, ViewW: width, ViewH: height, Frames: frames, Seeds: seeds}
	sets := sweep.Grid(densities, stepEvery, spawnEvery)

	size := life.New(base, width, height).Size()
	logger.Infof("sweeping %d parameter sets on a %dx%d grid (%d workers, %d frames, %d seeds)",
		len(sets), size.W, size.H, workers, frames, len(seeds))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, sc, sets, workers)
	if err != nil {
		logger.Errorf("sweep: %v", err)
		os.Exit(1)
	}
	logger.Debugf("sweep finished in %s", time.Since(start).Round(time.Millisecond))

	au := aurora.NewAurora(true)
	fmt.Printf("\nTop %d results:\n", min(top, len(results)))
	for i := 0; i < len(results) && i < top; i++ {
		r := results[i]
		survival := au.Green(fmt.Sprintf("%3.0f%%", r.Survival()*100))
		if r.DiedOut > 0 {
			survival = au.Red(fmt.Sprintf("%3.0f%%", r.Survival()*100))
		}
		fmt.Printf("%2d) alive=%s final=%.1f peak=%.1f min=%d gens=%d %s\n",
			i+1, survival, r.MeanFinal, r.MeanPeak, r.MinPop, r.Generations, r.Params)
	}
}
