// Command solitaire-bench runs the solver over a range of seeds and
// reports per-seed outcomes plus an aggregate win rate and timing
// split, persisting each run to the results store so repeated
// invocations build a running history.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herbhall/solitaire-solver/internal/config"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/render"
	"github.com/herbhall/solitaire-solver/internal/results"
	"github.com/herbhall/solitaire-solver/internal/solver"
)

func main() {
	seeds := flag.Int("seeds", 20, "number of seeds to run, starting at 0")
	n0 := flag.Int("n0", 0, "opening-level rollout depth multiplier (0 uses config default)")
	n1 := flag.Int("n1", 0, "endgame-level rollout depth multiplier (0 uses config default)")
	budget := flag.Float64("budget", 0, "per-seed time budget in seconds (0 uses config default)")
	configPath := flag.String("config", "", "path to config JSON (default ~/.solitaire-solver/config.json)")
	resultsPath := flag.String("results", "", "path to results JSON (default ~/.solitaire-solver/results.json)")
	flag.Parse()

	cfgStore, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading config: %v\n", err)
	}
	cfg := cfgStore.Config
	if *n0 > 0 {
		cfg.N0 = *n0
	}
	if *n1 > 0 {
		cfg.N1 = *n1
	}
	if *budget > 0 {
		cfg.TimeBudgetSeconds = *budget
	}

	resStore, err := results.LoadFrom(*resultsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading results: %v\n", err)
	}

	for seed := 0; seed < *seeds; seed++ {
		deal := gamestate.Deal(int64(seed))
		sv := solver.New(cfg.N0, cfg.N1, cfg.CacheLimit)

		start := time.Now()
		_, final := sv.Solve(deal, time.Duration(cfg.TimeBudgetSeconds*float64(time.Second)))
		elapsed := time.Since(start)

		outcome := results.Outcome{
			Win:             final.IsWin(),
			Seconds:         elapsed.Seconds(),
			FoundationCount: final.FoundationCount(),
			Nodes:           sv.NodesSearched(),
		}
		resStore.Record(seed, outcome)
		fmt.Println(render.BenchmarkLine(seed, outcome))
	}

	fmt.Println(render.AggregateSummary(resStore.Summarize()))

	if err := resStore.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving results: %v\n", err)
	}
}
