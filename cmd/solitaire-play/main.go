// Command solitaire-play deals a single seed, runs the solver, and
// prints the initial board, the final board, and the solution move
// list. With -step it replays the solution interactively instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herbhall/solitaire-solver/internal/config"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/render"
	"github.com/herbhall/solitaire-solver/internal/replay"
	"github.com/herbhall/solitaire-solver/internal/solver"
)

func main() {
	seed := flag.Int64("seed", 42, "deal seed")
	n0 := flag.Int("n0", 0, "opening-level rollout depth multiplier (0 uses config default)")
	n1 := flag.Int("n1", 0, "endgame-level rollout depth multiplier (0 uses config default)")
	budget := flag.Float64("budget", 0, "time budget in seconds (0 uses config default)")
	configPath := flag.String("config", "", "path to config JSON (default ~/.solitaire-solver/config.json)")
	step := flag.Bool("step", false, "step through the solution interactively")
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

	initial := gamestate.Deal(*seed)
	sv := solver.New(cfg.N0, cfg.N1, cfg.CacheLimit)
	solution, final := sv.Solve(initial, time.Duration(cfg.TimeBudgetSeconds*float64(time.Second)))

	if *step {
		p := tea.NewProgram(replay.New(initial, solution), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "replay error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Initial:")
	fmt.Println(render.Board(initial))
	fmt.Println("Final:")
	fmt.Println(render.Board(final))
	fmt.Printf("Solution: %d moves, nodes_searched=%d, win=%v\n\n", len(solution), sv.NodesSearched(), final.IsWin())
	fmt.Print(render.MoveList(solution))
}
