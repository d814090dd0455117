// Package solver implements the Multistage Nested Rollout search
// procedure of spec.md §4.G: two heuristic levels, per-level
// transposition caching, local loop prevention via reverse-move
// filtering, relaxed-domain pruning, and a cooperative wall-clock
// deadline.
package solver

import (
	"math"
	"time"

	"github.com/herbhall/solitaire-solver/internal/eval"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/moves"
	"github.com/herbhall/solitaire-solver/internal/prune"
)

// DefaultCacheLimit bounds each heuristic's transposition cache
// (spec.md §4.G step 6: overflow stops inserting, never evicts).
const DefaultCacheLimit = 5000

const lastHeuristic = eval.H2

type cacheKey struct {
	hash uint64
	n    int
}

// pathSet is the immutable-by-convention set of state hashes on the
// current rollout stack. Extending or shrinking it copies, per
// spec.md's Design Notes ("copy-on-extend").
type pathSet map[uint64]struct{}

func (p pathSet) has(h uint64) bool {
	_, ok := p[h]
	return ok
}

func (p pathSet) extend(h uint64) pathSet {
	np := make(pathSet, len(p)+1)
	for k := range p {
		np[k] = struct{}{}
	}
	np[h] = struct{}{}
	return np
}

func (p pathSet) without(h uint64) pathSet {
	np := make(pathSet, len(p))
	for k := range p {
		if k != h {
			np[k] = struct{}{}
		}
	}
	return np
}

// Solver owns its transposition caches and counters; it holds no
// process-wide state (spec.md §5/§9: no global mutable state).
type Solver struct {
	n0, n1     int
	deadline   time.Time
	cacheLimit int

	cacheH1 map[cacheKey]struct{}
	cacheH2 map[cacheKey]struct{}

	nodesSearched int

	live *gamestate.State
}

// New creates a solver with the given per-level rollout depth
// multipliers. A cacheLimit of 0 uses DefaultCacheLimit. The time
// budget is supplied per call to Solve, not fixed at construction.
func New(n0, n1 int, cacheLimit int) *Solver {
	if cacheLimit <= 0 {
		cacheLimit = DefaultCacheLimit
	}
	return &Solver{
		n0:         n0,
		n1:         n1,
		cacheLimit: cacheLimit,
		cacheH1:    make(map[cacheKey]struct{}),
		cacheH2:    make(map[cacheKey]struct{}),
	}
}

// NodesSearched returns the counter incremented at each recursion entry
// and each committed advance.
func (sv *Solver) NodesSearched() int {
	return sv.nodesSearched
}

// Solve runs the solver against a clone of initial (the caller's state
// is never mutated) until a win is found, the time budget expires, or
// the search stops at a position with no moves left or one already on
// its path. It returns the sequence of moves actually committed to the
// live state, and exposes the final state for inspection.
//
// Before searching, the root is checked against the relaxed-domain
// oracle (spec.md §4.E, testable scenario 6): a state it proves
// unsolvable is reported as a loss without spending any search time.
func (sv *Solver) Solve(initial *gamestate.State, budget time.Duration) ([]moves.Move, *gamestate.State) {
	sv.deadline = time.Now().Add(budget)
	sv.live = initial.Clone()
	if !prune.RelaxedSolvable(sv.live) {
		return nil, sv.live
	}
	_, solution := sv.search(sv.live, eval.H1, sv.n0, pathSet{}, nil, true)
	return solution, sv.live
}

func (sv *Solver) cacheFor(h eval.Heuristic) map[cacheKey]struct{} {
	if h == eval.H1 {
		return sv.cacheH1
	}
	return sv.cacheH2
}

func (sv *Solver) nFor(h eval.Heuristic) int {
	if h == eval.H1 {
		return sv.n0
	}
	return sv.n1
}

// search implements spec.md §4.G's numbered procedure. state is owned
// by this call: the rollout loop (step 7) mutates it in place by
// committing moves; any cloning happens per-candidate in step 7a so
// exploration never disturbs the caller's state.
func (sv *Solver) search(state *gamestate.State, h eval.Heuristic, n int, path pathSet, lastReverse *moves.Move, topLevel bool) (float64, []moves.Move) {
	sv.nodesSearched++

	if state.IsWin() {
		return math.Inf(1), nil
	}
	hash := state.Hash()
	if path.has(hash) {
		return math.Inf(-1), nil
	}
	if time.Now().After(sv.deadline) {
		return eval.Score(state, h), nil
	}

	legal := moves.Generate(state)
	if lastReverse != nil {
		legal = filterOutReverse(legal, *lastReverse)
	}
	if len(legal) == 0 {
		return eval.Score(state, h), nil
	}
	if n == -1 {
		return eval.Score(state, h), nil
	}

	key := cacheKey{hash: hash, n: n}
	cache := sv.cacheFor(h)
	if _, hit := cache[key]; hit {
		if h == lastHeuristic {
			return eval.Score(state, h), nil
		}
		nextH := h + 1
		return sv.search(state, nextH, sv.nFor(nextH), path.without(hash), nil, false)
	}
	if len(cache) < sv.cacheLimit {
		cache[key] = struct{}{}
	}

	currentPath := path.extend(hash)
	curHash := hash
	var solution []moves.Move

	for {
		bestVal := math.Inf(-1)
		var bestMove moves.Move
		var bestChild []moves.Move
		haveBest := false

		for _, a := range legal {
			clone := state.Clone()
			rev, ok := moves.Reverse(state, a)
			moves.Apply(clone, a)
			var lr *moves.Move
			if ok {
				lr = &rev
			}
			childVal, childMoves := sv.search(clone, h, n-1, currentPath, lr, false)
			if !haveBest || childVal > bestVal {
				bestVal, bestMove, bestChild, haveBest = childVal, a, childMoves, true
				if math.IsInf(bestVal, 1) {
					break
				}
			}
		}
		if !haveBest {
			return eval.Score(state, h), solution
		}

		if math.IsInf(bestVal, 1) {
			seq := append([]moves.Move{bestMove}, bestChild...)
			var lastRev *moves.Move
			for _, mv := range seq {
				rev, ok := moves.Reverse(state, mv)
				moves.Apply(state, mv)
				if ok {
					r := rev
					lastRev = &r
				} else {
					lastRev = nil
				}
			}
			solution = append(solution, seq...)
			sv.nodesSearched++
			if state.IsWin() {
				return math.Inf(1), solution
			}
			curHash = state.Hash()
			currentPath = currentPath.extend(curHash)
			legal = moves.Generate(state)
			if lastRev != nil {
				legal = filterOutReverse(legal, *lastRev)
			}
			if len(legal) == 0 {
				return eval.Score(state, h), solution
			}
			continue
		}

		localEval := eval.Score(state, h)
		if h != lastHeuristic && (bestVal < localEval || math.IsInf(bestVal, -1)) {
			nextH := h + 1
			val, sub := sv.search(state, nextH, sv.nFor(nextH), currentPath.without(curHash), nil, false)
			solution = append(solution, sub...)
			return val, solution
		}

		rev, ok := moves.Reverse(state, bestMove)
		moves.Apply(state, bestMove)
		solution = append(solution, bestMove)
		sv.nodesSearched++
		newHash := state.Hash()
		if currentPath.has(newHash) {
			return eval.Score(state, h), solution
		}
		curHash = newHash
		currentPath = currentPath.extend(newHash)
		legal = moves.Generate(state)
		if ok {
			legal = filterOutReverse(legal, rev)
		}
		if len(legal) == 0 {
			return eval.Score(state, h), solution
		}
	}
}

// filterOutReverse removes rev from legal if present, unless doing so
// would leave the list empty (spec.md §4.G step 4 / testable scenario
// 4: the filter never forces a dead end).
func filterOutReverse(legal []moves.Move, rev moves.Move) []moves.Move {
	if len(legal) <= 1 {
		return legal
	}
	idx := -1
	for i, m := range legal {
		if moves.SameMove(m, rev) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return legal
	}
	out := make([]moves.Move, 0, len(legal)-1)
	out = append(out, legal[:idx]...)
	out = append(out, legal[idx+1:]...)
	return out
}
