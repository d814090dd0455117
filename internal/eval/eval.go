// Package eval implements the two non-terminal position evaluators
// spec.md §4.F specifies: H1 (opening) favors high-value foundation
// progress and penalizes deep blocking; H2 (endgame) flattens the
// foundation reward and rewards talon availability, favoring whatever
// gets the remaining cards home fastest.
package eval

import (
	"math"

	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
)

// Heuristic identifies which evaluator a score was computed with.
type Heuristic int

const (
	H1 Heuristic = iota // opening
	H2                  // endgame
)

// weights holds the per-feature coefficients for one heuristic. F1 and
// F2 depend on a card's rank, so they are functions of rv = rank-1
// rather than flat constants.
type weights struct {
	f1 func(rv int) float64
	f2 func(rv int) float64
	f3 float64
	f4 float64
	f5 float64
	f6 float64
}

var h1Weights = weights{
	f1: func(rv int) float64 { return 5 - float64(rv) },
	f2: func(rv int) float64 { return float64(rv) - 13 },
	f3: 0,
	f4: -5,
	f5: -5,
	f6: -10,
}

var h2Weights = weights{
	f1: func(rv int) float64 { return 5 },
	f2: func(rv int) float64 { return float64(rv) - 13 },
	f3: 1,
	f4: -1,
	f5: -1,
	f6: -5,
}

// Score returns the scalar evaluation of s under h. A win state
// short-circuits to +Inf regardless of heuristic.
func Score(s *gamestate.State, h Heuristic) float64 {
	if s.IsWin() {
		return math.Inf(1)
	}
	w := h1Weights
	if h == H2 {
		w = h2Weights
	}

	total := 0.0

	for suit := 0; suit < 4; suit++ {
		for _, c := range s.Foundations[suit] {
			total += w.f1(int(c.Rank) - 1)
		}
	}

	for col := 0; col < 7; col++ {
		for _, c := range s.Tableau[col] {
			if !c.FaceUp {
				total += w.f2(int(c.Rank) - 1)
			}
		}
	}

	if h == H2 {
		talon := s.ReachableTalonCards()
		total += float64(len(talon)) * w.f3
	}

	total += float64(countBlackoutPairs(s)) * w.f4

	blockPairs, buildPairs := countBlockingPairs(s)
	total += float64(blockPairs) * w.f5
	total += float64(buildPairs) * w.f6

	return total
}

// countBlackoutPairs counts F4: rank+color groups where both cards of
// that rank and color sit face-down in the tableau (a group can only
// ever have 0, 1, or 2 qualifying members, since each rank/color
// combination has exactly two cards).
func countBlackoutPairs(s *gamestate.State) int {
	type key struct {
		rank deck.Rank
		red  bool
	}
	counts := make(map[key]int)
	for col := 0; col < 7; col++ {
		for _, c := range s.Tableau[col] {
			if c.FaceUp {
				continue
			}
			counts[key{rank: c.Rank, red: c.IsRed()}]++
		}
	}
	pairs := 0
	for _, n := range counts {
		if n == 2 {
			pairs++
		}
	}
	return pairs
}

// isBlocker reports whether the card at index i of pile is a "blocker"
// per spec.md §4.F: face-down, or resting on nothing (column bottom),
// or the first face-up card directly above a face-down prefix. Since
// face-down cards always form a column prefix, "resting on nothing" and
// "face-down" collapse into the single check below.
func isBlocker(pile []deck.Card, i int) bool {
	return i == 0 || !pile[i-1].FaceUp
}

// countBlockingPairs walks every tableau column once and counts F5
// (same-suit, lower-rank blocked pairs) and F6 (opposite-color,
// rank+1 "build partner" blocked pairs).
func countBlockingPairs(s *gamestate.State) (f5, f6 int) {
	for col := 0; col < 7; col++ {
		pile := s.Tableau[col]
		for bi := 0; bi < len(pile); bi++ {
			if !isBlocker(pile, bi) {
				continue
			}
			x := pile[bi]
			for yi := 0; yi < bi; yi++ {
				y := pile[yi]
				if y.Suit == x.Suit && y.Rank < x.Rank {
					f5++
				}
				if y.Rank == x.Rank+1 && y.IsRed() != x.IsRed() {
					f6++
				}
			}
		}
	}
	return f5, f6
}
