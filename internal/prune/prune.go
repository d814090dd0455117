// Package prune implements the two pruning oracles spec.md §4.E
// describes: a relaxed-domain unsolvability test and the
// foundation-return legality rule.
package prune

import (
	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
)

// CanFoundationReturn reports whether a foundation top card of rank r
// is allowed to move back to the tableau. An Ace or Two never needs to
// come back; a higher rank may come back only while some foundation
// pile is still shorter than r-2, so that it can still serve as a
// tableau base for a lower card (spec.md §4.E).
func CanFoundationReturn(s *gamestate.State, r deck.Rank) bool {
	if r <= 2 {
		return false
	}
	for suit := 0; suit < 4; suit++ {
		if len(s.Foundations[suit]) < int(r)-2 {
			return true
		}
	}
	return false
}

// RelaxedSolvable implements the relaxed-domain fixed point of spec.md
// §4.E: under a relaxation where foundation plays do not consume the
// card, determine whether every suit's foundation could still reach
// rank 13. The accessible-set shape is grounded on the level-validator
// solvability fixed point from the retrieved parable-bloom reference —
// adapted from grid-tile reachability to tableau/talon card
// reachability.
//
// Starting accessible set: every stock/waste card, plus the face-up
// suffix of each tableau column. Repeatedly, for each suit, while the
// next needed rank is accessible, "play" it (bump that suit's relaxed
// foundation counter) and, if it sat atop a face-down tableau card,
// reveal that card into the accessible set. The real game is provably
// unsolvable when this fixed point does not bring every suit up to
// rank 13; the converse is not guaranteed.
func RelaxedSolvable(s *gamestate.State) bool {
	accessible := make(map[gamestate.CardID]bool, 52)
	// belowFaceDown maps a tableau card to the face-down card directly
	// beneath it in its column, if any — revealed once the covering
	// card is relaxed-played, so a buried column opens one card at a
	// time.
	belowFaceDown := make(map[gamestate.CardID]deck.Card)

	for col := 0; col < 7; col++ {
		pile := s.Tableau[col]
		start := s.FaceUpIndex(col)
		if start < 0 {
			continue
		}
		for i := start; i < len(pile); i++ {
			id := gamestate.CardID{Rank: pile[i].Rank, Suit: pile[i].Suit}
			accessible[id] = true
			if i == start && start > 0 {
				belowFaceDown[id] = pile[start-1]
			}
		}
		for i := 1; i < start; i++ {
			belowFaceDown[gamestate.CardID{Rank: pile[i].Rank, Suit: pile[i].Suit}] = pile[i-1]
		}
	}
	for _, c := range s.Stock {
		accessible[gamestate.CardID{Rank: c.Rank, Suit: c.Suit}] = true
	}
	for _, c := range s.Waste {
		accessible[gamestate.CardID{Rank: c.Rank, Suit: c.Suit}] = true
	}

	relaxedLen := [4]int{}
	for suit := 0; suit < 4; suit++ {
		relaxedLen[suit] = len(s.Foundations[suit])
	}

	progressed := true
	for progressed {
		progressed = false
		for suit := 0; suit < 4; suit++ {
			for relaxedLen[suit] < 13 {
				next := deck.Rank(relaxedLen[suit] + 1)
				id := gamestate.CardID{Rank: next, Suit: deck.Suit(suit)}
				if !accessible[id] {
					break
				}
				relaxedLen[suit]++
				progressed = true
				if revealed, ok := belowFaceDown[id]; ok {
					rid := gamestate.CardID{Rank: revealed.Rank, Suit: revealed.Suit}
					if !accessible[rid] {
						accessible[rid] = true
					}
					delete(belowFaceDown, id)
				}
			}
		}
	}

	for suit := 0; suit < 4; suit++ {
		if relaxedLen[suit] < 13 {
			return false
		}
	}
	return true
}
