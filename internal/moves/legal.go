package moves

import (
	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
)

// canPlaceOnTableau reports the structural legality of placing card on
// top of tableau column col: an empty column accepts only a King,
// otherwise the existing top must be face-up, one rank higher, and the
// opposite color. The no-op King relocation check (spec.md §4.C) is a
// generator-level concern, not a placement rule, since it depends on
// where the King is coming from.
func canPlaceOnTableau(s *gamestate.State, card deck.Card, col int) bool {
	pile := s.Tableau[col]
	if len(pile) == 0 {
		return card.Rank == deck.King
	}
	top := pile[len(pile)-1]
	return top.FaceUp && top.Rank == card.Rank+1 && top.IsRed() != card.IsRed()
}

// canPlaceOnFoundation reports whether card may be placed on its suit's
// foundation pile.
func canPlaceOnFoundation(s *gamestate.State, card deck.Card) bool {
	return len(s.Foundations[card.Suit]) == int(card.Rank)-1
}
