package moves

import "github.com/herbhall/solitaire-solver/internal/gamestate"

// Reverse computes m's reverse-move signature, if one exists, using the
// state as it stands *before* m is applied (spec.md's Design Notes:
// irreversibility tracks face-down flips, which only the pre-move
// column contents reveal). The rollout solver uses this to forbid
// immediately undoing the previous ply.
//
// Waste-origin moves are never reversible: nothing can be pushed back
// onto the waste.
func Reverse(s *gamestate.State, m Move) (Move, bool) {
	switch m.Kind {
	case TableauToTableau:
		pile := s.Tableau[m.FromCol]
		remaining := len(pile) - m.NumCards
		if remaining > 0 && !pile[remaining-1].FaceUp {
			return Move{}, false
		}
		return Move{
			Kind:      TableauToTableau,
			FromCol:   m.ToCol,
			FromIndex: len(s.Tableau[m.ToCol]),
			ToCol:     m.FromCol,
			Card:      m.Card,
			NumCards:  m.NumCards,
		}, true

	case TableauToFoundation:
		pile := s.Tableau[m.FromCol]
		if len(pile) >= 2 && !pile[len(pile)-2].FaceUp {
			return Move{}, false
		}
		return Move{
			Kind:  FoundationToTableau,
			Suit:  m.Suit,
			ToCol: m.FromCol,
			Card:  m.Card,
		}, true

	case FoundationToTableau:
		return Move{
			Kind:    TableauToFoundation,
			FromCol: m.ToCol,
			Suit:    m.Suit,
			Card:    m.Card,
		}, true

	default: // WasteToFoundation, WasteToTableau
		return Move{}, false
	}
}

// SameMove reports whether two moves describe the same action, for
// comparing a candidate move against a computed reverse.
func SameMove(a, b Move) bool {
	return a.Kind == b.Kind &&
		a.FromCol == b.FromCol &&
		a.FromIndex == b.FromIndex &&
		a.ToCol == b.ToCol &&
		a.Suit == b.Suit &&
		a.Card == b.Card &&
		a.NumCards == b.NumCards
}
