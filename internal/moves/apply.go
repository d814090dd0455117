package moves

import (
	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
)

// Apply mutates s according to m: first it performs m.StockTurns
// three-card draws (redealing whenever the stock runs out mid-sequence),
// then it plays the move itself. Any card that leaves the stock or
// waste becomes face-up; a tableau source column that exposes a
// face-down top is auto-flipped.
func Apply(s *gamestate.State, m Move) {
	for i := 0; i < m.StockTurns; i++ {
		drawThree(s)
	}

	switch m.Kind {
	case TableauToFoundation:
		pile := s.Tableau[m.FromCol]
		card := pile[len(pile)-1]
		s.Tableau[m.FromCol] = pile[:len(pile)-1]
		s.Foundations[card.Suit] = append(s.Foundations[card.Suit], card)
		autoFlip(s, m.FromCol)

	case TableauToTableau:
		pile := s.Tableau[m.FromCol]
		moving := append([]deck.Card(nil), pile[m.FromIndex:]...)
		s.Tableau[m.FromCol] = pile[:m.FromIndex]
		s.Tableau[m.ToCol] = append(s.Tableau[m.ToCol], moving...)
		autoFlip(s, m.FromCol)

	case WasteToFoundation:
		card := s.Waste[len(s.Waste)-1]
		s.Waste = s.Waste[:len(s.Waste)-1]
		s.Foundations[card.Suit] = append(s.Foundations[card.Suit], card)

	case WasteToTableau:
		card := s.Waste[len(s.Waste)-1]
		s.Waste = s.Waste[:len(s.Waste)-1]
		s.Tableau[m.ToCol] = append(s.Tableau[m.ToCol], card)

	case FoundationToTableau:
		pile := s.Foundations[m.Suit]
		card := pile[len(pile)-1]
		s.Foundations[m.Suit] = pile[:len(pile)-1]
		s.Tableau[m.ToCol] = append(s.Tableau[m.ToCol], card)
	}
}

// drawThree pops up to three cards from the stock onto the waste,
// redealing (reversing the waste into the stock, face-down) if the
// stock is already empty.
func drawThree(s *gamestate.State) {
	if len(s.Stock) == 0 {
		if len(s.Waste) == 0 {
			return
		}
		s.Stock = reverseFaceDown(s.Waste)
		s.Waste = nil
		return
	}
	draw := 3
	if draw > len(s.Stock) {
		draw = len(s.Stock)
	}
	for i := 0; i < draw; i++ {
		c := s.Stock[len(s.Stock)-1]
		s.Stock = s.Stock[:len(s.Stock)-1]
		c.FaceUp = true
		s.Waste = append(s.Waste, c)
	}
}

func autoFlip(s *gamestate.State, col int) {
	pile := s.Tableau[col]
	if len(pile) > 0 && !pile[len(pile)-1].FaceUp {
		s.Tableau[col][len(pile)-1].FaceUp = true
	}
}
