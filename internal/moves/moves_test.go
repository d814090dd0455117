package moves

import (
	"testing"

	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
)

// acesOnTop builds a state with all four Aces face-up on distinct
// tableau tops, empty foundations and waste, and a full stock
// (spec.md §8 end-to-end scenario 1).
func acesOnTop() *gamestate.State {
	s := &gamestate.State{}
	suits := []deck.Suit{deck.Hearts, deck.Diamonds, deck.Clubs, deck.Spades}
	for col, suit := range suits {
		s.Tableau[col] = []deck.Card{{Rank: deck.Ace, Suit: suit, FaceUp: true}}
	}
	for col := 4; col < 7; col++ {
		s.Tableau[col] = nil
	}
	for r := deck.Two; r <= deck.King; r++ {
		for _, suit := range suits {
			s.Stock = append(s.Stock, deck.Card{Rank: r, Suit: suit})
		}
	}
	return s
}

func TestGenerateOffersFoundationMovesForExposedAces(t *testing.T) {
	s := acesOnTop()
	list := Generate(s)

	found := make(map[deck.Suit]bool)
	for _, m := range list {
		if m.Kind == TableauToFoundation && m.Card.Rank == deck.Ace {
			found[m.Suit] = true
			if m.Priority != PriorityFoundation {
				t.Errorf("ace move priority = %d, want %d", m.Priority, PriorityFoundation)
			}
		}
	}
	for _, suit := range []deck.Suit{deck.Hearts, deck.Diamonds, deck.Clubs, deck.Spades} {
		if !found[suit] {
			t.Errorf("no Tableau->Foundation move offered for suit %v", suit)
		}
	}
}

func TestGenerateNoDuplicateMoves(t *testing.T) {
	s := gamestate.Deal(11)
	list := Generate(s)
	seen := make(map[Move]bool)
	for _, m := range list {
		if seen[m] {
			t.Errorf("duplicate move generated: %+v", m)
		}
		seen[m] = true
	}
}

func TestGenerateKingIntoEmptyOnlyFirstEmptyColumn(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{
		{Rank: deck.Two, Suit: deck.Hearts, FaceUp: false},
		{Rank: deck.King, Suit: deck.Spades, FaceUp: true},
	}
	// Columns 3 and 5 empty; column 3 is the first empty column.
	for col := 1; col < 7; col++ {
		if col == 3 || col == 5 {
			continue
		}
		s.Tableau[col] = []deck.Card{{Rank: deck.Queen, Suit: deck.Hearts, FaceUp: true}}
	}

	list := Generate(s)
	sawCol3, sawCol5 := false, false
	for _, m := range list {
		if m.Kind != TableauToTableau || m.Card.Rank != deck.King {
			continue
		}
		switch m.ToCol {
		case 3:
			sawCol3 = true
		case 5:
			sawCol5 = true
		}
	}
	if !sawCol3 {
		t.Error("expected a King move into column 3 (first empty column)")
	}
	if sawCol5 {
		t.Error("King move into column 5 should not be proposed; it is not the first empty column")
	}
}

func TestGenerateSuppressesNoOpKingRelocation(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{{Rank: deck.King, Suit: deck.Spades, FaceUp: true}}
	s.Tableau[1] = nil

	list := Generate(s)
	for _, m := range list {
		if m.Kind == TableauToTableau && m.FromCol == 0 && m.Card.Rank == deck.King {
			t.Error("King already alone in an empty-otherwise column should not be offered a relocation move")
		}
	}
}

func TestGenerateOffersKingRelocationWhenBuildSequenceSitsAboveIt(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{
		{Rank: deck.King, Suit: deck.Spades, FaceUp: true},
		{Rank: deck.Queen, Suit: deck.Hearts, FaceUp: true},
	}
	s.Tableau[1] = nil

	list := Generate(s)
	found := false
	for _, m := range list {
		if m.Kind == TableauToTableau && m.FromCol == 0 && m.FromIndex == 0 && m.ToCol == 1 {
			found = true
		}
	}
	if !found {
		t.Error("King with a build sequence on top should still offer relocation to an empty column")
	}
}

func TestApplyTableauToFoundationAutoFlips(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{
		{Rank: deck.Two, Suit: deck.Hearts, FaceUp: false},
		{Rank: deck.Ace, Suit: deck.Hearts, FaceUp: true},
	}
	m := Move{Kind: TableauToFoundation, FromCol: 0, Suit: deck.Hearts, Card: s.Tableau[0][1]}
	Apply(s, m)

	if len(s.Tableau[0]) != 1 {
		t.Fatalf("column length = %d, want 1", len(s.Tableau[0]))
	}
	if !s.Tableau[0][0].FaceUp {
		t.Error("exposed card should be auto-flipped face-up")
	}
	if len(s.Foundations[deck.Hearts]) != 1 {
		t.Errorf("foundation length = %d, want 1", len(s.Foundations[deck.Hearts]))
	}
}

func TestApplyStockTurnsDrawsBeforeMove(t *testing.T) {
	s := &gamestate.State{}
	// Stock top (last index) pops first; placing Two at index 0 means
	// it pops last and lands on top of the waste.
	s.Stock = []deck.Card{{Rank: deck.Two, Suit: deck.Clubs}, {Rank: deck.Three, Suit: deck.Clubs}}

	m := Move{Kind: WasteToFoundation, StockTurns: 1, Suit: deck.Clubs, Card: deck.Card{Rank: deck.Two, Suit: deck.Clubs}}
	Apply(s, m)

	if len(s.Stock) != 0 {
		t.Errorf("stock length = %d, want 0", len(s.Stock))
	}
	if len(s.Waste) != 1 || s.Waste[0].Rank != deck.Three {
		t.Errorf("waste = %+v, want [Three of Clubs] remaining", s.Waste)
	}
	if s.FoundationCount() != 1 {
		t.Errorf("foundation count = %d, want 1", s.FoundationCount())
	}
}

func TestReverseTableauToFoundationBlockedByFaceDownBeneath(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{
		{Rank: deck.Two, Suit: deck.Hearts, FaceUp: false},
		{Rank: deck.Ace, Suit: deck.Hearts, FaceUp: true},
	}
	m := Move{Kind: TableauToFoundation, FromCol: 0, Suit: deck.Hearts, Card: s.Tableau[0][1]}
	if _, ok := Reverse(s, m); ok {
		t.Error("reverse should not exist when the exposed card would be face-down")
	}
}

func TestReverseRoundTrip(t *testing.T) {
	s := &gamestate.State{}
	s.Tableau[0] = []deck.Card{{Rank: deck.Ace, Suit: deck.Hearts, FaceUp: true}}
	s.Tableau[1] = nil

	before := s.Clone()
	m := Move{Kind: TableauToFoundation, FromCol: 0, Suit: deck.Hearts, Card: s.Tableau[0][0]}
	rev, ok := Reverse(s, m)
	if !ok {
		t.Fatal("expected a reverse for moving the only card off an empty-beneath column")
	}
	Apply(s, m)
	Apply(s, rev)

	if s.Hash() != before.Hash() {
		t.Error("applying a move then its reverse did not recover the original state")
	}
}

func TestReverseWasteOriginMovesAreIrreversible(t *testing.T) {
	s := &gamestate.State{}
	m := Move{Kind: WasteToFoundation, Suit: deck.Hearts, Card: deck.Card{Rank: deck.Ace, Suit: deck.Hearts}}
	if _, ok := Reverse(s, m); ok {
		t.Error("waste-origin moves must never report a reverse")
	}
}
