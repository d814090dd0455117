package deck

import "testing"

func TestNewProducesFullDeck(t *testing.T) {
	cards := New()
	if len(cards) != 52 {
		t.Fatalf("len(New()) = %d, want 52", len(cards))
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card: %s", c.Label())
		}
		seen[c] = true
		if c.FaceUp {
			t.Errorf("card %s should start face-down", c.Label())
		}
	}
	if len(seen) != 52 {
		t.Errorf("unique cards = %d, want 52", len(seen))
	}
}

func TestShuffledSameSeedSameDeal(t *testing.T) {
	a := Shuffled(42)
	b := Shuffled(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs between identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestShuffledDifferentSeedsDiffer(t *testing.T) {
	a := Shuffled(1)
	b := Shuffled(2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical deals")
	}
}

func TestShuffledIsAPermutation(t *testing.T) {
	shuffled := Shuffled(7)
	seen := make(map[Card]bool)
	for _, c := range shuffled {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("shuffled deck has %d unique cards, want 52", len(seen))
	}
}

func TestCardColor(t *testing.T) {
	cases := []struct {
		suit Suit
		red  bool
	}{
		{Hearts, true},
		{Diamonds, true},
		{Clubs, false},
		{Spades, false},
	}
	for _, c := range cases {
		card := Card{Rank: Ace, Suit: c.suit}
		if card.IsRed() != c.red {
			t.Errorf("%v.IsRed() = %v, want %v", c.suit, card.IsRed(), c.red)
		}
	}
}

func TestRankString(t *testing.T) {
	cases := map[Rank]string{Ace: "A", King: "K", Queen: "Q", Jack: "J", Ten: "10", Rank(5): "5"}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("Rank(%d).String() = %q, want %q", r, got, want)
		}
	}
}
