package deck

import "math/rand/v2"

// New builds the standard 52-card deck in the canonical order specified
// for seeded deals: suits Hearts, Diamonds, Clubs, Spades, ranks Ace
// through King within each suit. All cards start face-down.
func New() []Card {
	cards := make([]Card, 0, 52)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Shuffled returns a freshly built deck shuffled by a Fisher-Yates pass
// driven by a PCG source seeded from seed. The same seed always yields
// the same order within this implementation (spec.md §6: cross-run
// determinism is required, bit-for-bit parity with other
// implementations is not).
func Shuffled(seed int64) []Card {
	cards := New()
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
