// Package gamestate holds the compact Thoughtful Solitaire board: the
// tableau, the four foundations, and the stock/waste pair, plus the
// operations the search engine needs (cloning, canonical hashing, the
// win predicate, and K+ talon simulation).
package gamestate

import (
	"hash/fnv"

	"github.com/herbhall/solitaire-solver/internal/deck"
)

// State is the complete board for one game of Thoughtful Solitaire.
// Columns and piles are ordered bottom-to-top; a pile's "top" is its
// last element.
type State struct {
	Tableau     [7][]deck.Card
	Foundations [4][]deck.Card
	Stock       []deck.Card
	Waste       []deck.Card
}

// Deal builds the initial layout for seed: a 52-card deck is shuffled
// deterministically by seed (deck.Shuffled), dealt into seven tableau
// columns of sizes 1..7 with only the topmost card of each column
// face-up, and the remaining 24 cards become the stock in shuffle
// order.
func Deal(seed int64) *State {
	cards := deck.Shuffled(seed)
	s := &State{}

	pos := 0
	for col := 0; col < 7; col++ {
		s.Tableau[col] = make([]deck.Card, col+1)
		copy(s.Tableau[col], cards[pos:pos+col+1])
		pos += col + 1
		for i := range s.Tableau[col] {
			s.Tableau[col][i].FaceUp = i == col
		}
	}

	s.Stock = make([]deck.Card, 52-pos)
	copy(s.Stock, cards[pos:])
	return s
}

// Clone returns a deep copy. The recursion that creates a clone owns it
// exclusively; the original is never mutated by further play on the
// clone.
func (s *State) Clone() *State {
	c := &State{}
	for i := range s.Tableau {
		c.Tableau[i] = append([]deck.Card(nil), s.Tableau[i]...)
	}
	for i := range s.Foundations {
		c.Foundations[i] = append([]deck.Card(nil), s.Foundations[i]...)
	}
	c.Stock = append([]deck.Card(nil), s.Stock...)
	c.Waste = append([]deck.Card(nil), s.Waste...)
	return c
}

// IsWin reports whether all 52 cards have reached the foundations.
func (s *State) IsWin() bool {
	return s.FoundationCount() == 52
}

// FoundationCount returns the total number of cards across all four
// foundation piles.
func (s *State) FoundationCount() int {
	n := 0
	for i := range s.Foundations {
		n += len(s.Foundations[i])
	}
	return n
}

// FoundationLen returns the length of the foundation pile for suit.
func (s *State) FoundationLen(suit deck.Suit) int {
	return len(s.Foundations[suit])
}

// Hash is the canonical state fingerprint: it is equal for two states
// with the same tableau content (including face-up bits), the same
// foundation lengths, and the same ordered stock/waste, and differs
// whenever any of those differ. Foundation suit identity is implicit
// in pile index, so only pile length is hashed (spec.md §3).
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	var buf [3]byte
	writeCard := func(c deck.Card) {
		buf[0] = byte(c.Rank)
		buf[1] = byte(c.Suit)
		if c.FaceUp {
			buf[2] = 1
		} else {
			buf[2] = 0
		}
		h.Write(buf[:])
	}
	sep := []byte{0xff}

	for col := 0; col < 7; col++ {
		for _, c := range s.Tableau[col] {
			writeCard(c)
		}
		h.Write(sep)
	}
	for suit := 0; suit < 4; suit++ {
		h.Write([]byte{byte(len(s.Foundations[suit]))})
	}
	for _, c := range s.Stock {
		writeCard(c)
	}
	h.Write(sep)
	for _, c := range s.Waste {
		writeCard(c)
	}
	return h.Sum64()
}

// CardID is the (rank, suit) identity of a card, independent of
// face-up state.
type CardID struct {
	Rank deck.Rank
	Suit deck.Suit
}

// talonHash fingerprints a (stock, waste) pair for cycle detection
// during ReachableTalonCards simulation.
func talonHash(stock, waste []deck.Card) uint64 {
	h := fnv.New64a()
	for _, c := range stock {
		h.Write([]byte{byte(c.Rank), byte(c.Suit)})
	}
	h.Write([]byte{0xff})
	for _, c := range waste {
		h.Write([]byte{byte(c.Rank), byte(c.Suit)})
	}
	return h.Sum64()
}

// ReachableTalonCards simulates up to 60 three-card draws (redealing
// when the stock empties) and returns the set of card identities that
// would appear on the waste top at some point. The simulation stops
// early if a (stock, waste) pair repeats, since further cycles would
// only replay history. Feeds the H2 evaluator's talon-availability
// feature (F3) and bounds the K+ macro.
func (s *State) ReachableTalonCards() map[CardID]bool {
	reachable := make(map[CardID]bool)
	stock := append([]deck.Card(nil), s.Stock...)
	waste := append([]deck.Card(nil), s.Waste...)

	seen := make(map[uint64]bool)
	for i := 0; i < 60; i++ {
		key := talonHash(stock, waste)
		if seen[key] {
			break
		}
		seen[key] = true

		if len(stock) == 0 {
			if len(waste) == 0 {
				break
			}
			stock = reversed(waste)
			waste = nil
			continue
		}

		draw := 3
		if draw > len(stock) {
			draw = len(stock)
		}
		for k := 0; k < draw; k++ {
			c := stock[len(stock)-1]
			stock = stock[:len(stock)-1]
			waste = append(waste, c)
		}
		if len(waste) > 0 {
			top := waste[len(waste)-1]
			reachable[CardID{Rank: top.Rank, Suit: top.Suit}] = true
		}
	}
	return reachable
}

func reversed(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	for i, c := range cards {
		c.FaceUp = false
		out[len(cards)-1-i] = c
	}
	return out
}

// WasteTop returns the top waste card and true, or a zero Card and
// false if the waste is empty.
func (s *State) WasteTop() (deck.Card, bool) {
	if len(s.Waste) == 0 {
		return deck.Card{}, false
	}
	return s.Waste[len(s.Waste)-1], true
}

// FoundationTop returns the top card and true for the given foundation
// pile, or a zero Card and false if empty.
func (s *State) FoundationTop(suit deck.Suit) (deck.Card, bool) {
	pile := s.Foundations[suit]
	if len(pile) == 0 {
		return deck.Card{}, false
	}
	return pile[len(pile)-1], true
}

// FaceUpIndex returns the index of the first face-up card in a tableau
// column, or -1 if the column has no face-up cards.
func (s *State) FaceUpIndex(col int) int {
	for i, c := range s.Tableau[col] {
		if c.FaceUp {
			return i
		}
	}
	return -1
}

// FirstEmptyColumn returns the index of the first empty tableau column,
// or -1 if none is empty. Only the first empty column is ever offered
// as a King-move destination (spec.md §4.C empty-column economy): all
// empties are interchangeable, so proposing more than one is pure
// search noise.
func (s *State) FirstEmptyColumn() int {
	for i := 0; i < 7; i++ {
		if len(s.Tableau[i]) == 0 {
			return i
		}
	}
	return -1
}
