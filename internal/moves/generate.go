package moves

import (
	"math/rand/v2"

	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/prune"
)

// Generate produces the ordered list of legal moves from s, including
// the K+ macro for waste-origin moves. Ties within a priority band are
// broken by a permutation seeded from s's own hash (spec.md's Design
// Note: reproducibility wants the tie-break PRNG derived from state
// content, not the clock), then a stable sort settles the final order.
func Generate(s *gamestate.State) []Move {
	var out []Move

	out = append(out, tableauToFoundationMoves(s)...)
	out = append(out, tableauToTableauMoves(s)...)
	out = append(out, kPlusWasteMoves(s)...)
	out = append(out, foundationToTableauMoves(s)...)

	r := rand.New(rand.NewPCG(s.Hash(), 0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	stableSortByPriority(out)
	return out
}

// stableSortByPriority performs an insertion sort, which is naturally
// stable and cheap for the small move lists this generator produces.
func stableSortByPriority(m []Move) {
	for i := 1; i < len(m); i++ {
		v := m[i]
		j := i - 1
		for j >= 0 && m[j].Priority > v.Priority {
			m[j+1] = m[j]
			j--
		}
		m[j+1] = v
	}
}

func tableauToFoundationMoves(s *gamestate.State) []Move {
	var out []Move
	for col := 0; col < 7; col++ {
		pile := s.Tableau[col]
		if len(pile) == 0 {
			continue
		}
		card := pile[len(pile)-1]
		if !card.FaceUp || !canPlaceOnFoundation(s, card) {
			continue
		}
		m := Move{
			Kind:    TableauToFoundation,
			FromCol: col,
			Suit:    card.Suit,
			Card:    card,
		}
		if revealsFaceDown(pile) {
			m.Priority = PriorityFoundationReveal
		} else {
			m.Priority = PriorityFoundation
		}
		out = append(out, m)
	}
	return out
}

// revealsFaceDown reports whether removing the top card of pile would
// expose a face-down card beneath it.
func revealsFaceDown(pile []deck.Card) bool {
	if len(pile) < 2 {
		return false
	}
	return !pile[len(pile)-2].FaceUp
}

func tableauToTableauMoves(s *gamestate.State) []Move {
	var out []Move
	for from := 0; from < 7; from++ {
		pile := s.Tableau[from]
		faceUpStart := s.FaceUpIndex(from)
		if faceUpStart < 0 {
			continue
		}
		for idx := faceUpStart; idx < len(pile); idx++ {
			card := pile[idx]
			for to := 0; to < 7; to++ {
				if to == from {
					continue
				}
				targetEmpty := len(s.Tableau[to]) == 0
				if targetEmpty {
					if card.Rank != deck.King {
						continue
					}
					if idx == 0 && len(pile) == 1 {
						// The King is the column's sole card; relocating
						// it to another empty column is a no-op.
						continue
					}
					if to != s.FirstEmptyColumn() {
						// Empty columns are symmetric; only the first
						// is ever offered as a destination.
						continue
					}
				} else if !canPlaceOnTableau(s, card, to) {
					continue
				}
				m := Move{
					Kind:      TableauToTableau,
					FromCol:   from,
					FromIndex: idx,
					ToCol:     to,
					Card:      card,
					NumCards:  len(pile) - idx,
				}
				if idx == faceUpStart && faceUpStart > 0 {
					m.Priority = PriorityTableauReveal
				} else {
					m.Priority = PriorityTableauNoReveal
				}
				out = append(out, m)
			}
		}
	}
	return out
}

func foundationToTableauMoves(s *gamestate.State) []Move {
	var out []Move
	for suit := deck.Suit(0); suit < 4; suit++ {
		card, ok := s.FoundationTop(suit)
		if !ok || !prune.CanFoundationReturn(s, card.Rank) {
			continue
		}
		for to := 0; to < 7; to++ {
			targetEmpty := len(s.Tableau[to]) == 0
			if targetEmpty {
				if card.Rank != deck.King || to != s.FirstEmptyColumn() {
					continue
				}
			} else if !canPlaceOnTableau(s, card, to) {
				continue
			}
			out = append(out, Move{
				Kind:     FoundationToTableau,
				Suit:     suit,
				ToCol:    to,
				Card:     card,
				Priority: PriorityFoundationToTableau,
			})
		}
	}
	return out
}

// kPlusWasteMoves implements the K+ macro: it simulates up to 60
// three-card draws (redealing on an empty stock) and, whenever the
// waste is non-empty, generates the waste-origin moves that would be
// legal at that point, tagged with the accumulated stock-turn count.
// The waste as it stands, before any draw, is included with a count
// of zero.
// Deduplication keeps at most one move per (kind, card identity,
// destination); the simulation halts early on (stock, waste)
// repetition.
func kPlusWasteMoves(s *gamestate.State) []Move {
	type dedupKey struct {
		kind Kind
		rank deck.Rank
		suit deck.Suit
		to   int
	}
	seen := make(map[dedupKey]bool)
	var out []Move

	stock := append([]deck.Card(nil), s.Stock...)
	waste := append([]deck.Card(nil), s.Waste...)
	seenTalons := make(map[uint64]bool)

	for turn := 0; turn <= 60; turn++ {
		key := talonFingerprint(stock, waste)
		if seenTalons[key] {
			break
		}
		// Turn 0 draws nothing, so its configuration is recorded on
		// turn 1, the first turn that draws from it.
		if turn > 0 {
			seenTalons[key] = true
		}

		if turn > 0 && len(stock) == 0 {
			if len(waste) == 0 {
				break
			}
			stock = reverseFaceDown(waste)
			waste = nil
			continue
		}

		draw := 3
		if turn == 0 {
			draw = 0
		} else if draw > len(stock) {
			draw = len(stock)
		}
		for k := 0; k < draw; k++ {
			c := stock[len(stock)-1]
			stock = stock[:len(stock)-1]
			c.FaceUp = true
			waste = append(waste, c)
		}
		turns := turn

		if len(waste) == 0 {
			continue
		}
		card := waste[len(waste)-1]

		if canPlaceOnFoundation(s, card) {
			dk := dedupKey{kind: WasteToFoundation, rank: card.Rank, suit: card.Suit}
			if !seen[dk] {
				seen[dk] = true
				out = append(out, Move{
					Kind:       WasteToFoundation,
					Suit:       card.Suit,
					Card:       card,
					StockTurns: turns,
					Priority:   PriorityFoundation,
				})
			}
		}

		for to := 0; to < 7; to++ {
			targetEmpty := len(s.Tableau[to]) == 0
			if targetEmpty {
				if card.Rank != deck.King || to != s.FirstEmptyColumn() {
					continue
				}
			} else if !canPlaceOnTableau(s, card, to) {
				continue
			}
			dk := dedupKey{kind: WasteToTableau, rank: card.Rank, suit: card.Suit, to: to}
			if seen[dk] {
				continue
			}
			seen[dk] = true
			out = append(out, Move{
				Kind:       WasteToTableau,
				ToCol:      to,
				Card:       card,
				StockTurns: turns,
				Priority:   PriorityWasteToTableau,
			})
		}
	}
	return out
}

func reverseFaceDown(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	for i, c := range cards {
		c.FaceUp = false
		out[len(cards)-1-i] = c
	}
	return out
}

func talonFingerprint(stock, waste []deck.Card) uint64 {
	var x uint64 = 14695981039346656037
	const prime = 1099511628211
	for _, c := range stock {
		x ^= uint64(c.Rank)<<8 | uint64(c.Suit)
		x *= prime
	}
	x ^= 0xff
	x *= prime
	for _, c := range waste {
		x ^= uint64(c.Rank)<<8 | uint64(c.Suit)
		x *= prime
	}
	return x
}
