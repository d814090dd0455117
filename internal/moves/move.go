// Package moves generates and applies legal moves over a gamestate.State,
// including the K+ macro that rolls stock cycling into a single tagged
// move.
package moves

import (
	"github.com/herbhall/solitaire-solver/internal/deck"
)

// Kind tags the five move variants spec.md §4.C defines. Each kind uses
// only the Move fields relevant to it, per spec.md's Design Note
// preferring a tagged variant over a record with nullable fields.
type Kind int

const (
	TableauToFoundation Kind = iota
	TableauToTableau
	WasteToFoundation
	WasteToTableau
	FoundationToTableau
)

func (k Kind) String() string {
	switch k {
	case TableauToFoundation:
		return "T->F"
	case TableauToTableau:
		return "T->T"
	case WasteToFoundation:
		return "W->F"
	case WasteToTableau:
		return "W->T"
	case FoundationToTableau:
		return "F->T"
	}
	return "?"
}

// Priority values, lower sorts first. See spec.md §4.C's priority table.
const (
	PriorityFoundationReveal    = 1 // tableau->foundation that reveals a face-down card
	PriorityFoundation          = 2 // any move into a foundation
	PriorityTableauReveal       = 3 // tableau->tableau that reveals a face-down card
	PriorityWasteToTableau      = 4
	PriorityFoundationToTableau = 5
	PriorityTableauNoReveal     = 6
)

// Move is a single legal action over a gamestate.State.
type Move struct {
	Kind Kind

	FromCol   int       // TableauToTableau, TableauToFoundation source column
	FromIndex int       // TableauToTableau: index of first moving card in the column
	ToCol     int       // TableauToTableau, WasteToTableau, FoundationToTableau destination column
	Suit      deck.Suit // TableauToFoundation, WasteToFoundation, FoundationToTableau foundation

	Card       deck.Card // identity of the card being moved
	NumCards   int       // TableauToTableau: number of cards in the moved build sequence
	StockTurns int       // waste-origin moves: accumulated 3-card draws before this move

	Priority int
}
