// Package render draws a Thoughtful Solitaire board, a solution move
// list, and benchmark result lines, in the lipgloss style the teacher
// uses for its own card-game screens. Board display is illustrative
// only (spec.md §6); nothing here affects solver behavior.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/herbhall/solitaire-solver/internal/deck"
	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/moves"
	"github.com/herbhall/solitaire-solver/internal/results"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DCFFDC"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	faceDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func cardStyle(c deck.Card) lipgloss.Style {
	if c.IsRed() {
		return redCardStyle
	}
	return blackCardStyle
}

func cardText(c deck.Card) string {
	return fmt.Sprintf("%-2s%s", c.Rank.String(), c.Suit.Symbol())
}

// Board renders the full layout: stock/waste/foundations on top,
// tableau columns below.
func Board(s *gamestate.State) string {
	var b strings.Builder

	stock := emptyStyle.Render("[   ]")
	if len(s.Stock) > 0 {
		stock = faceDownStyle.Render(fmt.Sprintf("[###] %d", len(s.Stock)))
	}
	waste := emptyStyle.Render("[   ]")
	if top, ok := s.WasteTop(); ok {
		waste = cardStyle(top).Render("[" + cardText(top) + "]")
	}

	var foundations []string
	for suit := deck.Suit(0); suit < 4; suit++ {
		if top, ok := s.FoundationTop(suit); ok {
			foundations = append(foundations, cardStyle(top).Render("["+cardText(top)+"]"))
		} else {
			foundations = append(foundations, emptyStyle.Render("[   ]"))
		}
	}

	b.WriteString(titleStyle.Render("THOUGHTFUL SOLITAIRE"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Stock: %s   Waste: %s   Foundations: %s\n\n", stock, waste, strings.Join(foundations, " "))

	for col := 0; col < 7; col++ {
		fmt.Fprintf(&b, "%d: ", col+1)
		if len(s.Tableau[col]) == 0 {
			b.WriteString(emptyStyle.Render("[   ]"))
		}
		for _, c := range s.Tableau[col] {
			if c.FaceUp {
				b.WriteString(cardStyle(c).Render("[" + cardText(c) + "]"))
			} else {
				b.WriteString(faceDownStyle.Render("[###]"))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MoveList renders a numbered solution move list.
func MoveList(solution []moves.Move) string {
	var b strings.Builder
	for i, m := range solution {
		fmt.Fprintf(&b, "%3d. %s %s\n", i+1, m.Kind, cardStyle(m.Card).Render(cardText(m.Card)))
	}
	return b.String()
}

// BenchmarkLine renders one seed's outcome in spec.md §6's format:
// "Seed <s>: WIN|LOSS <t>s fc=<k> nodes=<n>".
func BenchmarkLine(seed int, o results.Outcome) string {
	label := lossStyle.Render("LOSS")
	if o.Win {
		label = winStyle.Render("WIN")
	}
	return fmt.Sprintf("Seed %d: %s %.2fs fc=%d nodes=%d", seed, label, o.Seconds, o.FoundationCount, o.Nodes)
}

// AggregateSummary renders the trailing win-rate and average-timing
// summary line for a benchmark run. The wins/losses clauses are each
// omitted when that bucket is empty, matching original_source/bench200.py's
// `if win_times:` / `if loss_times:` guards rather than printing a
// misleading 0.00s average for a bucket with no entries.
func AggregateSummary(agg results.Aggregate) string {
	line := fmt.Sprintf("%d seeds, win rate %.1f%%, avg %.2fs", agg.Total, agg.WinRate*100, agg.AvgSeconds)

	var splits []string
	if agg.Wins > 0 {
		splits = append(splits, fmt.Sprintf("wins avg %.2fs", agg.AvgWinTime))
	}
	if agg.Total-agg.Wins > 0 {
		splits = append(splits, fmt.Sprintf("losses avg %.2fs", agg.AvgLossTime))
	}
	if len(splits) == 0 {
		return line
	}
	return line + " (" + strings.Join(splits, ", ") + ")"
}

// Footer renders the dim hint line used across screens.
func Footer(text string) string {
	return footerStyle.Render(text)
}
