package render

import (
	"strings"
	"testing"

	"github.com/herbhall/solitaire-solver/internal/results"
)

func TestAggregateSummaryOmitsLossClauseWhenNoLosses(t *testing.T) {
	agg := results.Aggregate{Total: 3, Wins: 3, WinRate: 1, AvgSeconds: 1.5, AvgWinTime: 1.5}
	out := AggregateSummary(agg)
	if strings.Contains(out, "losses avg") {
		t.Errorf("AggregateSummary() = %q, should omit the losses clause with zero losses", out)
	}
	if !strings.Contains(out, "wins avg") {
		t.Errorf("AggregateSummary() = %q, should still report the wins clause", out)
	}
}

func TestAggregateSummaryOmitsWinClauseWhenNoWins(t *testing.T) {
	agg := results.Aggregate{Total: 2, Wins: 0, WinRate: 0, AvgSeconds: 4.0, AvgLossTime: 4.0}
	out := AggregateSummary(agg)
	if strings.Contains(out, "wins avg") {
		t.Errorf("AggregateSummary() = %q, should omit the wins clause with zero wins", out)
	}
	if !strings.Contains(out, "losses avg") {
		t.Errorf("AggregateSummary() = %q, should still report the losses clause", out)
	}
}

func TestAggregateSummaryOmitsParensWhenStoreEmpty(t *testing.T) {
	out := AggregateSummary(results.Aggregate{})
	if strings.Contains(out, "(") {
		t.Errorf("AggregateSummary() = %q, should have no parenthetical split with zero entries", out)
	}
}

func TestAggregateSummaryIncludesBothClausesWhenMixed(t *testing.T) {
	agg := results.Aggregate{Total: 4, Wins: 2, WinRate: 0.5, AvgSeconds: 2.0, AvgWinTime: 1.0, AvgLossTime: 3.0}
	out := AggregateSummary(agg)
	if !strings.Contains(out, "wins avg 1.00s") || !strings.Contains(out, "losses avg 3.00s") {
		t.Errorf("AggregateSummary() = %q, want both clauses present", out)
	}
}
