// Package results persists per-seed benchmark outcomes to disk and
// computes the aggregate statistics the benchmark driver prints,
// following the same Store/Load/Save shape the teacher's scores
// package uses for high scores.
package results

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Outcome records one seed's benchmark run: whether it won, how long
// it took, the foundation count reached, and the node counter — the
// fields spec.md §6's benchmark line prints.
type Outcome struct {
	Win             bool    `json:"win"`
	Seconds         float64 `json:"seconds"`
	FoundationCount int     `json:"foundation_count"`
	Nodes           int     `json:"nodes"`
}

// Store manages benchmark outcome persistence, keyed by seed.
type Store struct {
	path    string
	Entries map[int]Outcome
}

// Load reads results from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads results from a specific path. If path is empty, it
// uses ~/.solitaire-solver/results.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Entries: map[int]Outcome{}}, err
		}
		path = filepath.Join(home, ".solitaire-solver", "results.json")
	}

	s := &Store{path: path, Entries: map[int]Outcome{}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Entries); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the results to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record stores the outcome for a seed, overwriting any prior run.
func (s *Store) Record(seed int, o Outcome) {
	if s.Entries == nil {
		s.Entries = map[int]Outcome{}
	}
	s.Entries[seed] = o
}

// Get returns the outcome for a seed and whether it exists.
func (s *Store) Get(seed int) (Outcome, bool) {
	o, ok := s.Entries[seed]
	return o, ok
}

// Aggregate summarizes every recorded outcome: the benchmark driver's
// trailing "win rate and average timings" line (spec.md §6).
type Aggregate struct {
	Total       int
	Wins        int
	WinRate     float64
	AvgSeconds  float64
	AvgWinTime  float64
	AvgLossTime float64
}

// Summarize computes the aggregate over every recorded outcome.
func (s *Store) Summarize() Aggregate {
	var agg Aggregate
	var totalSeconds, winSeconds, lossSeconds float64
	var lossCount int

	for _, o := range s.Entries {
		agg.Total++
		totalSeconds += o.Seconds
		if o.Win {
			agg.Wins++
			winSeconds += o.Seconds
		} else {
			lossCount++
			lossSeconds += o.Seconds
		}
	}

	if agg.Total > 0 {
		agg.WinRate = float64(agg.Wins) / float64(agg.Total)
		agg.AvgSeconds = totalSeconds / float64(agg.Total)
	}
	if agg.Wins > 0 {
		agg.AvgWinTime = winSeconds / float64(agg.Wins)
	}
	if lossCount > 0 {
		agg.AvgLossTime = lossSeconds / float64(lossCount)
	}
	return agg
}
