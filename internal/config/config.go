// Package config persists the solver's tunable parameters (rollout
// depth multipliers, transposition cache size, time budget) to disk,
// following the same load/normalize/save shape the teacher's settings
// package uses for its own preferences file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config stores the solver parameters of spec.md §6 ("Solver
// invocation"): two rollout depth multipliers, a wall-clock time
// budget in seconds, and the per-heuristic transposition cache bound.
type Config struct {
	N0                int     `json:"n0"`
	N1                int     `json:"n1"`
	TimeBudgetSeconds float64 `json:"time_budget_seconds"`
	CacheLimit        int     `json:"cache_limit"`
}

// DefaultConfig matches spec.md §4.G's stated defaults (n0=1, n1=1)
// plus a 60-second budget and the 5000-entry cache bound of §4.G step 6.
func DefaultConfig() Config {
	return Config{
		N0:                1,
		N1:                1,
		TimeBudgetSeconds: 60,
		CacheLimit:        5000,
	}
}

// Store manages Config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads the config from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from a specific path. If path is empty, it
// uses ~/.solitaire-solver/config.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".solitaire-solver", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize clamps out-of-range values loaded from disk back to
// sensible defaults rather than letting a hand-edited config file
// produce a degenerate solver run.
func (s *Store) normalize() {
	if s.Config.N0 < 0 {
		s.Config.N0 = 1
	}
	if s.Config.N1 < 0 {
		s.Config.N1 = 1
	}
	if s.Config.TimeBudgetSeconds <= 0 {
		s.Config.TimeBudgetSeconds = 60
	}
	if s.Config.CacheLimit <= 0 {
		s.Config.CacheLimit = 5000
	}
}
