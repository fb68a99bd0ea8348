// Package state records the outcome of the most recent wizard run as JSON
// under the config dir. This is CLI-side bookkeeping only; the flow core
// itself persists nothing.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type State struct {
	CompletedRuns int       `json:"completed_runs"`
	LastRun       time.Time `json:"last_run"`
	LastOutcome   string    `json:"last_outcome"` // "completed" or "dismissed"
	Approved      []string  `json:"approved"`
	Denied        []string  `json:"denied"`
	HatchVersion  string    `json:"hatch_version"`
}

func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func Save(path string, s *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RecordRun replaces the per-run fields with a fresh outcome.
func (s *State) RecordRun(outcome string, approved, denied []string) {
	s.LastRun = time.Now()
	s.LastOutcome = outcome
	s.Approved = append([]string(nil), approved...)
	s.Denied = append([]string(nil), denied...)
	if outcome == "completed" {
		s.CompletedRuns++
	}
}
