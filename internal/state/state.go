// Package state persists last-known process info per app across CLI
// invocations. The JSON document on disk is advisory: it records what the
// hub last did, not whether a process is actually alive right now.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/triad369/launchpad/internal/logger"
)

var stateLogs = logger.PackageLogger("state", "💾 STATE")

// RuntimeRecord is one app's last-known process state. Records are
// overwritten on launch and flipped to running=false on stop; they are
// never deleted, so the history of the last run persists.
type RuntimeRecord struct {
	PID       int       `json:"pid"`
	Port      int       `json:"port"`
	Running   bool      `json:"running"`
	LogPath   string    `json:"log_path,omitempty"`
	WorkDir   string    `json:"work_dir,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
	StoppedAt time.Time `json:"stopped_at,omitempty"`
}

type document struct {
	Apps map[string]RuntimeRecord `json:"apps"`
}

// Store reads and writes the runtime state document at an explicit path.
// Every command constructs its own Store and reloads the file fresh;
// nothing is cached across invocations.
type Store struct {
	Path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the app-name → record mapping. A missing or unparseable
// file is "no known state": an empty mapping, never an error.
func (s *Store) Load() map[string]RuntimeRecord {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return map[string]RuntimeRecord{}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		stateLogs.Warn("Runtime state %s is corrupt, treating as empty: %v", s.Path, err)
		return map[string]RuntimeRecord{}
	}
	if doc.Apps == nil {
		return map[string]RuntimeRecord{}
	}
	return doc.Apps
}

// Save writes the whole mapping back to disk, creating parent directories
// as needed.
func (s *Store) Save(apps map[string]RuntimeRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(document{Apps: apps}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode runtime state: %w", err)
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write runtime state: %w", err)
	}
	return nil
}

// Update performs a read-modify-write of a single app's record. The whole
// document is rewritten; there is no partial update or locking, which is
// accepted for a single-operator local tool.
func (s *Store) Update(name string, fn func(RuntimeRecord) RuntimeRecord) error {
	apps := s.Load()
	apps[name] = fn(apps[name])
	return s.Save(apps)
}
