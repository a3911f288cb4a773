// Package history persists the last searched query to a small JSON file so
// the CLI can be re-run without arguments. Failures never propagate: a
// broken or unwritable file simply means no history. Disable with
// TENKI_NO_HISTORY=1.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const envDisable = "TENKI_NO_HISTORY"

type entry struct {
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searched_at"`
}

// Store reads and writes the last-search file.
type Store struct {
	path string
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "last_search.json")}
}

// DefaultDir returns the directory for the history file, preferring the
// user config directory and falling back to the temp directory.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "tenki")
	}
	return filepath.Join(os.TempDir(), "tenki")
}

// Last returns the most recently saved query, if any.
func (s *Store) Last() (string, bool) {
	if disabled() {
		return "", false
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false
	}
	if e.Query == "" {
		return "", false
	}
	return e.Query, true
}

// Save records query as the last search. Silently no-ops on error or when
// disabled.
func (s *Store) Save(query string) {
	if disabled() || query == "" {
		return
	}
	data, err := json.Marshal(entry{
		Query:      query,
		SearchedAt: time.Now(),
	})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}

	// Write temp then rename so a crash never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return
	}
	_ = os.Rename(tmp, s.path)
}

// Clear removes the history file.
func (s *Store) Clear() {
	_ = os.Remove(s.path)
}

func disabled() bool {
	return os.Getenv(envDisable) == "1"
}
