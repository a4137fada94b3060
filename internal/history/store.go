// Package history persists the agent's conversation log as a JSON file.
//
// The store is bounded: appends beyond the configured maximum drop the oldest
// entries first. It is single-process only; concurrent writers racing on the
// same file get last-writer-wins.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mvp-joe/context7-agent/internal/config"
)

// Entry is a single conversation turn.
type Entry struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is a bounded, file-backed conversation log.
type Store struct {
	path       string
	maxEntries int
	entries    []Entry
}

// NewStore creates a store bound to the history path and retention limit from
// settings. Call Load before reading or appending.
func NewStore(settings *config.Settings) *Store {
	return &Store{
		path:       settings.HistoryPath,
		maxEntries: settings.MaxHistory,
	}
}

// Load reads the history file. A missing file yields an empty store, not an
// error. Entries beyond the retention limit are pruned on load so a lowered
// max_history takes effect immediately.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = nil
			return nil
		}
		return fmt.Errorf("failed to read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse history: %w", err)
	}

	s.entries = entries
	s.prune()
	return nil
}

// Append adds a conversation turn and prunes the oldest entries beyond the
// retention limit. The entry is not persisted until Save is called.
func (s *Store) Append(role, content string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	s.entries = append(s.entries, entry)
	s.prune()
	return entry
}

// Entries returns a copy of the retained conversation turns, oldest first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Save writes the retained entries to the history file, pretty-printed.
func (s *Store) Save() error {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	return nil
}

// Clear drops all entries and persists the empty log.
func (s *Store) Clear() error {
	s.entries = nil
	return s.Save()
}

// prune drops the oldest entries until the store fits the retention limit.
// A non-positive limit disables pruning.
func (s *Store) prune() {
	if s.maxEntries <= 0 || len(s.entries) <= s.maxEntries {
		return
	}
	s.entries = s.entries[len(s.entries)-s.maxEntries:]
}
