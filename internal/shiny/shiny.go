// Package shiny persists the "shiny found" log: every shiny the random
// generator rolls is appended here and survives across sessions.
package shiny

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry records one shiny find. Dates serialize as RFC 3339 strings.
type Entry struct {
	Pokemon string    `json:"pokemon"`
	Form    string    `json:"form,omitempty"`
	Gender  string    `json:"gender,omitempty"`
	Date    time.Time `json:"date"`
}

// Log manages the on-disk shiny list. A single JSON array, no schema
// versioning.
type Log struct {
	mu      sync.RWMutex
	path    string
	entries []Entry
}

// NewLog creates a log stored under dataDir.
func NewLog(dataDir string) *Log {
	return &Log{path: filepath.Join(dataDir, "shiny_log.json")}
}

// Load reads the log from disk. A missing file is an empty log.
func (l *Log) Load() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.entries = nil
			return nil
		}
		return fmt.Errorf("failed to read shiny log: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse shiny log: %w", err)
	}
	l.entries = entries
	return nil
}

// Save writes the log to disk.
func (l *Log) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save()
}

func (l *Log) save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shiny log: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write shiny log: %w", err)
	}
	return nil
}

// Append adds an entry and persists immediately.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return l.save()
}

// All returns a copy of the entries, oldest first.
func (l *Log) All() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded shinies.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
