// Package history keeps the most recent author searches.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lepinkainen/authorscout/internal/storage"
)

const (
	// Capacity is the maximum number of remembered searches.
	Capacity = 5

	// SlotName is the storage slot the list is persisted under.
	SlotName = "searchHistory"
)

// Store is a bounded, duplicate-free list of past author queries, most recent first.
type Store struct {
	mu      sync.Mutex
	slot    storage.Slot
	entries []string
}

// Load reads the persisted list from slot. Missing or corrupt data yields an empty store.
func Load(slot storage.Slot) *Store {
	s := &Store{slot: slot}

	data, err := slot.Load()
	switch {
	case errors.Is(err, storage.ErrSlotNotFound):
		return s
	case err != nil:
		slog.Warn("Failed to read search history, starting empty", "error", err)
		return s
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Search history is corrupt, starting empty", "error", err)
		return s
	}

	s.entries = sanitize(entries)
	slog.Debug("Loaded search history", "entries", len(s.entries))
	return s
}

func sanitize(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || slices.Contains(out, e) {
			continue
		}
		out = append(out, e)
		if len(out) == Capacity {
			break
		}
	}
	return out
}

// Record prepends query unless it is blank or already present.
// It reports whether the list changed. The in-memory list is updated even when
// persisting fails.
func (s *Store) Record(query string) (bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.entries, query) {
		return false, nil
	}

	next := make([]string, 0, Capacity)
	next = append(next, query)
	next = append(next, s.entries...)
	if len(next) > Capacity {
		next = next[:Capacity]
	}
	s.entries = next

	if err := s.persist(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode search history: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}
	return nil
}

// List returns a copy of the entries, most recent first.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Clear forgets every entry and removes the persisted slot.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := s.slot.Remove(); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

// Suggest returns entries that fuzzy-match term, closest first.
func (s *Store) Suggest(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	entries := s.List()
	ranks := fuzzy.RankFindNormalizedFold(term, entries)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if r.Target == term {
			continue
		}
		out = append(out, r.Target)
	}
	return out
}
