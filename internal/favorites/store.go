// Package favorites holds the authors and books the user liked during a session.
package favorites

import (
	"slices"
	"strings"
	"sync"
)

// Snapshot is a point-in-time copy of the favorites, in insertion order.
type Snapshot struct {
	Authors []string `json:"authors"`
	Books   []string `json:"books"`
}

// Empty reports whether nothing has been liked.
func (s Snapshot) Empty() bool {
	return len(s.Authors) == 0 && len(s.Books) == 0
}

// Store is an in-memory pair of insertion-ordered sets. There is no removal.
type Store struct {
	mu        sync.Mutex
	authors   []string
	books     []string
	listeners []func(Snapshot)
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// LikeAuthor adds name to the favorite authors and reports whether it was new.
func (s *Store) LikeAuthor(name string) bool {
	return s.like(&s.authors, name)
}

// LikeBook adds title to the favorite books and reports whether it was new.
func (s *Store) LikeBook(title string) bool {
	return s.like(&s.books, title)
}

func (s *Store) like(set *[]string, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}

	s.mu.Lock()
	if slices.Contains(*set, key) {
		s.mu.Unlock()
		return false
	}
	*set = append(*set, key)
	snap := s.snapshotLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return true
}

// Snapshot returns copies of both sets.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Authors: slices.Clone(s.authors),
		Books:   slices.Clone(s.books),
	}
}

// OnChange registers fn to be called after every change.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
