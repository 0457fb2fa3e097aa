// Package view renders search progress.
package view

import (
	"slices"
	"sync"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
	"github.com/lepinkainen/authorscout/internal/search"
)

// Status is the overall state of the results area.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusFailed
	StatusEmpty
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is a copy of everything the board shows.
type State struct {
	Seq     uint64
	Query   search.Query
	Status  Status
	Message string
	Cards   []search.Card
	Done    bool
}

// Authors returns the names of the authors on the board, in card order.
func (s State) Authors() []string {
	names := make([]string, len(s.Cards))
	for i, c := range s.Cards {
		names[i] = c.Author.Name
	}
	return names
}

// Board is an in-memory projection of the latest search. It is safe for concurrent use.
type Board struct {
	mu    sync.Mutex
	state State
	// events at or below floor were cleared by Reset
	floor   uint64
	updates chan struct{}
}

var _ search.View = (*Board)(nil)

// NewBoard returns an idle board.
func NewBoard() *Board {
	return &Board{updates: make(chan struct{}, 1)}
}

// Updates signals after every change. Signals coalesce.
func (b *Board) Updates() <-chan struct{} {
	return b.updates
}

func (b *Board) notify() {
	select {
	case b.updates <- struct{}{}:
	default:
	}
}

func (b *Board) current(seq uint64) bool {
	return seq == b.state.Seq && seq > b.floor
}

func (b *Board) update(seq uint64, fn func()) {
	b.mu.Lock()
	if !b.current(seq) {
		b.mu.Unlock()
		return
	}
	fn()
	b.mu.Unlock()
	b.notify()
}

// Begin clears the board for search seq and shows the loading message.
func (b *Board) Begin(seq uint64, q search.Query) {
	b.mu.Lock()
	if seq < b.state.Seq || seq <= b.floor {
		b.mu.Unlock()
		return
	}
	b.state = State{Seq: seq, Query: q, Status: StatusLoading, Message: search.MsgLoading}
	b.mu.Unlock()
	b.notify()
}

// Failed shows the failure message.
func (b *Board) Failed(seq uint64, _ error) {
	b.update(seq, func() {
		b.state.Status = StatusFailed
		b.state.Message = search.MsgFailed
		b.state.Cards = nil
		b.state.Done = true
	})
}

// Empty shows the no-results message.
func (b *Board) Empty(seq uint64) {
	b.update(seq, func() {
		b.state.Status = StatusEmpty
		b.state.Message = search.MsgNoAuthors
		b.state.Cards = nil
	})
}

// Authors adds one loading card per author.
func (b *Board) Authors(seq uint64, authors []openlibrary.AuthorSummary) {
	b.update(seq, func() {
		cards := make([]search.Card, len(authors))
		for i, a := range authors {
			cards[i] = search.Card{Author: a, Books: search.Books{State: search.BooksLoading}}
		}
		b.state.Status = StatusReady
		b.state.Message = ""
		b.state.Cards = cards
	})
}

// Books replaces the books of the card at index.
func (b *Board) Books(seq uint64, index int, books search.Books) {
	b.update(seq, func() {
		if index < 0 || index >= len(b.state.Cards) {
			return
		}
		books.Works = slices.Clone(books.Works)
		b.state.Cards[index].Books = books
	})
}

// Done marks the search as finished.
func (b *Board) Done(seq uint64) {
	b.update(seq, func() {
		b.state.Done = true
	})
}

// Reset clears the results. Late events from searches started before the reset are dropped.
func (b *Board) Reset() {
	b.mu.Lock()
	b.floor = b.state.Seq
	b.state = State{Seq: b.state.Seq}
	b.mu.Unlock()
	b.notify()
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.state
	s.Cards = make([]search.Card, len(b.state.Cards))
	for i, c := range b.state.Cards {
		c.Books.Works = slices.Clone(c.Books.Works)
		s.Cards[i] = c
	}
	return s
}
