package search

import (
	"github.com/lepinkainen/authorscout/internal/openlibrary"
)

// BooksState is the state of one author card's books region.
type BooksState int

const (
	BooksLoading BooksState = iota
	BooksLoaded
	BooksEmpty
	BooksFailed
)

// Messages shown by views.
const (
	MsgLoading      = "Loading..."
	MsgFailed       = "Failed to fetch data."
	MsgNoAuthors    = "No authors found."
	MsgNoBooks      = "No books found."
	MsgBooksFailed  = "Error loading books."
	MsgNoCover      = "No cover available"
	MsgNotAvailable = "N/A"
)

func (s BooksState) String() string {
	switch s {
	case BooksLoading:
		return "loading"
	case BooksLoaded:
		return "loaded"
	case BooksEmpty:
		return "empty"
	case BooksFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s BooksState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Books is the resolved content of one card's books region.
type Books struct {
	State BooksState                `json:"state"`
	Works []openlibrary.WorkSummary `json:"works,omitempty"`
	Err   error                     `json:"-"`
}

// Message returns the placeholder text for states without works.
func (b Books) Message() string {
	switch b.State {
	case BooksLoading:
		return MsgLoading
	case BooksEmpty:
		return MsgNoBooks
	case BooksFailed:
		return MsgBooksFailed
	default:
		return ""
	}
}

// Card is one author with its books.
type Card struct {
	Author openlibrary.AuthorSummary `json:"author"`
	Books  Books                     `json:"books"`
}

// View receives the progress of a search. Every call carries the search
// sequence number so implementations can drop events from superseded searches.
type View interface {
	// Begin starts a new search and shows a loading indicator.
	Begin(seq uint64, q Query)

	// Failed reports that the author search itself failed.
	Failed(seq uint64, err error)

	// Empty reports that no authors matched.
	Empty(seq uint64)

	// Authors renders one card per author, each with a loading books region.
	Authors(seq uint64, authors []openlibrary.AuthorSummary)

	// Books replaces the books region of the card at index.
	Books(seq uint64, index int, books Books)

	// Done marks the search as finished.
	Done(seq uint64)
}
