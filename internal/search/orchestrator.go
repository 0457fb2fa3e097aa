package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
)

// Catalog is the subset of the Open Library client the orchestrator needs.
type Catalog interface {
	SearchAuthors(ctx context.Context, query string) ([]openlibrary.AuthorSummary, error)
	AuthorWorks(ctx context.Context, authorKey string, limit int) ([]openlibrary.WorkSummary, error)
}

// Recorder remembers submitted author queries.
type Recorder interface {
	Record(query string) (bool, error)
}

// Result is the outcome of one search.
type Result struct {
	Seq   uint64 `json:"seq"`
	Query Query  `json:"query"`
	Cards []Card `json:"cards"`
	Err   error  `json:"-"`
	// Stale is set when a newer search superseded this one before it finished.
	Stale bool `json:"stale,omitempty"`
}

// Orchestrator runs searches one pipeline at a time. Starting a search
// cancels the previous one and only the latest search reaches the view.
type Orchestrator struct {
	catalog Catalog
	history Recorder
	view    View
	logger  *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for search progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an orchestrator. hist may be nil to skip recording.
func New(catalog Catalog, hist Recorder, view View, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: catalog,
		history: hist,
		view:    view,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Search runs q through the pipeline: record, search authors, filter, cap,
// render cards, then fetch each author's works in order.
func (o *Orchestrator) Search(ctx context.Context, q Query) Result {
	q = q.Normalize()
	if !q.Valid() {
		return Result{}
	}

	ctx, seq := o.start(ctx)
	defer o.finish(seq)

	logger := o.logger.With("search_id", uuid.NewString(), "seq", seq)
	logger.Debug("Starting search", "author", q.Author, "title", q.Title)

	result := Result{Seq: seq, Query: q}

	if o.history != nil {
		if _, err := o.history.Record(q.Author); err != nil {
			logger.Warn("Failed to save search history", "error", err)
		}
	}

	if !o.emit(seq, func() { o.view.Begin(seq, q) }) {
		return stale(result)
	}

	authors, err := o.catalog.SearchAuthors(ctx, q.Author)
	if err != nil {
		if !o.latest(seq) {
			return stale(result)
		}
		logger.Warn("Author search failed", "error", err)
		result.Err = err
		o.view.Failed(seq, err)
		return result
	}

	authors = Cap(FilterByTitle(authors, q.Title), MaxAuthors)
	logger.Debug("Authors matched", "count", len(authors))

	if len(authors) == 0 {
		if !o.emit(seq, func() { o.view.Empty(seq) }) {
			return stale(result)
		}
		o.emit(seq, func() { o.view.Done(seq) })
		return result
	}

	result.Cards = make([]Card, len(authors))
	for i, a := range authors {
		result.Cards[i] = Card{Author: a, Books: Books{State: BooksLoading}}
	}
	if !o.emit(seq, func() { o.view.Authors(seq, authors) }) {
		return stale(result)
	}

	for i, a := range authors {
		books := o.enrich(ctx, logger, a)
		if !o.latest(seq) {
			return stale(result)
		}
		result.Cards[i].Books = books
		o.view.Books(seq, i, books)
	}

	if !o.emit(seq, func() { o.view.Done(seq) }) {
		return stale(result)
	}
	logger.Info("Search finished", "author", q.Author, "authors", len(authors))
	return result
}

func (o *Orchestrator) enrich(ctx context.Context, logger *slog.Logger, a openlibrary.AuthorSummary) Books {
	if !a.HasKey() {
		return Books{State: BooksEmpty}
	}

	works, err := o.catalog.AuthorWorks(ctx, a.Key, MaxWorks)
	if err != nil {
		logger.Warn("Failed to load works", "author", a.Name, "key", a.Key, "error", err)
		return Books{State: BooksFailed, Err: err}
	}
	if len(works) > MaxWorks {
		works = works[:MaxWorks]
	}
	if len(works) == 0 {
		return Books{State: BooksEmpty}
	}
	return Books{State: BooksLoaded, Works: works}
}

func (o *Orchestrator) start(parent context.Context) (context.Context, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	o.seq++
	o.cancel = cancel
	return ctx, o.seq
}

// Cancel abandons the running search, if any. It stops its catalog calls
// and no further events from it reach the view.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) finish(seq uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if seq == o.seq && o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) latest(seq uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return seq == o.seq
}

// emit runs fn only if seq is still the latest search.
func (o *Orchestrator) emit(seq uint64, fn func()) bool {
	if !o.latest(seq) {
		return false
	}
	fn()
	return true
}

func stale(r Result) Result {
	r.Stale = true
	return r
}
