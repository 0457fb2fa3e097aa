package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
	"github.com/lepinkainen/authorscout/internal/search"
)

// Text streams search progress to a writer. Cards are printed as soon as the
// authors are known and each author's books follow as they resolve.
type Text struct {
	mu       sync.Mutex
	w        io.Writer
	coverURL func(coverID int) string
	seq      uint64
	authors  []openlibrary.AuthorSummary
}

var _ search.View = (*Text)(nil)

// NewText returns a text view writing to w. coverURL builds links for works with covers.
func NewText(w io.Writer, coverURL func(coverID int) string) *Text {
	return &Text{w: w, coverURL: coverURL}
}

func (t *Text) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.w, format, args...)
}

func (t *Text) Begin(seq uint64, q search.Query) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq < t.seq {
		return
	}
	t.seq = seq
	t.authors = nil
	t.printf("%s\n", search.MsgLoading)
}

func (t *Text) Failed(seq uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return
	}
	t.printf("%s\n", search.MsgFailed)
}

func (t *Text) Empty(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return
	}
	t.printf("%s\n", search.MsgNoAuthors)
}

func (t *Text) Authors(seq uint64, authors []openlibrary.AuthorSummary) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return
	}
	t.authors = authors

	var sb strings.Builder
	sb.WriteString("Authors:\n")
	for _, a := range authors {
		fmt.Fprintf(&sb, "  - %s\n", a.Name)
	}
	for _, a := range authors {
		topWork := a.TopWork
		if topWork == "" {
			topWork = search.MsgNotAvailable
		}
		fmt.Fprintf(&sb, "\n%s\n", a.Name)
		fmt.Fprintf(&sb, "  Top Work: %s\n", topWork)
		fmt.Fprintf(&sb, "  Work Count: %d\n", a.WorkCount)
		fmt.Fprintf(&sb, "  Books: %s\n", search.MsgLoading)
	}
	t.printf("%s", sb.String())
}

// Books prints the books of the author at index once they resolve.
func (t *Text) Books(seq uint64, index int, books search.Books) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq || index < 0 || index >= len(t.authors) {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nBooks for %s:\n", t.authors[index].Name)
	if books.State != search.BooksLoaded {
		fmt.Fprintf(&sb, "  %s\n", books.Message())
	}
	for _, w := range books.Works {
		cover := search.MsgNoCover
		if w.HasCover() && t.coverURL != nil {
			cover = t.coverURL(w.CoverID)
		}
		fmt.Fprintf(&sb, "  - %s (%s)\n", w.Title, cover)
	}
	t.printf("%s", sb.String())
}

func (t *Text) Done(seq uint64) {}
