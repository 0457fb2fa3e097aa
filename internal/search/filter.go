package search

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
)

// FilterByTitle keeps authors whose top work contains title, ignoring case.
// Authors without a top work are dropped unless title is blank.
func FilterByTitle(authors []openlibrary.AuthorSummary, title string) []openlibrary.AuthorSummary {
	title = strings.TrimSpace(title)
	if title == "" {
		return slices.Clone(authors)
	}

	// a Caser keeps state, so each call gets its own
	fold := cases.Fold()
	needle := fold.String(norm.NFKC.String(title))

	var out []openlibrary.AuthorSummary
	for _, a := range authors {
		if a.TopWork == "" {
			continue
		}
		if strings.Contains(fold.String(norm.NFKC.String(a.TopWork)), needle) {
			out = append(out, a)
		}
	}
	return out
}

// Cap returns at most the first n authors.
func Cap(authors []openlibrary.AuthorSummary, n int) []openlibrary.AuthorSummary {
	if n < 0 {
		n = 0
	}
	if len(authors) > n {
		authors = authors[:n]
	}
	return slices.Clone(authors)
}
