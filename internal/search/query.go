// Package search runs author searches against the catalog and streams the results to a view.
package search

import "strings"

const (
	// MaxAuthors caps the number of author cards per search.
	MaxAuthors = 5

	// MaxWorks caps the number of works shown per author.
	MaxWorks = 4
)

// Query is one user-triggered search.
type Query struct {
	Author string `json:"author"`
	Title  string `json:"title,omitempty"`
}

// Normalize trims surrounding whitespace from both fields.
func (q Query) Normalize() Query {
	return Query{
		Author: strings.TrimSpace(q.Author),
		Title:  strings.TrimSpace(q.Title),
	}
}

// Valid reports whether the query has an author to search for.
func (q Query) Valid() bool {
	return strings.TrimSpace(q.Author) != ""
}
