package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
)

func TestFilterByTitle(t *testing.T) {
	authors := []openlibrary.AuthorSummary{
		{Name: "J.R.R. Tolkien", TopWork: "The Hobbit"},
		{Name: "Anonymous"},
		{Name: "Someone", TopWork: "HOBBITS AND YOU"},
		{Name: "Other", TopWork: "Silmarillion"},
		{Name: "Ligature", TopWork: "The Ｈobbit"},
	}

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"blank keeps everyone", "", []string{"J.R.R. Tolkien", "Anonymous", "Someone", "Other", "Ligature"}},
		{"whitespace keeps everyone", "   ", []string{"J.R.R. Tolkien", "Anonymous", "Someone", "Other", "Ligature"}},
		{"case insensitive", "hobbit", []string{"J.R.R. Tolkien", "Someone", "Ligature"}},
		{"no match", "dune", nil},
		{"exact", "Silmarillion", []string{"Other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTitle(authors, tt.title)
			var names []string
			for _, a := range got {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterByTitleExcludesMissingTopWork(t *testing.T) {
	got := FilterByTitle([]openlibrary.AuthorSummary{{Name: "No top work"}}, "a")
	assert.Empty(t, got)
}

func TestCap(t *testing.T) {
	authors := make([]openlibrary.AuthorSummary, 8)
	for i := range authors {
		authors[i].Name = string(rune('a' + i))
	}

	capped := Cap(authors, MaxAuthors)
	assert.Len(t, capped, MaxAuthors)
	assert.Equal(t, "a", capped[0].Name)
	assert.Equal(t, "e", capped[4].Name)

	assert.Len(t, Cap(authors[:2], MaxAuthors), 2)
	assert.Empty(t, Cap(authors, -1))

	capped[0].Name = "changed"
	assert.Equal(t, "a", authors[0].Name)
}

func TestQueryNormalize(t *testing.T) {
	q := Query{Author: "  Tolkien ", Title: " Hobbit  "}.Normalize()
	assert.Equal(t, Query{Author: "Tolkien", Title: "Hobbit"}, q)
	assert.True(t, q.Valid())
	assert.False(t, Query{Author: " ", Title: "x"}.Valid())
}
