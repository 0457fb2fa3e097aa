package obsidian

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNoteBuildSortsKeys(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "Favorites 2026-10-19")
	fm.Set("authors", []string{"Ursula K. Le Guin", "J.R.R. Tolkien"})
	fm.Set("date", "2026-10-19")
	fm.Set("tags", []string{"authorscout", "favorites"})
	fm.Set("title", "Favorites")

	note := &Note{Frontmatter: fm, Body: "\n## Authors\n\n- x\n\n"}
	out, err := note.Build()
	assert.NoError(t, err)

	want := `---
authors:
    - Ursula K. Le Guin
    - J.R.R. Tolkien
date: "2026-10-19"
tags: [authorscout, favorites]
title: Favorites
---
## Authors

- x
`
	assert.Equal(t, want, string(out))
	assert.Equal(t, []string{"authors", "date", "tags", "title"}, fm.Keys())

	v, ok := fm.Get("title")
	assert.True(t, ok)
	assert.Equal(t, any("Favorites"), v)
}

func TestNoteBuildWithoutFrontmatter(t *testing.T) {
	out, err := (&Note{Frontmatter: NewFrontmatter(), Body: "just body"}).Build()
	assert.NoError(t, err)
	assert.Equal(t, "just body\n", string(out))
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#favorites", "favorites"},
		{"  Science Fiction ", "Science-Fiction"},
		{"Sword & Sorcery", "Sword-and-Sorcery"},
		{"--a -- b--", "a-b"},
		{"#", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTag(tt.in), tt.in)
	}

	assert.Equal(t, []string{"authorscout", "favorites"}, NormalizeTags("favorites", "#authorscout", "favorites", " "))
}
