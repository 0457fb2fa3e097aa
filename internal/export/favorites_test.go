package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/authorscout/internal/favorites"
)

var exportDay = time.Date(2026, 10, 19, 21, 30, 0, 0, time.UTC)

func TestWriteFavorites(t *testing.T) {
	dir := t.TempDir()
	snap := favorites.Snapshot{
		Authors: []string{"Ursula K. Le Guin", "J.R.R. Tolkien"},
		Books:   []string{"The Hobbit"},
	}

	path, err := WriteFavorites(dir, snap, exportDay, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Favorites 2026-10-19.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `---
authors:
    - Ursula K. Le Guin
    - J.R.R. Tolkien
books:
    - The Hobbit
date: "2026-10-19"
tags: [authorscout, favorites]
title: Favorites 2026-10-19
---
## Authors

- Ursula K. Le Guin
- J.R.R. Tolkien

## Books

- The Hobbit
`
	assert.Equal(t, want, string(data))
}

func TestWriteFavoritesEmptySection(t *testing.T) {
	path, err := WriteFavorites(t.TempDir(), favorites.Snapshot{Authors: []string{"A"}}, exportDay, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "books: []\n")
	assert.Contains(t, string(data), "## Books\n\nNone.\n")
}

func TestWriteFavoritesSkipsEmptySnapshot(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFavorites(dir, favorites.Snapshot{}, exportDay, true)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFavoritesOverwrite(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteFavorites(dir, favorites.Snapshot{Authors: []string{"First"}}, exportDay, false)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	skipped, err := WriteFavorites(dir, favorites.Snapshot{Authors: []string{"Second"}}, exportDay, false)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "First")

	again, err := WriteFavorites(dir, favorites.Snapshot{Authors: []string{"Second"}}, exportDay, true)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	data, err = os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Second")
	assert.NotContains(t, string(data), "First")
}
