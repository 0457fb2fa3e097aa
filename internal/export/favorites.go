// Package export writes session favorites to an Obsidian-style Markdown note.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/lepinkainen/authorscout/internal/favorites"
	"github.com/lepinkainen/authorscout/internal/fileutil"
	"github.com/lepinkainen/authorscout/internal/obsidian"
)

// FavoritesFilename returns the note file name for the given day.
func FavoritesFilename(now time.Time) string {
	return fileutil.SanitizeFilename(fmt.Sprintf("Favorites %s", now.Format(time.DateOnly))) + ".md"
}

// WriteFavorites writes snap to dir and returns the note path. Nothing is written
// for an empty snapshot, or when the note exists and overwrite is false; the path is "" then.
func WriteFavorites(dir string, snap favorites.Snapshot, now time.Time, overwrite bool) (string, error) {
	if snap.Empty() {
		slog.Debug("No favorites to export")
		return "", nil
	}

	day := now.Format(time.DateOnly)
	fm := obsidian.NewFrontmatter()
	fm.Set("title", "Favorites "+day)
	fm.Set("date", day)
	fm.Set("authors", nonNil(snap.Authors))
	fm.Set("books", nonNil(snap.Books))
	fm.Set("tags", obsidian.NormalizeTags("authorscout", "favorites"))

	note := &obsidian.Note{Frontmatter: fm, Body: favoritesBody(snap)}
	data, err := note.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build favorites note: %w", err)
	}

	path := filepath.Join(dir, FavoritesFilename(now))
	written, err := fileutil.WriteFileWithOverwrite(path, data, 0o644, overwrite)
	if err != nil {
		return "", fmt.Errorf("failed to export favorites: %w", err)
	}
	if !written {
		slog.Info("Favorites note already exists, skipping", "path", path)
		return "", nil
	}

	slog.Info("Exported favorites", "path", path, "authors", len(snap.Authors), "books", len(snap.Books))
	return path, nil
}

func favoritesBody(snap favorites.Snapshot) string {
	var sb strings.Builder
	writeSection(&sb, "Authors", snap.Authors)
	sb.WriteString("\n")
	writeSection(&sb, "Books", snap.Books)
	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	fmt.Fprintf(sb, "## %s\n\n", heading)
	if len(items) == 0 {
		sb.WriteString("None.\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
