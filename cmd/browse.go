package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lepinkainen/authorscout/internal/config"
	"github.com/lepinkainen/authorscout/internal/export"
	"github.com/lepinkainen/authorscout/internal/favorites"
	"github.com/lepinkainen/authorscout/internal/search"
	"github.com/lepinkainen/authorscout/internal/tui"
	"github.com/lepinkainen/authorscout/internal/view"
)

const browseLogFile = "authorscout.log"

var runBrowser = tui.Browse

// BrowseCmd starts the interactive browser
type BrowseCmd struct {
	Author    string `short:"a" help:"Search for this author on start"`
	Title     string `short:"t" help:"Initial title filter"`
	Export    string `help:"Write favorites to a note in this directory on exit (default from config: export.dir)"`
	Overwrite bool   `help:"Overwrite an existing favorites note for today"`
}

func (b *BrowseCmd) Run() error {
	if b.Export != "" {
		config.SetExportDir(b.Export)
	}

	restoreLogs, err := logToFile(browseLogFile)
	if err != nil {
		return err
	}
	defer restoreLogs()

	hist, closeHistory, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = closeHistory() }()

	client := newClient()
	board := view.NewBoard()
	favs := favorites.New()
	favs.OnChange(func(snap favorites.Snapshot) {
		slog.Debug("Favorites changed", "authors", len(snap.Authors), "books", len(snap.Books))
	})

	err = runBrowser(context.Background(), tui.Config{
		Searcher:  search.New(newCatalog(client), hist, board),
		Board:     board,
		History:   hist,
		Favorites: favs,
		Debouncer: search.NewDebouncer(config.DebounceInterval),
		CoverURL:  coverLinker(client),
		Author:    b.Author,
		Title:     b.Title,
	})
	if err != nil {
		return err
	}

	if config.ExportDir == "" {
		return nil
	}
	path, err := export.WriteFavorites(config.ExportDir, favs.Snapshot(), time.Now(), b.Overwrite)
	if err != nil {
		return err
	}
	if path != "" {
		_, _ = fmt.Fprintf(stdout, "Favorites written to %s\n", path)
	}
	return nil
}

// logToFile sends the default logger to path until the returned func is called.
func logToFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	prev := slog.Default()
	initLogging(f, prev.Enabled(context.Background(), slog.LevelDebug))

	return func() {
		slog.SetDefault(prev)
		_ = f.Close()
	}, nil
}
