package cmd

import (
	"fmt"
	"net/http"

	"github.com/lepinkainen/authorscout/internal/config"
	"github.com/lepinkainen/authorscout/internal/history"
	"github.com/lepinkainen/authorscout/internal/openlibrary"
	"github.com/lepinkainen/authorscout/internal/ratelimit"
	"github.com/lepinkainen/authorscout/internal/search"
	"github.com/lepinkainen/authorscout/internal/storage"
)

var (
	newClient   = defaultClient
	openHistory = defaultHistory
)

func defaultClient() *openlibrary.Client {
	return openlibrary.NewClient(
		openlibrary.WithBaseURL(config.OpenLibraryBaseURL),
		openlibrary.WithCoversURL(config.OpenLibraryCoversURL),
		openlibrary.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout}),
		openlibrary.WithRateLimiter(ratelimit.New("OpenLibrary", config.OpenLibraryRateLimit)),
	)
}

// newCatalog wraps client with the response cache when it is enabled.
func newCatalog(client *openlibrary.Client) search.Catalog {
	if config.CacheEnabled {
		return openlibrary.NewCachedClient(client)
	}
	return client
}

func defaultHistory() (*history.Store, func() error, error) {
	switch config.HistoryBackend {
	case config.HistoryBackendFile:
		return history.Load(storage.NewFileSlot(config.HistoryFile)), func() error { return nil }, nil
	case config.HistoryBackendSQLite, "":
		db, err := storage.OpenSQLite(config.HistoryDBFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open history database: %w", err)
		}
		return history.Load(db.Slot(history.SlotName)), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", config.HistoryBackend)
	}
}

func coverLinker(client *openlibrary.Client) func(int) string {
	return func(coverID int) string {
		return client.CoverURL(coverID, openlibrary.CoverMedium)
	}
}
