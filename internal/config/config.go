package config

import (
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// History storage backends
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendFile   = "file"
)

// Global configuration variables
var (
	// OpenLibraryBaseURL is the catalog API root
	OpenLibraryBaseURL string
	// OpenLibraryCoversURL is the root for cover images
	OpenLibraryCoversURL string
	// OpenLibraryRateLimit is the maximum number of catalog requests per second
	OpenLibraryRateLimit int
	// HTTPTimeout bounds a single catalog request
	HTTPTimeout time.Duration

	// CacheEnabled controls whether catalog responses go through the SQLite cache
	CacheEnabled bool

	HistoryBackend string
	HistoryDBFile  string
	HistoryFile    string

	// DebounceInterval is the quiet period before a keystroke-triggered search runs
	DebounceInterval time.Duration

	// ExportDir is where favorites are written on exit; empty disables export
	ExportDir string
)

// SetDefaults registers default values for every known key.
func SetDefaults() {
	viper.SetDefault("openlibrary.baseurl", "https://openlibrary.org")
	viper.SetDefault("openlibrary.coversurl", "https://covers.openlibrary.org")
	viper.SetDefault("openlibrary.ratelimit", 3)
	viper.SetDefault("openlibrary.timeout", "10s")

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "24h")

	viper.SetDefault("history.backend", HistoryBackendSQLite)
	viper.SetDefault("history.dbfile", "./authorscout.db")
	viper.SetDefault("history.file", "./history.json")

	viper.SetDefault("search.debounce", "500ms")

	viper.SetDefault("export.dir", "")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	OpenLibraryBaseURL = viper.GetString("openlibrary.baseurl")
	OpenLibraryCoversURL = viper.GetString("openlibrary.coversurl")
	OpenLibraryRateLimit = viper.GetInt("openlibrary.ratelimit")
	HTTPTimeout = durationOr("openlibrary.timeout", 10*time.Second)

	CacheEnabled = viper.GetBool("cache.enabled")

	HistoryBackend = viper.GetString("history.backend")
	HistoryDBFile = viper.GetString("history.dbfile")
	HistoryFile = viper.GetString("history.file")

	DebounceInterval = durationOr("search.debounce", 500*time.Millisecond)

	ExportDir = viper.GetString("export.dir")
}

// SetCacheEnabled toggles the response cache
func SetCacheEnabled(enabled bool) {
	CacheEnabled = enabled
}

// SetHistoryBackend overrides the history backend if backend is non-empty
func SetHistoryBackend(backend string) {
	if backend != "" {
		HistoryBackend = backend
	}
}

// SetExportDir overrides the favorites export directory
func SetExportDir(dir string) {
	ExportDir = dir
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration in config, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}
