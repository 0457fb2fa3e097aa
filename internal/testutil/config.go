package testutil

import (
	"testing"
	"time"

	"github.com/lepinkainen/authorscout/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OpenLibraryBaseURL   string
	OpenLibraryCoversURL string
	OpenLibraryRateLimit int
	HTTPTimeout          time.Duration
	CacheEnabled         bool
	HistoryBackend       string
	HistoryDBFile        string
	HistoryFile          string
	DebounceInterval     time.Duration
	ExportDir            string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OpenLibraryBaseURL:   config.OpenLibraryBaseURL,
		OpenLibraryCoversURL: config.OpenLibraryCoversURL,
		OpenLibraryRateLimit: config.OpenLibraryRateLimit,
		HTTPTimeout:          config.HTTPTimeout,
		CacheEnabled:         config.CacheEnabled,
		HistoryBackend:       config.HistoryBackend,
		HistoryDBFile:        config.HistoryDBFile,
		HistoryFile:          config.HistoryFile,
		DebounceInterval:     config.DebounceInterval,
		ExportDir:            config.ExportDir,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OpenLibraryBaseURL = state.OpenLibraryBaseURL
	config.OpenLibraryCoversURL = state.OpenLibraryCoversURL
	config.OpenLibraryRateLimit = state.OpenLibraryRateLimit
	config.HTTPTimeout = state.HTTPTimeout
	config.CacheEnabled = state.CacheEnabled
	config.HistoryBackend = state.HistoryBackend
	config.HistoryDBFile = state.HistoryDBFile
	config.HistoryFile = state.HistoryFile
	config.DebounceInterval = state.DebounceInterval
	config.ExportDir = state.ExportDir
}

// SetTestConfig points the config at a catalog under test and at files inside env.
// Caching is disabled and rate limiting is off. State is restored on cleanup.
func SetTestConfig(t *testing.T, env *TestEnv, catalogURL string) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.OpenLibraryBaseURL = catalogURL
	config.OpenLibraryCoversURL = catalogURL
	config.OpenLibraryRateLimit = 0
	config.HTTPTimeout = 5 * time.Second
	config.CacheEnabled = false
	config.HistoryBackend = config.HistoryBackendFile
	config.HistoryDBFile = env.Path("authorscout.db")
	config.HistoryFile = env.Path("history.json")
	config.DebounceInterval = 10 * time.Millisecond
	config.ExportDir = ""

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}
