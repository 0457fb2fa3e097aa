package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/authorscout/internal/cache"
	"github.com/lepinkainen/authorscout/internal/config"
)

// CLI represents the complete command structure for the authorscout application
type CLI struct {
	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file (default from config: ./cache.db)"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 72h)"`
	NoCache     bool   `help:"Bypass the response cache"`

	HistoryBackend string `help:"Where search history is kept: sqlite or file"`
	Verbose        bool   `short:"v" help:"Enable debug logging"`

	Search  SearchCmd  `cmd:"" help:"Search authors once and print the results"`
	Browse  BrowseCmd  `cmd:"" help:"Browse authors interactively"`
	History HistoryCmd `cmd:"" help:"Show or clear recent searches"`
	Cover   CoverCmd   `cmd:"" help:"Download a cover image"`
	Cache   CacheCmd   `cmd:"" help:"Manage the response cache"`
}

// HistoryCmd groups the history subcommands
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"" default:"1" help:"List recent searches, most recent first"`
	Clear HistoryClearCmd `cmd:"" help:"Forget all recent searches"`
}

// CacheCmd groups the cache subcommands
type CacheCmd struct {
	Invalidate cache.InvalidateCacheCmd `cmd:"" help:"Drop cached responses for a source"`
	Prune      cache.PruneCacheCmd      `cmd:"" help:"Drop cached responses older than the TTL"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(os.Stdout, false)
	initConfig()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("authorscout"),
		kong.Description("Search the Open Library catalog for authors and their books."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		initLogging(os.Stdout, true)
	}
	updateGlobalConfig(&cli)

	err := ctx.Run()
	closeErr := cache.ResetGlobalCache()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
	if closeErr != nil {
		slog.Warn("Failed to close cache database", "error", closeErr)
	}
}

func initConfig() {
	config.SetDefaults()

	viper.AutomaticEnv()
	if err := viper.BindEnv("openlibrary.baseurl", "OPENLIBRARY_BASE_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, writing default config file")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Warn("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.CacheDBFile != "" {
		viper.Set("cache.dbfile", cli.CacheDBFile)
	}
	if cli.CacheTTL != "" {
		viper.Set("cache.ttl", cli.CacheTTL)
	}
	if cli.NoCache {
		config.SetCacheEnabled(false)
	}
	config.SetHistoryBackend(cli.HistoryBackend)
}

func initLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
