package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/authorscout/internal/cache"
	"github.com/lepinkainen/authorscout/internal/config"
	"github.com/lepinkainen/authorscout/internal/openlibrary"
	"github.com/lepinkainen/authorscout/internal/search"
	"github.com/lepinkainen/authorscout/internal/testutil"
	"github.com/lepinkainen/authorscout/internal/tui"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"authorscout"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("authorscout"),
		kong.Description("Search the Open Library catalog for authors and their books."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

// setupCmd points the commands at a fake catalog inside a sandbox and captures stdout.
func setupCmd(t *testing.T, handler http.Handler) (*testutil.TestEnv, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	env := testutil.NewTestEnv(t)
	env.Chdir(".")
	testutil.SetTestConfig(t, env, server.URL)

	var out bytes.Buffer
	origStdout := stdout
	stdout = &out
	t.Cleanup(func() { stdout = origStdout })

	return env, &out
}

func catalogHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/authors.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "Tolkien":
			_, _ = w.Write([]byte(`{"docs":[
				{"key":"OL26320A","name":"J.R.R. Tolkien","top_work":"The Hobbit","work_count":12},
				{"key":"OL2A","name":"Christopher Tolkien","work_count":40}
			]}`))
		case "broken":
			http.Error(w, "nope", http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`{"docs":[]}`))
		}
	})
	mux.HandleFunc("/authors/OL26320A/works.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entries":[{"title":"The Hobbit","covers":[42]},{"title":"The Two Towers"}]}`))
	})
	mux.HandleFunc("/authors/OL2A/works.json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusNotFound)
	})
	return mux
}

func TestUpdateGlobalConfig(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env, "http://catalog.invalid")
	config.CacheEnabled = true

	updateGlobalConfig(&CLI{
		CacheDBFile:    "/tmp/cache.db",
		CacheTTL:       "12h",
		NoCache:        true,
		HistoryBackend: config.HistoryBackendSQLite,
	})

	assert.Equal(t, "/tmp/cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "12h", viper.GetString("cache.ttl"))
	assert.False(t, config.CacheEnabled)
	assert.Equal(t, config.HistoryBackendSQLite, config.HistoryBackend)

	updateGlobalConfig(&CLI{})
	assert.Equal(t, config.HistoryBackendSQLite, config.HistoryBackend, "empty flag keeps the configured backend")
}

func TestCommandParsing(t *testing.T) {
	cli, _ := parseCLI(t, "search", "Tolkien", "-t", "Hobbit", "--json")
	assert.Equal(t, "Tolkien", cli.Search.Author)
	assert.Equal(t, "Hobbit", cli.Search.Title)
	assert.True(t, cli.Search.JSON)

	cli, _ = parseCLI(t, "browse", "--author", "Le Guin", "--export", "notes")
	assert.Equal(t, "Le Guin", cli.Browse.Author)
	assert.Equal(t, "notes", cli.Browse.Export)

	cli, _ = parseCLI(t, "cover", "42")
	assert.Equal(t, 42, cli.Cover.ID)
	assert.Equal(t, "L", cli.Cover.Size)
	assert.Equal(t, 600, cli.Cover.MaxWidth)

	_, ctx := parseCLI(t, "history")
	assert.Equal(t, "history list", ctx.Command())
}

func TestSearchCommandText(t *testing.T) {
	env, out := setupCmd(t, catalogHandler())

	_, ctx := parseCLI(t, "search", "Tolkien")
	require.NoError(t, ctx.Run())

	text := out.String()
	assert.Contains(t, text, "Authors:\n  - J.R.R. Tolkien\n  - Christopher Tolkien\n")
	assert.Contains(t, text, "  Top Work: The Hobbit\n  Work Count: 12\n")
	assert.Contains(t, text, "  - The Hobbit ("+config.OpenLibraryCoversURL+"/b/id/42-M.jpg)\n")
	assert.Contains(t, text, "  - The Two Towers (No cover available)\n")
	assert.Contains(t, text, "Christopher Tolkien\n  Top Work: N/A\n  Work Count: 40\n  Books: Loading...\n")
	assert.Contains(t, text, "Books for Christopher Tolkien:\n  Error loading books.\n")

	assert.Contains(t, env.ReadFileString("history.json"), "Tolkien")
}

func TestSearchCommandJSON(t *testing.T) {
	_, out := setupCmd(t, catalogHandler())

	_, ctx := parseCLI(t, "search", "Tolkien", "--title", "hobbit", "--json")
	require.NoError(t, ctx.Run())

	var got struct {
		Query search.Query `json:"query"`
		Cards []struct {
			Author openlibrary.AuthorSummary `json:"author"`
			Books  struct {
				State string                    `json:"state"`
				Works []openlibrary.WorkSummary `json:"works"`
			} `json:"books"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, search.Query{Author: "Tolkien", Title: "hobbit"}, got.Query)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, "J.R.R. Tolkien", got.Cards[0].Author.Name)
	assert.Equal(t, "loaded", got.Cards[0].Books.State)
	assert.Len(t, got.Cards[0].Books.Works, 2)
}

func TestSearchCommandNoAuthors(t *testing.T) {
	_, out := setupCmd(t, catalogHandler())

	_, ctx := parseCLI(t, "search", "Xyzzyxnotreal")
	require.NoError(t, ctx.Run())
	assert.Equal(t, "Loading...\nNo authors found.\n", out.String())
}

func TestSearchCommandFailure(t *testing.T) {
	env, out := setupCmd(t, catalogHandler())

	_, ctx := parseCLI(t, "search", "broken")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author search failed")
	assert.Contains(t, out.String(), "Failed to fetch data.")
	assert.Contains(t, env.ReadFileString("history.json"), "broken", "history is recorded before the call")
}

func TestHistoryCommands(t *testing.T) {
	_, out := setupCmd(t, catalogHandler())

	for _, author := range []string{"Tolkien", "Le Guin"} {
		_, ctx := parseCLI(t, "search", author)
		require.NoError(t, ctx.Run())
	}
	out.Reset()

	_, ctx := parseCLI(t, "history", "list")
	require.NoError(t, ctx.Run())
	assert.Equal(t, "1. Le Guin\n2. Tolkien\n", out.String())

	out.Reset()
	_, ctx = parseCLI(t, "history", "clear")
	require.NoError(t, ctx.Run())

	out.Reset()
	_, ctx = parseCLI(t, "history", "list")
	require.NoError(t, ctx.Run())
	assert.Equal(t, "No recent searches.\n", out.String())
}

func TestSQLiteHistoryBackend(t *testing.T) {
	env, _ := setupCmd(t, catalogHandler())
	config.HistoryBackend = config.HistoryBackendSQLite

	hist, closeHistory, err := openHistory()
	require.NoError(t, err)
	_, err = hist.Record("Pratchett")
	require.NoError(t, err)
	require.NoError(t, closeHistory())

	assert.True(t, env.FileExists("authorscout.db"))

	hist, closeHistory, err = openHistory()
	require.NoError(t, err)
	defer func() { _ = closeHistory() }()
	assert.Equal(t, []string{"Pratchett"}, hist.List())

	config.HistoryBackend = "etcd"
	_, _, err = openHistory()
	assert.Error(t, err)
}

func TestNewCatalogHonoursCacheFlag(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env, "http://catalog.invalid")
	client := newClient()

	_, cached := newCatalog(client).(*openlibrary.CachedClient)
	assert.False(t, cached)

	config.CacheEnabled = true
	_, cached = newCatalog(client).(*openlibrary.CachedClient)
	assert.True(t, cached)
}

func TestBrowseExportsFavorites(t *testing.T) {
	env, out := setupCmd(t, catalogHandler())

	orig := runBrowser
	t.Cleanup(func() { runBrowser = orig })

	var got tui.Config
	runBrowser = func(ctx context.Context, cfg tui.Config) error {
		got = cfg
		cfg.Favorites.LikeAuthor("J.R.R. Tolkien")
		cfg.Favorites.LikeBook("The Hobbit")
		return nil
	}

	_, ctx := parseCLI(t, "browse", "--author", "Tolkien", "--export", "notes")
	require.NoError(t, ctx.Run())

	assert.Equal(t, "Tolkien", got.Author)
	assert.Equal(t, 10*time.Millisecond, got.Debouncer.Interval())
	assert.True(t, env.FileExists("authorscout.log"))

	files := env.ListFiles("notes")
	require.Len(t, files, 1)
	note := env.ReadFileString("notes/" + files[0])
	assert.Contains(t, note, "- J.R.R. Tolkien")
	assert.Contains(t, note, "- The Hobbit")
	assert.Contains(t, out.String(), "Favorites written to")
}

func TestBrowseWithoutExport(t *testing.T) {
	env, _ := setupCmd(t, catalogHandler())

	orig := runBrowser
	t.Cleanup(func() { runBrowser = orig })
	runBrowser = func(ctx context.Context, cfg tui.Config) error {
		cfg.Favorites.LikeAuthor("Someone")
		return nil
	}

	_, ctx := parseCLI(t, "browse")
	require.NoError(t, ctx.Run())
	assert.False(t, env.FileExists("notes"))
}

func TestCoverCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/b/id/42-L.jpg", func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 1200, 800))
		img.Set(0, 0, color.White)
		_ = png.Encode(w, img)
	})
	env, out := setupCmd(t, mux)

	_, ctx := parseCLI(t, "cover", "42", "--max-width", "300")
	require.NoError(t, ctx.Run())

	assert.True(t, env.FileExists("covers/42-L.jpg"))
	assert.Contains(t, out.String(), "Saved cover 42")
}

func TestCacheInvalidateRejectsUnknownSource(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env, "http://catalog.invalid")
	viper.Set("cache.dbfile", env.Path("cache.db"))
	t.Cleanup(func() { _ = cache.ResetGlobalCache() })

	_, ctx := parseCLI(t, "cache", "invalidate", "movies")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all, authors, works")

	_, ctx = parseCLI(t, "cache", "invalidate", "all")
	require.NoError(t, ctx.Run())
}
