package cache

// SQL schemas for cache tables
// All cache tables use "cache_key" as the primary key column for consistency

// AuthorsCacheSchema holds author search responses keyed by normalized query
const AuthorsCacheSchema = `
CREATE TABLE IF NOT EXISTS openlibrary_authors_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_openlibrary_authors_cached_at ON openlibrary_authors_cache(cached_at);
`

// WorksCacheSchema holds per-author works lists keyed by author id
const WorksCacheSchema = `
CREATE TABLE IF NOT EXISTS openlibrary_works_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_openlibrary_works_cached_at ON openlibrary_works_cache(cached_at);
`

// Table names
const (
	AuthorsTable = "openlibrary_authors_cache"
	WorksTable   = "openlibrary_works_cache"
)

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	AuthorsCacheSchema,
	WorksCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	AuthorsTable: true,
	WorksTable:   true,
}

// SourceTables maps the user-facing source names to their tables
var SourceTables = map[string][]string{
	"authors": {AuthorsTable},
	"works":   {WorksTable},
	"all":     {AuthorsTable, WorksTable},
}
