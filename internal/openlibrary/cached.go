package openlibrary

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/lepinkainen/authorscout/internal/cache"
)

// CachedClient wraps Client with the SQLite response cache.
// Empty results and failures are never cached.
type CachedClient struct {
	*Client
}

// NewCachedClient wraps c with response caching.
func NewCachedClient(c *Client) *CachedClient {
	return &CachedClient{Client: c}
}

// SearchAuthors performs a cached author search.
// Cache key: the NFKC-normalized, case-folded, space-collapsed query.
func (c *CachedClient) SearchAuthors(ctx context.Context, query string) ([]AuthorSummary, error) {
	result, _, err := cache.GetOrFetchWithPolicy(cache.AuthorsTable, normalizeQuery(query), func() ([]AuthorSummary, error) {
		return c.Client.SearchAuthors(ctx, query)
	}, func(authors []AuthorSummary) bool {
		return len(authors) > 0
	})
	return result, err
}

// AuthorWorks performs a cached works lookup.
// Cache key: author id plus limit.
func (c *CachedClient) AuthorWorks(ctx context.Context, authorKey string, limit int) ([]WorkSummary, error) {
	key := AuthorSummary{Key: authorKey}.AuthorID() + "_" + strconv.Itoa(limit)
	result, _, err := cache.GetOrFetchWithPolicy(cache.WorksTable, key, func() ([]WorkSummary, error) {
		return c.Client.AuthorWorks(ctx, authorKey, limit)
	}, func(works []WorkSummary) bool {
		return len(works) > 0
	})
	return result, err
}

func normalizeQuery(query string) string {
	query = norm.NFKC.String(query)
	query = cases.Fold().String(query)
	return strings.Join(strings.Fields(query), " ")
}
