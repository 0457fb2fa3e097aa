package openlibrary

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// AuthorWorks lists up to limit works for the author identified by authorKey.
// Both "OL26320A" and "/authors/OL26320A" are accepted. Catalog order is kept.
func (c *Client) AuthorWorks(ctx context.Context, authorKey string, limit int) ([]WorkSummary, error) {
	id := AuthorSummary{Key: authorKey}.AuthorID()
	if id == "" {
		return nil, fmt.Errorf("author works: empty author key")
	}
	if limit <= 0 {
		limit = 1
	}

	endpoint := c.baseURL + worksPath(id) + "?limit=" + strconv.Itoa(limit)

	var response worksResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("author works %s: %w", id, err)
	}

	works := make([]WorkSummary, 0, min(limit, len(response.Entries)))
	for _, entry := range response.Entries {
		if len(works) >= limit {
			break
		}
		work := WorkSummary{Title: strings.TrimSpace(entry.Title)}
		if len(entry.Covers) > 0 && entry.Covers[0] > 0 {
			work.CoverID = entry.Covers[0]
		}
		works = append(works, work)
	}
	return works, nil
}
