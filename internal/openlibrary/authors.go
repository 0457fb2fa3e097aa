package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SearchAuthors runs a free-text author search. Results keep catalog order.
func (c *Client) SearchAuthors(ctx context.Context, query string) ([]AuthorSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search authors: empty query")
	}

	params := url.Values{}
	params.Set("q", query)
	endpoint := fmt.Sprintf("%s/search/authors.json?%s", c.baseURL, params.Encode())

	var response authorSearchResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("search authors %q: %w", query, err)
	}

	authors := make([]AuthorSummary, 0, len(response.Docs))
	for _, doc := range response.Docs {
		if strings.TrimSpace(doc.Name) == "" {
			continue
		}
		authors = append(authors, doc)
	}
	return authors, nil
}
