package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lepinkainen/authorscout/internal/search"
	"github.com/lepinkainen/authorscout/internal/view"
)

var stdout io.Writer = os.Stdout

// SearchCmd runs one search and prints the result
type SearchCmd struct {
	Author string `arg:"" help:"Author name to search for"`
	Title  string `short:"t" help:"Only keep authors whose top work contains this text"`
	JSON   bool   `help:"Print the result as JSON instead of text"`
}

type searchOutput struct {
	search.Result
	Error string `json:"error,omitempty"`
}

func (s *SearchCmd) Run() error {
	q := search.Query{Author: s.Author, Title: s.Title}
	if !q.Valid() {
		return fmt.Errorf("author name is required")
	}

	hist, closeHistory, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = closeHistory() }()

	client := newClient()

	var v search.View = view.NewText(stdout, coverLinker(client))
	if s.JSON {
		v = view.NewBoard()
	}

	res := search.New(newCatalog(client), hist, v).Search(context.Background(), q)

	if s.JSON {
		out := searchOutput{Result: res}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	if res.Err != nil {
		return fmt.Errorf("author search failed: %w", res.Err)
	}
	return nil
}
