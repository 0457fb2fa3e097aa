package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/authorscout/internal/openlibrary"
)

// CoverCmd downloads one cover image
type CoverCmd struct {
	ID       int    `arg:"" help:"Open Library cover id"`
	Size     string `help:"Cover size: S, M or L" enum:"S,M,L" default:"L"`
	Output   string `short:"o" help:"Where to save the image (defaults to covers/<id>-<size>.jpg)"`
	MaxWidth int    `help:"Downsize wider images to this many pixels" default:"600"`
}

func (c *CoverCmd) Run() error {
	if c.ID <= 0 {
		return fmt.Errorf("cover id must be positive, got %d", c.ID)
	}

	output := c.Output
	if output == "" {
		output = filepath.Join("covers", fmt.Sprintf("%d-%s.jpg", c.ID, c.Size))
	}

	if err := newClient().DownloadCover(context.Background(), c.ID, openlibrary.CoverSize(c.Size), output, c.MaxWidth); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Saved cover %d to %s\n", c.ID, output)
	return nil
}
