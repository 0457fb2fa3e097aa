package openlibrary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	apperrors "github.com/lepinkainen/authorscout/internal/errors"
)

// CoverURL builds the image URL for a cover id. Returns "" for ids <= 0.
func (c *Client) CoverURL(coverID int, size CoverSize) string {
	if coverID <= 0 {
		return ""
	}
	if !size.Valid() {
		size = CoverMedium
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversURL, coverID, size)
}

// DownloadCover fetches a cover and stores it as JPEG at savePath,
// downscaling it to maxWidth when wider.
func (c *Client) DownloadCover(ctx context.Context, coverID int, size CoverSize, savePath string, maxWidth int) error {
	imageURL := c.CoverURL(coverID, size)
	if imageURL == "" {
		return fmt.Errorf("invalid cover ID: %d", coverID)
	}
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download cover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewStatusError(imageURL, resp.StatusCode, "")
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode cover %d: %w", coverID, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return err
	}

	if err := imaging.Save(img, savePath, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("failed to save cover: %w", err)
	}

	slog.Info("Downloaded cover", "cover_id", coverID, "path", savePath)
	return nil
}
