package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tutorial-landing/pkg/youtube"
)

// colorDifferenceThreshold is the per-channel distance at which two sampled
// pixels count as different.
const colorDifferenceThreshold = 5000

// maxThumbnailBytes bounds a thumbnail download.
const maxThumbnailBytes = 5 * 1024 * 1024

// ErrPlaceholderThumbnail is returned for images that carry no picture, such as
// the flat gray frame served for missing qualities.
var ErrPlaceholderThumbnail = errors.New("thumbnail is a placeholder image")

// ThumbnailChecker verifies that thumbnail addresses point at real pictures
type ThumbnailChecker struct {
	client *http.Client
	logger zerolog.Logger
}

// NewThumbnailChecker creates a checker with the given per-request timeout
func NewThumbnailChecker(timeout time.Duration, logger zerolog.Logger) *ThumbnailChecker {
	return &ThumbnailChecker{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Candidates lists the thumbnail addresses to try for a video: the current one
// first, then every static quality.
func Candidates(id, current string) []string {
	seen := map[string]bool{}
	var urls []string
	for _, u := range append([]string{current}, staticThumbnails(id)...) {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}

func staticThumbnails(id string) []string {
	urls := make([]string, len(youtube.ThumbnailQualities))
	for i, q := range youtube.ThumbnailQualities {
		urls[i] = youtube.ThumbnailURLFor(id, q)
	}
	return urls
}

// Best returns the first candidate that passes Check.
func (c *ThumbnailChecker) Best(ctx context.Context, candidates []string) (string, bool) {
	for _, u := range candidates {
		err := c.Check(ctx, u)
		if err == nil {
			return u, true
		}
		c.logger.Debug().Err(err).Str("url", u).Msg("thumbnail rejected")
	}
	return "", false
}

// Check downloads and decodes the image at url and rejects placeholders.
func (c *ThumbnailChecker) Check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build thumbnail request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &youtube.HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return fmt.Errorf("decode thumbnail: %w", err)
	}
	return validateThumbnail(img)
}

// validateThumbnail samples a 10x10 grid and rejects images where almost every
// sample matches the top-left pixel.
func validateThumbnail(img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	sampleSize := 10
	stepX := width / sampleSize
	stepY := height / sampleSize

	if stepX == 0 {
		stepX = 1
	}
	if stepY == 0 {
		stepY = 1
	}

	r1, g1, b1, a1 := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	differentPixels := 0
	totalSamples := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			totalSamples++
			r2, g2, b2, a2 := img.At(x, y).RGBA()

			if abs(int(r1)-int(r2)) > colorDifferenceThreshold ||
				abs(int(g1)-int(g2)) > colorDifferenceThreshold ||
				abs(int(b1)-int(b2)) > colorDifferenceThreshold ||
				abs(int(a1)-int(a2)) > colorDifferenceThreshold {
				differentPixels++
			}
		}
	}

	if totalSamples > 0 && float64(differentPixels)/float64(totalSamples) < 0.01 {
		return fmt.Errorf("%w: only %d/%d sampled pixels differ", ErrPlaceholderThumbnail, differentPixels, totalSamples)
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
