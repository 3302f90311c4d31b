package generator

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tutorial-landing/pkg/youtube"
)

// Entry is re-exported so callers of this package need not import youtube.
type Entry = youtube.Entry

// Generator fetches metadata for a batch of sources one at a time.
type Generator struct {
	fetcher youtube.Fetcher
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// New creates a generator that waits delay between consecutive requests.
// A zero delay disables pacing.
func New(fetcher youtube.Fetcher, delay time.Duration, logger zerolog.Logger) *Generator {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Generator{
		fetcher: fetcher,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Run fetches every source in order. Each source yields exactly one entry; the
// output keeps input order, duplicates included. A cancelled context stops the
// batch and returns the entries gathered so far together with the context error.
func (g *Generator) Run(ctx context.Context, sources []Source) ([]Entry, error) {
	entries := make([]Entry, 0, len(sources))

	for i, src := range sources {
		if err := g.limiter.Wait(ctx); err != nil {
			return entries, err
		}

		g.logger.Info().
			Int("index", i+1).
			Int("total", len(sources)).
			Str("video_id", src.ID).
			Msg("fetching metadata")

		entry := g.fetcher.Fetch(ctx, src.ID)
		entries = append(entries, entry)

		event := g.logger.Info().Str("video_id", entry.ID).Str("title", entry.Title)
		if entry.Dated() {
			event = event.Str("published", entry.PublishedAt.Format(time.DateOnly))
		}
		event.Msg("added video")
	}

	return entries, nil
}
