package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/youtube"
)

// EnrichmentTTL is how long fetched metadata stays valid
const EnrichmentTTL = time.Hour

// Source refreshes the metadata of one video
type Source interface {
	Enrich(ctx context.Context, v models.Video) (models.Video, error)
}

// DataAPISource refreshes videos from the YouTube Data API
type DataAPISource struct {
	Fetcher *youtube.DataAPIFetcher
}

// Enrich replaces title, description and thumbnail with the API values
func (s DataAPISource) Enrich(ctx context.Context, v models.Video) (models.Video, error) {
	entry, err := s.Fetcher.Lookup(ctx, v.ID)
	if err != nil {
		return v, err
	}
	out := entry.Video
	out.IsNew = v.IsNew
	return out, nil
}

// PageSource refreshes videos without an API key: the title from oEmbed and the
// description from the watch page read through the relay.
type PageSource struct {
	OEmbed *youtube.OEmbedFetcher
	Relay  *youtube.RelayScraper
	Logger zerolog.Logger
}

// Enrich fails only when oEmbed fails. A missing description keeps the current one.
func (s PageSource) Enrich(ctx context.Context, v models.Video) (models.Video, error) {
	info, err := s.OEmbed.Info(ctx, v.ID)
	if err != nil {
		return v, err
	}
	if title := youtube.DecodeEntities(info.Title); title != "" {
		v.Title = title
	}

	description, err := s.Relay.Description(ctx, v.ID)
	if err != nil {
		s.Logger.Debug().Err(err).Str("video_id", v.ID).Msg("no page description, keeping configured one")
		return v, nil
	}
	v.Description = description
	return v, nil
}

// Enricher refreshes video metadata in the background and keeps the results in memory
type Enricher struct {
	source  Source
	thumbs  *ThumbnailChecker
	cache   *cache.Cache
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewEnricher creates an enricher pacing its requests by delay. thumbs is optional.
func NewEnricher(source Source, thumbs *ThumbnailChecker, delay time.Duration, logger zerolog.Logger) *Enricher {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Enricher{
		source:  source,
		thumbs:  thumbs,
		cache:   cache.New(EnrichmentTTL, 2*EnrichmentTTL),
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Run enriches videos one at a time. Failures are logged and leave the video as
// configured. It returns early only when ctx is done.
func (e *Enricher) Run(ctx context.Context, videos []models.Video) error {
	start := time.Now()
	enriched := 0

	for _, v := range videos {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}

		out, err := e.source.Enrich(ctx, v)
		if err != nil {
			e.logger.Warn().Err(err).Str("video_id", v.ID).Msg("failed to enrich video")
			continue
		}

		if e.thumbs != nil {
			if best, ok := e.thumbs.Best(ctx, Candidates(v.ID, out.Thumbnail)); ok {
				out.Thumbnail = best
			} else {
				out.Thumbnail = v.Thumbnail
			}
		}

		e.cache.Set(v.ID, out, cache.DefaultExpiration)
		enriched++
	}

	e.logger.Info().
		Int("videos", len(videos)).
		Int("enriched", enriched).
		Dur("took", time.Since(start)).
		Msg("enrichment finished")
	return nil
}

// Lookup returns the enriched copy of a video
func (e *Enricher) Lookup(id string) (models.Video, bool) {
	cached, found := e.cache.Get(id)
	if !found {
		return models.Video{}, false
	}
	return cached.(models.Video), true
}

// Overlay returns v with enriched metadata applied. The new flag always comes from v.
func (e *Enricher) Overlay(v models.Video) models.Video {
	enriched, ok := e.Lookup(v.ID)
	if !ok {
		return v
	}
	enriched.IsNew = v.IsNew
	return enriched
}
