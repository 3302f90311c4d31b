package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// PlayTracker records video plays as log events and as a Prometheus counter
type PlayTracker struct {
	plays  *prometheus.CounterVec
	logger zerolog.Logger
}

// NewPlayTracker registers the play counter with reg
func NewPlayTracker(reg prometheus.Registerer, logger zerolog.Logger) *PlayTracker {
	return &PlayTracker{
		plays: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "landing_video_plays_total",
			Help: "Videos opened in the player, by video id.",
		}, []string{"video_id"}),
		logger: logger,
	}
}

// TrackVideoPlay records one play
func (t *PlayTracker) TrackVideoPlay(_ context.Context, videoID, title string) {
	t.plays.WithLabelValues(videoID).Inc()
	t.logger.Info().
		Str("event", "video_play").
		Str("event_id", uuid.NewString()).
		Str("event_category", "Video").
		Str("event_label", title).
		Str("video_id", videoID).
		Str("video_title", title).
		Msg("video played")
}
