package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"tutorial-landing/pkg/models"
)

// minDescriptionLength is the shortest description worth showing on a card.
const minDescriptionLength = 10

// DataAPIFetcher implements Fetcher using YouTube Data API v3.
type DataAPIFetcher struct {
	service *yt.Service
	timeout time.Duration
	limit   int
	logger  zerolog.Logger
}

// NewDataAPIFetcher creates a Data API fetcher. An empty key is rejected with
// ErrMissingAPIKey before any network activity happens.
func NewDataAPIFetcher(ctx context.Context, apiKey string, timeout time.Duration, descriptionLimit int, logger zerolog.Logger, opts ...option.ClientOption) (*DataAPIFetcher, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &DataAPIFetcher{
		service: service,
		timeout: timeout,
		limit:   descriptionLimit,
		logger:  logger,
	}, nil
}

// Fetch returns the metadata of a video, or DataAPIPlaceholder when the lookup fails.
func (f *DataAPIFetcher) Fetch(ctx context.Context, id string) Entry {
	entry, err := f.Lookup(ctx, id)
	if err != nil {
		f.logger.Error().Err(err).Str("video_id", id).Msg("error processing video, using placeholder")
		return DataAPIPlaceholder(id)
	}
	return entry
}

// Lookup fetches the snippet of one video and normalizes it.
func (f *DataAPIFetcher) Lookup(ctx context.Context, id string) (Entry, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.service.Videos.List([]string{"snippet", "contentDetails"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return Entry{}, fmt.Errorf("fetch from YouTube API: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}

	return f.normalize(id, resp.Items[0].Snippet), nil
}

func (f *DataAPIFetcher) normalize(id string, snippet *yt.VideoSnippet) Entry {
	entry := Entry{Video: models.Video{
		ID:          id,
		Title:       snippet.Title,
		Description: NormalizeDescription(snippet.Title, snippet.Description, f.limit),
		Thumbnail:   bestThumbnail(id, snippet.Thumbnails),
	}}

	if snippet.PublishedAt != "" {
		published, err := time.Parse(time.RFC3339, snippet.PublishedAt)
		if err != nil {
			f.logger.Warn().Err(err).Str("video_id", id).Msg("ignoring unparseable publish date")
		} else {
			entry.PublishedAt = published
		}
	}
	return entry
}

// NormalizeDescription truncates a source description and replaces empty or
// near-empty ones with a generic call to action.
func NormalizeDescription(title, description string, limit int) string {
	description = Truncate(description, limit)
	if len([]rune(strings.TrimSpace(description))) < minDescriptionLength {
		return fmt.Sprintf(`Watch "%s" for detailed insights and information. Click to view the full video content.`, title)
	}
	return description
}

// bestThumbnail prefers maxres, then high, then medium, then the static default.
func bestThumbnail(id string, details *yt.ThumbnailDetails) string {
	if details != nil {
		for _, t := range []*yt.Thumbnail{details.Maxres, details.High, details.Medium} {
			if t != nil && t.Url != "" {
				return t.Url
			}
		}
	}
	return ThumbnailURL(id)
}
