package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tutorial-landing/pkg/models"
)

// DefaultOEmbedURL is the public oEmbed endpoint.
const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// OEmbedFetcher reads titles and authors from the oEmbed endpoint. The endpoint
// does not expose descriptions, so one is composed from the author and title.
type OEmbedFetcher struct {
	Endpoint string
	Client   *http.Client
	Logger   zerolog.Logger
}

// OEmbedInfo is the subset of the oEmbed document that is used.
type OEmbedInfo struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// NewOEmbedFetcher creates a fetcher with the given per-request timeout.
func NewOEmbedFetcher(endpoint string, timeout time.Duration, logger zerolog.Logger) *OEmbedFetcher {
	if endpoint == "" {
		endpoint = DefaultOEmbedURL
	}
	return &OEmbedFetcher{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
		Logger:   logger,
	}
}

// Fetch returns the metadata of a video, or OEmbedPlaceholder when anything goes wrong.
func (f *OEmbedFetcher) Fetch(ctx context.Context, id string) Entry {
	entry, err := f.lookup(ctx, id)
	if err != nil {
		f.Logger.Warn().Err(err).Str("video_id", id).Msg("could not fetch oEmbed info, using placeholder")
		return OEmbedPlaceholder(id)
	}
	return entry
}

func (f *OEmbedFetcher) lookup(ctx context.Context, id string) (Entry, error) {
	data, err := f.Info(ctx, id)
	if err != nil {
		return Entry{}, err
	}

	title := DecodeEntities(data.Title)
	if title == "" {
		title = "YouTube Video " + id
	}
	author := data.AuthorName
	if author == "" {
		author = "Unknown"
	}

	return Entry{Video: models.Video{
		ID:          id,
		Title:       title,
		Description: fmt.Sprintf("Learn from %s's tutorial on %s. Master AI-powered development techniques.", author, strings.ToLower(title)),
		Thumbnail:   ThumbnailURL(id),
	}}, nil
}

// Info performs the raw oEmbed request.
func (f *OEmbedFetcher) Info(ctx context.Context, id string) (*OEmbedInfo, error) {
	q := url.Values{}
	q.Set("url", WatchURL(id))
	q.Set("format", "json")
	endpoint := f.Endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build oEmbed request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch oEmbed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{URL: f.Endpoint, StatusCode: resp.StatusCode}
	}

	var data OEmbedInfo
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("parse oEmbed response: %w", err)
	}
	return &data, nil
}
