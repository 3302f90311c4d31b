package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorial-landing/pkg/models"
)

// Entry is a video record together with the data only needed while generating it.
type Entry struct {
	models.Video
	// PublishedAt is zero when the source did not provide a publish date.
	PublishedAt time.Time
}

// Dated reports whether the entry carries a publish timestamp.
func (e Entry) Dated() bool {
	return !e.PublishedAt.IsZero()
}

// Fetcher resolves metadata for one video. Implementations never fail: when the
// remote source cannot be used they return a placeholder entry.
type Fetcher interface {
	Fetch(ctx context.Context, id string) Entry
}

// Sentinel errors for metadata lookups.
var (
	// ErrMissingAPIKey is returned when the Data API fetcher is built without a key.
	ErrMissingAPIKey = errors.New("youtube: API key is required")
	// ErrVideoNotFound indicates the API returned no item for the identifier.
	ErrVideoNotFound = errors.New("youtube: video not found")
	// ErrNoDescription indicates a page carried no description meta tag.
	ErrNoDescription = errors.New("youtube: no description found")
)

// HTTPError indicates a non-2xx response from a metadata endpoint.
type HTTPError struct {
	URL        string
	StatusCode int
}

// Error returns a string representation of the HTTP error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d from %s", e.StatusCode, e.URL)
}

// OEmbedPlaceholder is substituted when the oEmbed endpoint cannot describe a video.
func OEmbedPlaceholder(id string) Entry {
	return Entry{Video: models.Video{
		ID:          id,
		Title:       "AI Development Tutorial " + id,
		Description: "Discover AI-powered development techniques and tools.",
		Thumbnail:   ThumbnailURL(id),
	}}
}

// DataAPIPlaceholder is substituted when the Data API cannot describe a video.
// It carries no publish date.
func DataAPIPlaceholder(id string) Entry {
	return Entry{Video: models.Video{
		ID:          id,
		Title:       "Video Title Unavailable",
		Description: "Video content available on YouTube. Click to watch.",
		Thumbnail:   ThumbnailURL(id),
	}}
}
