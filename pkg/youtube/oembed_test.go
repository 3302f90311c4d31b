package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOEmbedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "https://www.youtube.com/watch?v=abc123", r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOEmbedFetch(t *testing.T) {
	server := newOEmbedServer(t, http.StatusOK, `{"title":"Building Agents &amp; Tools","author_name":"Jane Doe"}`)
	fetcher := NewOEmbedFetcher(server.URL, time.Second, zerolog.Nop())

	entry := fetcher.Fetch(context.Background(), "abc123")

	assert.Equal(t, "abc123", entry.ID)
	assert.Equal(t, "Building Agents & Tools", entry.Title)
	assert.Equal(t, "Learn from Jane Doe's tutorial on building agents & tools. Master AI-powered development techniques.", entry.Description)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg", entry.Thumbnail)
	assert.False(t, entry.Dated())
	assert.False(t, entry.IsNew)
}

func TestOEmbedFetchMissingFields(t *testing.T) {
	server := newOEmbedServer(t, http.StatusOK, `{}`)
	fetcher := NewOEmbedFetcher(server.URL, time.Second, zerolog.Nop())

	entry := fetcher.Fetch(context.Background(), "abc123")

	assert.Equal(t, "YouTube Video abc123", entry.Title)
	assert.Equal(t, "Learn from Unknown's tutorial on youtube video abc123. Master AI-powered development techniques.", entry.Description)
}

func TestOEmbedFetchFailureUsesPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `Not Found`},
		{"unauthorized", http.StatusUnauthorized, `Unauthorized`},
		{"malformed body", http.StatusOK, `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOEmbedServer(t, tt.status, tt.body)
			fetcher := NewOEmbedFetcher(server.URL, time.Second, zerolog.Nop())

			entry := fetcher.Fetch(context.Background(), "abc123")
			assert.Equal(t, OEmbedPlaceholder("abc123"), entry)
		})
	}
}

func TestOEmbedInfoHTTPError(t *testing.T) {
	server := newOEmbedServer(t, http.StatusForbidden, ``)
	fetcher := NewOEmbedFetcher(server.URL, time.Second, zerolog.Nop())

	_, err := fetcher.Info(context.Background(), "abc123")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}

func TestOEmbedPlaceholder(t *testing.T) {
	entry := OEmbedPlaceholder("xyz")

	assert.Equal(t, "AI Development Tutorial xyz", entry.Title)
	assert.Equal(t, "Discover AI-powered development techniques and tools.", entry.Description)
	assert.Equal(t, ThumbnailURL("xyz"), entry.Thumbnail)
}
