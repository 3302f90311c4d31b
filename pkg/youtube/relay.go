package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// DefaultRelayURL is the CORS relay used to read public watch pages.
const DefaultRelayURL = "https://api.allorigins.win/get"

// maxRelayBody bounds the relayed page size.
const maxRelayBody = 10 * 1024 * 1024

// RelayScraper reads the description meta tag of a watch page through a relay
// that wraps the page in {"contents": "..."}.
type RelayScraper struct {
	Endpoint string
	Client   *http.Client
	Limit    int
}

type relayResponse struct {
	Contents string `json:"contents"`
}

// NewRelayScraper creates a scraper with the given per-request timeout.
func NewRelayScraper(endpoint string, timeout time.Duration, limit int) *RelayScraper {
	if endpoint == "" {
		endpoint = DefaultRelayURL
	}
	return &RelayScraper{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
		Limit:    limit,
	}
}

// Description returns the truncated description of a video page.
func (s *RelayScraper) Description(ctx context.Context, id string) (string, error) {
	endpoint := s.Endpoint + "?url=" + url.QueryEscape(WatchURL(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build relay request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{URL: s.Endpoint, StatusCode: resp.StatusCode}
	}

	var wrapped relayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRelayBody)).Decode(&wrapped); err != nil {
		return "", fmt.Errorf("parse relay response: %w", err)
	}

	description, err := DescriptionFromHTML(wrapped.Contents, WatchURL(id))
	if err != nil {
		return "", err
	}
	return Truncate(description, s.Limit), nil
}

// DescriptionFromHTML extracts the page description: the description meta tag,
// then og:description, then the readability excerpt.
func DescriptionFromHTML(page, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content, nil
			}
		}
	}

	parsed, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader([]byte(page)), parsed)
	if err == nil && strings.TrimSpace(article.Excerpt) != "" {
		return strings.TrimSpace(article.Excerpt), nil
	}

	return "", ErrNoDescription
}
