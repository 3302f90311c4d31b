// Package youtube turns YouTube URLs into normalized video records.
package youtube

import (
	"fmt"
	"regexp"
)

// videoIDPatterns are tried in order; the first valid capture wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

var videoIDFormat = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ValidVideoID reports whether id has the shape of a YouTube video id:
// eleven characters from the URL-safe base64 alphabet.
func ValidVideoID(id string) bool {
	return videoIDFormat.MatchString(id)
}

// ExtractVideoID pulls the video identifier out of a watch, short or embed URL.
// It reports false when the input does not look like any of them or the
// captured id is not a well formed video id.
func ExtractVideoID(s string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(s); m != nil && ValidVideoID(m[1]) {
			return m[1], true
		}
	}
	return "", false
}

// WatchURL returns the public page of a video.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// EmbedURL returns the autoplaying player URL used by the playback modal.
func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&rel=0", id)
}

// Static thumbnail qualities, best first. Not every video has a maxres image.
var ThumbnailQualities = []string{"maxresdefault", "sddefault", "hqdefault", "mqdefault"}

// ThumbnailURL builds the static maxres thumbnail address for a video.
func ThumbnailURL(id string) string {
	return ThumbnailURLFor(id, ThumbnailQualities[0])
}

// ThumbnailURLFor builds the static thumbnail address of the given quality.
func ThumbnailURLFor(id, quality string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}
