package youtube

import (
	"html"
	"strings"
	"unicode"
)

// wordSlack is how far before the limit a word boundary may be and still be used.
const wordSlack = 20

// Ellipsis terminates every truncated text.
const Ellipsis = "..."

// Truncate shortens s to at most limit runes plus the ellipsis. It cuts at the last
// whitespace at or before limit unless that is more than wordSlack runes back, in
// which case the text is hard cut at limit. Text that fits is returned untouched.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit < 0 || len(runes) <= limit {
		return s
	}

	cut := limit
	for i := limit; i >= 0 && i > limit-wordSlack; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	return string(runes[:cut]) + Ellipsis
}

// DecodeEntities resolves the HTML entities YouTube leaves in titles and meta tags.
func DecodeEntities(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}
