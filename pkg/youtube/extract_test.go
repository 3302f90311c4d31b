package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"watch with fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments", "dQw4w9WgXcQ", true},
		{"watch v not first", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short with query", "https://youtu.be/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ", true},
		{"short with fragment", "https://youtu.be/dQw4w9WgXcQ#t=10", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed with query", "https://www.youtube.com/embed/dQw4w9WgXcQ?start=5", "dQw4w9WgXcQ", true},
		{"dash and underscore", "https://youtu.be/7_DL6Er9RlY", "7_DL6Er9RlY", true},
		{"not youtube", "https://vimeo.com/12345", "", false},
		{"channel page", "https://www.youtube.com/@someone", "", false},
		{"empty", "", "", false},
		{"garbage", "not a url at all", "", false},
		{"path traversal", "https://youtu.be/../../pwn", "", false},
		{"traversal to eleven chars", "https://youtu.be/../../pwn1", "", false},
		{"space and slash", "https://www.youtube.com/watch?v=abc def/x", "", false},
		{"too short", "https://youtu.be/abc123", "", false},
		{"too long", "https://youtu.be/dQw4w9WgXcQx", "", false},
		{"trailing slash", "https://youtu.be/dQw4w9WgXcQ/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestValidVideoID(t *testing.T) {
	assert.True(t, ValidVideoID("dQw4w9WgXcQ"))
	assert.True(t, ValidVideoID("7_DL6Er9RlY"))
	assert.True(t, ValidVideoID("-----------"))
	assert.False(t, ValidVideoID(""))
	assert.False(t, ValidVideoID("vid0"))
	assert.False(t, ValidVideoID("../../pwn11"))
	assert.False(t, ValidVideoID("dQw4w9WgXc/"))
	assert.False(t, ValidVideoID("dQw4w9WgXc\n"))
}

func TestURLBuilders(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", WatchURL("abc"))
	assert.Equal(t, "https://www.youtube.com/embed/abc?autoplay=1&rel=0", EmbedURL("abc"))
	assert.Equal(t, "https://img.youtube.com/vi/abc/maxresdefault.jpg", ThumbnailURL("abc"))
}

func TestThumbnailURLFor(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc/hqdefault.jpg", ThumbnailURLFor("abc", "hqdefault"))
	assert.Equal(t, "maxresdefault", ThumbnailQualities[0])
}
