package videoconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-landing/pkg/models"
)

func sampleVideos() []models.Video {
	return []models.Video{
		{
			ID:          "abc123",
			Title:       `Agents & "Tools" <live>`,
			Description: "A tour of everything.",
			Thumbnail:   "https://img.youtube.com/vi/abc123/maxresdefault.jpg",
			IsNew:       true,
		},
		{
			ID:          "def456",
			Title:       "Second",
			Description: "Second description.",
			Thumbnail:   "https://img.youtube.com/vi/def456/maxresdefault.jpg",
		},
	}
}

func TestMarshalLayout(t *testing.T) {
	data, err := Marshal(sampleVideos()[1:], HeaderOEmbed)
	require.NoError(t, err)

	want := `// Video Configuration
// Generated automatically from YouTube URLs
// Add your YouTube video IDs and details here
const videoConfig = [
    {
        "id": "def456",
        "title": "Second",
        "description": "Second description.",
        "thumbnail": "https://img.youtube.com/vi/def456/maxresdefault.jpg"
    }
];

// Export for use in other scripts
if (typeof module !== 'undefined' && module.exports) {
    module.exports = videoConfig;
}
`
	assert.Equal(t, want, string(data))
}

func TestMarshalKeepsCharactersUnescaped(t *testing.T) {
	data, err := Marshal(sampleVideos(), HeaderDataAPI)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "// "+HeaderDataAPI+"\n")
	assert.Contains(t, out, `"title": "Agents & \"Tools\" <live>"`)
	assert.Contains(t, out, `"isNew": true`)
	assert.Equal(t, 1, strings.Count(out, `"isNew"`))
}

func TestMarshalNil(t *testing.T) {
	data, err := Marshal(nil, HeaderOEmbed)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const videoConfig = [];\n")

	videos, err := Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestMarshalDeterministic(t *testing.T) {
	a, err := Marshal(sampleVideos(), HeaderOEmbed)
	require.NoError(t, err)
	b, err := Marshal(sampleVideos(), HeaderOEmbed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseRoundTrip(t *testing.T) {
	data, err := Marshal(sampleVideos(), HeaderDataAPI)
	require.NoError(t, err)

	got, err := Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	if diff := cmp.Diff(sampleVideos(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	src := "// Video Configuration\nconst videoConfig = [{\"id\": \"x\", \"title\": \"T\", \"description\": \"D\", \"thumbnail\": \"U\"}];\n\nif (typeof module !== 'undefined' && module.exports) {\n    module.exports = videoConfig;\n}"

	got, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []models.Video{{ID: "x", Title: "T", Description: "D", Thumbnail: "U"}}, got)
}

func TestParseNoBinding(t *testing.T) {
	_, err := Parse(strings.NewReader("const somethingElse = [];"))
	assert.ErrorIs(t, err, ErrNoBinding)
}

func TestWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must disappear"), 0o644))

	require.NoError(t, WriteFile(path, sampleVideos()[:1], HeaderOEmbed))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleVideos()[:1], got))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
