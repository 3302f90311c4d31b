package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/generator"
	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/videoconfig"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"YOUTUBE_API_KEY", "YOUTUBE_API_URL", "BUCKET_NAME", "LOG_LEVEL", "OEMBED_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("SITE_CONFIG", filepath.Join(dir, "site.yaml"))
	t.Setenv("VIDEO_CONFIG", filepath.Join(dir, "config.js"))
	return dir
}

func TestGenerateConfig(t *testing.T) {
	dir := isolate(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Agents &amp; Tools","author_name":"Jane"}`))
	}))
	defer server.Close()
	t.Setenv("OEMBED_URL", server.URL)

	input := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(input, []byte("# list\nhttps://youtu.be/dQw4w9WgXcQ\n\nnot a url\nhttps://www.youtube.com/watch?v=7_DL6Er9RlY\n"), 0o644))
	output := filepath.Join(dir, "out.js")

	_, err := execute(t, "generate-config", input, output)
	require.NoError(t, err)

	videos, err := videoconfig.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "dQw4w9WgXcQ", videos[0].ID)
	assert.Equal(t, "7_DL6Er9RlY", videos[1].ID)
	assert.Equal(t, "Agents & Tools", videos[0].Title)
	assert.False(t, videos[0].IsNew)
}

func TestGenerateConfigNoVideos(t *testing.T) {
	dir := isolate(t)
	input := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(input, []byte("# nothing here\n\n"), 0o644))

	_, err := execute(t, "generate-config", input)
	require.ErrorIs(t, err, generator.ErrNoVideos)

	_, statErr := os.Stat(filepath.Join(dir, "config.js"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateConfigMissingInput(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "generate-config", filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, generator.ErrInputUnreadable)
}

func TestGenerateConfigSample(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "generate-config", "--sample")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, sampleFile))
	require.NoError(t, err)
	assert.Equal(t, generator.SampleURLs, string(data))
}

func TestGenerateVideoConfigRequiresKey(t *testing.T) {
	isolate(t)

	_, err := execute(t, "generate-video-config")
	require.ErrorIs(t, err, config.ErrAPIKeyNotSet)
}

func TestGenerateVideoConfigDefaultsToVideoConfig(t *testing.T) {
	dir := isolate(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"` + r.URL.Query().Get("id") + `","snippet":{"title":"From the API","publishedAt":"2024-05-01T10:00:00Z"}}]}`))
	}))
	defer server.Close()
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_API_URL", server.URL+"/")

	target := filepath.Join(dir, "public", "videos.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	t.Setenv("VIDEO_CONFIG", target)

	input := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(input, []byte("https://youtu.be/dQw4w9WgXcQ\n"), 0o644))

	_, err := execute(t, "generate-video-config", "--input", input)
	require.NoError(t, err)

	videos, err := videoconfig.ReadFile(target)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "dQw4w9WgXcQ", videos[0].ID)
	assert.Equal(t, "From the API", videos[0].Title)
	assert.NoFileExists(t, filepath.Join(dir, "config.js"))

	explicit := filepath.Join(dir, "explicit.js")
	_, err = execute(t, "generate-video-config", "--input", input, "--output", explicit)
	require.NoError(t, err)
	assert.FileExists(t, explicit)
}

func TestPublishRequiresBucket(t *testing.T) {
	isolate(t)

	_, err := execute(t, "publish")
	require.ErrorIs(t, err, config.ErrBucketNameNotSet)
}

func TestExport(t *testing.T) {
	dir := isolate(t)
	videos := []models.Video{{ID: "abc123", Title: "First"}, {ID: "def456", Title: "Second"}}
	require.NoError(t, videoconfig.WriteFile(filepath.Join(dir, "config.js"), videos, videoconfig.HeaderOEmbed))

	out, err := execute(t, "export")
	require.NoError(t, err)

	var got []models.Video
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, videos, got)
}

func TestExportUnsupportedFormat(t *testing.T) {
	isolate(t)

	_, err := execute(t, "export", "xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.50 KB", formatSize(1536))
	assert.Equal(t, "2.00 MB", formatSize(2*1024*1024))
}
