package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"index.html", "all.html", "play/abc.html", "public/styles.css"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"all.html", "index.html", "play/abc.html", "public/styles.css"}, files)
}

func TestListFilesMissingDir(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html":        "text/html; charset=utf-8",
		"config.js":         "text/javascript; charset=utf-8",
		"public/styles.css": "text/css; charset=utf-8",
		"logo.png":          "image/png",
		"README":            "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}
