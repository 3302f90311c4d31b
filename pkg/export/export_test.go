package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-landing/pkg/content"
	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/render"
)

// pageRenderer writes a one line summary of the page
type pageRenderer struct {
	err error
}

func (r pageRenderer) Render(w io.Writer, page render.Page) error {
	if r.err != nil {
		return r.err
	}
	toggle := ""
	if t := page.Videos.Grid.Toggle; t != nil {
		toggle = t.Href
	}
	_, err := fmt.Fprintf(w, "cards=%d toggle=%s playing=%s src=%s",
		len(page.Videos.Grid.Cards), toggle, page.State.Playing, page.Modal.Modal.Src)
	return err
}

func sampleContent(n int) *content.Content {
	c := &content.Content{Events: []models.Event{}, Experts: []models.Expert{}}
	for i := 0; i < n; i++ {
		c.Videos = append(c.Videos, models.Video{ID: fmt.Sprintf("video%06d", i), Title: fmt.Sprintf("Video %d", i)})
	}
	return c
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExportWritesViewsAndPlayPages(t *testing.T) {
	out := t.TempDir()
	e := New(pageRenderer{}, zerolog.Nop())

	written, err := e.Export(sampleContent(8), out, "")
	require.NoError(t, err)

	assert.Len(t, written, 10)
	assert.Equal(t, "index.html", written[0])
	assert.Equal(t, "all.html", written[1])
	assert.Contains(t, written, "play/video000007.html")

	assert.Equal(t, "cards=6 toggle=/all.html#videos playing= src=", readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, "cards=8 toggle=/index.html#videos playing= src=", readFile(t, filepath.Join(out, "all.html")))
	assert.Equal(t,
		"cards=6 toggle=/all.html#videos playing=video000000 src=https://www.youtube.com/embed/video000000?autoplay=1&rel=0",
		readFile(t, filepath.Join(out, "play", "video000000.html")))
	assert.Equal(t,
		"cards=8 toggle=/index.html#videos playing=video000007 src=https://www.youtube.com/embed/video000007?autoplay=1&rel=0",
		readFile(t, filepath.Join(out, "play", "video000007.html")))
}

func TestExportCopiesPublic(t *testing.T) {
	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "styles.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "img", "logo.svg"), []byte("<svg/>"), 0o644))

	out := t.TempDir()
	written, err := New(pageRenderer{}, zerolog.Nop()).Export(sampleContent(1), out, public)
	require.NoError(t, err)

	assert.Contains(t, written, "public/styles.css")
	assert.Contains(t, written, "public/img/logo.svg")
	assert.Equal(t, "<svg/>", readFile(t, filepath.Join(out, "public", "img", "logo.svg")))
}

func TestExportMissingPublicIsSkipped(t *testing.T) {
	out := t.TempDir()
	written, err := New(pageRenderer{}, zerolog.Nop()).Export(sampleContent(0), out, filepath.Join(out, "nope"))
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "all.html"}, written)
}

func TestExportNilContent(t *testing.T) {
	out := t.TempDir()
	written, err := New(pageRenderer{}, zerolog.Nop()).Export(nil, out, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "all.html"}, written)
}

func TestExportRenderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(pageRenderer{err: boom}, zerolog.Nop()).Export(sampleContent(1), t.TempDir(), "")
	require.ErrorIs(t, err, boom)
}

func TestExportSkipsMalformedIDs(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "site")
	c := sampleContent(1)
	c.Videos = append(c.Videos,
		models.Video{ID: "../../pwn"},
		models.Video{ID: "../escape11"},
		models.Video{ID: "abc def/x"},
	)

	written, err := New(pageRenderer{}, zerolog.Nop()).Export(c, out, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html", "all.html", "play/video000000.html"}, written)
	assert.NoFileExists(t, filepath.Join(root, "pwn.html"))
	assert.NoFileExists(t, filepath.Join(out, "escape11.html"))
	assert.NoDirExists(t, filepath.Join(out, "play", "abc def"))
}

func TestWithin(t *testing.T) {
	dir := t.TempDir()

	path, err := within(dir, "play/video000000.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "play", "video000000.html"), path)

	_, err = within(dir, "play/../../pwn.html")
	assert.ErrorIs(t, err, ErrOutsideOutput)

	_, err = within(dir, "..")
	assert.ErrorIs(t, err, ErrOutsideOutput)

	path, err = within(dir, "play/../index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.html"), path)
}
