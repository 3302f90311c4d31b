// Package export writes the landing page as a static site: one file per view
// and one per playable video, plus the public assets.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"tutorial-landing/pkg/content"
	"tutorial-landing/pkg/render"
	"tutorial-landing/pkg/youtube"
)

// ErrOutsideOutput is returned for a page path that would leave the output directory.
var ErrOutsideOutput = errors.New("path escapes output directory")

// Exporter renders pages into a directory
type Exporter struct {
	Builder  *render.Builder
	Renderer render.Renderer
	Logger   zerolog.Logger
}

// New returns an exporter linking pages by their static file names
func New(renderer render.Renderer, logger zerolog.Logger) *Exporter {
	return &Exporter{
		Builder:  render.NewBuilder(render.StaticRoutes, logger),
		Renderer: renderer,
		Logger:   logger,
	}
}

// Export writes index.html, all.html and play/<id>.html below outDir and copies
// publicDir to outDir/public when it exists. Videos whose id is not well formed
// get no play page. It returns the written paths relative to outDir.
func (e *Exporter) Export(c *content.Content, outDir, publicDir string) ([]string, error) {
	var written []string
	write := func(rel string, state render.State) error {
		path, err := within(outDir, rel)
		if err != nil {
			return err
		}
		if err := e.writePage(path, e.Builder.Build(c, state)); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	}

	if err := write("index.html", render.State{}); err != nil {
		return written, err
	}
	if err := write("all.html", render.State{ShowAll: true}); err != nil {
		return written, err
	}

	var videos []string
	if c != nil {
		for i, v := range c.Videos {
			if !youtube.ValidVideoID(v.ID) {
				e.Logger.Warn().Str("video_id", v.ID).Msg("malformed video id, play page skipped")
				continue
			}
			// Videos past the featured cap open over the full view
			state := render.State{ShowAll: i >= e.Builder.Featured, Playing: v.ID}
			if err := write("play/"+v.ID+".html", state); err != nil {
				return written, err
			}
			videos = append(videos, v.ID)
		}
	}

	if publicDir != "" {
		copied, err := copyDir(publicDir, filepath.Join(outDir, "public"))
		if err != nil {
			return written, err
		}
		written = append(written, copied...)
	}

	e.Logger.Info().Int("files", len(written)).Int("videos", len(videos)).Str("dir", outDir).Msg("site exported")
	return written, nil
}

// within joins the slash separated rel onto dir and rejects results outside dir.
func within(dir, rel string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	r, err := filepath.Rel(dir, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideOutput, rel)
	}
	return path, nil
}

func (e *Exporter) writePage(path string, page render.Page) error {
	var buf bytes.Buffer
	if err := e.Renderer.Render(&buf, page); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

// copyDir copies the regular files below src into dst. A missing src copies nothing.
func copyDir(src, dst string) ([]string, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil, nil
	}

	var copied []string
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(p, target); err != nil {
			return err
		}
		copied = append(copied, filepath.ToSlash(filepath.Join("public", rel)))
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := renameio.NewPendingFile(dst, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer out.Cleanup()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.CloseAtomicallyReplace()
}
