package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
)

// Renderer writes a page as HTML.
type Renderer interface {
	Render(w io.Writer, page Page) error
}

type executor interface {
	Execute(w io.Writer, data any) error
}

// PugRenderer executes a pug template compiled once at construction.
type PugRenderer struct {
	tmpl executor
}

// NewPugRenderer compiles the named template from viewsDir. Includes and
// extends resolve against viewsDir, which may be relative to the working directory.
func NewPugRenderer(viewsDir, name string) (*PugRenderer, error) {
	dir, err := filepath.Abs(viewsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve views dir %s: %w", viewsDir, err)
	}
	tmpl, err := pug.CompileFile(name, pug.Options{Dir: compiler.FsDir(dir)})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", filepath.Join(dir, name), err)
	}
	return &PugRenderer{tmpl: tmpl}, nil
}

// Render executes the template with page as its data.
func (r *PugRenderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}
