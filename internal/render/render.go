// Package render turns a page.View into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"psaxe.dev/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	tmpl     *template.Template
	imageURL string
}

// New parses the embedded templates. imageURL is where the profile image is served.
func New(imageURL string) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, imageURL: imageURL}, nil
}

type document struct {
	page.View
	ImageURL string
}

// Render writes the full document for v
func (r *Renderer) Render(w io.Writer, v page.View) error {
	return r.tmpl.ExecuteTemplate(w, "layout", document{View: v, ImageURL: r.imageURL})
}

// RenderBytes renders into a buffer
func (r *Renderer) RenderBytes(v page.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
