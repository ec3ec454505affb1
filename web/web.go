// Package web holds the embedded page templates and static assets, the view
// model each page is rendered with, and the Renderer that executes them.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by [Renderer.Render].
const (
	PageHome      = "home"
	PageGenerator = "generator"
	PageEditor    = "editor"
	PageReview    = "review"
	PageAbout     = "about"
)

// ErrUnknownPage is returned when Render is asked for a page that was never
// parsed.
var ErrUnknownPage = errors.New("unknown page")

// Renderer executes the embedded page templates. Each page is parsed
// together with the shared layout at construction time, so template errors
// surface at startup instead of on the first request.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template against the shared layout.
func NewRenderer() (*Renderer, error) {
	names := []string{PageHome, PageGenerator, PageEditor, PageReview, PageAbout}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page with data and writes the result to w.
// The page is rendered into a buffer first, so a template error never
// produces a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render page %q: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Static returns a handler serving the embedded assets under static/,
// intended to be mounted at /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time, so Sub can
		// only fail if it is renamed without updating this path.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
