// Package view embeds the HTML templates and adapts them to echo's Renderer.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed views/*.html
var viewsFS embed.FS

// Renderer executes the embedded page templates for echo's c.Render.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template once at startup.
func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(viewsFS, "views/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse view templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.Wrapf(r.templates.ExecuteTemplate(w, name, data), "render template %s", name)
}
