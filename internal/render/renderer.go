// Package render turns search configuration and search state into HTML page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// PageTemplate is name of search page template
const PageTemplate = "page.html"

//go:embed templates/*.html
var templatesFS embed.FS

// PageView is everything search page displays
type PageView struct {
	Title    string
	Subtitle string
	Form     FormView
	Results  ResultsView
}

// TemplateRenderer renders embedded templates, implements echo.Renderer
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses embedded templates
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates - %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
