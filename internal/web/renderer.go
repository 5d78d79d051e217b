package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// Renderer executes the embedded dashboard templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderDashboard writes the dashboard page for the given view.
func (r *Renderer) RenderDashboard(w io.Writer, view DashboardView) error {
	if err := r.tmpl.ExecuteTemplate(w, "dashboard.html.tmpl", view); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// StaticHandler serves the embedded stylesheet and other static assets
// under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
