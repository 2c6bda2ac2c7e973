// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the gallery. It
// renders the full app shell for browser navigation and bare fragments
// for HTMX requests, detected via the HX-Request header. Templates are
// embedded at compile time and rendering returns bytes rather than
// writing directly, so handlers can store results in the fragment cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"scrollery/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// ShellData holds everything the full-page shell template needs.
type ShellData struct {
	Title string
	Feed  *models.FeedPage
}

// ModalData holds the enlarged-image modal's fields. PrevPath and
// NextPath are complete /modal/open request paths; HasNav is false when
// the image URL carries no numeric suffix to derive neighbors from.
type ModalData struct {
	URL       string
	ContentID string
	HasNav    bool
	PrevPath  string
	NextPath  string
}

// Renderer executes the embedded gallery templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses all embedded templates into a single set. The set defines
// "shell", "grid", "modal", and "indicator".
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template and returns the resulting HTML.
func (rn *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteHTML writes rendered HTML with the correct content type.
func WriteHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
