// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public gallery.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"scrollery/internal/cache"
	"scrollery/internal/models"
	"scrollery/internal/render"
)

// PageSize is how many images one feed page holds.
const PageSize = 16

// Title is the gallery heading, shown in the shell and the <title> tag.
const Title = "HTMX Infinite Scroll Gallery"

// ImageFeed supplies feed pages from the image catalog.
type ImageFeed interface {
	FeedPage(after int64, limit int) (*models.FeedPage, error)
}

// Gallery groups the handlers for the public gallery. It checks the
// Valkey fragment cache before hitting the catalog, and stores rendered
// results on miss. The fragment cache may be nil (cache disabled).
type Gallery struct {
	renderer  *render.Renderer
	feed      ImageFeed
	fragments *cache.FragmentCache
}

// NewGallery creates a new Gallery handler group.
func NewGallery(renderer *render.Renderer, feed ImageFeed, fragments *cache.FragmentCache) *Gallery {
	return &Gallery{
		renderer:  renderer,
		feed:      feed,
		fragments: fragments,
	}
}

// Index serves the app shell with the first feed page embedded. HTMX
// requests for the root get just the grid fragment, so a client-side
// refresh of the feed does not re-send the whole document.
func (g *Gallery) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := cache.ShellKey()
	fragment := render.IsHTMX(r)
	if fragment {
		key = cache.CursorKey(0)
	}

	if cached, ok := g.fragments.Get(ctx, key); ok {
		render.WriteHTML(w, cached)
		return
	}

	page, err := g.feed.FeedPage(0, PageSize)
	if err != nil {
		slog.Error("feed page failed", "error", err, "after", 0)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var html []byte
	if fragment {
		html, err = g.renderer.Render("grid", page)
	} else {
		html, err = g.renderer.Render("shell", &render.ShellData{Title: Title, Feed: page})
	}
	if err != nil {
		slog.Error("render index failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	g.fragments.Set(ctx, key, html)
	render.WriteHTML(w, html)
}

// More serves the next feed page as an HTML fragment. The sentinel
// element at the end of the previous page triggers this request via an
// intersection observer and is swapped out for the response. The cursor
// travels in the "after" query parameter; anything unparsable falls
// back to the start of the feed.
func (g *Gallery) More(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	after, err := strconv.ParseInt(r.URL.Query().Get("after"), 10, 64)
	if err != nil || after < 0 {
		after = 0
	}

	key := cache.CursorKey(after)
	if cached, ok := g.fragments.Get(ctx, key); ok {
		render.WriteHTML(w, cached)
		return
	}

	page, err := g.feed.FeedPage(after, PageSize)
	if err != nil {
		slog.Error("feed page failed", "error", err, "after", after)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := g.renderer.Render("grid", page)
	if err != nil {
		slog.Error("render feed page failed", "error", err, "after", after)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	g.fragments.Set(ctx, key, html)
	render.WriteHTML(w, html)
}

// Modal serves the enlarged-image overlay as a fragment appended to the
// body. The "url" query parameter selects the image; "dir" records
// which way the user navigated so the fragment carries a
// direction-specific element id. Neighbor navigation is derived from
// the numeric suffix of the image URL; URLs without one render a modal
// with no navigation buttons. Not cached — the render is a cheap pure
// function of the query.
func (g *Gallery) Modal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	url := q.Get("url")
	if url == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}

	data := &render.ModalData{
		URL:       url,
		ContentID: "modal-content",
	}

	if dir, ok := models.ParseDirection(q.Get("dir")); ok {
		data.ContentID = "modal-content-" + dir.String()
	}

	if prev, ok := models.NeighborURL(url, models.DirectionLeft); ok {
		next, _ := models.NeighborURL(url, models.DirectionRight)
		data.HasNav = true
		data.PrevPath = fmt.Sprintf("/modal/open?dir=%s&url=%s", models.DirectionLeft, prev)
		data.NextPath = fmt.Sprintf("/modal/open?dir=%s&url=%s", models.DirectionRight, next)
	}

	html, err := g.renderer.Render("modal", data)
	if err != nil {
		slog.Error("render modal failed", "error", err, "url", url)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render.WriteHTML(w, html)
}
