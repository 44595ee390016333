// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/models"
)

// HomeView is everything the home page renders.
type HomeView struct {
	Featured            *models.Title  `json:"featured"`
	FeaturedInWatchlist bool           `json:"featuredInWatchlist"`
	Trending            []models.Title `json:"trending"`
	Movies              []models.Title `json:"movies"`
	Series              []models.Title `json:"series"`
	Watchlist           []models.Title `json:"watchlist"`
}

// Facets lists the filter values offered by the browse page.
type Facets struct {
	Countries []string             `json:"countries"`
	Genres    []string             `json:"genres"`
	Types     []models.ContentType `json:"types"`
}

// Playback is what a player needs to start a title.
type Playback struct {
	TitleID   string `json:"titleId"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"` // video, trailer or none
	Available bool   `json:"available"`
}

// Browse lists titles matching the q, genre, country and type query
// parameters. Missing parameters match everything.
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	f := catalog.Filter{
		Query:   q.Get("q"),
		Genre:   q.Get("genre"),
		Country: q.Get("country"),
		Type:    models.ContentType(q.Get("type")),
	}
	if f.Type != "" && !f.Type.Valid() {
		rw.BadRequest("type must be movie or series")
		return
	}

	titles := h.store.Browse(f)
	rw.SuccessList(titles, len(titles))
}

// Trending lists titles flagged as trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	titles := h.store.ListTrending()
	NewResponseWriter(w, r).SuccessList(titles, len(titles))
}

// Title returns one title by ID.
func (h *Handler) Title(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	t, ok := h.store.GetByID(chi.URLParam(r, "id"))
	if !ok {
		rw.NotFound("Title not found")
		return
	}
	rw.Success(t)
}

// Playback resolves the URL to play for a title: the video, falling back to
// the trailer. A title with neither is reported as unavailable.
func (h *Handler) Playback(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	t, ok := h.store.GetByID(chi.URLParam(r, "id"))
	if !ok {
		rw.NotFound("Title not found")
		return
	}

	p := Playback{TitleID: t.ID, Title: t.Title, URL: t.PlaybackURL(), Source: "none"}
	switch {
	case t.VideoURL != "":
		p.Source = "video"
	case t.TrailerURL != "":
		p.Source = "trailer"
	}
	p.Available = p.URL != ""
	rw.Success(p)
}

// Home assembles the home page rows and a random featured trending title.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	view := HomeView{
		Trending:  h.store.ListTrending(),
		Movies:    h.store.ByType(models.ContentTypeMovie),
		Series:    h.store.ByType(models.ContentTypeSeries),
		Watchlist: h.store.Watchlist(),
	}
	if featured, ok := h.store.Featured(nil); ok {
		view.Featured = &featured
		user := h.store.User()
		view.FeaturedInWatchlist = user.InWatchlist(featured.ID)
	}
	NewResponseWriter(w, r).Success(view)
}

// Facets returns the browse filter values.
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(Facets{
		Countries: append([]string(nil), catalog.Countries...),
		Genres:    append([]string(nil), catalog.Genres...),
		Types:     []models.ContentType{models.ContentTypeMovie, models.ContentTypeSeries},
	})
}
