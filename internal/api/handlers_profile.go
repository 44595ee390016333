// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// WatchlistToggle reports the watchlist membership after a toggle.
type WatchlistToggle struct {
	TitleID     string `json:"titleId"`
	InWatchlist bool   `json:"inWatchlist"`
}

// Profile returns the local user profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.store.User())
}

// Watchlist returns the watchlist resolved to titles.
func (h *Handler) Watchlist(w http.ResponseWriter, r *http.Request) {
	titles := h.store.Watchlist()
	NewResponseWriter(w, r).SuccessList(titles, len(titles))
}

// History returns the viewing history resolved to titles, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	titles := h.store.History()
	NewResponseWriter(w, r).SuccessList(titles, len(titles))
}

// ToggleWatchlist adds the title to the watchlist or removes it.
func (h *Handler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	if err := h.store.ToggleWatchlist(id); err != nil {
		rw.StorageError(err)
		return
	}
	user := h.store.User()
	rw.Success(WatchlistToggle{TitleID: id, InWatchlist: user.InWatchlist(id)})
}

// AddToHistory records that the title was played.
func (h *Handler) AddToHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.store.AddToHistory(chi.URLParam(r, "id")); err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(h.store.User().History)
}
