// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/logging"
)

// LoginRequest is the admin sign-in form.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=256"`
	Secret     string `json:"secret" validate:"required,max=256"`
}

// AdminLogin checks the admin credentials and, on success, marks the local
// profile as admin.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	rw := NewResponseWriter(w, r)

	ok := h.store.LoginAdmin(req.Identifier, req.Secret)
	logging.LogAdminLogin(r.Context(), req.Identifier, r.RemoteAddr, ok)
	if !ok {
		rw.Unauthorized("Invalid credentials. Please try again.")
		return
	}
	rw.Success(h.store.User())
}

// RequireAdmin rejects requests unless the local profile holds the admin flag.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.store.User().IsAdmin {
			NewResponseWriter(w, r).Forbidden("Admin sign-in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateTitle adds a title from an admin draft. Missing fields get the form
// defaults; a draft reusing an existing ID is rejected.
func (h *Handler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var d catalog.Draft
	if !decodeAndValidate(w, r, &d) {
		return
	}
	rw := NewResponseWriter(w, r)

	t := catalog.NewTitle(d, h.now())
	if !validate(rw, &t) {
		return
	}
	// Without an ID in the draft the store picks a free one.
	t.ID = d.ID

	created, err := h.store.AddIfAbsent(t)
	if errors.Is(err, catalog.ErrDuplicateID) {
		rw.Conflict("A title with this ID already exists")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("component", "admin").Str("title_id", created.ID).Msg("title added")
	rw.Created(created)
}

// UpdateTitle replaces a title. The ID comes from the path; an omitted
// addedAt keeps the stored value.
func (h *Handler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var d catalog.Draft
	if !decodeAndValidate(w, r, &d) {
		return
	}
	rw := NewResponseWriter(w, r)

	existing, ok := h.store.GetByID(id)
	if !ok {
		rw.NotFound("Title not found")
		return
	}
	d.ID = id
	if d.AddedAt == 0 {
		d.AddedAt = existing.AddedAt
	}

	t := catalog.NewTitle(d, h.now())
	if !validate(rw, &t) {
		return
	}
	if err := h.store.Update(t); err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("component", "admin").Str("title_id", id).Msg("title updated")
	updated, _ := h.store.GetByID(id)
	rw.Success(updated)
}

// DeleteTitle removes a title. Watchlist and history entries are kept.
func (h *Handler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rw := NewResponseWriter(w, r)

	if _, ok := h.store.GetByID(id); !ok {
		rw.NotFound("Title not found")
		return
	}
	if err := h.store.Delete(id); err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("component", "admin").Str("title_id", id).Msg("title deleted")
	rw.NoContent()
}
