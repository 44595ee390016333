// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/abiflix/internal/assistant"
	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/validation"
)

// maxBodyBytes caps request bodies. Admin drafts with many seasons are the
// largest payloads.
const maxBodyBytes = 1 << 20

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_titles.go: catalog browsing, home and playback
//   - handlers_profile.go: profile, watchlist and history
//   - handlers_admin.go: admin login and title management
//   - handlers_assistant.go: chat assistant conversation
//   - handlers_health.go: liveness and status
type Handler struct {
	store     *catalog.Store
	session   *assistant.Session
	now       func() time.Time
	startTime time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerClock sets the clock used to stamp new titles.
func WithHandlerClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates the API handler. session may be nil, in which case the
// assistant endpoints report that the assistant is not configured.
//
// Example:
//
//	handler := api.NewHandler(store, session)
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":3857", router.SetupChi())
func NewHandler(store *catalog.Store, session *assistant.Session, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:     store,
		session:   session,
		now:       time.Now,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// decodeAndValidate reads a JSON body into v and runs struct validation.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	rw := NewResponseWriter(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large")
			return false
		}
		rw.BadRequest("Invalid JSON body")
		return false
	}
	return validate(rw, v)
}

func validate(rw *ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return false
	}
	return true
}
