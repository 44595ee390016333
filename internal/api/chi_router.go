// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/abiflix/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses the default middleware config.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// Applied to every route, in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/", h.Health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPI())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/home", h.Home)
		r.Get("/facets", h.Facets)

		r.Route("/titles", func(r chi.Router) {
			r.Get("/", h.Browse)
			r.Get("/trending", h.Trending)
			r.Get("/{id}", h.Title)
			r.Get("/{id}/playback", h.Playback)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile)
			r.Get("/watchlist", h.Watchlist)
			r.Post("/watchlist/{id}", h.ToggleWatchlist)
			r.Get("/history", h.History)
			r.Post("/history/{id}", h.AddToHistory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", h.AdminLogin)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireAdmin)
				r.Post("/titles", h.CreateTitle)
				r.Put("/titles/{id}", h.UpdateTitle)
				r.Delete("/titles/{id}", h.DeleteTitle)
			})
		})

		r.Route("/assistant", func(r chi.Router) {
			r.Get("/messages", h.AssistantMessages)
			r.Post("/messages", h.SendAssistantMessage)
			r.Delete("/messages", h.ResetAssistant)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return r
}
