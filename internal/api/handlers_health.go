// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"
	"time"
)

// HealthStatus reports process state.
type HealthStatus struct {
	Status              string  `json:"status"`
	Titles              int     `json:"titles"`
	AssistantConfigured bool    `json:"assistantConfigured"`
	Uptime              float64 `json:"uptime"`
}

// HealthLive answers as long as the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// Health reports catalog size, assistant availability and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:              "healthy",
		Titles:              len(h.store.ListAll()),
		AssistantConfigured: h.session != nil && h.session.Configured(),
		Uptime:              time.Since(h.startTime).Seconds(),
	})
}
