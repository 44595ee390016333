// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package middleware provides the HTTP middleware shared by the Abiflix API.

Components:

  - RequestID: reuses or assigns an X-Request-ID and stores it, together with
    a fresh correlation ID, in the request context for the logging package
  - AccessLog: one structured log line per request at debug level
  - PrometheusMetrics: request counts, latencies and in-flight gauge, labelled
    by the chi route pattern so path parameters do not explode cardinality

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
