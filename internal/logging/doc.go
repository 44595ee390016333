// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package logging is the single zerolog entry point for Abiflix.
//
// The global logger is usable before Init is called, so packages can log
// from constructors that run during configuration loading. main calls Init
// once the config is known:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//	logging.Info().Str("addr", addr).Msg("http server listening")
//
// Request scoped logging goes through Ctx, which attaches the request ID and
// correlation ID placed in the context by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Str("title_id", id).Msg("unknown title")
//
// Components that log on their own schedule take a child logger:
//
//	log := logging.WithComponent("catalog")
//
// Libraries that only speak log/slog (sutureslog) are bridged with
// NewSlogLogger. Admin login attempts are written through LogAdminLogin,
// which masks the submitted identifier.
//
// Always finish an event with Msg or Send; an unfinished chain is dropped.
package logging
