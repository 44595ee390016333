// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package assistant implements the catalog chat assistant.
//
// Each turn sends a system instruction listing the whole catalog (one line
// per title with its ID) plus the conversation so far to a chat completion
// backend. The model is asked to end any reply that recommends titles with
// a marker:
//
//	[[RECOMMENDED:["1", "4"]]]
//
// ParseReply strips the marker and returns the IDs; Session resolves them
// against the catalog and drops those that no longer exist.
//
// OpenAICompleter talks to any OpenAI-compatible endpoint. The defaults
// point at Gemini's compatibility layer. Calls go through a token bucket
// and a circuit breaker so a failing upstream is not hammered.
package assistant
