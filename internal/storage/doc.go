// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package storage provides the key-value port the catalog store persists
// through, plus its in-memory and BadgerDB implementations.
//
// The port is deliberately small:
//
//	Load(key) -> (bytes, found, error)
//	Save(key, bytes) -> error
//
// Values are opaque byte slices; the catalog owns the encoding. Every Save
// overwrites the previous value for the key wholesale.
//
// # Backends
//
//   - memory: map-backed, lost on restart. Used by tests and demo runs.
//   - badger: BadgerDB directory, survives restarts. Each Save leaves the
//     previous snapshot in the value log until BadgerKV.RunGC reclaims it.
//
// Open selects a backend by Type and returns a KV that must be closed by the
// caller.
package storage
