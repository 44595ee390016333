// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package catalog owns the title catalog and the single local user profile.
//
// A Store is built over a storage.KV and keeps two documents in it: the
// full catalog as a JSON array under the content key and the profile as a
// JSON object under the user key. Every mutation rewrites the affected
// document wholesale before returning, so a read that follows a write always
// observes it.
//
//	kv, _ := storage.Open(storage.TypeBadger, "/data/abiflix")
//	store, err := catalog.New(kv)
//	...
//	store.ToggleWatchlist("2")
//	hits := store.Browse(catalog.Filter{Query: "korea", Type: models.ContentTypeSeries})
//
// When the keys are missing (or hold data that does not decode), the store
// seeds itself from DefaultTitles and DefaultUser and writes the seed back
// immediately.
//
// # Persistence failures
//
// By default a failed write is logged and counted in
// persist_writes_total{result="failure"}; the mutation still takes
// effect in memory and the method returns nil. WithStrictPersistence turns
// such failures into errors wrapping ErrStorageUnavailable, and the
// in-memory state is left as it was before the call.
//
// # References
//
// Deleting a title does not touch the profile. Watchlist and history may
// therefore hold IDs that no longer resolve; Watchlist and History skip them.
//
// The store is safe for concurrent use.
package catalog
