// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package models defines the data structures shared by the catalog store, the
assistant and the HTTP layer.

Key Components:

  - Title: a catalog entry, either a movie or a series
  - Season / Episode: the playable tree owned by a series
  - UserProfile: the single local user's watchlist, history and admin flag
  - ChatMessage: one turn of an assistant conversation

JSON field names match the persisted layout written under the content and user
keys, so a snapshot written by an older build decodes without translation.

Ownership:

Seasons and episodes belong to exactly one Title. Nothing in the catalog shares
them across titles, and Clone performs a deep copy so callers holding a Title
never alias store state.
*/
package models
