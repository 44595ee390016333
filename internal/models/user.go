// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package models

// UserProfile is the single local user.
//
// Watchlist is a set that keeps insertion order for display. History is
// most-recent-first and never holds duplicates. Both may reference titles
// that have since been deleted from the catalog.
type UserProfile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatarUrl"`
	Watchlist []string `json:"watchlist"`
	History   []string `json:"history"`
	IsAdmin   bool     `json:"isAdmin"`
}

// InWatchlist reports whether id is on the watchlist.
func (u UserProfile) InWatchlist(id string) bool {
	return indexOf(u.Watchlist, id) >= 0
}

// InHistory reports whether id is in the viewing history.
func (u UserProfile) InHistory(id string) bool {
	return indexOf(u.History, id) >= 0
}

// Clone returns a deep copy of the profile.
func (u UserProfile) Clone() UserProfile {
	c := u
	c.Watchlist = cloneStrings(u.Watchlist)
	c.History = cloneStrings(u.History)
	return c
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
