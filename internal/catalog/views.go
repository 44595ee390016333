// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"math/rand/v2"

	"github.com/tomtom215/abiflix/internal/models"
)

// Watchlist resolves the watchlist to titles in watchlist order. IDs that
// no longer exist in the catalog are skipped.
func (s *Store) Watchlist() []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(s.user.Watchlist)
}

// History resolves the viewing history to titles, most recent first. IDs
// that no longer exist in the catalog are skipped.
func (s *Store) History() []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(s.user.History)
}

func (s *Store) resolveLocked(ids []string) []models.Title {
	out := make([]models.Title, 0, len(ids))
	for _, id := range ids {
		if i := s.indexLocked(id); i >= 0 {
			out = append(out, s.titles[i].Clone())
		}
	}
	return out
}

// Featured picks one trending title at random for the home banner. It
// reports false when nothing is trending. A nil rnd uses the global source.
func (s *Store) Featured(rnd *rand.Rand) (models.Title, bool) {
	trending := s.ListTrending()
	if len(trending) == 0 {
		return models.Title{}, false
	}
	var i int
	if rnd != nil {
		i = rnd.IntN(len(trending))
	} else {
		i = rand.IntN(len(trending)) //nolint:gosec // display choice, not security relevant
	}
	return trending[i], true
}
