// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"strings"

	"github.com/tomtom215/abiflix/internal/models"
)

// Filter narrows a list of titles. Every empty field matches all titles;
// set fields are combined with AND, so the order in which they are applied
// does not matter.
type Filter struct {
	// Query is a case-insensitive substring over name, genres, cast and country.
	Query string
	// Genre must equal one of the title's tags exactly.
	Genre string
	// Country must equal the title's country exactly.
	Country string
	// Type restricts to movies or series.
	Type models.ContentType
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether t passes every set predicate.
func (f Filter) Match(t *models.Title) bool {
	if f.Query != "" && !matchesQuery(t, strings.ToLower(f.Query)) {
		return false
	}
	if f.Genre != "" && !t.HasGenre(f.Genre) {
		return false
	}
	if f.Country != "" && t.Country != f.Country {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	return true
}

// Apply returns the titles that match f, preserving input order. The input
// slice is not modified.
func (f Filter) Apply(titles []models.Title) []models.Title {
	out := make([]models.Title, 0, len(titles))
	for i := range titles {
		if f.Match(&titles[i]) {
			out = append(out, titles[i])
		}
	}
	return out
}

// Browse runs the search page query: a text search when Query is set,
// otherwise the full catalog, narrowed by the remaining predicates.
func (s *Store) Browse(f Filter) []models.Title {
	var base []models.Title
	if f.Query != "" {
		base = s.Search(f.Query)
	} else {
		base = s.ListAll()
	}
	rest := f
	rest.Query = ""
	return rest.Apply(base)
}
