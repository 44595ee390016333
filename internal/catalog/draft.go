// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/abiflix/internal/models"
)

// Draft is the admin form payload. Every field is optional; NewTitle fills
// the gaps.
type Draft struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        models.ContentType `json:"type"`
	Genres      []string           `json:"genres"`
	Country     string             `json:"country"`
	ReleaseYear int                `json:"releaseYear"`
	Rating      float64            `json:"rating"`
	PosterURL   string             `json:"posterUrl"`
	BannerURL   string             `json:"bannerUrl"`
	VideoURL    string             `json:"videoUrl"`
	TrailerURL  string             `json:"trailerUrl"`
	Cast        CastList           `json:"cast"`
	Trending    bool               `json:"trending"`
	AddedAt     int64              `json:"addedAt"`
	Seasons     []models.Season    `json:"seasons"`
}

// CastList decodes either a JSON array of names or a single comma-separated
// string, which is what the admin form's text input submits.
type CastList []string

// UnmarshalJSON implements json.Unmarshaler.
func (c *CastList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("cast: %w", err)
		}
		*c = SplitCast(s)
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("cast: %w", err)
		}
		*c = list
		return nil
	}
}

// SplitCast splits a comma-separated cast string into trimmed names. Empty
// entries are dropped.
func SplitCast(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewTitle turns a draft into a catalog entry:
//
//   - an empty ID becomes the unix millisecond timestamp of now
//   - type defaults to movie and country to USA
//   - a zero release year becomes the year of now
//   - a zero AddedAt becomes now
//   - nil slices become empty slices
func NewTitle(d Draft, now time.Time) models.Title {
	t := models.Title{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Genres:      d.Genres,
		Country:     d.Country,
		ReleaseYear: d.ReleaseYear,
		Rating:      d.Rating,
		PosterURL:   d.PosterURL,
		BannerURL:   d.BannerURL,
		VideoURL:    d.VideoURL,
		TrailerURL:  d.TrailerURL,
		Cast:        []string(d.Cast),
		Trending:    d.Trending,
		AddedAt:     d.AddedAt,
		Seasons:     d.Seasons,
	}

	if t.ID == "" {
		t.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if t.Type == "" {
		t.Type = models.ContentTypeMovie
	}
	if t.Country == "" {
		t.Country = "USA"
	}
	if t.ReleaseYear == 0 {
		t.ReleaseYear = now.Year()
	}
	if t.AddedAt == 0 {
		t.AddedAt = now.UnixMilli()
	}
	if t.Genres == nil {
		t.Genres = []string{}
	}
	if t.Cast == nil {
		t.Cast = []string{}
	}
	if t.Seasons == nil {
		t.Seasons = []models.Season{}
	}
	return t.Clone()
}
