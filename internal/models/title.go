// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package models

// ContentType distinguishes movies from series. A movie's primary asset is
// VideoURL; a series carries Seasons instead.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeSeries
}

// Episode is a single playable entry inside a Season.
type Episode struct {
	ID           string `json:"id" validate:"required,max=128"`
	Title        string `json:"title" validate:"max=256"`
	Duration     string `json:"duration"` // display label, e.g. "45m"
	Description  string `json:"description" validate:"max=4096"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	VideoURL     string `json:"videoUrl" validate:"omitempty,url"`
}

// Season groups the ordered episodes of a series.
type Season struct {
	ID           string    `json:"id" validate:"required,max=128"`
	SeasonNumber int       `json:"seasonNumber" validate:"gte=0"`
	Episodes     []Episode `json:"episodes" validate:"dive"`
}

// Title is a catalog entry.
//
// VideoURL may be empty for a movie and Seasons may be empty for a series;
// content can be registered before its assets exist. PlaybackURL handles the
// fallback to the trailer.
type Title struct {
	ID          string      `json:"id" validate:"required,max=128"`
	Title       string      `json:"title" validate:"required,max=256"`
	Description string      `json:"description" validate:"max=4096"`
	Type        ContentType `json:"type" validate:"required,oneof=movie series"`
	Genres      []string    `json:"genres" validate:"dive,required"`
	Country     string      `json:"country"`
	ReleaseYear int         `json:"releaseYear" validate:"gte=0,lte=9999"`
	Rating      float64     `json:"rating" validate:"gte=0,lte=10"`
	PosterURL   string      `json:"posterUrl" validate:"omitempty,url"`
	BannerURL   string      `json:"bannerUrl" validate:"omitempty,url"`
	VideoURL    string      `json:"videoUrl,omitempty" validate:"omitempty,url"`
	TrailerURL  string      `json:"trailerUrl" validate:"omitempty,url"`
	Seasons     []Season    `json:"seasons,omitempty" validate:"dive"`
	Cast        []string    `json:"cast"`
	Trending    bool        `json:"trending"`

	// AddedAt is a unix timestamp in milliseconds, assigned at insert.
	AddedAt int64 `json:"addedAt"`
}

// IsMovie reports whether the title is a movie.
func (t *Title) IsMovie() bool {
	return t.Type == ContentTypeMovie
}

// IsSeries reports whether the title is a series.
func (t *Title) IsSeries() bool {
	return t.Type == ContentTypeSeries
}

// PlaybackURL returns the URL a player should load for the title: the main
// video when present, otherwise the trailer.
func (t *Title) PlaybackURL() string {
	if t.VideoURL != "" {
		return t.VideoURL
	}
	return t.TrailerURL
}

// HasGenre reports whether genre is one of the title's tags (exact match).
func (t *Title) HasGenre(genre string) bool {
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// EpisodeCount returns the number of episodes across all seasons.
func (t *Title) EpisodeCount() int {
	n := 0
	for i := range t.Seasons {
		n += len(t.Seasons[i].Episodes)
	}
	return n
}

// Clone returns a deep copy of the title.
func (t Title) Clone() Title {
	c := t
	c.Genres = cloneStrings(t.Genres)
	c.Cast = cloneStrings(t.Cast)
	if t.Seasons != nil {
		c.Seasons = make([]Season, len(t.Seasons))
		for i, s := range t.Seasons {
			c.Seasons[i] = s
			if s.Episodes != nil {
				c.Seasons[i].Episodes = append([]Episode(nil), s.Episodes...)
			}
		}
	}
	return c
}

// CloneTitles deep-copies a slice of titles. A nil input yields an empty,
// non-nil slice so JSON encoders emit [] rather than null.
func CloneTitles(in []Title) []Title {
	out := make([]Title, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
