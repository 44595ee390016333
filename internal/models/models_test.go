// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestContentType_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ContentType
		want bool
	}{
		{ContentTypeMovie, true},
		{ContentTypeSeries, true},
		{"", false},
		{"Movie", false},
		{"documentary", false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("ContentType(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTitle_PlaybackURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title Title
		want  string
	}{
		{"video wins", Title{VideoURL: "http://v/main.mp4", TrailerURL: "http://v/trailer.mp4"}, "http://v/main.mp4"},
		{"trailer fallback", Title{TrailerURL: "http://v/trailer.mp4"}, "http://v/trailer.mp4"},
		{"nothing", Title{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.title.PlaybackURL(); got != tt.want {
				t.Errorf("PlaybackURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitle_HasGenreIsExact(t *testing.T) {
	t.Parallel()

	title := Title{Genres: []string{"Sci-Fi", "Action"}}
	if !title.HasGenre("Action") {
		t.Error("expected Action to match")
	}
	if title.HasGenre("action") || title.HasGenre("Act") {
		t.Error("genre match must be exact")
	}
}

func TestTitle_EpisodeCount(t *testing.T) {
	t.Parallel()

	title := Title{Type: ContentTypeSeries, Seasons: []Season{
		{ID: "s1", SeasonNumber: 1, Episodes: []Episode{{ID: "e1"}, {ID: "e2"}}},
		{ID: "s2", SeasonNumber: 2, Episodes: []Episode{{ID: "e1"}}},
	}}
	if got := title.EpisodeCount(); got != 3 {
		t.Errorf("EpisodeCount() = %d, want 3", got)
	}
	if !title.IsSeries() || title.IsMovie() {
		t.Error("type helpers disagree with Type")
	}
}

func TestTitle_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := Title{
		ID:      "2",
		Genres:  []string{"Drama"},
		Cast:    []string{"Park S."},
		Seasons: []Season{{ID: "s1", Episodes: []Episode{{ID: "e1", Title: "The Beginning"}}}},
	}
	c := orig.Clone()
	c.Genres[0] = "Comedy"
	c.Cast[0] = "Nobody"
	c.Seasons[0].Episodes[0].Title = "Changed"

	if orig.Genres[0] != "Drama" || orig.Cast[0] != "Park S." {
		t.Error("clone shares slices with the original")
	}
	if orig.Seasons[0].Episodes[0].Title != "The Beginning" {
		t.Error("clone shares episodes with the original")
	}
}

func TestCloneTitles_NilBecomesEmpty(t *testing.T) {
	t.Parallel()

	out := CloneTitles(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("CloneTitles(nil) = %#v, want empty non-nil slice", out)
	}
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("marshaled = %s, want []", data)
	}
}

func TestTitle_JSONFieldNames(t *testing.T) {
	t.Parallel()

	raw := `{"id":"1","title":"Cyber Runner 2077","type":"movie","genres":["Sci-Fi"],` +
		`"releaseYear":2024,"rating":8.9,"posterUrl":"p","bannerUrl":"b","videoUrl":"v",` +
		`"trailerUrl":"t","cast":["Keanu R."],"trending":true,"addedAt":1700000000000}`

	var title Title
	if err := json.Unmarshal([]byte(raw), &title); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if title.ReleaseYear != 2024 || title.PosterURL != "p" || title.VideoURL != "v" ||
		title.AddedAt != 1700000000000 || !title.Trending {
		t.Errorf("decoded title = %+v", title)
	}
}

func TestUserProfile_Membership(t *testing.T) {
	t.Parallel()

	u := UserProfile{Watchlist: []string{"1", "3"}, History: []string{"2"}}
	if !u.InWatchlist("3") || u.InWatchlist("2") {
		t.Error("InWatchlist mismatch")
	}
	if !u.InHistory("2") || u.InHistory("1") {
		t.Error("InHistory mismatch")
	}

	c := u.Clone()
	c.Watchlist[0] = "9"
	if u.Watchlist[0] != "1" {
		t.Error("Clone shares the watchlist slice")
	}
}

func sampleProfile() UserProfile {
	return UserProfile{ID: "u1", Watchlist: []string{"1", "3"}, History: []string{"2"}}
}

// Membership checks work on the value a getter returns, without binding it
// to a variable first.
func TestUserProfile_MembershipOnReturnedValue(t *testing.T) {
	t.Parallel()

	if !sampleProfile().InWatchlist("1") {
		t.Error("InWatchlist(1) = false on returned profile")
	}
	if sampleProfile().InHistory("3") {
		t.Error("InHistory(3) = true on returned profile")
	}
}
