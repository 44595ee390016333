// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/abiflix/internal/models"
)

func TestBrowse(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"everything", "", []string{"1", "2", "3", "4", "5"}},
		{"query", "?q=seoul", []string{"2"}},
		{"query matches cast", "?q=jackie", []string{"5"}},
		{"genre and country", "?genre=Action&country=USA", []string{"1"}},
		{"type", "?type=series", []string{"2", "3"}},
		{"query and type", "?q=a&type=movie", []string{"1", "4", "5"}},
		{"no match", "?country=Japan", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := env.do(t, http.MethodGet, "/api/v1/titles"+tt.query, "")
			expectStatus(t, w, http.StatusOK)

			got := decode[[]models.Title](t, w)
			if ids := titleIDs(got.Data); !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
			if got.Meta == nil || got.Meta.Count == nil || *got.Meta.Count != len(tt.want) {
				t.Errorf("meta count = %+v", got.Meta)
			}
		})
	}
}

func TestBrowse_InvalidType(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	w := env.do(t, http.MethodGet, "/api/v1/titles?type=podcast", "")
	expectStatus(t, w, http.StatusBadRequest)
}

func TestTrending(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	w := env.do(t, http.MethodGet, "/api/v1/titles/trending", "")
	expectStatus(t, w, http.StatusOK)

	if ids := titleIDs(decode[[]models.Title](t, w).Data); !reflect.DeepEqual(ids, []string{"1", "2", "4"}) {
		t.Errorf("trending = %v", ids)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})

	w := env.do(t, http.MethodGet, "/api/v1/titles/2", "")
	expectStatus(t, w, http.StatusOK)
	got := decode[models.Title](t, w).Data
	if got.Title != "Seoul Nights" || len(got.Seasons) != 1 || len(got.Seasons[0].Episodes) != 2 {
		t.Errorf("unexpected title: %+v", got)
	}
	if got.AddedAt != testNow.UnixMilli() {
		t.Errorf("addedAt = %d, want seed time", got.AddedAt)
	}

	w = env.do(t, http.MethodGet, "/api/v1/titles/99", "")
	expectStatus(t, w, http.StatusNotFound)
	if e := decode[any](t, w).Error; e == nil || e.Code != ErrCodeNotFound {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestPlayback(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	env.login(t)
	w := env.do(t, http.MethodPost, "/api/v1/admin/titles", `{"id":"bare","title":"No Assets"}`)
	expectStatus(t, w, http.StatusCreated)

	tests := []struct {
		id        string
		source    string
		available bool
	}{
		{"1", "video", true},
		{"2", "trailer", true},
		{"bare", "none", false},
	}
	for _, tt := range tests {
		w := env.do(t, http.MethodGet, "/api/v1/titles/"+tt.id+"/playback", "")
		expectStatus(t, w, http.StatusOK)
		p := decode[Playback](t, w).Data
		if p.Source != tt.source || p.Available != tt.available || p.TitleID != tt.id {
			t.Errorf("%s: playback = %+v", tt.id, p)
		}
	}

	w = env.do(t, http.MethodGet, "/api/v1/titles/2/playback", "")
	if p := decode[Playback](t, w).Data; p.URL != "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4" {
		t.Errorf("series playback url = %q", p.URL)
	}

	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/titles/nope/playback", ""), http.StatusNotFound)
}

func TestHome(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	w := env.do(t, http.MethodGet, "/api/v1/home", "")
	expectStatus(t, w, http.StatusOK)

	view := decode[HomeView](t, w).Data
	if !reflect.DeepEqual(titleIDs(view.Trending), []string{"1", "2", "4"}) {
		t.Errorf("trending = %v", titleIDs(view.Trending))
	}
	if !reflect.DeepEqual(titleIDs(view.Movies), []string{"1", "4", "5"}) {
		t.Errorf("movies = %v", titleIDs(view.Movies))
	}
	if !reflect.DeepEqual(titleIDs(view.Series), []string{"2", "3"}) {
		t.Errorf("series = %v", titleIDs(view.Series))
	}
	if !reflect.DeepEqual(titleIDs(view.Watchlist), []string{"1", "3"}) {
		t.Errorf("watchlist = %v", titleIDs(view.Watchlist))
	}
	if view.Featured == nil || !view.Featured.Trending {
		t.Fatalf("featured = %+v", view.Featured)
	}
	if want := view.Featured.ID == "1"; view.FeaturedInWatchlist != want {
		t.Errorf("featuredInWatchlist = %v for %s", view.FeaturedInWatchlist, view.Featured.ID)
	}
}

func TestFacets(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	w := env.do(t, http.MethodGet, "/api/v1/facets", "")
	expectStatus(t, w, http.StatusOK)

	f := decode[Facets](t, w).Data
	if len(f.Countries) != 7 || f.Countries[0] != "USA" {
		t.Errorf("countries = %v", f.Countries)
	}
	if len(f.Genres) != 9 || f.Genres[8] != "Documentary" {
		t.Errorf("genres = %v", f.Genres)
	}
	if len(f.Types) != 2 {
		t.Errorf("types = %v", f.Types)
	}
}
