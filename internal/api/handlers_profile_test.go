// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/models"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	w := env.do(t, http.MethodGet, "/api/v1/profile", "")
	expectStatus(t, w, http.StatusOK)

	u := decode[models.UserProfile](t, w).Data
	if u.ID != "u1" || u.Email != "john@abiflix.com" || u.IsAdmin {
		t.Errorf("unexpected profile: %+v", u)
	}
	if !reflect.DeepEqual(u.Watchlist, []string{"1", "3"}) || !reflect.DeepEqual(u.History, []string{"2"}) {
		t.Errorf("unexpected lists: %v %v", u.Watchlist, u.History)
	}
}

func TestToggleWatchlist(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})

	w := env.do(t, http.MethodPost, "/api/v1/profile/watchlist/2", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode[WatchlistToggle](t, w).Data; !got.InWatchlist || got.TitleID != "2" {
		t.Errorf("first toggle = %+v", got)
	}

	w = env.do(t, http.MethodGet, "/api/v1/profile/watchlist", "")
	if ids := titleIDs(decode[[]models.Title](t, w).Data); !reflect.DeepEqual(ids, []string{"1", "3", "2"}) {
		t.Errorf("watchlist = %v", ids)
	}

	w = env.do(t, http.MethodPost, "/api/v1/profile/watchlist/2", "")
	if got := decode[WatchlistToggle](t, w).Data; got.InWatchlist {
		t.Errorf("second toggle = %+v", got)
	}
	if u := env.store.User(); !reflect.DeepEqual(u.Watchlist, []string{"1", "3"}) {
		t.Errorf("watchlist after two toggles = %v", u.Watchlist)
	}
}

func TestAddToHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})

	for _, id := range []string{"4", "2", "5"} {
		expectStatus(t, env.do(t, http.MethodPost, "/api/v1/profile/history/"+id, ""), http.StatusOK)
	}

	w := env.do(t, http.MethodGet, "/api/v1/profile/history", "")
	expectStatus(t, w, http.StatusOK)
	if ids := titleIDs(decode[[]models.Title](t, w).Data); !reflect.DeepEqual(ids, []string{"5", "4", "2"}) {
		t.Errorf("history = %v", ids)
	}
}

func TestProfileLists_SkipDeletedTitles(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	env.login(t)
	expectStatus(t, env.do(t, http.MethodDelete, "/api/v1/admin/titles/3", ""), http.StatusNoContent)

	w := env.do(t, http.MethodGet, "/api/v1/profile/watchlist", "")
	if ids := titleIDs(decode[[]models.Title](t, w).Data); !reflect.DeepEqual(ids, []string{"1"}) {
		t.Errorf("resolved watchlist = %v", ids)
	}
	// The raw profile still references the deleted title.
	if u := env.store.User(); !reflect.DeepEqual(u.Watchlist, []string{"1", "3"}) {
		t.Errorf("profile watchlist = %v", u.Watchlist)
	}
}

func TestProfileWrites_StrictPersistenceFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{storeOpts: []catalog.Option{catalog.WithStrictPersistence()}})
	env.kv.failSave.Store(true)

	for _, path := range []string{"/api/v1/profile/watchlist/4", "/api/v1/profile/history/4"} {
		w := env.do(t, http.MethodPost, path, "")
		expectStatus(t, w, http.StatusServiceUnavailable)
		if e := decode[any](t, w).Error; e == nil || e.Code != ErrCodeStorageError {
			t.Errorf("%s: error = %+v", path, e)
		}
	}

	u := env.store.User()
	if !reflect.DeepEqual(u.Watchlist, []string{"1", "3"}) || !reflect.DeepEqual(u.History, []string{"2"}) {
		t.Errorf("strict failure changed state: %v %v", u.Watchlist, u.History)
	}
}

func TestProfileWrites_BestEffortPersistenceFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, envConfig{})
	env.kv.failSave.Store(true)

	w := env.do(t, http.MethodPost, "/api/v1/profile/watchlist/4", "")
	expectStatus(t, w, http.StatusOK)
	if !decode[WatchlistToggle](t, w).Data.InWatchlist {
		t.Error("expected in-memory toggle to stand")
	}
}
