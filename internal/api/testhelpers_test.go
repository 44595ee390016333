// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/abiflix/internal/assistant"
	"github.com/tomtom215/abiflix/internal/catalog"
	"github.com/tomtom215/abiflix/internal/models"
	"github.com/tomtom215/abiflix/internal/storage"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// switchKV fails saves while failSave is set.
type switchKV struct {
	*storage.MemoryKV
	failSave atomic.Bool
}

func (s *switchKV) Save(key string, data []byte) error {
	if s.failSave.Load() {
		return io.ErrShortWrite
	}
	return s.MemoryKV.Save(key, data)
}

// stubCompleter answers every call with the same reply or error.
type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, string, []models.ChatMessage) (string, error) {
	return s.reply, s.err
}

type testEnv struct {
	store   *catalog.Store
	kv      *switchKV
	handler http.Handler
}

type envConfig struct {
	storeOpts []catalog.Option
	completer assistant.Completer
	noSession bool
	mw        *ChiMiddlewareConfig
}

func newTestEnv(t *testing.T, cfg envConfig) *testEnv {
	t.Helper()

	kv := &switchKV{MemoryKV: storage.NewMemoryKV()}
	opts := append([]catalog.Option{
		catalog.WithClock(func() time.Time { return testNow }),
		catalog.WithLogger(zerolog.New(io.Discard)),
	}, cfg.storeOpts...)
	store, err := catalog.New(kv, opts...)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	var session *assistant.Session
	if !cfg.noSession {
		session = assistant.NewSession(store, cfg.completer,
			assistant.WithSessionClock(func() time.Time { return testNow }),
			assistant.WithSessionLogger(zerolog.New(io.Discard)),
		)
	}

	h := NewHandler(store, session, WithHandlerClock(func() time.Time { return testNow }))
	var mw *ChiMiddleware
	if cfg.mw != nil {
		mw = NewChiMiddleware(cfg.mw)
	}
	return &testEnv{
		store:   store,
		kv:      kv,
		handler: NewRouter(h, mw).SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/admin/login", `{"identifier":"abew","secret":"488055"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
}

type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func titleIDs(titles []models.Title) []string {
	out := make([]string, len(titles))
	for i := range titles {
		out[i] = titles[i].ID
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body %s", w.Code, want, w.Body.String())
	}
}
