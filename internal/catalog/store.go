// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/abiflix/internal/metrics"
	"github.com/tomtom215/abiflix/internal/models"
	"github.com/tomtom215/abiflix/internal/storage"
)

// Store holds the catalog and the profile and writes both through to a
// storage.KV.
type Store struct {
	kv   storage.KV
	opts options

	mu     sync.RWMutex
	titles []models.Title
	user   models.UserProfile
}

// New loads the persisted catalog and profile from kv, seeding whichever is
// missing. In strict mode a failed load or seed write is returned as an error.
func New(kv storage.KV, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{kv: kv, opts: o}

	titles, found, err := loadDocument[[]models.Title](s, o.contentKey)
	if err != nil {
		return nil, err
	}
	if !found {
		titles = s.seedTitles()
		if err := s.save(o.contentKey, titles); err != nil {
			return nil, err
		}
	}
	if titles == nil {
		titles = []models.Title{}
	}

	user, found, err := loadDocument[models.UserProfile](s, o.userKey)
	if err != nil {
		return nil, err
	}
	if !found {
		user = o.seedUser()
		if err := s.save(o.userKey, user); err != nil {
			return nil, err
		}
	}

	s.titles = titles
	s.user = user
	metrics.CatalogTitles.Set(float64(len(titles)))

	o.logger.Info().
		Int("titles", len(titles)).
		Str("content_key", o.contentKey).
		Str("user_key", o.userKey).
		Bool("strict", o.strict).
		Msg("catalog store ready")

	return s, nil
}

// loadDocument reads and decodes key. A missing key or undecodable bytes
// report found=false so the caller reseeds. A storage error is returned only
// in strict mode; otherwise it is logged and treated as missing.
func loadDocument[T any](s *Store, key string) (T, bool, error) {
	var v T

	data, ok, err := s.kv.Load(key)
	if err != nil {
		if s.opts.strict {
			return v, false, fmt.Errorf("load %s: %w: %w", key, ErrStorageUnavailable, err)
		}
		s.opts.logger.Error().Err(err).Str("key", key).Msg("load failed, using seed data")
		return v, false, nil
	}
	if !ok {
		s.opts.logger.Info().Str("key", key).Msg("no persisted data, seeding defaults")
		return v, false, nil
	}

	if err := json.Unmarshal(data, &v); err != nil {
		s.opts.logger.Warn().Err(err).Str("key", key).Int("bytes", len(data)).
			Msg("persisted data is corrupt, reseeding")
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

func (s *Store) seedTitles() []models.Title {
	titles := s.opts.seedTitles()
	now := s.opts.seedAt().UnixMilli()
	for i := range titles {
		if titles[i].AddedAt == 0 {
			titles[i].AddedAt = now
		}
	}
	return titles
}

// save encodes v and writes it under key. Failures are logged and counted;
// the returned error is non-nil only in strict mode.
func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.kv.Save(key, data)
	}
	metrics.RecordPersist(key, len(data), err)
	if err == nil {
		return nil
	}

	s.opts.logger.Error().Err(err).Str("key", key).Bool("strict", s.opts.strict).Msg("persist failed")
	if s.opts.strict {
		return fmt.Errorf("save %s: %w: %w", key, ErrStorageUnavailable, err)
	}
	return nil
}

// commitTitles persists next and swaps it in. Must be called with mu held.
func (s *Store) commitTitles(op string, next []models.Title) error {
	if err := s.save(s.opts.contentKey, next); err != nil {
		return err
	}
	s.titles = next
	metrics.RecordMutation(op, len(next))
	return nil
}

// commitUser persists next and swaps it in. Must be called with mu held.
func (s *Store) commitUser(op string, next models.UserProfile) error {
	if err := s.save(s.opts.userKey, next); err != nil {
		return err
	}
	s.user = next
	metrics.RecordMutation(op, len(s.titles))
	return nil
}

// ListAll returns the catalog, most recently added first.
func (s *Store) ListAll() []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTitles(s.titles)
}

// GetByID returns the first title with the given ID.
func (s *Store) GetByID(id string) (models.Title, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.titles[i].Clone(), true
	}
	return models.Title{}, false
}

func (s *Store) indexLocked(id string) int {
	for i := range s.titles {
		if s.titles[i].ID == id {
			return i
		}
	}
	return -1
}

// ListTrending returns titles flagged as trending, in catalog order.
func (s *Store) ListTrending() []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Title{}
	for i := range s.titles {
		if s.titles[i].Trending {
			out = append(out, s.titles[i].Clone())
		}
	}
	return out
}

// ByType returns titles of the given kind, in catalog order.
func (s *Store) ByType(kind models.ContentType) []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Title{}
	for i := range s.titles {
		if s.titles[i].Type == kind {
			out = append(out, s.titles[i].Clone())
		}
	}
	return out
}

// Search returns titles whose name, any genre, any cast member or country
// contains query, ignoring case. An empty query matches every title.
func (s *Store) Search(query string) []models.Title {
	metrics.CatalogSearches.Inc()
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Title{}
	for i := range s.titles {
		if matchesQuery(&s.titles[i], q) {
			out = append(out, s.titles[i].Clone())
		}
	}
	return out
}

// matchesQuery expects q to be lower-cased already.
func matchesQuery(t *models.Title, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Country), q) {
		return true
	}
	for _, g := range t.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	for _, c := range t.Cast {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// Add prepends t to the catalog. An empty ID is replaced by the current
// unix millisecond timestamp and a zero AddedAt by the current time. The
// store does not check for duplicate IDs.
func (s *Store) Add(t models.Title) error {
	t = t.Clone()
	now := s.opts.now().UnixMilli()
	if t.ID == "" {
		t.ID = strconv.FormatInt(now, 10)
	}
	if t.AddedAt == 0 {
		t.AddedAt = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Title, 0, len(s.titles)+1)
	next = append(next, t)
	next = append(next, s.titles...)
	return s.commitTitles("add", next)
}

// AddIfAbsent prepends t unless a title with its ID already exists, checking
// and inserting under one lock. An empty ID is replaced by the current unix
// millisecond timestamp, moved forward until it is unused. It returns the
// stored title.
func (s *Store) AddIfAbsent(t models.Title) (models.Title, error) {
	t = t.Clone()
	now := s.opts.now().UnixMilli()
	if t.AddedAt == 0 {
		t.AddedAt = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		id := now
		for s.indexLocked(strconv.FormatInt(id, 10)) >= 0 {
			id++
		}
		t.ID = strconv.FormatInt(id, 10)
	} else if s.indexLocked(t.ID) >= 0 {
		return models.Title{}, fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}

	next := make([]models.Title, 0, len(s.titles)+1)
	next = append(next, t)
	next = append(next, s.titles...)
	if err := s.commitTitles("add", next); err != nil {
		return models.Title{}, err
	}
	return t.Clone(), nil
}

// Update replaces the first title whose ID matches t.ID, keeping its
// position. Unknown IDs are ignored and nothing is written.
func (s *Store) Update(t models.Title) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(t.ID)
	if i < 0 {
		return nil
	}
	next := make([]models.Title, len(s.titles))
	copy(next, s.titles)
	next[i] = t.Clone()
	return s.commitTitles("update", next)
}

// Delete removes every title with the given ID. The profile is left alone.
// The catalog is written even when nothing matched.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Title, 0, len(s.titles))
	for i := range s.titles {
		if s.titles[i].ID != id {
			next = append(next, s.titles[i])
		}
	}
	return s.commitTitles("delete", next)
}

// User returns the profile.
func (s *Store) User() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// ToggleWatchlist removes id from the watchlist if present, otherwise
// appends it. The ID is not checked against the catalog.
func (s *Store) ToggleWatchlist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.user.Clone()
	if next.InWatchlist(id) {
		kept := make([]string, 0, len(next.Watchlist))
		for _, w := range next.Watchlist {
			if w != id {
				kept = append(kept, w)
			}
		}
		next.Watchlist = kept
	} else {
		next.Watchlist = append(next.Watchlist, id)
	}
	return s.commitUser("watchlist", next)
}

// AddToHistory puts id at the front of the history unless it is already
// there somewhere, in which case nothing changes and nothing is written.
func (s *Store) AddToHistory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user.InHistory(id) {
		return nil
	}
	next := s.user.Clone()
	next.History = append([]string{id}, next.History...)
	return s.commitUser("history", next)
}

// LoginAdmin sets the profile's admin flag when identifier and secret match
// the configured pair. A mismatch changes nothing. In strict mode a failed
// write also reports false and leaves the flag unset.
func (s *Store) LoginAdmin(identifier, secret string) bool {
	ok := constantTimeEqual(identifier, s.opts.adminID) && constantTimeEqual(secret, s.opts.adminSecret)
	if !ok {
		metrics.RecordAdminLogin(false)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.user.Clone()
	next.IsAdmin = true
	if err := s.commitUser("login", next); err != nil {
		metrics.RecordAdminLogin(false)
		return false
	}
	metrics.RecordAdminLogin(true)
	return true
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
