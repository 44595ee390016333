// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/abiflix/internal/logging"
	"github.com/tomtom215/abiflix/internal/models"
)

// Default persistence keys and admin credentials.
const (
	DefaultContentKey      = "abiflix_content"
	DefaultUserKey         = "abiflix_user"
	DefaultAdminIdentifier = "abew"
	DefaultAdminSecret     = "488055"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	contentKey  string
	userKey     string
	strict      bool
	adminID     string
	adminSecret string
	now         func() time.Time
	seedAt      func() time.Time
	seedTitles  func() []models.Title
	seedUser    func() models.UserProfile
	logger      zerolog.Logger
}

func defaultOptions() options {
	return options{
		contentKey:  DefaultContentKey,
		userKey:     DefaultUserKey,
		adminID:     DefaultAdminIdentifier,
		adminSecret: DefaultAdminSecret,
		now:         time.Now,
		seedAt:      processStart,
		seedTitles:  DefaultTitles,
		seedUser:    DefaultUser,
		logger:      logging.WithComponent("catalog"),
	}
}

// WithKeys overrides the storage keys. Empty values keep the defaults.
func WithKeys(contentKey, userKey string) Option {
	return func(o *options) {
		if contentKey != "" {
			o.contentKey = contentKey
		}
		if userKey != "" {
			o.userKey = userKey
		}
	}
}

// WithStrictPersistence makes storage failures visible to callers as errors
// wrapping ErrStorageUnavailable.
func WithStrictPersistence() Option {
	return func(o *options) { o.strict = true }
}

// WithAdminCredentials replaces the identifier/secret pair accepted by
// LoginAdmin.
func WithAdminCredentials(identifier, secret string) Option {
	return func(o *options) {
		o.adminID = identifier
		o.adminSecret = secret
	}
}

// processStart stamps the default seed. Every store seeded in this process
// gets the same AddedAt, so two fresh initializations yield equal catalogs.
var processStart = sync.OnceValue(time.Now)

// WithClock sets the time source used for AddedAt, generated IDs and the
// seed timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
			o.seedAt = now
		}
	}
}

// WithSeed replaces the data written on first start.
func WithSeed(titles []models.Title, user models.UserProfile) Option {
	return func(o *options) {
		o.seedTitles = func() []models.Title { return models.CloneTitles(titles) }
		o.seedUser = func() models.UserProfile { return user.Clone() }
	}
}

// WithLogger sets the logger used for persistence and seeding events.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
