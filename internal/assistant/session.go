// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/abiflix/internal/logging"
	"github.com/tomtom215/abiflix/internal/metrics"
	"github.com/tomtom215/abiflix/internal/models"
)

// Fixed texts shown by the assistant.
const (
	WelcomeText       = "Hello! I am Abiflix AI. I can help you find the perfect movie or series to watch. What are you in the mood for today?"
	NotConfiguredText = "Warning: API Key not configured. AI features are unavailable."
	EmptyReplyText    = "I'm sorry, I couldn't process that."
	UnavailableText   = "Sorry, I'm having trouble connecting to the server right now."
)

// ErrEmptyMessage is returned by Send for blank input.
var ErrEmptyMessage = errors.New("assistant: message is empty")

// Catalog is the read side of the catalog store the assistant needs.
type Catalog interface {
	ListAll() []models.Title
	GetByID(id string) (models.Title, bool)
}

// Reply is the model turn produced by Send together with the catalog
// entries it recommends.
type Reply struct {
	Message models.ChatMessage `json:"message"`
	Titles  []models.Title     `json:"titles"`
}

// Session is one conversation. The transcript shown to the user starts with
// the welcome text; only completed exchanges are sent back to the model.
type Session struct {
	catalog   Catalog
	completer Completer
	now       func() time.Time
	logger    zerolog.Logger

	mu         sync.Mutex
	transcript []models.ChatMessage
	history    []models.ChatMessage
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock sets the clock used for message timestamps.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithSessionLogger sets the session logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithSessionLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a conversation. A nil completer yields a session that
// only shows the welcome and not-configured messages.
func NewSession(catalog Catalog, completer Completer, opts ...SessionOption) *Session {
	s := &Session{
		catalog:   catalog,
		completer: completer,
		now:       time.Now,
		logger:    logging.WithComponent("assistant"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transcript = s.intro()
	return s
}

func (s *Session) intro() []models.ChatMessage {
	msgs := []models.ChatMessage{s.message(models.ChatRoleModel, WelcomeText)}
	if s.completer == nil {
		msgs = append(msgs, s.message(models.ChatRoleModel, NotConfiguredText))
	}
	return msgs
}

func (s *Session) message(role models.ChatRole, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
}

// Configured reports whether a completer is attached.
func (s *Session) Configured() bool {
	return s.completer != nil
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	for i, m := range s.transcript {
		out[i] = m
		if m.RecommendedContentIDs != nil {
			out[i].RecommendedContentIDs = append([]string(nil), m.RecommendedContentIDs...)
		}
	}
	return out
}

// Reset drops the conversation and starts over with the intro messages.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = s.intro()
	s.history = nil
}

// Send appends the user's text, asks the completer for a reply and appends
// it. Completer failures do not return an error: the reply carries
// UnavailableText instead, and the failed exchange is not sent to the model
// on later turns.
func (s *Session) Send(ctx context.Context, text string) (Reply, error) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, ErrEmptyMessage
	}
	if s.completer == nil {
		metrics.RecordAssistantRequest("unconfigured", 0, 0)
		return Reply{}, ErrNotConfigured
	}

	userMsg := s.message(models.ChatRoleUser, text)

	s.mu.Lock()
	s.transcript = append(s.transcript, userMsg)
	history := make([]models.ChatMessage, 0, len(s.history)+1)
	history = append(history, s.history...)
	history = append(history, userMsg)
	s.mu.Unlock()

	ctx = logging.ContextWithCorrelationID(ctx, logging.GenerateCorrelationID())
	log := logging.Ctx(ctx).With().Str("component", "assistant").Logger()

	system := BuildSystemInstruction(s.catalog.ListAll())
	start := time.Now()
	raw, err := s.completer.Complete(ctx, system, history)
	elapsed := time.Since(start)

	var (
		result   string
		display  string
		resolved []models.Title
		ids      []string
	)
	switch {
	case err != nil:
		result = "failure"
		display = UnavailableText
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("completion failed")
	case strings.TrimSpace(raw) == "":
		result = "empty"
		display = EmptyReplyText
		log.Warn().Dur("elapsed", elapsed).Msg("completion returned no text")
	default:
		result = "success"
		var recommended []string
		display, recommended = ParseReply(raw)
		resolved, ids = s.resolve(recommended)
		log.Debug().Dur("elapsed", elapsed).Int("recommended", len(recommended)).Int("resolved", len(ids)).
			Msg("completion received")
	}
	metrics.RecordAssistantRequest(result, elapsed, len(ids))

	modelMsg := s.message(models.ChatRoleModel, display)
	modelMsg.RecommendedContentIDs = ids

	s.mu.Lock()
	s.transcript = append(s.transcript, modelMsg)
	if result == "success" {
		s.history = append(s.history, userMsg, models.ChatMessage{
			ID:        modelMsg.ID,
			Role:      models.ChatRoleModel,
			Text:      raw,
			Timestamp: modelMsg.Timestamp,
		})
	}
	s.mu.Unlock()

	if resolved == nil {
		resolved = []models.Title{}
	}
	return Reply{Message: modelMsg, Titles: resolved}, nil
}

// resolve looks up recommended IDs, dropping unknown ones and repeats.
func (s *Session) resolve(ids []string) ([]models.Title, []string) {
	if len(ids) == 0 {
		return nil, nil
	}
	titles := make([]models.Title, 0, len(ids))
	kept := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if t, ok := s.catalog.GetByID(id); ok {
			titles = append(titles, t)
			kept = append(kept, id)
		}
	}
	return titles, kept
}
