// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/abiflix/internal/models"
)

// Completer produces the next model reply for a conversation.
type Completer interface {
	Complete(ctx context.Context, system string, history []models.ChatMessage) (string, error)
}

// ErrNotConfigured is returned by Session.Send when no completer is set.
var ErrNotConfigured = errors.New("assistant: api key not configured")

// OpenAIConfig configures OpenAICompleter.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string

	// Timeout bounds one completion request. Zero means no extra bound
	// beyond the caller's context.
	Timeout time.Duration

	// RateLimit is requests per second; Burst the bucket size.
	RateLimit float64
	Burst     int

	BreakerFailures uint32
	BreakerTimeout  time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// OpenAICompleter calls an OpenAI-compatible chat completions endpoint.
type OpenAICompleter struct {
	client  openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[string]
}

// NewOpenAICompleter validates cfg and builds the client.
func NewOpenAICompleter(cfg OpenAIConfig) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Model == "" {
		return nil, errors.New("assistant: model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &OpenAICompleter{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(limit, burst),
		breaker: newBreaker("assistant-completions", cfg.BreakerFailures, cfg.BreakerTimeout),
	}, nil
}

// Complete waits for a rate limit token and sends the conversation through
// the circuit breaker. Model turns map to assistant messages.
func (c *OpenAICompleter) Complete(ctx context.Context, system string, history []models.ChatMessage) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("assistant rate limit: %w", err)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(system))
	for _, m := range history {
		switch m.Role {
		case models.ChatRoleUser:
			messages = append(messages, openai.UserMessage(m.Text))
		case models.ChatRoleModel:
			messages = append(messages, openai.AssistantMessage(m.Text))
		}
	}

	return execute(c.breaker, func() (string, error) {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(c.model),
			Messages: messages,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	})
}
