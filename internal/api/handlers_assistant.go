// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/abiflix/internal/assistant"
)

// MessageRequest is one user turn for the assistant.
type MessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// Conversation is the assistant transcript.
type Conversation struct {
	Configured bool        `json:"configured"`
	Messages   interface{} `json:"messages"`
}

// AssistantMessages returns the conversation so far.
func (h *Handler) AssistantMessages(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.session == nil {
		rw.ServiceUnavailable(ErrCodeNotConfigured, assistant.NotConfiguredText)
		return
	}
	rw.Success(Conversation{Configured: h.session.Configured(), Messages: h.session.Messages()})
}

// SendAssistantMessage sends a user message and returns the model reply
// with the recommended titles resolved. Upstream failures still answer 200
// with the apology text, as the conversation continues.
func (h *Handler) SendAssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	rw := NewResponseWriter(w, r)
	if h.session == nil {
		rw.ServiceUnavailable(ErrCodeNotConfigured, assistant.NotConfiguredText)
		return
	}

	reply, err := h.session.Send(r.Context(), req.Text)
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		rw.BadRequest("Message text is empty")
	case errors.Is(err, assistant.ErrNotConfigured):
		rw.ServiceUnavailable(ErrCodeNotConfigured, assistant.NotConfiguredText)
	case err != nil:
		rw.InternalError("Assistant request failed")
	default:
		rw.Success(reply)
	}
}

// ResetAssistant clears the conversation.
func (h *Handler) ResetAssistant(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.session == nil {
		rw.ServiceUnavailable(ErrCodeNotConfigured, assistant.NotConfiguredText)
		return
	}
	h.session.Reset()
	rw.NoContent()
}
