// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package models

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`

	// Timestamp is a unix timestamp in milliseconds.
	Timestamp int64 `json:"timestamp"`

	// RecommendedContentIDs lists catalog IDs the model recommended in this turn.
	RecommendedContentIDs []string `json:"recommendedContentIds,omitempty"`
}
