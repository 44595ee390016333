// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package assistant

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

// recommendedMarker matches the first marker on a single line. The capture
// includes the array's own brackets, so `[[RECOMMENDED:["1"]]]` yields
// `["1"]` rather than stopping at the first "]]".
var recommendedMarker = regexp.MustCompile(`\[\[RECOMMENDED:\s*(\[.*?\])\s*\]\]`)

// ParseReply splits a raw model reply into display text and recommended
// IDs. When the marker is present and its payload is a JSON array of
// strings, the marker is removed and the text trimmed. A missing or
// malformed marker leaves raw untouched and returns no IDs.
func ParseReply(raw string) (text string, ids []string) {
	m := recommendedMarker.FindStringSubmatchIndex(raw)
	if m == nil {
		return raw, nil
	}

	payload := raw[m[2]:m[3]]
	if err := json.Unmarshal([]byte(payload), &ids); err != nil {
		return raw, nil
	}
	if ids == nil {
		ids = []string{}
	}
	return strings.TrimSpace(raw[:m[0]] + raw[m[1]:]), ids
}
