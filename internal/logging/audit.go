// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package logging

import (
	"context"
	"strings"
)

// LogAdminLogin records an admin login attempt. The identifier is masked so
// a mistyped secret pasted into the identifier field never reaches the log.
// The secret itself is never passed in.
func LogAdminLogin(ctx context.Context, identifier, remoteAddr string, success bool) {
	l := Ctx(ctx).With().Str("component", "auth").Logger()

	event := l.Info()
	status := "success"
	if !success {
		event = l.Warn()
		status = "failed"
	}

	event.
		Str("event", "admin_login").
		Str("status", status).
		Str("identifier", MaskIdentifier(identifier)).
		Str("ip", remoteAddr).
		Msg("")
}

// MaskIdentifier keeps the first and last rune of s and replaces the rest
// with asterisks. Inputs of two runes or fewer are fully masked.
func MaskIdentifier(s string) string {
	r := []rune(strings.TrimSpace(s))
	switch {
	case len(r) == 0:
		return ""
	case len(r) <= 2:
		return strings.Repeat("*", len(r))
	default:
		return string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
	}
}
