// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewSlogHandler(zerolog.New(&buf)))
			logger.Log(context.Background(), tt.level, "service restarted")
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %s missing %s", buf.String(), tt.want)
			}
		})
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("supervisor", "api").
		WithGroup("svc")

	logger.Info("backoff",
		"name", "http",
		"failures", 3,
		"healthy", false,
		"wait", 2*time.Second,
		slog.Group("ctx", "attempt", 1),
	)

	out := buf.String()
	for _, want := range []string{
		`"supervisor":"api"`,
		`"svc.name":"http"`,
		`"svc.failures":3`,
		`"svc.healthy":false`,
		`"svc.ctx.attempt":1`,
		`"message":"backoff"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandler_AttrsKeepTheirGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("supervisor", "abiflix").
		WithGroup("layer").
		With("name", "api-layer").
		WithGroup("svc")

	logger.Info("service started", "name", "http-server")

	out := buf.String()
	for _, want := range []string{
		`"supervisor":"abiflix"`,
		`"layer.name":"api-layer"`,
		`"layer.svc.name":"http-server"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, `"svc.supervisor"`) || strings.Contains(out, `"layer.supervisor"`) {
		t.Errorf("attr added before a group was qualified by it: %s", out)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn logger")
	}
	if h.WithGroup("") != h {
		t.Error("WithGroup with empty name should return the same handler")
	}
}
