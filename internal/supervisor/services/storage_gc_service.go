// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package services

import (
	"context"
	"time"

	"github.com/tomtom215/abiflix/internal/logging"
	"github.com/tomtom215/abiflix/internal/metrics"
)

// GarbageCollector is implemented by storage.BadgerKV.
type GarbageCollector interface {
	RunGC(ratio float64) error
}

// StorageGCService periodically compacts the badger value log. Every
// catalog mutation rewrites a whole snapshot, so stale versions pile up
// quickly on a busy admin session.
type StorageGCService struct {
	gc       GarbageCollector
	interval time.Duration
	ratio    float64
	name     string
}

// NewStorageGCService creates the service. Zero values fall back to a
// 10 minute interval and a 0.5 discard ratio.
func NewStorageGCService(gc GarbageCollector, interval time.Duration, ratio float64) *StorageGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	return &StorageGCService{
		gc:       gc,
		interval: interval,
		ratio:    ratio,
		name:     "storage-gc",
	}
}

// Serve implements suture.Service. GC errors are logged and counted but do
// not stop the loop; the next tick tries again.
func (s *StorageGCService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := s.gc.RunGC(s.ratio)
			metrics.RecordStorageGC(err)
			if err != nil {
				logger.Warn().Err(err).Msg("value log GC failed")
				continue
			}
			logger.Debug().Msg("value log GC complete")
		}
	}
}

func (s *StorageGCService) String() string {
	return s.name
}
