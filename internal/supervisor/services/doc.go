// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package services adapts Abiflix components to suture.Service so the
supervisor tree can run and restart them.

  - HTTPServerService: translates ListenAndServe/Shutdown into Serve(ctx)
    with a bounded drain on shutdown.
  - StorageGCService: runs badger value log GC on a ticker while the
    badger backend is in use.

Return values drive the supervisor: nil means a clean stop, ctx.Err() a
requested shutdown, and any other error a crash that triggers a restart.
*/
package services
