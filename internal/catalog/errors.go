// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import "errors"

// ErrStorageUnavailable is wrapped by mutation errors in strict persistence
// mode when the backing store rejects a load or a write.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrDuplicateID is returned by AddIfAbsent when a title with the same ID is
// already in the catalog.
var ErrDuplicateID = errors.New("duplicate title id")
