// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package storage

import (
	"errors"
	"fmt"
	"io"
)

// KV is the persistence port used by the catalog store.
type KV interface {
	// Load returns the value stored under key. found is false when the key
	// has never been written.
	Load(key string) (data []byte, found bool, err error)

	// Save overwrites the value stored under key.
	Save(key string, data []byte) error
}

// Type defines the kind of storage backend.
type Type string

const (
	// TypeMemory keeps values in process memory (not persistent).
	TypeMemory Type = "memory"

	// TypeBadger stores values in a BadgerDB directory.
	TypeBadger Type = "badger"
)

// ErrUnknownType is returned by Open for an unsupported backend type.
var ErrUnknownType = errors.New("unknown storage type")

// Backend is a KV that owns resources released by Close.
type Backend interface {
	KV
	io.Closer
}

// Open creates a storage backend of the given type. path is the BadgerDB
// directory and is ignored for the memory backend.
func Open(t Type, path string) (Backend, error) {
	switch t {
	case TypeMemory, "":
		return NewMemoryKV(), nil
	case TypeBadger:
		kv, err := OpenBadgerKV(path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}
