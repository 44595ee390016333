// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces catalog keys inside a shared BadgerDB.
const keyPrefix = "kv:"

// BadgerKV implements KV using BadgerDB for durable storage.
type BadgerKV struct {
	db     *badger.DB
	ownsDB bool
}

// OpenBadgerKV opens (or creates) a BadgerDB at path.
func OpenBadgerKV(path string) (*BadgerKV, error) {
	if path == "" {
		return nil, errors.New("badger storage requires a path")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &BadgerKV{db: db, ownsDB: true}, nil
}

// NewBadgerKV wraps an existing DB connection. Close does not close db.
func NewBadgerKV(db *badger.DB) *BadgerKV {
	return &BadgerKV{db: db}
}

// Load implements KV.
func (s *BadgerKV) Load(key string) ([]byte, bool, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, true, nil
}

// Save implements KV.
func (s *BadgerKV) Save(key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// RunGC reclaims value log space, repeating until badger reports nothing
// left to rewrite. ratio is the discard ratio a vlog file must exceed.
func (s *BadgerKV) RunGC(ratio float64) error {
	for {
		err := s.db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close closes the underlying BadgerDB if this KV opened it.
func (s *BadgerKV) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}
