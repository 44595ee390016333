// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package config loads Abiflix configuration with koanf.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. A YAML file: $CONFIG_PATH, else the first of DefaultConfigPaths that exists
//  3. Environment variables listed in envTransformFunc
//
// Only mapped environment variables are read. Anything else in the process
// environment is ignored, so an unrelated PORT or DEBUG cannot leak in.
//
// Example config.yaml:
//
//	server:
//	  port: 3857
//	storage:
//	  type: badger
//	  path: /data/abiflix
//	  gc_interval: 10m
//	assistant:
//	  base_url: https://generativelanguage.googleapis.com/v1beta/openai/
//	  model: gemini-2.5-flash
//	security:
//	  cors_origins: ["https://abiflix.example.com"]
//	logging:
//	  level: debug
//	  format: console
package config
