// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package main is the entry point for the Abiflix server.

Abiflix serves a small streaming catalog: browsable titles, a single viewer
profile with watchlist and viewing history, an admin editor gated on the
profile's admin flag, and an optional chat assistant that recommends titles
from the catalog through an OpenAI-compatible completion endpoint.

# Process Layout

	RootSupervisor ("abiflix")
	├── DataSupervisor ("data-layer")
	│   └── StorageGCService (STORAGE_TYPE=badger)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Startup order:

 1. Configuration: koanf v2 defaults, optional config.yaml, environment
 2. Logging: zerolog, level and format from LOG_LEVEL and LOG_FORMAT
 3. Storage: BadgerDB directory or in-memory map
 4. Catalog store: loads or seeds abiflix_content and abiflix_user
 5. Assistant: only when API_KEY is set
 6. HTTP router and supervisor tree

# Configuration

Common environment variables:

	HTTP_PORT=3857
	STORAGE_TYPE=badger
	STORAGE_PATH=/data/abiflix
	STRICT_PERSISTENCE=false
	ADMIN_IDENTIFIER=abew
	ADMIN_SECRET=488055
	API_KEY=...                 # enables the assistant
	ASSISTANT_MODEL=gemini-2.5-flash
	LOG_LEVEL=info

The built-in admin pair is a demo credential. Override it in production;
the server logs a warning when it is left in place.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
SHUTDOWN_TIMEOUT, then storage is closed.
*/
package main
