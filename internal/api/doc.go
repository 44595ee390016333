// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package api is the JSON transport over the catalog store and the chat
assistant.

Every response uses the APIResponse envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "Title not found"}, "meta": {...}}

Routes:

	GET    /api/v1/health/live
	GET    /api/v1/health
	GET    /api/v1/home
	GET    /api/v1/facets
	GET    /api/v1/titles?q=&genre=&country=&type=
	GET    /api/v1/titles/trending
	GET    /api/v1/titles/{id}
	GET    /api/v1/titles/{id}/playback
	GET    /api/v1/profile
	GET    /api/v1/profile/watchlist
	POST   /api/v1/profile/watchlist/{id}
	GET    /api/v1/profile/history
	POST   /api/v1/profile/history/{id}
	POST   /api/v1/admin/login
	POST   /api/v1/admin/titles
	PUT    /api/v1/admin/titles/{id}
	DELETE /api/v1/admin/titles/{id}
	GET    /api/v1/assistant/messages
	POST   /api/v1/assistant/messages
	DELETE /api/v1/assistant/messages
	GET    /metrics

Admin title routes require the local profile to have signed in through
/admin/login. Login attempts are rate limited per client IP with
go-chi/httprate. Writes the store could not persist answer 503 when the
store runs with strict persistence; in the default best-effort mode they
succeed and the failure is only logged and counted.
*/
package api
