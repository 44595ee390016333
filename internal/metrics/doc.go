// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

/*
Package metrics provides Prometheus metrics for the catalog service.

Metrics are registered on the default registry via promauto and exposed at
/metrics by the API router:

	curl http://localhost:3857/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Catalog:
  - catalog_mutations_total{operation}
  - catalog_titles
  - catalog_searches_total
  - admin_login_attempts_total{result}

Persistence:
  - persist_writes_total{key,result}
  - persist_write_bytes{key}
  - storage_gc_runs_total{result}

Assistant:
  - assistant_requests_total{result}
  - assistant_request_duration_seconds
  - assistant_recommendations_total
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

A failed persistence write shows up as persist_writes_total{result="failure"}
even when the store runs in best-effort mode and the caller never sees the
error.
*/
package metrics
