// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package api exposes the recommendation engine over HTTP using the chi router.

Endpoints:

	GET    /api/v1/health                              liveness and corpus status
	GET    /api/v1/health/live                         liveness probe
	GET    /api/v1/health/ready                        readiness probe
	GET    /api/v1/articles/{id}/related               related articles
	POST   /api/v1/articles/{id}/related/personalized  personalized related articles
	PUT    /api/v1/articles/{id}                       ingest or replace an article
	DELETE /api/v1/articles/{id}                       remove an article
	GET    /api/v1/recommend/cache                     cache statistics
	DELETE /api/v1/recommend/cache                     clear cache (?kind= or ?category=)
	GET    /metrics                                    Prometheus metrics

Related article query parameters:

	strategy        category | tags | content | mixed
	limit           1..10
	exclude_anchor  true | false
	min_score       0..1

Omitted parameters take the engine defaults.

All JSON responses share one envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "...", "details": [...]}}

Engine errors map to status codes: validation failures are 400
VALIDATION_FAILED with the violated fields as details, unknown articles are
404 NOT_FOUND and corpus failures are 503 SERVICE_UNAVAILABLE.
*/
package api
