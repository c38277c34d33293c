// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package middleware provides HTTP middleware for the API server.

Key Components:

  - RequestID: UUID request ids on the response header, in the request
    context and in the logging context, plus a correlation id that follows
    the request into published change events
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both use the http.HandlerFunc middleware shape; the api package adapts them
to chi's r.Use:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Endpoint labels come from the chi route pattern, so
/api/v1/articles/{id}/related is one series regardless of the article id.
*/
package middleware
