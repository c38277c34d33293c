// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/folio/internal/corpus"
	"github.com/tomtom215/folio/internal/recommend"
)

// writeEngineError maps recommendation and corpus errors onto the response
// envelope.
func writeEngineError(rw *ResponseWriter, err error) {
	var (
		verr       *recommend.ValidationError
		notFound   *recommend.NotFoundError
		incomplete *corpus.IncompleteArticleError
		dup        *corpus.DuplicateSlugError
	)

	switch {
	case errors.As(err, &verr):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, "request validation failed", verr.Violations)
	case errors.As(err, &incomplete):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, "article is incomplete", incomplete.Violations)
	case errors.As(err, &notFound):
		rw.NotFound(notFound.Error())
	case errors.As(err, &dup):
		rw.Conflict(dup.Error())
	case errors.Is(err, recommend.ErrFetch):
		rw.ServiceUnavailable("article corpus unavailable", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		rw.ServiceUnavailable("request timed out", err)
	default:
		rw.InternalError("internal error", err)
	}
}
