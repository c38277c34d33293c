// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/folio/internal/validation"
)

// Error kinds. Match them with errors.Is; use errors.As with the concrete
// types below to reach the details.
var (
	// ErrNotFound reports that an anchor article does not exist in the corpus.
	ErrNotFound = errors.New("article not found")

	// ErrValidation reports malformed request parameters.
	ErrValidation = errors.New("invalid recommendation request")

	// ErrFetch reports an unexpected failure while reading the corpus.
	ErrFetch = errors.New("corpus fetch failed")
)

// NotFoundError is returned when the anchor article cannot be resolved.
type NotFoundError struct {
	ArticleID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("article %q not found", e.ArticleID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError is returned before any corpus access when request
// parameters are invalid. Violations lists every failed rule.
type ValidationError struct {
	Violations []validation.Violation
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + validation.JoinMessages(e.Violations)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FetchError wraps a corpus failure with the operation that produced it.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("corpus %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// wrapFetch wraps a corpus error exactly once.
func wrapFetch(op string, err error) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{Op: op, Err: err}
}
