// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared by every caller;
// it caches struct metadata, so repeated validation of the same request type
// is cheap. Field names in violations follow the json tags of the validated
// struct, with nested fields reported as dotted paths ("author.name").
//
// Two entry points are provided:
//
//   - ValidateStruct validates any tagged struct, such as a recommendation
//     request, and returns *RequestValidationError on failure.
//   - ValidateArticle checks a models.Article for completeness before it is
//     accepted into the corpus.
//
// Example usage:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    for _, v := range verr.Violations() {
//	        log.Warn().Str("field", v.Field).Msg(v.Message)
//	    }
//	}
package validation
