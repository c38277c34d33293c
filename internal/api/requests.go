// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Query parameter names for the related endpoint.
const (
	paramStrategy      = "strategy"
	paramLimit         = "limit"
	paramExcludeAnchor = "exclude_anchor"
	paramMinScore      = "min_score"
)

// PersonalizedRequest is the body of the personalized endpoint.
type PersonalizedRequest struct {
	// History lists recently read article ids, most relevant first.
	History []string `json:"history"`

	// Limit is the maximum number of results; 0 uses the engine default.
	Limit int `json:"limit"`
}

// relatedOptions converts query parameters to engine options. Only
// parameters that are present override the engine defaults; range checks
// are left to the engine so all violations are reported together.
func relatedOptions(q url.Values) ([]recommend.Option, error) {
	var opts []recommend.Option

	if v := q.Get(paramStrategy); v != "" {
		strategy, err := algorithms.ParseStrategy(v)
		if err != nil {
			// Unknown names reach the engine, which reports them with
			// any other violations.
			strategy = algorithms.Strategy(v)
		}
		opts = append(opts, recommend.WithStrategy(strategy))
	}

	if v := q.Get(paramLimit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", paramLimit)
		}
		opts = append(opts, recommend.WithLimit(limit))
	}

	if v := q.Get(paramExcludeAnchor); v != "" {
		exclude, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", paramExcludeAnchor)
		}
		opts = append(opts, recommend.WithExcludeAnchor(exclude))
	}

	if v := q.Get(paramMinScore); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", paramMinScore)
		}
		opts = append(opts, recommend.WithMinScore(minScore))
	}

	return opts, nil
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	if len(body) == 0 {
		return fmt.Errorf("body is empty")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
