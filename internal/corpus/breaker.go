// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

// breakerName labels the corpus circuit breaker in logs and metrics.
const breakerName = "corpus"

// BreakerCorpus wraps a corpus reader with a circuit breaker. When the
// breaker is open, reads fail immediately with gobreaker.ErrOpenState,
// which the engine reports as a fetch error.
//
// A lookup that finds nothing is a success. Context cancellation does not
// count toward tripping the breaker.
type BreakerCorpus struct {
	inner recommend.Corpus
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// WithBreaker wraps inner with a circuit breaker when cfg enables one and
// returns inner unchanged otherwise.
func WithBreaker(inner recommend.Corpus, cfg *config.BreakerConfig) recommend.Corpus {
	if cfg == nil || !cfg.Enabled {
		return inner
	}
	return NewBreakerCorpus(inner, cfg)
}

// NewBreakerCorpus creates a breaker-protected corpus reader.
// The breaker opens after cfg.FailureThreshold consecutive failures, stays
// open for cfg.Timeout and then admits cfg.MaxRequests probes.
func NewBreakerCorpus(inner recommend.Corpus, cfg *config.BreakerConfig) *BreakerCorpus {
	name := breakerName

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerCorpus{inner: inner, cb: cb, name: name}
}

// lookup carries a FindByID result through the breaker.
type lookup struct {
	article models.Article
	found   bool
}

// FindByID reads through the breaker.
func (b *BreakerCorpus) FindByID(ctx context.Context, id string) (models.Article, bool, error) {
	res, err := castResult[lookup](b.execute(func() (interface{}, error) {
		article, found, err := b.inner.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &lookup{article: article, found: found}, nil
	}))
	if err != nil {
		return models.Article{}, false, err
	}
	return res.article, res.found, nil
}

// ListAll reads through the breaker.
func (b *BreakerCorpus) ListAll(ctx context.Context) ([]models.Article, error) {
	res, err := castResult[[]models.Article](b.execute(func() (interface{}, error) {
		articles, err := b.inner.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return &articles, nil
	}))
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// State returns the current breaker state name.
func (b *BreakerCorpus) State() string {
	return stateToString(b.cb.State())
}

// execute runs fn under the breaker and records the outcome.
func (b *BreakerCorpus) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
