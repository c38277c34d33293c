// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package main

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/folio/internal/api"
	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/corpus"
	"github.com/tomtom215/folio/internal/eventprocessor"
	"github.com/tomtom215/folio/internal/logging"
)

// initCorpus opens the configured store and applies the seed file, if any.
func initCorpus(ctx context.Context, cfg *config.CorpusConfig) (corpus.Store, error) {
	store, err := corpus.Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SeedFile != "" {
		articles, err := corpus.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		logging.Info().Str("file", cfg.SeedFile).Int("articles", len(articles)).Msg("Seed file loaded")
		if _, err := corpus.Seed(ctx, store, articles); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed corpus: %w", err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("count corpus: %w", err)
	}
	logging.Info().Str("backend", cfg.Backend).Int("articles", count).Msg("Corpus opened")

	return store, nil
}

// eventComponents holds the change publisher and, when events are enabled,
// the bus and its invalidator.
type eventComponents struct {
	publisher   api.ChangePublisher
	invalidator *eventprocessor.Invalidator

	bus *gochannel.GoChannel
	pub *eventprocessor.Publisher
}

// initEvents wires cache invalidation. With events disabled, writes clear
// the cache synchronously.
func initEvents(cfg *config.EventsConfig, cache eventprocessor.CacheInvalidator) (*eventComponents, error) {
	if !cfg.Enabled {
		direct, err := eventprocessor.NewDirectPublisher(cache, cfg.InvalidationScope)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("scope", cfg.InvalidationScope).Msg("Events disabled, invalidating cache synchronously")
		return &eventComponents{publisher: direct}, nil
	}

	bus := eventprocessor.NewBus(cfg, eventprocessor.NewWatermillLogger("events"))

	pub, err := eventprocessor.NewPublisher(bus)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	invCfg := eventprocessor.DefaultInvalidatorConfig()
	invCfg.Scope = cfg.InvalidationScope
	invalidator, err := eventprocessor.NewInvalidator(bus, cache, invCfg, eventprocessor.NewWatermillLogger("invalidator"))
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	logging.Info().
		Int64("buffer_size", cfg.BufferSize).
		Str("scope", cfg.InvalidationScope).
		Msg("Event bus initialized")

	return &eventComponents{
		publisher:   pub,
		invalidator: invalidator,
		bus:         bus,
		pub:         pub,
	}, nil
}

// Close releases the publisher and the bus.
func (e *eventComponents) Close() {
	if e.pub != nil {
		if err := e.pub.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing event publisher")
		}
	}
	if e.bus != nil {
		if err := e.bus.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing event bus")
		}
	}
}
