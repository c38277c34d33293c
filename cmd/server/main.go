// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/folio/internal/api"
	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/corpus"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/supervisor"
	"github.com/tomtom215/folio/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	cacheStatsInterval = 30 * time.Second
	invalidatorWait    = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("version", version).
		Str("corpus_backend", cfg.Corpus.Backend).
		Bool("events_enabled", cfg.Events.Enabled).
		Msg("Starting Folio")

	if err := run(cfg); err != nil {
		logging.Error().Err(err).Msg("Folio stopped with error")
		os.Exit(1)
	}
	logging.Info().Msg("Folio stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := initCorpus(ctx, &cfg.Corpus)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing corpus")
		}
	}()

	engine, err := recommend.NewEngine(
		cfg.Recommend.EngineConfig(),
		corpus.WithBreaker(store, &cfg.Breaker),
		logging.WithComponent("recommend"),
	)
	if err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	events, err := initEvents(&cfg.Events, engine)
	if err != nil {
		return err
	}
	defer events.Close()

	if events.invalidator != nil {
		tree.AddEventsService(events.invalidator)
	}
	tree.AddEventsService(services.NewCacheStatsService(engine, cacheStatsInterval, logging.WithComponent("supervisor")))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	errCh := tree.ServeBackground(ctx)

	// Writes made before the invalidator subscribes would be dropped by the
	// bus, so the API only starts once it is running.
	if events.invalidator != nil {
		select {
		case <-events.invalidator.Running():
		case <-time.After(invalidatorWait):
			logging.Warn().Msg("Cache invalidator not running yet, starting API anyway")
		case <-ctx.Done():
		}
	}

	api.Version = version
	handler := api.NewHandler(engine, store, events.publisher)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server starting")

	treeErr := treeExitError(<-errCh)
	if treeErr != nil {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return treeErr
}

// treeExitError maps the supervisor tree's exit error to the process
// result. Cancellation is the normal shutdown path.
func treeExitError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("supervisor tree: %w", err)
}
