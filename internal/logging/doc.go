// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package logging provides centralized zerolog-based logging for Folio.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Err(err).Msg("Corpus unavailable")
//
// Components take a zerolog.Logger and tag it once:
//
//	logger := logging.WithComponent("corpus")
//
// # Request Context
//
// The HTTP middleware stores a request ID in the context and the event
// publisher adds a correlation ID. Ctx and CtxWith attach both to the log
// line when present:
//
//	logging.Ctx(ctx).Info().Str("article_id", id).Msg("Article stored")
//
// # slog Bridge
//
// Suture and watermill log through log/slog. NewSlogLogger returns an
// slog.Logger that writes to the global zerolog logger, so every library
// shares one output and one level.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
