// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package supervisor runs Folio's long-lived services under a suture v4 tree.

	RootSupervisor ("folio")
	├── EventsSupervisor ("events-layer")
	│   ├── cache-invalidator   (when EVENTS_ENABLED)
	│   └── cache-stats
	└── APISupervisor ("api-layer")
	    └── http-server

A crash in the events layer restarts only that layer, so the API keeps
serving while invalidation recovers. Supervisor events are logged through
sutureslog on top of the zerolog slog bridge:

	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddEventsService(invalidator)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

Serve returns when ctx is canceled; UnstoppedServiceReport lists services
that ignored the shutdown timeout.
*/
package supervisor
