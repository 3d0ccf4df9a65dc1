// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

/*
Package supervisor runs the long-lived parts of the Citescape server under a
suture v4 supervisor tree.

The tree has two layers so a misbehaving background service cannot take the
HTTP gateway down with it:

	RootSupervisor ("citescape")
	├── EngineSupervisor ("engine-layer")
	│   └── HealthMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (start, failure, backoff) are logged through sutureslog on
top of the zerolog-backed slog adapter from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddEngineService(services.NewHealthMonitorService(registry, time.Minute, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))
	err = tree.Serve(ctx)
*/
package supervisor
