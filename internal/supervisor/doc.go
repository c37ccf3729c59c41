// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package supervisor runs the long-lived parts of the service under a suture v4
supervisor tree.

	RootSupervisor ("mlops")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The recommendation index is built before the tree starts and is immutable, so
nothing in the tree owns it; a restarted HTTP server serves the same index.
A failing janitor never takes the API layer down with it.

Supervisor events are logged through sutureslog, fed by the zerolog-backed
slog handler from the logging package.
*/
package supervisor
