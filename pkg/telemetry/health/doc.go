// Package health provides health check endpoints for topofix watch mode.
//
// # Overview
//
// The health package implements liveness and readiness probes for the
// long-running watch process. One-shot analyze runs never start an HTTP
// server, so only `topofix watch` mounts these endpoints, next to
// /metrics on the same listener.
//
// # Endpoints
//
//   - /healthz: Liveness probe - indicates if the process is running
//   - /readyz: Readiness probe - indicates if analyses can run
//
// # Usage
//
//	// Create health checker
//	checker := health.New(5 * time.Second)
//
//	// Register component checks
//	checker.RegisterCheck("inputs", func(ctx context.Context) error {
//	    if _, err := os.Stat(errorFile); err != nil {
//	        return err
//	    }
//	    _, err := os.Stat(topologyFile)
//	    return err
//	})
//	checker.RegisterCheck("archive", func(ctx context.Context) error {
//	    _, err := store.Count(ctx)
//	    return err
//	})
//
//	// Add HTTP handlers
//	mux := http.NewServeMux()
//	checker.Register(mux)
//
// # Liveness vs Readiness
//
// Liveness (/healthz) answers "is the process alive" and always returns
// 200 while the watch loop is running. Readiness (/readyz) runs every
// registered component check and returns 503 when any dependency fails,
// so a scrape or orchestrator can tell a hung archive apart from a
// healthy idle watcher.
//
// # Component Health Checks
//
// Watch mode registers:
//   - inputs: the watched error and topology files are readable
//   - archive: the run store answers queries (when archiving is enabled)
//
// Checks run concurrently with a per-check timeout; a check that blocks
// past the timeout reports unhealthy rather than wedging the endpoint.
package health
