// Package health runs named health checks concurrently and aggregates their
// outcome.
//
// Checks are plain func(context.Context) error closures, such as the one
// returned by id.Generator.Healthcheck:
//
//	resp := health.Run(ctx, health.Checks{
//	    "id-clock": gen.Healthcheck(),
//	}, health.WithTimeout(time.Second), health.WithLogger(log))
//
//	if err := resp.Err(); err != nil {
//	    // errors.Is(err, health.ErrCheckFailed)
//	}
//
// The [Response] is JSON-tagged so callers can expose it however they serve
// diagnostics. A check that outlives the timeout is reported with
// [ErrCheckTimeout].
package health
