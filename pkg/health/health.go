package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/snowflake/pkg/logger"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc is the health check signature. It matches the closure returned
// by id.Generator.Healthcheck.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// Response aggregates the outcome of a Run.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check represents the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout bounds the whole run.
// Default: 5 seconds
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger failed checks are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes all checks in parallel and aggregates the results. A check
// still running when the timeout expires is reported as ErrCheckTimeout.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}
	cfg := newConfig(opts...)

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Check, len(checks))
		status  = StatusHealthy
	)

	for name, check := range checks {
		g.Go(func() error {
			err := check(ctx)
			if err == nil && ctx.Err() != nil {
				err = ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %w", ErrCheckTimeout, err)
			}

			result := Check{Status: StatusHealthy}
			if err != nil {
				result = Check{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			results[name] = result
			if err != nil {
				status = StatusUnhealthy
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return &Response{Status: status, Checks: results}
}

// Err returns nil when every check passed, otherwise ErrCheckFailed joined
// with the failures in name order.
func (r *Response) Err() error {
	if r.Status == StatusHealthy {
		return nil
	}

	names := make([]string, 0, len(r.Checks))
	for name, c := range r.Checks {
		if c.Status != StatusHealthy {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	errs := []error{ErrCheckFailed}
	for _, name := range names {
		errs = append(errs, fmt.Errorf("%s: %s", name, r.Checks[name].Error))
	}
	return errors.Join(errs...)
}
