// Package health tracks the store backends the readiness probe depends on.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when the caller's context has no
// earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs registered checks concurrently. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New returns an empty registry using DefaultCheckTimeout.
func New() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// WithTimeout sets the per-check timeout and returns r.
func (r *Registry) WithTimeout(d time.Duration) *Registry {
	r.mu.Lock()
	r.timeout = d
	r.mu.Unlock()
	return r
}

// Register adds checker. A later checker with the same name shadows the
// earlier result.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns the outcome keyed by checker name.
// A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	timeout := r.timeout
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// CheckFunc adapts a function into a named ports.HealthChecker.
type CheckFunc struct {
	name string
	fn   func(context.Context) error
}

// NewCheckFunc returns a checker named name that calls fn.
func NewCheckFunc(name string, fn func(context.Context) error) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

// Name implements ports.HealthChecker.
func (c CheckFunc) Name() string { return c.name }

// HealthCheck implements ports.HealthChecker.
func (c CheckFunc) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
