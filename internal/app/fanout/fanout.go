// Package fanout runs a function across a slice of inputs with bounded
// concurrency, preserving input order in the results.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single input.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each input using at most maxWorkers goroutines. A failing
// call does not stop the others; its error is kept in the matching Result.
//
// Inputs still waiting for a worker when ctx is cancelled record ctx.Err()
// and fn is not called for them. A maxWorkers below 1 runs everything at once.
func Run[T, R any](ctx context.Context, maxWorkers int, inputs []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, in)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Values returns the successful values in input order, or the first error.
func Values[R any](results []Result[R]) ([]R, error) {
	out := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		out = append(out, r.Value)
	}
	return out, nil
}
