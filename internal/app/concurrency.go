package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a result or an error for partial success patterns.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartial runs every function concurrently and waits for all of them to settle.
// Unlike an errgroup, one failure never cancels the others.
func ParallelPartial[T any](ctx context.Context, fns ...func(context.Context) (T, error)) []PartialResult[T] {
	return ParallelPartialLimit(ctx, len(fns), fns...)
}

// ParallelPartialLimit is ParallelPartial with at most limit functions in flight.
// A non-positive limit means no bound. Results keep the order of fns.
//
// Functions not yet started when ctx is canceled are skipped and report ctx.Err().
// The call returns only after every started function has returned, so no result
// arrives after the aggregate is handed back.
//
// Example:
//
//	results := ParallelPartialLimit(ctx, 8, lookups...)
//	quotes := Successes(results)
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, fn := range fns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = PartialResult[T]{Err: err}
				return nil
			}

			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// Successes returns the values of the successful results, in order.
func Successes[T any](results []PartialResult[T]) []T {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			values = append(values, r.Value)
		}
	}

	return values
}
