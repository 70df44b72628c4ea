package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two loaders concurrently and returns both results, or the
// first error. The shared context is cancelled as soon as either fails.
//
//	questions, categories, err := Parallel2(ctx, repo.List, categoryRepo.List)
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		result1 T1
		result2 T2
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result1, err = fn1(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		result2, err = fn2(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return result1, result2, nil
}

// FanOut feeds items to a fixed number of workers. Each worker handles
// items sequentially; the first error stops the feed.
func FanOut[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	work := make(chan T)

	for range workers {
		g.Go(func() error {
			for item := range work {
				if err := fn(ctx, item); err != nil {
					return err
				}
			}

			return nil
		})
	}

	g.Go(func() error {
		defer close(work)

		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}

			select {
			case work <- item:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fan out failed: %w", err)
	}

	return nil
}
