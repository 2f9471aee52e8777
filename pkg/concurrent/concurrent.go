package concurrent

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each item in its own goroutine, at most limit at a time
// (limit <= 0 means no limit). It stops scheduling on the first error, cancels ctx for
// the running actions and returns that error.
func Concurrent[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	group, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			return action(gctx, item)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ParallelCollect runs action for every item even when some fail and returns all
// failures joined.
func ParallelCollect[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	group := errgroup.Group{}
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			if err := action(ctx, item); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = group.Wait()

	return errors.Join(errs...)
}
