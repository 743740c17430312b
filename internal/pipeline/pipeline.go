// Package pipeline provides the batch map primitive the enrichment stages
// run on: a bounded pool of workers over an indexed collection, with input
// order surviving because workers address items by index.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs fn for every index in [0, n) using up to workers goroutines.
// The first error cancels the remaining work and is returned; a canceled
// context surfaces as its context error. With one worker the indexes are
// visited strictly in order.
func Map(ctx context.Context, workers, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	if workers == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	indexc := make(chan int)
	g.Go(func() error {
		defer close(indexc)
		for i := 0; i < n; i++ {
			select {
			case indexc <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexc {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
