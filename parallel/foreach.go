// Package parallel contains the bounded ForEach used for read-only batch work.
package parallel

import "context"

import "golang.org/x/sync/errgroup"

// ForEach executes body for every i in [0, length) on at most limit goroutines
// and waits for all of them. The first error cancels the context passed to
// the remaining calls and is returned. With limit <= 1 the loop runs inline
// on the calling goroutine, in order.
func ForEach(ctx context.Context, length, limit int, body func(ctx context.Context, i int) error) error {
	if length <= 0 {
		return nil // No iterations to perform
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := body(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < length; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return body(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
