package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Warm resolves every declared entry so that later lookups are all cache
// hits. At most limit resolutions run at once; limit <= 0 means no limit.
// Scheduling stops when ctx is cancelled or a resolution fails.
func (r *Resolver) Warm(ctx context.Context, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, e := range r.tree.Entries() {
		if gctx.Err() != nil {
			break
		}
		id := e.ID
		g.Go(func() error {
			_, err := r.Resolve(id)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
