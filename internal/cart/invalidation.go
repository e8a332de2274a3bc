package cart

import "context"

// Invalidator is the post-commit hook for cache keys: keys are dropped strictly after
// the authoritative write has succeeded, never before and never on failure.
type Invalidator struct {
	cache Cache
}

// NewInvalidator binds the hook to a cache. A nil cache makes it a pass-through.
func NewInvalidator(cache Cache) *Invalidator {
	return &Invalidator{cache: cache}
}

// Commit executes write and invalidates keys after it returns without error.
func (i *Invalidator) Commit(ctx context.Context, write func(context.Context) error, keys ...string) error {
	if err := write(ctx); err != nil {
		return err
	}
	i.AfterCommit(ctx, keys...)
	return nil
}

// AfterCommit drops keys; call it only after the authoritative write succeeded.
func (i *Invalidator) AfterCommit(ctx context.Context, keys ...string) {
	if i == nil || i.cache == nil || len(keys) == 0 {
		return
	}
	i.cache.Delete(ctx, keys...)
}
