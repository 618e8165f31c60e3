package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a held lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker guards a session against concurrent writers across
// processes. Optional: the session manager falls back to in-process locking
// when none is configured.
type DistributedLocker interface {
	// Lock acquires the lock for key, expiring after ttl if not released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
