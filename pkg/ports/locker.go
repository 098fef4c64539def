package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock. It reports when the lock was
// already lost to expiry.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes session updates across server replicas
// sharing one SessionStore.
type DistributedLocker interface {
	// Lock acquires the lock for key (a session ID), blocking until it is
	// held or ctx is done. The lock expires after ttl if never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
