package bids

import (
	"context"
	"time"

	"github.com/floroz/bid-manager/internal/lock"
)

// LogAppender appends entries to an ordered, append-only log
type LogAppender interface {
	AppendLog(ctx context.Context, key string, fields map[string]string) (string, error)
}

// RecordStore reads and overwrites a field record
type RecordStore interface {
	GetFields(ctx context.Context, key string, names ...string) (map[string]string, error)
	SetFields(ctx context.Context, key string, fields map[string]string) error
}

// Locker grants exclusive, time-bounded leases per scope key
type Locker interface {
	// Acquire blocks until the lease is held or the wait bound is exceeded
	Acquire(ctx context.Context, scopeKey string) (*lock.Lease, error)

	// Release gives back a lease. Releasing an expired lease is not an error.
	Release(ctx context.Context, lease *lock.Lease) error
}

// Clock assigns bid timestamps
type Clock interface {
	Now() time.Time
}

// Recorder observes placement outcomes. Implementations must be safe for
// concurrent use.
type Recorder interface {
	BidResolved(status Status, elapsed time.Duration)
	LockAcquired(wait time.Duration, attempts int)
	PlacementFailed(class string)
}

type nopRecorder struct{}

func (nopRecorder) BidResolved(Status, time.Duration) {}
func (nopRecorder) LockAcquired(time.Duration, int)   {}
func (nopRecorder) PlacementFailed(string)            {}
