// Package lock provides a lease-based distributed mutex built on the store's
// conditional set and compare-and-delete primitives. A lease self-expires so a
// crashed holder never blocks a scope forever.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrTimeout is returned when the lock could not be acquired within the
// configured wait bound.
var ErrTimeout = errors.New("lock acquisition timed out")

const (
	DefaultLease         = time.Second
	DefaultRetryInterval = 10 * time.Millisecond
	DefaultMaxWait       = 5 * time.Second
)

// Store is the subset of the shared store the mutex needs.
type Store interface {
	SetIfAbsent(ctx context.Context, key, value string, lease time.Duration) (bool, error)
	CompareAndDelete(ctx context.Context, key, expected string) (bool, error)
}

// Lease is an ownership grant returned by Acquire.
type Lease struct {
	Key        string
	Token      string
	AcquiredAt time.Time
	ExpiresAt  time.Time
	Attempts   int
}

// Mutex hands out time-bounded exclusive leases per scope key.
type Mutex struct {
	store         Store
	lease         time.Duration
	retryInterval time.Duration
	maxWait       time.Duration
	maxAttempts   int
	logger        *slog.Logger
}

// Option configures a Mutex.
type Option func(*Mutex)

// WithLease sets how long a lease lives before the store expires it.
func WithLease(d time.Duration) Option {
	return func(m *Mutex) {
		m.lease = d
	}
}

// WithRetryInterval sets the poll interval between conditional-set attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(m *Mutex) {
		m.retryInterval = d
	}
}

// WithMaxWait bounds the total time Acquire may spend waiting.
// A non-positive value disables the time bound.
func WithMaxWait(d time.Duration) Option {
	return func(m *Mutex) {
		m.maxWait = d
	}
}

// WithMaxAttempts bounds the number of conditional-set attempts.
// A non-positive value disables the attempt bound.
func WithMaxAttempts(n int) Option {
	return func(m *Mutex) {
		m.maxAttempts = n
	}
}

// WithLogger sets the logger used for lease diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mutex) {
		m.logger = logger
	}
}

// NewMutex creates a mutex over the given store.
func NewMutex(store Store, opts ...Option) *Mutex {
	m := &Mutex{
		store:         store,
		lease:         DefaultLease,
		retryInterval: DefaultRetryInterval,
		maxWait:       DefaultMaxWait,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key returns the lock record key guarding scopeKey.
func Key(scopeKey string) string {
	return "lock:" + scopeKey
}

// Acquire blocks until it holds the lock for scopeKey, the wait bound is
// exceeded, or ctx is done. Every attempt is a single conditional set; only
// its result decides ownership.
func (m *Mutex) Acquire(ctx context.Context, scopeKey string) (*Lease, error) {
	key := Key(scopeKey)
	token := uuid.NewString()
	start := time.Now()

	var deadline time.Time
	if m.maxWait > 0 {
		deadline = start.Add(m.maxWait)
	}

	timer := time.NewTimer(m.retryInterval)
	defer timer.Stop()

	for attempt := 1; ; attempt++ {
		ok, err := m.store.SetIfAbsent(ctx, key, token, m.lease)
		if err != nil {
			return nil, fmt.Errorf("failed to set lock %s: %w", key, err)
		}
		if ok {
			now := time.Now()
			return &Lease{
				Key:        key,
				Token:      token,
				AcquiredAt: now,
				ExpiresAt:  now.Add(m.lease),
				Attempts:   attempt,
			}, nil
		}

		if m.maxAttempts > 0 && attempt >= m.maxAttempts {
			return nil, fmt.Errorf("%w: %s after %d attempts", ErrTimeout, key, attempt)
		}
		if !deadline.IsZero() && time.Now().Add(m.retryInterval).After(deadline) {
			return nil, fmt.Errorf("%w: %s after %s", ErrTimeout, key, time.Since(start).Round(time.Millisecond))
		}

		timer.Reset(m.retryInterval)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-timer.C:
		}
	}
}

// Release gives the lease back. The record is removed only if it still holds
// the lease's token; otherwise the lease already expired and may belong to a
// new holder, and Release returns nil without touching it.
func (m *Mutex) Release(ctx context.Context, lease *Lease) error {
	if lease == nil {
		return nil
	}
	deleted, err := m.store.CompareAndDelete(ctx, lease.Key, lease.Token)
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", lease.Key, err)
	}
	if !deleted {
		m.logger.Debug("lock lease already expired", "key", lease.Key, "held_for", time.Since(lease.AcquiredAt))
	}
	return nil
}
