package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/bid-manager/internal/lock"
	"github.com/floroz/bid-manager/internal/store"
	"github.com/floroz/bid-manager/pkg/testhelpers"
)

func newMutex(t *testing.T, opts ...lock.Option) (*lock.Mutex, *testhelpers.TestRedis) {
	t.Helper()
	rdb := testhelpers.NewTestRedis(t)
	return lock.NewMutex(store.NewRedisStore(rdb.Client), opts...), rdb
}

func TestMutex_AcquireRelease(t *testing.T) {
	m, rdb := newMutex(t)
	ctx := context.Background()

	lease, err := m.Acquire(ctx, "auction:1:lot:a:top-bid")
	require.NoError(t, err)
	assert.Equal(t, "lock:auction:1:lot:a:top-bid", lease.Key)
	assert.NotEmpty(t, lease.Token)
	assert.Equal(t, 1, lease.Attempts)

	stored, err := rdb.Server.Get(lease.Key)
	require.NoError(t, err)
	assert.Equal(t, lease.Token, stored)
	assert.Equal(t, time.Second, rdb.Server.TTL(lease.Key))

	require.NoError(t, m.Release(ctx, lease))
	assert.False(t, rdb.Server.Exists(lease.Key))

	// Releasing twice is a no-op
	require.NoError(t, m.Release(ctx, lease))
}

func TestMutex_AcquireTimesOut(t *testing.T) {
	m, _ := newMutex(t, lock.WithMaxWait(50*time.Millisecond), lock.WithRetryInterval(5*time.Millisecond))
	ctx := context.Background()

	held, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)
	defer func() { _ = m.Release(ctx, held) }()

	start := time.Now()
	_, err = m.Acquire(ctx, "scope")
	require.Error(t, err)
	assert.ErrorIs(t, err, lock.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMutex_AcquireMaxAttempts(t *testing.T) {
	m, _ := newMutex(t,
		lock.WithMaxWait(0),
		lock.WithMaxAttempts(3),
		lock.WithRetryInterval(time.Millisecond),
	)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "scope")
	require.Error(t, err)
	assert.ErrorIs(t, err, lock.ErrTimeout)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestMutex_AcquireRespectsContext(t *testing.T) {
	m, _ := newMutex(t, lock.WithMaxWait(0))
	ctx := context.Background()

	_, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)

	cctx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = m.Acquire(cctx, "scope")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, lock.ErrTimeout)
}

func TestMutex_AcquireAfterRelease(t *testing.T) {
	m, _ := newMutex(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)

	acquired := make(chan *lock.Lease, 1)
	go func() {
		second, acqErr := m.Acquire(ctx, "scope")
		if acqErr == nil {
			acquired <- second
		}
		close(acquired)
	}()

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, m.Release(ctx, first))

	select {
	case second, ok := <-acquired:
		require.True(t, ok, "waiter should acquire once the lock is released")
		assert.NotEqual(t, first.Token, second.Token)
		assert.Greater(t, second.Attempts, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for waiter to acquire")
	}
}

func TestMutex_ReleaseExpiredLeaseKeepsNewHolder(t *testing.T) {
	m, rdb := newMutex(t)
	ctx := context.Background()

	stale, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)

	// Lease runs out and a second caller takes over
	rdb.Server.FastForward(2 * time.Second)
	current, err := m.Acquire(ctx, "scope")
	require.NoError(t, err)

	// The stale holder's release must neither fail nor remove the new lock
	require.NoError(t, m.Release(ctx, stale))
	stored, err := rdb.Server.Get(current.Key)
	require.NoError(t, err)
	assert.Equal(t, current.Token, stored)

	require.NoError(t, m.Release(ctx, current))
}

func TestMutex_ReleaseNil(t *testing.T) {
	m, _ := newMutex(t)
	assert.NoError(t, m.Release(context.Background(), nil))
}

func TestMutex_MutualExclusion(t *testing.T) {
	m, _ := newMutex(t, lock.WithMaxWait(10*time.Second), lock.WithRetryInterval(time.Millisecond))
	ctx := context.Background()

	const workers = 20
	var (
		wg        sync.WaitGroup
		holders   atomic.Int32
		maxSeen   atomic.Int32
		completed atomic.Int32
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lease, err := m.Acquire(ctx, "shared")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			n := holders.Add(1)
			for {
				seen := maxSeen.Load()
				if n <= seen || maxSeen.CompareAndSwap(seen, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			holders.Add(-1)
			completed.Add(1)
			if err := m.Release(ctx, lease); err != nil {
				t.Errorf("release: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(workers), completed.Load())
	assert.Equal(t, int32(1), maxSeen.Load(), "at most one holder at a time")
}

type failingStore struct{ err error }

func (f failingStore) SetIfAbsent(context.Context, string, string, time.Duration) (bool, error) {
	return false, f.err
}

func (f failingStore) CompareAndDelete(context.Context, string, string) (bool, error) {
	return false, f.err
}

func TestMutex_StoreErrors(t *testing.T) {
	m := lock.NewMutex(failingStore{err: store.ErrUnavailable})
	ctx := context.Background()

	_, err := m.Acquire(ctx, "scope")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.False(t, errors.Is(err, lock.ErrTimeout))

	err = m.Release(ctx, &lock.Lease{Key: "lock:scope", Token: "t"})
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
