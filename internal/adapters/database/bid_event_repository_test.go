//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/bid-manager/internal/adapters/database"
	"github.com/floroz/bid-manager/internal/domain/bids"
	pkgdb "github.com/floroz/bid-manager/pkg/database"
	"github.com/floroz/bid-manager/pkg/testhelpers"
)

func TestPostgresBidEventRepository_SaveEvent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testhelpers.NewTestDatabase(t)
	ctx := context.Background()
	repo := database.NewPostgresBidEventRepository(testDB.Pool)
	txManager := pkgdb.NewPostgresTransactionManager(testDB.Pool, time.Second)

	bid := &bids.Bid{
		ID:         uuid.New(),
		AuctionID:  "1",
		LotID:      uuid.New(),
		PaddleID:   "R-1",
		Amount:     1000,
		Status:     bids.StatusAccepted,
		TimePlaced: time.UnixMilli(1_700_000_000_123).UTC(),
	}
	event := &bids.Event{StreamKey: bid.Scope().LogKey(), EntryID: "1700000000123-0", Bid: bid}

	t.Run("Insert", func(t *testing.T) {
		tx, err := txManager.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		inserted, err := repo.SaveEvent(ctx, tx, event)
		require.NoError(t, err)
		assert.True(t, inserted)
		require.NoError(t, tx.Commit(ctx))

		var (
			status     string
			amount     int64
			timePlaced time.Time
		)
		err = testDB.Pool.QueryRow(ctx,
			"SELECT status, amount, time_placed FROM bid_events WHERE stream_key = $1 AND entry_id = $2",
			event.StreamKey, event.EntryID,
		).Scan(&status, &amount, &timePlaced)
		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", status)
		assert.Equal(t, int64(1000), amount)
		assert.True(t, bid.TimePlaced.Equal(timePlaced))
	})

	t.Run("Duplicate Is Ignored", func(t *testing.T) {
		tx, err := txManager.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		inserted, err := repo.SaveEvent(ctx, tx, event)
		require.NoError(t, err)
		assert.False(t, inserted)
		require.NoError(t, tx.Commit(ctx))

		count, err := repo.CountByBid(ctx, bid.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Rollback Discards", func(t *testing.T) {
		other := *event
		other.EntryID = "1700000000124-0"

		tx, err := txManager.BeginTx(ctx)
		require.NoError(t, err)
		inserted, err := repo.SaveEvent(ctx, tx, &other)
		require.NoError(t, err)
		assert.True(t, inserted)
		require.NoError(t, tx.Rollback(ctx))

		count, err := repo.CountByBid(ctx, bid.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
