package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floroz/bid-manager/internal/domain/bids"
)

// PostgresBidEventRepository archives bid log entries in Postgres
type PostgresBidEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBidEventRepository creates a new PostgreSQL bid event repository
func NewPostgresBidEventRepository(pool *pgxpool.Pool) *PostgresBidEventRepository {
	return &PostgresBidEventRepository{pool: pool}
}

// SaveEvent archives event within tx. An entry that was archived before is
// left untouched and reported with inserted=false.
func (r *PostgresBidEventRepository) SaveEvent(ctx context.Context, tx pgx.Tx, event *bids.Event) (bool, error) {
	query := `
		INSERT INTO bid_events (stream_key, entry_id, bid_id, auction_id, lot_id, paddle_id, amount, status, time_placed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::bid_status, $9)
		ON CONFLICT (stream_key, entry_id) DO NOTHING
	`
	bid := event.Bid
	result, err := tx.Exec(ctx, query,
		event.StreamKey,
		event.EntryID,
		bid.ID,
		bid.AuctionID,
		bid.LotID,
		bid.PaddleID,
		bid.Amount,
		string(bid.Status),
		bid.TimePlaced,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert bid event %s/%s: %w", event.StreamKey, event.EntryID, err)
	}
	return result.RowsAffected() == 1, nil
}

// CountByBid returns how many entries are archived for bidID
func (r *PostgresBidEventRepository) CountByBid(ctx context.Context, bidID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM bid_events WHERE bid_id = $1", bidID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bid events: %w", err)
	}
	return count, nil
}
