package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/floroz/bid-manager/internal/domain/bids"
	"github.com/floroz/bid-manager/pkg/database"
	pkgevents "github.com/floroz/bid-manager/pkg/events"
)

// EventArchive stores log entries durably. SaveEvent reports inserted=false
// for an entry that is already archived.
type EventArchive interface {
	SaveEvent(ctx context.Context, tx pgx.Tx, event *bids.Event) (bool, error)
}

// Recorder observes relay progress
type Recorder interface {
	EventRelayed(status string)
	PoisonEntry()
	BatchFailed()
}

type nopRecorder struct{}

func (nopRecorder) EventRelayed(string) {}
func (nopRecorder) PoisonEntry()        {}
func (nopRecorder) BatchFailed()        {}

// Config tunes a StreamRelay
type Config struct {
	BatchSize int
	Interval  time.Duration
	Exchange  string
	Group     string
	Consumer  string
	KeyPrefix string
}

// StreamRelay copies every lot's bid event stream into the archive and
// publishes each new entry to the broker. Entries are read through a
// consumer group and only acknowledged once the archive transaction has
// committed, so a failed batch is retried from the pending list.
type StreamRelay struct {
	client    redis.UniversalClient
	archive   EventArchive
	publisher pkgevents.EventPublisher
	txManager database.TransactionManager
	cfg       Config
	logger    *slog.Logger
	recorder  Recorder

	groups map[string]bool
}

// Option configures a StreamRelay
type Option func(*StreamRelay)

// WithRecorder sets the relay metrics recorder
func WithRecorder(recorder Recorder) Option {
	return func(r *StreamRelay) {
		r.recorder = recorder
	}
}

// NewStreamRelay creates a new stream relay
func NewStreamRelay(
	client redis.UniversalClient,
	archive EventArchive,
	publisher pkgevents.EventPublisher,
	txManager database.TransactionManager,
	cfg Config,
	logger *slog.Logger,
	opts ...Option,
) *StreamRelay {
	if cfg.Exchange == "" {
		cfg.Exchange = pkgevents.DefaultExchange
	}
	r := &StreamRelay{
		client:    client,
		archive:   archive,
		publisher: publisher,
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
		recorder:  nopRecorder{},
		groups:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the polling loop. It returns nil once ctx is done.
func (r *StreamRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	// Initial run
	r.processAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.processAll(ctx)
		}
	}
}

func (r *StreamRelay) processAll(ctx context.Context) {
	streams, err := r.streams(ctx)
	if err != nil {
		r.logger.Error("Error listing bid streams", "error", err)
		return
	}

	for _, stream := range streams {
		if err := r.drain(ctx, stream); err != nil {
			if ctx.Err() != nil {
				return
			}
			r.recorder.BatchFailed()
			r.logger.Error("Error processing batch", "stream", stream, "error", err)
		}
	}
}

// streams lists every bid event stream, as physical keys
func (r *StreamRelay) streams(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.cfg.KeyPrefix+bids.LogKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan streams: %w", err)
	}
	return keys, nil
}

// drain processes batches until the stream has nothing left for this consumer
func (r *StreamRelay) drain(ctx context.Context, stream string) error {
	if err := r.ensureGroup(ctx, stream); err != nil {
		return err
	}
	for {
		n, err := r.processBatch(ctx, stream)
		if err != nil {
			if strings.Contains(err.Error(), "NOGROUP") {
				// The stream was recreated; the group is created again next round
				delete(r.groups, stream)
			}
			return err
		}
		if n < r.cfg.BatchSize {
			return nil
		}
	}
}

func (r *StreamRelay) ensureGroup(ctx context.Context, stream string) error {
	if r.groups[stream] {
		return nil
	}
	err := r.client.XGroupCreateMkStream(ctx, stream, r.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group on %s: %w", stream, err)
	}
	r.groups[stream] = true
	return nil
}

// read returns this consumer's unacknowledged entries first, then new ones
func (r *StreamRelay) read(ctx context.Context, stream string) ([]redis.XMessage, error) {
	for _, start := range []string{"0", ">"} {
		res, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    r.cfg.Group,
			Consumer: r.cfg.Consumer,
			Streams:  []string{stream, start},
			Count:    int64(r.cfg.BatchSize),
			Block:    -1,
		}).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from %s: %w", start, stream, err)
		}
		if len(res) > 0 && len(res[0].Messages) > 0 {
			return res[0].Messages, nil
		}
	}
	return nil, nil
}

// processBatch relays one batch and returns the number of entries consumed
func (r *StreamRelay) processBatch(ctx context.Context, stream string) (int, error) {
	messages, err := r.read(ctx, stream)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil // Nothing to do
	}

	logicalKey := strings.TrimPrefix(stream, r.cfg.KeyPrefix)
	events := make([]*bids.Event, 0, len(messages))
	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
		bid, decodeErr := bids.DecodeFields(stringFields(msg.Values))
		if decodeErr != nil {
			// Poison entries are acknowledged with the batch so they never block the stream
			r.recorder.PoisonEntry()
			r.logger.Warn("Skipping undecodable bid event", "stream", stream, "entry_id", msg.ID, "error", decodeErr)
			continue
		}
		events = append(events, &bids.Event{StreamKey: logicalKey, EntryID: msg.ID, Bid: bid})
	}

	if len(events) > 0 {
		r.logger.Debug("Processing events", "stream", stream, "count", len(events))
		if err := r.archiveAndPublish(ctx, events); err != nil {
			return 0, err
		}
	}

	// The archive is committed; a failed ack only means the batch is seen again
	// and skipped as already archived
	if err := r.client.XAck(ctx, stream, r.cfg.Group, ids...).Err(); err != nil {
		return 0, fmt.Errorf("failed to ack %d entries on %s: %w", len(ids), stream, err)
	}
	return len(messages), nil
}

func (r *StreamRelay) archiveAndPublish(ctx context.Context, events []*bids.Event) error {
	tx, err := r.txManager.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var published []string
	for _, event := range events {
		inserted, err := r.archive.SaveEvent(ctx, tx, event)
		if err != nil {
			return fmt.Errorf("failed to archive event %s: %w", event.EntryID, err)
		}
		if !inserted {
			continue // Published when it was first archived
		}

		body, err := pkgevents.MarshalBidEvent(event)
		if err != nil {
			return err
		}
		// If publishing fails the transaction rolls back and the entry stays
		// pending in the consumer group, to be retried
		if err := r.publisher.Publish(ctx, r.cfg.Exchange, event.RoutingKey(), body); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.EntryID, err)
		}
		published = append(published, string(event.Bid.Status))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit archive: %w", err)
	}
	for _, status := range published {
		r.recorder.EventRelayed(status)
	}
	return nil
}

func stringFields(values map[string]any) map[string]string {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return fields
}
