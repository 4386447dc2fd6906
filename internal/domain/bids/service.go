package bids

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/floroz/bid-manager/internal/lock"
)

// DefaultAuctionID is the auction bids are scoped to when none is given
const DefaultAuctionID = "1"

var tracer = otel.Tracer("github.com/floroz/bid-manager/internal/domain/bids")

type PlaceBidCommand struct {
	AuctionID string
	LotID     uuid.UUID
	PaddleID  string
	Amount    int64
}

// Validate checks the command's preconditions
func (c PlaceBidCommand) Validate() error {
	if c.LotID == uuid.Nil {
		return fmt.Errorf("%w: lot id is required", ErrValidation)
	}
	if strings.TrimSpace(c.PaddleID) == "" {
		return fmt.Errorf("%w: paddle id is required", ErrValidation)
	}
	if c.Amount < MinBidAmount {
		return fmt.Errorf("%w: amount must be at least %d", ErrValidation, MinBidAmount)
	}
	if c.Amount > MaxBidAmount {
		return fmt.Errorf("%w: amount must be at most %d", ErrValidation, MaxBidAmount)
	}
	return nil
}

// Service arbitrates bids. Each placement runs independently; placements only
// coordinate through the lot mutex and the shared store.
type Service struct {
	eventLog  *EventLog
	register  *Register
	locker    Locker
	clock     Clock
	newID     func() (uuid.UUID, error)
	auctionID string
	logger    *slog.Logger
	recorder  Recorder
}

// Option configures a Service
type Option func(*Service)

// WithClock sets the clock bid timestamps are taken from
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithIDGenerator sets the bid id generator
func WithIDGenerator(newID func() (uuid.UUID, error)) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// WithAuctionID sets the auction used when a command carries none
func WithAuctionID(auctionID string) Option {
	return func(s *Service) {
		s.auctionID = auctionID
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRecorder sets the placement metrics recorder
func WithRecorder(recorder Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// NewService creates a new bid arbitration service
func NewService(eventLog *EventLog, register *Register, locker Locker, opts ...Option) *Service {
	s := &Service{
		eventLog:  eventLog,
		register:  register,
		locker:    locker,
		clock:     NewMonotonicClock(),
		newID:     uuid.NewV7,
		auctionID: DefaultAuctionID,
		logger:    slog.Default(),
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid records the attempt, arbitrates it against the lot's top bid under
// the lot mutex and returns the resolved bid.
//
// The placement is detached from ctx cancellation: once started it runs to
// completion so the lock is always released and the log always gets a
// terminal entry. A caller that went away simply never sees the result.
func (s *Service) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*Bid, error) {
	if err := cmd.Validate(); err != nil {
		s.recorder.PlacementFailed(errorClass(err))
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	ctx, span := tracer.Start(ctx, "bids.PlaceBid", trace.WithAttributes(
		attribute.String("lot_id", cmd.LotID.String()),
		attribute.Int64("amount", cmd.Amount),
	))
	defer span.End()

	start := time.Now()
	bid, err := s.placeBid(ctx, cmd)
	if err != nil {
		class := errorClass(err)
		s.recorder.PlacementFailed(class)
		span.RecordError(err)
		span.SetStatus(codes.Error, class)
		s.logger.Error("bid placement failed",
			"lot_id", cmd.LotID,
			"paddle_id", cmd.PaddleID,
			"amount", cmd.Amount,
			"class", class,
			"error", err,
		)
		return nil, err
	}

	elapsed := time.Since(start)
	s.recorder.BidResolved(bid.Status, elapsed)
	span.SetAttributes(
		attribute.String("bid_id", bid.ID.String()),
		attribute.String("status", string(bid.Status)),
	)
	s.logger.Info("bid resolved",
		"bid_id", bid.ID,
		"lot_id", bid.LotID,
		"paddle_id", bid.PaddleID,
		"amount", bid.Amount,
		"status", bid.Status,
		"elapsed", elapsed,
	)
	return bid, nil
}

func (s *Service) placeBid(ctx context.Context, cmd PlaceBidCommand) (*Bid, error) {
	bid, err := s.newBid(cmd)
	if err != nil {
		return nil, err
	}

	// Step 1: Record the attempt before anything else can fail
	entryID, err := s.eventLog.Append(ctx, bid)
	if err != nil {
		return nil, classify("failed to record bid", err)
	}
	s.logger.Debug("bid placed", "bid_id", bid.ID, "entry_id", entryID)

	// Step 2: Take the lot lock
	waitStart := time.Now()
	lease, err := s.locker.Acquire(ctx, bid.Scope().TopBidKey())
	if err != nil {
		return nil, classify("failed to lock lot", err)
	}
	s.recorder.LockAcquired(time.Since(waitStart), lease.Attempts)

	// Step 3: Always give the lock back, whatever happens below
	defer func() {
		if releaseErr := s.locker.Release(ctx, lease); releaseErr != nil {
			s.logger.Warn("failed to release lot lock, lease will expire",
				"key", lease.Key,
				"expires_at", lease.ExpiresAt,
				"error", releaseErr,
			)
		}
	}()

	// Step 4: Arbitrate against the register
	if err := s.arbitrate(ctx, bid, lease); err != nil {
		return nil, err
	}

	return bid, nil
}

func (s *Service) newBid(cmd PlaceBidCommand) (*Bid, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate bid id: %w", ErrInternal, err)
	}
	auctionID := cmd.AuctionID
	if auctionID == "" {
		auctionID = s.auctionID
	}
	return &Bid{
		ID:         id,
		AuctionID:  auctionID,
		LotID:      cmd.LotID,
		PaddleID:   strings.TrimSpace(cmd.PaddleID),
		Amount:     cmd.Amount,
		Status:     StatusPending,
		TimePlaced: s.clock.Now(),
	}, nil
}

// arbitrate must only run while lease is held
func (s *Service) arbitrate(ctx context.Context, bid *Bid, lease *lock.Lease) error {
	top, _, err := s.register.Read(ctx, bid.Scope())
	if err != nil {
		return classify("failed to read top bid", err)
	}

	if !IsLeading(bid, top) {
		if err := bid.resolve(StatusRejected); err != nil {
			return err
		}
		if _, err := s.eventLog.Append(ctx, bid); err != nil {
			return classify("failed to record rejection", err)
		}
		return nil
	}

	// A lease that ran out may already belong to another placement
	if !time.Now().Before(lease.ExpiresAt) {
		return fmt.Errorf("%w: lease on %s expired before the top bid was written", ErrLockTimeout, lease.Key)
	}

	if err := bid.resolve(StatusAccepted); err != nil {
		return err
	}
	if err := s.register.Write(ctx, bid); err != nil {
		return classify("failed to update top bid", err)
	}
	if _, err := s.eventLog.Append(ctx, bid); err != nil {
		return classify("failed to record acceptance", err)
	}
	return nil
}

// TopBid returns a snapshot of the lot's leading bid. It does not take the
// lot lock; the record is replaced atomically so a reader never sees a
// partial write.
func (s *Service) TopBid(ctx context.Context, auctionID string, lotID uuid.UUID) (*Bid, error) {
	if lotID == uuid.Nil {
		return nil, fmt.Errorf("%w: lot id is required", ErrValidation)
	}
	if auctionID == "" {
		auctionID = s.auctionID
	}

	top, found, err := s.register.Read(ctx, Scope{AuctionID: auctionID, LotID: lotID})
	if err != nil {
		return nil, classify("failed to read top bid", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrTopBidNotFound, lotID)
	}
	return top, nil
}

// IsRetryable reports whether a placement error may succeed on retry
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrLockTimeout)
}
