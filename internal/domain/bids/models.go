package bids

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a bid
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusPending || s.IsTerminal()
}

const (
	// MinBidAmount is the lowest amount, in minor currency units, a bid may carry
	MinBidAmount int64 = 100
	// MaxBidAmount is the largest integer representable without loss by JSON clients
	MaxBidAmount int64 = 1<<53 - 1
)

// Bid represents a single bid attempt on a lot
type Bid struct {
	ID         uuid.UUID
	AuctionID  string
	LotID      uuid.UUID
	PaddleID   string
	Amount     int64
	Status     Status
	TimePlaced time.Time
}

// Scope returns the per-lot scope the bid is arbitrated in
func (b *Bid) Scope() Scope {
	return Scope{AuctionID: b.AuctionID, LotID: b.LotID}
}

// resolve moves a pending bid to its terminal status
func (b *Bid) resolve(status Status) error {
	if b.Status != StatusPending {
		return fmt.Errorf("%w: bid %s already %s", ErrInternal, b.ID, b.Status)
	}
	b.Status = status
	return nil
}

// Scope identifies a lot within an auction. All per-lot state is keyed by it.
type Scope struct {
	AuctionID string
	LotID     uuid.UUID
}

func (s Scope) prefix() string {
	return "auction:" + s.AuctionID + ":lot:" + s.LotID.String()
}

// LogKey is the key of the lot's append-only bid event stream
func (s Scope) LogKey() string {
	return s.prefix() + ":bids-placed"
}

// TopBidKey is the key of the lot's top-bid record. The lot mutex is scoped to it.
func (s Scope) TopBidKey() string {
	return s.prefix() + ":top-bid"
}

// LogKeyPattern matches every bid event stream, for SCAN
const LogKeyPattern = "auction:*:lot:*:bids-placed"

// Field names shared by event log entries and the top-bid record
const (
	fieldID         = "id"
	fieldAuctionID  = "auctionId"
	fieldLotID      = "lotId"
	fieldPaddleID   = "paddleId"
	fieldAmount     = "amount"
	fieldStatus     = "status"
	fieldTimePlaced = "timePlaced"
)

var recordFields = []string{
	fieldID,
	fieldAuctionID,
	fieldLotID,
	fieldPaddleID,
	fieldAmount,
	fieldStatus,
	fieldTimePlaced,
}

// EncodeFields flattens a bid into text fields. The amount is decimal text and
// the timestamp is epoch milliseconds.
func EncodeFields(b *Bid) map[string]string {
	return map[string]string{
		fieldID:         b.ID.String(),
		fieldAuctionID:  b.AuctionID,
		fieldLotID:      b.LotID.String(),
		fieldPaddleID:   b.PaddleID,
		fieldAmount:     strconv.FormatInt(b.Amount, 10),
		fieldStatus:     string(b.Status),
		fieldTimePlaced: strconv.FormatInt(b.TimePlaced.UnixMilli(), 10),
	}
}

// DecodeFields rebuilds a bid from the text fields written by EncodeFields
func DecodeFields(fields map[string]string) (*Bid, error) {
	id, err := uuid.Parse(fields[fieldID])
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldID, err)
	}
	lotID, err := uuid.Parse(fields[fieldLotID])
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldLotID, err)
	}
	amount, err := strconv.ParseInt(fields[fieldAmount], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldAmount, err)
	}
	millis, err := strconv.ParseInt(fields[fieldTimePlaced], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldTimePlaced, err)
	}
	status := Status(fields[fieldStatus])
	if !status.Valid() {
		return nil, fmt.Errorf("invalid %s: %q", fieldStatus, fields[fieldStatus])
	}

	return &Bid{
		ID:         id,
		AuctionID:  fields[fieldAuctionID],
		LotID:      lotID,
		PaddleID:   fields[fieldPaddleID],
		Amount:     amount,
		Status:     status,
		TimePlaced: time.UnixMilli(millis).UTC(),
	}, nil
}
