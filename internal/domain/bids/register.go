package bids

import (
	"context"
	"fmt"
)

// Register holds the leading bid of every lot. It performs no locking of its
// own: callers hold the lot's mutex around Read and Write.
type Register struct {
	store RecordStore
}

// NewRegister creates a top-bid register over the given store
func NewRegister(store RecordStore) *Register {
	return &Register{store: store}
}

// Read returns the lot's current top bid, or found=false when no bid has been
// accepted yet
func (r *Register) Read(ctx context.Context, scope Scope) (top *Bid, found bool, err error) {
	fields, err := r.store.GetFields(ctx, scope.TopBidKey(), recordFields...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read top bid: %w", err)
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	top, err = DecodeFields(fields)
	if err != nil {
		return nil, false, fmt.Errorf("%w: corrupt top bid record for %s: %w", ErrInternal, scope.TopBidKey(), err)
	}
	return top, true, nil
}

// Write overwrites the lot's top-bid record with every field of bid
func (r *Register) Write(ctx context.Context, bid *Bid) error {
	if err := r.store.SetFields(ctx, bid.Scope().TopBidKey(), EncodeFields(bid)); err != nil {
		return fmt.Errorf("failed to write top bid: %w", err)
	}
	return nil
}
