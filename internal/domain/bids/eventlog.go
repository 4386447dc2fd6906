package bids

import (
	"context"
	"fmt"
	"strings"
)

// EventLog appends bid snapshots to the lot's append-only event stream. Every
// attempt is written as PENDING before arbitration, then once more with its
// terminal status.
type EventLog struct {
	store LogAppender
}

// NewEventLog creates an event log writer over the given store
func NewEventLog(store LogAppender) *EventLog {
	return &EventLog{store: store}
}

// Append writes a snapshot of bid and returns the log entry id
func (l *EventLog) Append(ctx context.Context, bid *Bid) (string, error) {
	entryID, err := l.store.AppendLog(ctx, bid.Scope().LogKey(), EncodeFields(bid))
	if err != nil {
		return "", fmt.Errorf("failed to append %s event for bid %s: %w", bid.Status, bid.ID, err)
	}
	return entryID, nil
}

// Event is a bid snapshot read back from a lot's event log
type Event struct {
	StreamKey string
	EntryID   string
	Bid       *Bid
}

// RoutingKey names the event for subscribers, e.g. bid.accepted
func (e *Event) RoutingKey() string {
	return "bid." + strings.ToLower(string(e.Bid.Status))
}
