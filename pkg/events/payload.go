package events

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/floroz/bid-manager/internal/domain/bids"
	bidsv1 "github.com/floroz/bid-manager/pkg/rpc/bids/v1"
)

// ContentType of every published body
const ContentType = "application/x-protobuf"

// MarshalBidEvent encodes event as a serialized bidmanager.v1.BidEvent
func MarshalBidEvent(event *bids.Event) ([]byte, error) {
	bid := event.Bid
	body, err := proto.Marshal(&bidsv1.BidEvent{
		StreamKey:  event.StreamKey,
		EntryId:    event.EntryID,
		BidId:      bid.ID.String(),
		AuctionId:  bid.AuctionID,
		LotId:      bid.LotID.String(),
		PaddleId:   bid.PaddleID,
		Amount:     bid.Amount,
		Status:     bidsv1.StatusFromName(string(bid.Status)),
		TimePlaced: timestamppb.New(bid.TimePlaced),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for bid %s: %w", bid.ID, err)
	}
	return body, nil
}

// UnmarshalBidEvent decodes a body written by MarshalBidEvent
func UnmarshalBidEvent(body []byte) (*bids.Event, error) {
	var payload bidsv1.BidEvent
	if err := proto.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if payload.GetTimePlaced() == nil {
		return nil, errors.New("invalid payload: missing time_placed")
	}
	if err := payload.GetTimePlaced().CheckValid(); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	bid, err := bids.DecodeFields(map[string]string{
		"id":         payload.GetBidId(),
		"auctionId":  payload.GetAuctionId(),
		"lotId":      payload.GetLotId(),
		"paddleId":   payload.GetPaddleId(),
		"amount":     strconv.FormatInt(payload.GetAmount(), 10),
		"status":     payload.GetStatus().Name(),
		"timePlaced": strconv.FormatInt(payload.GetTimePlaced().AsTime().UnixMilli(), 10),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	return &bids.Event{
		StreamKey: payload.GetStreamKey(),
		EntryID:   payload.GetEntryId(),
		Bid:       bid,
	}, nil
}
