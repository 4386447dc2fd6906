package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/floroz/bid-manager/internal/domain/bids"
	bidsv1 "github.com/floroz/bid-manager/pkg/rpc/bids/v1"
	"github.com/floroz/bid-manager/pkg/rpc/bids/v1/bidsv1connect"
)

// BidService is the domain surface the handler drives
type BidService interface {
	PlaceBid(ctx context.Context, cmd bids.PlaceBidCommand) (*bids.Bid, error)
	TopBid(ctx context.Context, auctionID string, lotID uuid.UUID) (*bids.Bid, error)
}

type BidServiceHandler struct {
	bidsv1connect.UnimplementedBidServiceHandler
	service BidService
	logger  *slog.Logger
}

func NewBidServiceHandler(service BidService, logger *slog.Logger) *BidServiceHandler {
	return &BidServiceHandler{
		service: service,
		logger:  logger,
	}
}

func (h *BidServiceHandler) PlaceBid(
	ctx context.Context,
	req *connect.Request[bidsv1.PlaceBidRequest],
) (*connect.Response[bidsv1.PlaceBidResponse], error) {
	// 1. Validation / Mapping
	lotID, err := parseLotID(req.Msg.GetLotId())
	if err != nil {
		return nil, err
	}
	paddleID := strings.TrimSpace(req.Msg.GetPaddleId())
	if paddleID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("paddle_id is required"))
	}
	amount := req.Msg.GetAmount()
	if amount < bids.MinBidAmount || amount > bids.MaxBidAmount {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("amount must be between %d and %d", bids.MinBidAmount, bids.MaxBidAmount))
	}

	cmd := bids.PlaceBidCommand{
		AuctionID: strings.TrimSpace(req.Msg.GetAuctionId()),
		LotID:     lotID,
		PaddleID:  paddleID,
		Amount:    amount,
	}

	// 2. Execution
	bid, err := h.service.PlaceBid(ctx, cmd)
	if err != nil {
		return nil, h.toConnectError(err)
	}

	// 3. Response Mapping
	return connect.NewResponse(&bidsv1.PlaceBidResponse{Bid: mapBidToProto(bid)}), nil
}

// GetTopBid returns the lot's current leading bid
func (h *BidServiceHandler) GetTopBid(
	ctx context.Context,
	req *connect.Request[bidsv1.GetTopBidRequest],
) (*connect.Response[bidsv1.GetTopBidResponse], error) {
	lotID, err := parseLotID(req.Msg.GetLotId())
	if err != nil {
		return nil, err
	}

	bid, err := h.service.TopBid(ctx, strings.TrimSpace(req.Msg.GetAuctionId()), lotID)
	if err != nil {
		return nil, h.toConnectError(err)
	}

	return connect.NewResponse(&bidsv1.GetTopBidResponse{Bid: mapBidToProto(bid)}), nil
}

func parseLotID(raw string) (uuid.UUID, error) {
	lotID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || lotID == uuid.Nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, errors.New("invalid lot_id"))
	}
	return lotID, nil
}

// Client-facing messages for retryable failures. Causes are logged, never sent.
const (
	msgUnavailable = "bid store unavailable, retry"
	msgLockTimeout = "lot is busy, retry"
	msgInternal    = "internal error"
)

func (h *BidServiceHandler) toConnectError(err error) error {
	switch {
	case errors.Is(err, bids.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, bids.ErrTopBidNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, bids.ErrStoreUnavailable):
		h.logger.Warn("bid store unavailable", "error", err)
		return connect.NewError(connect.CodeUnavailable, errors.New(msgUnavailable))
	case errors.Is(err, bids.ErrLockTimeout):
		h.logger.Warn("lot lock timed out", "error", err)
		return connect.NewError(connect.CodeAborted, errors.New(msgLockTimeout))
	default:
		h.logger.Error("internal error serving bid request", "error", err)
		return connect.NewError(connect.CodeInternal, errors.New(msgInternal))
	}
}

func mapBidToProto(bid *bids.Bid) *bidsv1.Bid {
	return &bidsv1.Bid{
		Id:         bid.ID.String(),
		AuctionId:  bid.AuctionID,
		LotId:      bid.LotID.String(),
		PaddleId:   bid.PaddleID,
		Amount:     bid.Amount,
		Status:     bidsv1.StatusFromName(string(bid.Status)),
		TimePlaced: timestamppb.New(bid.TimePlaced),
	}
}
