// Package simulator drives load against a running bid service. Workers bid on
// a single lot from rotating paddles with steadily climbing amounts.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	bidsv1 "github.com/floroz/bid-manager/pkg/rpc/bids/v1"
	"github.com/floroz/bid-manager/pkg/rpc/bids/v1/bidsv1connect"
)

// amountStep is the raise granularity in minor units
const amountStep = 100

// maxSteps bounds a single raise to (maxSteps-1)*amountStep
const maxSteps = 75

type Config struct {
	AuctionID   string
	LotID       string
	Duration    time.Duration
	Concurrency int
	Paddles     []string
	StartAmount int64
}

func (c Config) validate() error {
	if c.LotID == "" {
		return errors.New("lot id is required")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if len(c.Paddles) == 0 {
		return errors.New("at least one paddle is required")
	}
	for _, p := range c.Paddles {
		if strings.TrimSpace(p) == "" {
			return errors.New("paddle ids must not be blank")
		}
	}
	if c.StartAmount <= 0 {
		return fmt.Errorf("start amount must be positive, got %d", c.StartAmount)
	}
	return nil
}

// Report summarises a simulation run
type Report struct {
	Placed     int64
	Accepted   int64
	Rejected   int64
	Failed     int64
	LastAmount int64
	LastPaddle string
	// TopBid is the lot's leading bid after the run, nil if none was found
	TopBid  *bidsv1.Bid
	Elapsed time.Duration
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Placed %d bids in %s (%d accepted, %d rejected, %d failed)\n",
		r.Placed, r.Elapsed.Round(time.Millisecond), r.Accepted, r.Rejected, r.Failed)
	fmt.Fprintf(&b, "Last bid: %s by %s", formatAmount(r.LastAmount), r.LastPaddle)
	if r.TopBid != nil {
		fmt.Fprintf(&b, "\nTop bid: %s by %s", formatAmount(r.TopBid.GetAmount()), r.TopBid.GetPaddleId())
	}
	return b.String()
}

// formatAmount renders minor units with two decimals
func formatAmount(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

// cursor hands out the next paddle and amount to every worker.
// paddles holds distinct ids.
type cursor struct {
	mu         sync.Mutex
	paddles    []string
	lastAmount int64
	lastPaddle string
}

func newCursor(paddles []string, start int64) *cursor {
	seen := make(map[string]struct{}, len(paddles))
	distinct := make([]string, 0, len(paddles))
	for _, p := range paddles {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		distinct = append(distinct, p)
	}
	return &cursor{paddles: distinct, lastAmount: start, lastPaddle: distinct[0]}
}

func (c *cursor) next() (string, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	paddle := c.paddles[0]
	if n := len(c.paddles); n > 1 {
		// Draw from every paddle except the last bidder
		i := rand.IntN(n - 1)
		if c.paddles[i] == c.lastPaddle {
			i = n - 1
		}
		paddle = c.paddles[i]
	}
	amount := c.lastAmount + int64(rand.IntN(maxSteps))*amountStep

	c.lastPaddle = paddle
	c.lastAmount = amount
	return paddle, amount
}

func (c *cursor) last() (string, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPaddle, c.lastAmount
}

// Run places bids until the configured duration elapses or ctx is cancelled,
// then reads the lot's top bid.
func Run(ctx context.Context, client bidsv1connect.BidServiceClient, cfg Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cur := newCursor(cfg.Paddles, cfg.StartAmount)
	var placed, accepted, rejected, failed atomic.Int64

	started := time.Now()
	runCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	for range cfg.Concurrency {
		g.Go(func() error {
			for gctx.Err() == nil {
				paddle, amount := cur.next()
				res, err := client.PlaceBid(gctx, connect.NewRequest(&bidsv1.PlaceBidRequest{
					AuctionId: cfg.AuctionID,
					LotId:     cfg.LotID,
					PaddleId:  paddle,
					Amount:    amount,
				}))
				if err != nil {
					if gctx.Err() != nil {
						return nil
					}
					failed.Add(1)
					logger.Warn("Bid failed", "paddle", paddle, "amount", amount, "error", err)
					continue
				}

				placed.Add(1)
				bid := res.Msg.GetBid()
				switch bid.GetStatus() {
				case bidsv1.BidStatus_BID_STATUS_ACCEPTED:
					accepted.Add(1)
				case bidsv1.BidStatus_BID_STATUS_REJECTED:
					rejected.Add(1)
				}
				logger.Debug("Bid placed", "id", bid.GetId(), "paddle", paddle, "amount", amount, "status", bid.GetStatus().Name())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lastPaddle, lastAmount := cur.last()
	report := &Report{
		Placed:     placed.Load(),
		Accepted:   accepted.Load(),
		Rejected:   rejected.Load(),
		Failed:     failed.Load(),
		LastAmount: lastAmount,
		LastPaddle: lastPaddle,
		Elapsed:    time.Since(started),
	}

	if ctx.Err() != nil {
		return report, nil
	}
	top, err := client.GetTopBid(ctx, connect.NewRequest(&bidsv1.GetTopBidRequest{
		AuctionId: cfg.AuctionID,
		LotId:     cfg.LotID,
	}))
	if err != nil {
		if connect.CodeOf(err) == connect.CodeNotFound {
			return report, nil
		}
		return report, fmt.Errorf("failed to read top bid: %w", err)
	}
	report.TopBid = top.Msg.GetBid()
	return report, nil
}
