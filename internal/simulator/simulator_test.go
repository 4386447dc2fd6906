package simulator

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/bid-manager/internal/adapters/api"
	"github.com/floroz/bid-manager/internal/domain/bids"
	"github.com/floroz/bid-manager/internal/lock"
	"github.com/floroz/bid-manager/internal/store"
	bidsv1 "github.com/floroz/bid-manager/pkg/rpc/bids/v1"
	"github.com/floroz/bid-manager/pkg/rpc/bids/v1/bidsv1connect"
	"github.com/floroz/bid-manager/pkg/testhelpers"
)

var discardLogger = slog.New(slog.DiscardHandler)

func setupServer(t *testing.T) (bidsv1connect.BidServiceClient, *testhelpers.TestRedis) {
	t.Helper()
	tr := testhelpers.NewTestRedis(t)
	st := store.NewRedisStore(tr.Client)
	service := bids.NewService(
		bids.NewEventLog(st),
		bids.NewRegister(st),
		lock.NewMutex(st, lock.WithLogger(discardLogger)),
		bids.WithLogger(discardLogger),
	)

	mux := http.NewServeMux()
	path, h := bidsv1connect.NewBidServiceHandler(api.NewBidServiceHandler(service, discardLogger))
	mux.Handle(path, h)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return bidsv1connect.NewBidServiceClient(server.Client(), server.URL), tr
}

func TestRun(t *testing.T) {
	client, tr := setupServer(t)
	lotID := uuid.New()

	report, err := Run(context.Background(), client, Config{
		LotID:       lotID.String(),
		Duration:    200 * time.Millisecond,
		Concurrency: 1,
		Paddles:     []string{"R-1", "P-3"},
		StartAmount: 100,
	}, discardLogger)
	require.NoError(t, err)

	assert.Positive(t, report.Placed)
	assert.Positive(t, report.Accepted, "the first bid on an empty lot leads")
	assert.Equal(t, report.Placed, report.Accepted+report.Rejected)
	assert.Zero(t, report.Failed)
	require.NotNil(t, report.TopBid)
	assert.Equal(t, bidsv1.BidStatus_BID_STATUS_ACCEPTED, report.TopBid.GetStatus())
	assert.GreaterOrEqual(t, report.TopBid.GetAmount(), int64(100))
	assert.LessOrEqual(t, report.TopBid.GetAmount(), report.LastAmount)
	assert.Contains(t, report.String(), "accepted")

	// A single worker never bids twice in a row from the same paddle
	entries, err := tr.Client.XRange(context.Background(), bids.Scope{AuctionID: "1", LotID: lotID}.LogKey(), "-", "+").Result()
	require.NoError(t, err)
	var previous *bids.Bid
	for _, entry := range entries {
		fields := make(map[string]string, len(entry.Values))
		for k, v := range entry.Values {
			fields[k], _ = v.(string)
		}
		bid, err := bids.DecodeFields(fields)
		require.NoError(t, err)
		if bid.Status != bids.StatusPending {
			continue
		}
		if previous != nil {
			assert.NotEqual(t, previous.PaddleID, bid.PaddleID)
			assert.GreaterOrEqual(t, bid.Amount, previous.Amount)
		}
		previous = bid
	}
	require.NotNil(t, previous)
}

func TestRun_Concurrent(t *testing.T) {
	client, _ := setupServer(t)

	report, err := Run(context.Background(), client, Config{
		LotID:       uuid.NewString(),
		Duration:    200 * time.Millisecond,
		Concurrency: 4,
		Paddles:     []string{"R-1", "R-2", "P-3", "P-4"},
		StartAmount: 100,
	}, discardLogger)
	require.NoError(t, err)

	assert.Equal(t, report.Placed, report.Accepted+report.Rejected)
	assert.Zero(t, report.Failed)
	require.NotNil(t, report.TopBid)
}

func TestRun_InvalidConfig(t *testing.T) {
	client, _ := setupServer(t)
	valid := Config{LotID: uuid.NewString(), Duration: time.Second, Concurrency: 1, Paddles: []string{"R-1"}, StartAmount: 100}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing lot", mutate: func(c *Config) { c.LotID = "" }},
		{name: "zero duration", mutate: func(c *Config) { c.Duration = 0 }},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrency = 0 }},
		{name: "no paddles", mutate: func(c *Config) { c.Paddles = nil }},
		{name: "blank paddle", mutate: func(c *Config) { c.Paddles = []string{"R-1", " "} }},
		{name: "zero start", mutate: func(c *Config) { c.StartAmount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			_, err := Run(context.Background(), client, cfg, discardLogger)
			assert.Error(t, err)
		})
	}
}

func TestRun_CancelledSkipsTopBid(t *testing.T) {
	client, _ := setupServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, client, Config{
		LotID:       uuid.NewString(),
		Duration:    time.Second,
		Concurrency: 2,
		Paddles:     []string{"R-1", "R-2"},
		StartAmount: 100,
	}, discardLogger)
	require.NoError(t, err)
	assert.Zero(t, report.Placed)
	assert.Nil(t, report.TopBid)
}

func TestCursor_Next(t *testing.T) {
	c := newCursor([]string{"A", "B", "C"}, 100)
	for range 200 {
		prevPaddle, prevAmount := c.last()
		paddle, amount := c.next()
		assert.NotEqual(t, prevPaddle, paddle)
		assert.GreaterOrEqual(t, amount, prevAmount)
		assert.Zero(t, (amount-prevAmount)%amountStep)
		assert.Less(t, amount-prevAmount, int64(maxSteps*amountStep))
	}

	single := newCursor([]string{"A"}, 100)
	paddle, _ := single.next()
	assert.Equal(t, "A", paddle)
}

func TestCursor_DuplicatePaddles(t *testing.T) {
	same := newCursor([]string{"R-1", "R-1", "R-1"}, 100)
	assert.Equal(t, []string{"R-1"}, same.paddles)
	for range 10 {
		paddle, _ := same.next()
		assert.Equal(t, "R-1", paddle)
	}

	mixed := newCursor([]string{"R-1", "R-2", "R-1", "R-2"}, 100)
	assert.Equal(t, []string{"R-1", "R-2"}, mixed.paddles)
	for range 50 {
		prev, _ := mixed.last()
		paddle, _ := mixed.next()
		assert.NotEqual(t, prev, paddle)
	}
}

func TestRun_DuplicatePaddlesCompletes(t *testing.T) {
	client, _ := setupServer(t)

	report, err := Run(context.Background(), client, Config{
		LotID:       uuid.NewString(),
		Duration:    200 * time.Millisecond,
		Concurrency: 2,
		Paddles:     []string{"R-1", "R-1"},
		StartAmount: 100,
	}, discardLogger)
	require.NoError(t, err)
	assert.Positive(t, report.Placed)
	require.NotNil(t, report.TopBid)
	assert.Equal(t, "R-1", report.TopBid.GetPaddleId())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.56", formatAmount(123456))
	assert.Equal(t, "1.00", formatAmount(100))
	assert.Equal(t, "0.05", formatAmount(5))
}
