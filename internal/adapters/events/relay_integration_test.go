//go:build integration

package events_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"

	"github.com/floroz/bid-manager/internal/adapters/database"
	"github.com/floroz/bid-manager/internal/adapters/events"
	"github.com/floroz/bid-manager/internal/domain/bids"
	"github.com/floroz/bid-manager/internal/lock"
	"github.com/floroz/bid-manager/internal/store"
	pkgdb "github.com/floroz/bid-manager/pkg/database"
	pkgevents "github.com/floroz/bid-manager/pkg/events"
	"github.com/floroz/bid-manager/pkg/testhelpers"
)

// TestStreamRelayIntegration runs the relay against real Postgres and RabbitMQ containers
func TestStreamRelayIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// 1. Start RabbitMQ Container
	rabbitmqContainer, err := rabbitmq.Run(ctx,
		"rabbitmq:3.12-management-alpine",
		rabbitmq.WithAdminPassword("password"),
	)
	require.NoError(t, err)
	defer func() {
		if termErr := rabbitmqContainer.Terminate(ctx); termErr != nil {
			t.Fatalf("failed to terminate container: %s", termErr)
		}
	}()

	amqpURL, err := rabbitmqContainer.AmqpURL(ctx)
	require.NoError(t, err)

	// 2. Setup Postgres and Redis
	testDB := testhelpers.NewTestDatabase(t)
	tr := testhelpers.NewTestRedis(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 3. Setup Relay Components
	pubConn, err := amqp091.Dial(amqpURL)
	require.NoError(t, err)
	defer pubConn.Close()

	publisher, err := pkgevents.NewRabbitMQPublisher(pubConn, pkgevents.DefaultExchange)
	require.NoError(t, err)
	defer publisher.Close()

	repo := database.NewPostgresBidEventRepository(testDB.Pool)
	relay := events.NewStreamRelay(
		tr.Client,
		repo,
		publisher,
		pkgdb.NewPostgresTransactionManager(testDB.Pool, time.Second),
		events.Config{
			BatchSize: 10,
			Interval:  50 * time.Millisecond,
			Exchange:  pkgevents.DefaultExchange,
			Group:     "bid-archiver",
			Consumer:  "integration",
		},
		logger,
	)

	// 4. Create a separate consumer to verify delivery
	conn, err := amqp091.Dial(amqpURL)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, false, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "bid.accepted", pkgevents.DefaultExchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)

	// 5. Place a bid
	st := store.NewRedisStore(tr.Client)
	service := bids.NewService(bids.NewEventLog(st), bids.NewRegister(st), lock.NewMutex(st), bids.WithLogger(logger))
	bid, err := service.PlaceBid(ctx, bids.PlaceBidCommand{LotID: uuid.New(), PaddleID: "R-1", Amount: 1000})
	require.NoError(t, err)
	require.Equal(t, bids.StatusAccepted, bid.Status)

	// 6. Run Relay
	ctxRelay, cancelRelay := context.WithCancel(ctx)
	go func() {
		_ = relay.Run(ctxRelay)
	}()
	defer cancelRelay()

	// 7. Verify Message Receipt in RabbitMQ
	select {
	case msg := <-msgs:
		assert.Equal(t, "bid.accepted", msg.RoutingKey)
		assert.Equal(t, pkgevents.ContentType, msg.ContentType)
		event, decodeErr := pkgevents.UnmarshalBidEvent(msg.Body)
		require.NoError(t, decodeErr)
		assert.Equal(t, bid, event.Bid)
	case <-time.After(10 * time.Second):
		t.Fatal("Timeout waiting for message from RabbitMQ")
	}

	// 8. Verify both log entries are archived
	require.Eventually(t, func() bool {
		count, countErr := repo.CountByBid(ctx, bid.ID)
		return countErr == nil && count == 2
	}, 2*time.Second, 100*time.Millisecond, "PENDING and ACCEPTED entries should be archived")
}
