package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"github.com/floroz/bid-manager/internal/adapters/database"
	"github.com/floroz/bid-manager/internal/adapters/events"
	"github.com/floroz/bid-manager/internal/config"
	"github.com/floroz/bid-manager/internal/metrics"
	"github.com/floroz/bid-manager/internal/store"
	"github.com/floroz/bid-manager/migrations"
	pkgdb "github.com/floroz/bid-manager/pkg/database"
	pkgevents "github.com/floroz/bid-manager/pkg/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Unable to load config", "error", err)
		os.Exit(1)
	}

	// Initialize structured logger
	logger, err := config.NewLogger(cfg.Environment, cfg.Log.Level)
	if err != nil {
		slog.Error("Unable to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Initialize Postgres Connection Pool
	if cfg.Database.URL == "" {
		logger.Error("BID_DATABASE_URL is not set")
		os.Exit(1)
	}
	pool, err := pkgdb.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Postgres failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Postgres Connected")

	db := stdlib.OpenDBFromPool(pool)
	if err := migrations.Up(ctx, db); err != nil {
		logger.Error("Migrations failed", "error", err)
		os.Exit(1)
	}
	_ = db.Close()

	// 2. Connect to RabbitMQ
	if cfg.RabbitMQ.URL == "" {
		logger.Error("BID_RABBITMQ_URL is not set")
		os.Exit(1)
	}
	amqpConn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer amqpConn.Close()
	logger.Info("RabbitMQ Connected")

	publisher, err := pkgevents.NewRabbitMQPublisher(amqpConn, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Error("Failed to create RabbitMQ publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	// 3. Connect to Redis
	rdb, err := store.NewClient(ctx, store.ClientOptions{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error("Redis failed", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	logger.Info("Redis Connected", "addr", cfg.Redis.Addr)

	// 4. Metrics
	reg := metrics.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// 5. Initialize Relay
	relay := events.NewStreamRelay(
		rdb,
		database.NewPostgresBidEventRepository(pool),
		publisher,
		pkgdb.NewPostgresTransactionManager(pool, cfg.Database.LockTimeout),
		events.Config{
			BatchSize: cfg.Relay.BatchSize,
			Interval:  cfg.Relay.Interval,
			Exchange:  cfg.RabbitMQ.Exchange,
			Group:     cfg.Relay.Group,
			Consumer:  cfg.Relay.Consumer,
			KeyPrefix: cfg.Redis.KeyPrefix,
		},
		logger,
		events.WithRecorder(m),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Stream Relay...", "group", cfg.Relay.Group, "consumer", cfg.Relay.Consumer)
		return relay.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("Serving metrics", "addr", cfg.Metrics.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down worker...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}
