package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/floroz/bid-manager/internal/adapters/api"
	"github.com/floroz/bid-manager/internal/config"
	"github.com/floroz/bid-manager/internal/domain/bids"
	"github.com/floroz/bid-manager/internal/lock"
	"github.com/floroz/bid-manager/internal/metrics"
	"github.com/floroz/bid-manager/internal/store"
	"github.com/floroz/bid-manager/pkg/rpc/bids/v1/bidsv1connect"
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

	// 1. Tracing
	if cfg.Tracing.Enabled {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			logger.Error("Unable to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(tp)
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to flush traces", "error", err)
			}
		}()
		logger.Info("Tracing enabled")
	}

	// 2. Connect to Redis
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

	// 3. Metrics
	reg := metrics.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// 4. Initialize Service (Domain Layer)
	st := store.NewRedisStore(rdb, store.WithKeyPrefix(cfg.Redis.KeyPrefix))
	mutex := lock.NewMutex(st,
		lock.WithLease(cfg.Lock.Lease),
		lock.WithRetryInterval(cfg.Lock.RetryInterval),
		lock.WithMaxWait(cfg.Lock.MaxWait),
		lock.WithMaxAttempts(cfg.Lock.MaxAttempts),
		lock.WithLogger(logger),
	)
	service := bids.NewService(
		bids.NewEventLog(st),
		bids.NewRegister(st),
		mutex,
		bids.WithAuctionID(cfg.Auction.ID),
		bids.WithLogger(logger),
		bids.WithRecorder(m),
	)

	// 5. Initialize API Handler (ConnectRPC)
	bidHandler := api.NewBidServiceHandler(service, logger)
	path, handler := bidsv1connect.NewBidServiceHandler(bidHandler)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/health", healthHandler(rdb))

	// 6. Start Server
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	if !cfg.Server.TLSEnabled() {
		// Use h2c for HTTP/2 without TLS
		srv.Handler = h2c.NewHandler(mux, &http2.Server{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Bid Manager API", "addr", cfg.Server.Addr, "auction_id", cfg.Auction.ID, "tls", cfg.Server.TLSEnabled())
		var err error
		if cfg.Server.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down API...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("API stopped")
}

// healthHandler reports unavailable while Redis cannot be reached
func healthHandler(rdb redis.UniversalClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rdb.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
