package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/floroz/bid-manager/internal/config"
	"github.com/floroz/bid-manager/internal/simulator"
	"github.com/floroz/bid-manager/pkg/rpc/bids/v1/bidsv1connect"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Unable to load config", "error", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Environment, cfg.Log.Level)
	if err != nil {
		slog.Error("Unable to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := bidsv1connect.NewBidServiceClient(http.DefaultClient, cfg.Simulator.Target)

	logger.Info("Simulating bids",
		"target", cfg.Simulator.Target,
		"lot_id", cfg.Simulator.LotID,
		"duration", cfg.Simulator.Duration,
		"concurrency", cfg.Simulator.Concurrency,
	)
	report, err := simulator.Run(ctx, client, simulator.Config{
		AuctionID:   cfg.Auction.ID,
		LotID:       cfg.Simulator.LotID,
		Duration:    cfg.Simulator.Duration,
		Concurrency: cfg.Simulator.Concurrency,
		Paddles:     cfg.Simulator.Paddles,
		StartAmount: cfg.Simulator.StartAmount,
	}, logger)
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(report)
}
