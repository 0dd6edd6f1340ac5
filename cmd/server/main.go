package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sheikh-saqib/bank-account-ledger/internal/api"
	"github.com/sheikh-saqib/bank-account-ledger/internal/config"
	"github.com/sheikh-saqib/bank-account-ledger/internal/events"
	"github.com/sheikh-saqib/bank-account-ledger/internal/events/kafka"
	interfaces "github.com/sheikh-saqib/bank-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/bank-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/bank-account-ledger/internal/logging"
	promcollector "github.com/sheikh-saqib/bank-account-ledger/internal/metrics/prometheus"
	"github.com/sheikh-saqib/bank-account-ledger/internal/storage/memory"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	envPath := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()
	collector := promcollector.NewCollector(cfg.Metrics.Namespace)
	if err = collector.Register(registry); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	var publisher interfaces.EventPublisher = events.NewLogPublisher(logger.Named("events"))
	if len(cfg.Kafka.Brokers) > 0 {
		kp := kafka.NewPublisher(kafka.Config{
			Brokers:      cfg.Kafka.Brokers,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			MaxFailures:  cfg.Kafka.MaxFailures,
			OpenTimeout:  cfg.Kafka.OpenTimeout,
		}, logger.Named("kafka"))
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Error("failed to close kafka writer", zap.Error(err))
			}
		}()
		publisher = kp
	}

	var store interfaces.AccountStore = memory.NewMemoryAccountStore()
	ledgerService := ledger.NewLedger(store,
		ledger.WithLogger(logger.Named("ledger")),
		ledger.WithPublisher(publisher),
		ledger.WithMetrics(collector),
	)

	router := api.NewRouter(ledgerService, logger.Named("http"),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	hs := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
		Handler:           router,
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("address", cfg.HTTPServer.Address))
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("run server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.Duration("timeout", cfg.HTTPServer.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

