// Command bank is the interactive account menu on top of the in-memory ledger.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/sheikh-saqib/bank-account-ledger/internal/cli"
	"github.com/sheikh-saqib/bank-account-ledger/internal/config"
	"github.com/sheikh-saqib/bank-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/bank-account-ledger/internal/logging"
	"github.com/sheikh-saqib/bank-account-ledger/internal/storage/memory"
)

func main() {
	envPath := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		log.Fatal(err)
	}

	// The menu owns stdout; keep logs off it unless a file is configured.
	if cfg.Logger.Path == "" {
		cfg.Logger.Level = "error"
	}
	logger := logging.New(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l := ledger.NewLedger(memory.NewMemoryAccountStore(), ledger.WithLogger(logger.Named("ledger")))
	if err := cli.Run(ctx, os.Stdin, os.Stdout, l); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
