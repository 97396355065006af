package cli

import (
	"context"
	"os"

	"github.com/google/subcommands"

	"github.com/keisuke-0617/couple-loan-app/internal/config"
	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
	"github.com/keisuke-0617/couple-loan-app/internal/logging"
	"github.com/keisuke-0617/couple-loan-app/internal/storage"
	"github.com/keisuke-0617/couple-loan-app/internal/view"
)

// Register the notebook subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&summaryCmd{}, "records")
}

// newEngine wires the configured store and the console view into a ledger
// engine for one command invocation.
func newEngine(ctx context.Context) (*ledger.Ledger, func(), error) {
	cfg := config.Load()

	logger, err := logging.NewFromEnv()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	console := view.NewConsole(os.Stdout, cfg.PartyALabel, cfg.PartyBLabel)
	engine := ledger.NewLedger(store, console, nil, logger)

	cleanup := func() {
		_ = closeStore()
		_ = logger.Sync()
	}
	return engine, cleanup, nil
}
