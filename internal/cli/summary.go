package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/keisuke-0617/couple-loan-app/internal/config"
	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
	"github.com/keisuke-0617/couple-loan-app/internal/storage"
	"github.com/keisuke-0617/couple-loan-app/internal/view"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print only the totals and the net balance" }
func (*summaryCmd) Usage() string {
	return `notebook summary

  Loads the notebook and prints the per-kind totals and who owes whom,
  without the record table.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	engine := ledger.NewLedger(store, nil, nil, nil)
	if err := engine.Reload(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	console := view.NewConsole(os.Stdout, cfg.PartyALabel, cfg.PartyBLabel)
	console.RenderSummary(engine.Summary())
	return subcommands.ExitSuccess
}
