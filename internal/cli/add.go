package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

type addCmd struct {
	party        string
	kind         string
	memo         string
	amount       int64
	date         string
	withInterest int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new borrow or repay entry" }
func (*addCmd) Usage() string {
	return `notebook add -memo <text> -amount <yen> [-party a|b] [-kind borrow|repay] [-date YYYY-MM-DD] [-with-interest <yen>]

  Validates the entry, persists it to the configured store and prints the
  updated notebook. The interest-inclusive amount is computed from the fixed
  10% rate unless -with-interest supplies an explicit value.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.party, "party", "a", "Who is borrowing or repaying (a or b).")
	f.StringVar(&c.kind, "kind", "borrow", "Direction of the entry (borrow or repay).")
	f.StringVar(&c.memo, "memo", "", "What the money was for.")
	f.Int64Var(&c.amount, "amount", 0, "Principal in whole yen.")
	f.StringVar(&c.date, "date", "", "Entry date, defaults to today.")
	f.Int64Var(&c.withInterest, "with-interest", 0, "Explicit interest-inclusive amount; overrides the computed one.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, cleanup, err := newEngine(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	_, err = engine.AddRecord(ctx, ledger.AddInput{
		Party:            models.Party(c.party),
		Kind:             models.Kind(c.kind),
		Memo:             c.memo,
		Principal:        c.amount,
		Date:             c.date,
		InterestOverride: c.withInterest,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
