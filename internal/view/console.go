package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rhymond/go-money"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// Console renders the notebook as a table plus the summary lines the
// original page showed, with amounts formatted as yen.
type Console struct {
	w      io.Writer
	partyA string
	partyB string
}

// NewConsole builds a console view. partyA and partyB are display labels;
// empty labels fall back to the party tags themselves.
func NewConsole(w io.Writer, partyA, partyB string) *Console {
	if partyA == "" {
		partyA = string(models.PartyA)
	}
	if partyB == "" {
		partyB = string(models.PartyB)
	}
	return &Console{w: w, partyA: partyA, partyB: partyB}
}

func (c *Console) Render(records []models.LoanRecord, summary models.Summary) {
	if len(records) == 0 {
		fmt.Fprintln(c.w, "まだ記録がありません。")
	} else {
		tw := tabwriter.NewWriter(c.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "日付\tだれ\t種別\tメモ\t金額\t利子込み\tID")
		for _, rec := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.Date,
				c.partyLabel(rec.Party),
				kindLabel(rec.Kind),
				rec.Memo,
				Yen(rec.Principal),
				Yen(rec.WithInterest),
				rec.ID,
			)
		}
		tw.Flush()
	}

	c.RenderSummary(summary)
}

// RenderSummary prints only the totals and the net balance line.
func (c *Console) RenderSummary(summary models.Summary) {
	fmt.Fprintf(c.w, "借入合計（利子込み）：%s\n", Yen(summary.BorrowWithInterest))
	fmt.Fprintf(c.w, "返済合計（利子込み）：%s\n", Yen(summary.RepayWithInterest))
	fmt.Fprintf(c.w, "元金　借入：%s ／ 返済：%s\n", Yen(summary.BorrowPrincipal), Yen(summary.RepayPrincipal))
	fmt.Fprintln(c.w, c.netLine(summary))
}

func (c *Console) netLine(summary models.Summary) string {
	amount := Yen(abs(summary.Net))
	switch {
	case summary.Net > 0:
		return fmt.Sprintf("差額（利子込み）：%s（%sが%sに借りている）", amount, c.partyA, c.partyB)
	case summary.Net < 0:
		return fmt.Sprintf("差額（利子込み）：%s（%sが%sに借りている）", amount, c.partyB, c.partyA)
	}
	return fmt.Sprintf("差額（利子込み）：%s（トントン）", amount)
}

func (c *Console) partyLabel(party models.Party) string {
	if party == models.PartyB {
		return c.partyB
	}
	return c.partyA
}

func kindLabel(kind models.Kind) string {
	if kind == models.KindRepay {
		return "返済した"
	}
	return "借りた"
}

// Yen formats a whole-yen amount as a localized currency string.
func Yen(value int64) string {
	return money.New(value, money.JPY).Display()
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

var _ interfaces.View = (*Console)(nil)
