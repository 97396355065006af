package ledger

import "github.com/keisuke-0617/couple-loan-app/internal/models"

// SignedContribution returns a record's contribution to the net balance,
// from PartyA's perspective. A borrowing increases what A owes; B borrowing
// decreases it. Repayments invert the sign. Getting this backward silently
// inverts who owes whom, so the convention is pinned down by tests.
func SignedContribution(rec models.LoanRecord) int64 {
	switch {
	case rec.Party == models.PartyA && rec.Kind == models.KindBorrow:
		return rec.WithInterest
	case rec.Party == models.PartyA && rec.Kind == models.KindRepay:
		return -rec.WithInterest
	case rec.Party == models.PartyB && rec.Kind == models.KindBorrow:
		return -rec.WithInterest
	case rec.Party == models.PartyB && rec.Kind == models.KindRepay:
		return rec.WithInterest
	}
	return 0
}

// ComputeSummary recomputes the per-kind totals and the signed net from
// scratch over the full record sequence. Pure function, no hidden state.
func ComputeSummary(records []models.LoanRecord) models.Summary {
	var s models.Summary
	for _, rec := range records {
		switch rec.Kind {
		case models.KindBorrow:
			s.BorrowPrincipal += rec.Principal
			s.BorrowWithInterest += rec.WithInterest
		case models.KindRepay:
			s.RepayPrincipal += rec.Principal
			s.RepayWithInterest += rec.WithInterest
		}
		s.Net += SignedContribution(rec)
	}
	return s
}
