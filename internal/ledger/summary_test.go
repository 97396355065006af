package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

func TestSignedContribution(t *testing.T) {
	cases := []struct {
		party models.Party
		kind  models.Kind
		want  int64
	}{
		{models.PartyA, models.KindBorrow, 1100},
		{models.PartyA, models.KindRepay, -1100},
		{models.PartyB, models.KindBorrow, -1100},
		{models.PartyB, models.KindRepay, 1100},
	}
	for _, tc := range cases {
		rec := models.LoanRecord{Party: tc.party, Kind: tc.kind, WithInterest: 1100}
		assert.Equal(t, tc.want, SignedContribution(rec), "%s/%s", tc.party, tc.kind)
	}
}

func TestComputeSummary_EmptyLedgerIsBalanced(t *testing.T) {
	s := ComputeSummary(nil)

	assert.Zero(t, s.BorrowPrincipal)
	assert.Zero(t, s.BorrowWithInterest)
	assert.Zero(t, s.RepayPrincipal)
	assert.Zero(t, s.RepayWithInterest)
	assert.True(t, s.Balanced())
}

func TestComputeSummary_Scenario(t *testing.T) {
	first := models.LoanRecord{
		ID: "1", Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "lunch", Principal: 1000, WithInterest: WithInterest(1000), Date: "2024-05-01",
	}
	assert.Equal(t, int64(1100), first.WithInterest)

	s := ComputeSummary([]models.LoanRecord{first})
	assert.Equal(t, int64(1100), s.Net, "A owes B after A borrows")

	second := models.LoanRecord{
		ID: "2", Party: models.PartyB, Kind: models.KindBorrow,
		Memo: "coffee", Principal: 1100, WithInterest: WithInterest(1100), Date: "2024-05-02",
	}
	assert.Equal(t, int64(1210), second.WithInterest)

	s = ComputeSummary([]models.LoanRecord{first, second})
	assert.Equal(t, int64(-110), s.Net, "B owes A once B borrows more")
	assert.Equal(t, int64(2100), s.BorrowPrincipal)
	assert.Equal(t, int64(2310), s.BorrowWithInterest)

	// deleting the first record leaves only B's borrowing
	s = ComputeSummary([]models.LoanRecord{second})
	assert.Equal(t, int64(-1210), s.Net)
}

func TestComputeSummary_RepaymentsReduceTheNet(t *testing.T) {
	records := []models.LoanRecord{
		{Party: models.PartyA, Kind: models.KindBorrow, Principal: 1000, WithInterest: 1100},
		{Party: models.PartyA, Kind: models.KindRepay, Principal: 500, WithInterest: 550},
	}
	s := ComputeSummary(records)

	assert.Equal(t, int64(550), s.Net)
	assert.Equal(t, int64(1000), s.BorrowPrincipal)
	assert.Equal(t, int64(500), s.RepayPrincipal)
	assert.Equal(t, int64(550), s.RepayWithInterest)
}

func TestComputeSummary_Idempotent(t *testing.T) {
	records := []models.LoanRecord{
		{Party: models.PartyA, Kind: models.KindBorrow, Principal: 1000, WithInterest: 1100},
		{Party: models.PartyB, Kind: models.KindRepay, Principal: 300, WithInterest: 330},
	}
	assert.Equal(t, ComputeSummary(records), ComputeSummary(records))
}
