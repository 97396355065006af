package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

func TestYenFormatting(t *testing.T) {
	assert.Equal(t, "¥1,100", Yen(1100))
	assert.Equal(t, "¥0", Yen(0))
}

func TestRenderTableAndNet(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, "恵輔", "瞳")

	records := []models.LoanRecord{
		{ID: "r1", Party: models.PartyA, Kind: models.KindBorrow, Memo: "ランチ", Principal: 1000, WithInterest: 1100, Date: "2024-05-01"},
	}
	console.Render(records, models.Summary{
		BorrowPrincipal:    1000,
		BorrowWithInterest: 1100,
		Net:                1100,
	})

	out := buf.String()
	assert.Contains(t, out, "ランチ")
	assert.Contains(t, out, "¥1,100")
	assert.Contains(t, out, "借りた")
	assert.Contains(t, out, "恵輔が瞳に借りている")
}

func TestRenderInvertedNet(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, "恵輔", "瞳")

	console.Render(nil, models.Summary{Net: -500})

	out := buf.String()
	assert.Contains(t, out, "まだ記録がありません。")
	assert.Contains(t, out, "瞳が恵輔に借りている")
	assert.Contains(t, out, "¥500")
}

func TestRenderBalanced(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, "恵輔", "瞳")

	console.Render(nil, models.Summary{})

	assert.Contains(t, buf.String(), "トントン")
}

func TestRepayKindLabel(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, "恵輔", "瞳")

	records := []models.LoanRecord{
		{ID: "r2", Party: models.PartyB, Kind: models.KindRepay, Memo: "返す", Principal: 500, WithInterest: 550, Date: "2024-05-02"},
	}
	console.Render(records, models.Summary{RepayPrincipal: 500, RepayWithInterest: 550, Net: 550})

	out := buf.String()
	assert.Contains(t, out, "返済した")
	assert.Contains(t, out, "瞳")
}
