package ledger

import "github.com/shopspring/decimal"

// InterestRate is the fixed markup applied to every principal.
const InterestRate = 0.10

// WithInterest returns the principal plus the fixed markup, rounded to the
// nearest whole yen (half away from zero, same as the frontend's Math.round).
func WithInterest(principal int64) int64 {
	return decimal.NewFromInt(principal).
		Mul(decimal.NewFromFloat(1 + InterestRate)).
		Round(0).
		IntPart()
}
