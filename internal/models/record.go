package models

// Party identifies which of the two participants a record belongs to.
// PartyA is the reference party for the signed net balance.
type Party string

const (
	PartyA Party = "a"
	PartyB Party = "b"
)

// Kind is the transaction direction.
type Kind string

const (
	KindBorrow Kind = "borrow"
	KindRepay  Kind = "repay"
)

// LoanRecord is a single dated borrow/repay entry in the notebook.
type LoanRecord struct {
	ID           string `json:"id"` // assigned by the store, empty until persisted
	Party        Party  `json:"party"`
	Kind         Kind   `json:"kind"`
	Memo         string `json:"memo"`
	Principal    int64  `json:"principal"`     // whole yen, before interest
	WithInterest int64  `json:"with_interest"` // principal plus the fixed markup
	Date         string `json:"date"`          // YYYY-MM-DD
}

// Summary holds the absolute per-kind totals and the signed net balance.
// Net is computed from PartyA's perspective: positive means A owes B,
// negative means B owes A.
type Summary struct {
	BorrowPrincipal    int64 `json:"borrow_principal"`
	BorrowWithInterest int64 `json:"borrow_with_interest"`
	RepayPrincipal     int64 `json:"repay_principal"`
	RepayWithInterest  int64 `json:"repay_with_interest"`
	Net                int64 `json:"net"`
}

// Balanced reports whether neither party owes the other.
func (s Summary) Balanced() bool { return s.Net == 0 }
