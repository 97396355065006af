package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMemo means the memo trimmed to nothing.
	ErrEmptyMemo = errors.New("memo must not be empty")

	// ErrNonPositivePrincipal means the principal was zero or negative.
	ErrNonPositivePrincipal = errors.New("principal must be at least 1 yen")

	// ErrUnknownParty means the party tag was neither of the two participants.
	ErrUnknownParty = errors.New("unknown party")

	// ErrUnknownKind means the direction was neither borrow nor repay.
	ErrUnknownKind = errors.New("unknown record kind")
)

// PersistenceError wraps a failed store operation. The in-memory ledger is
// reconciled with the store, never assumed mutated, when one occurs.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
