package interfaces

import (
	"context"
	"errors"

	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// ErrNotFound is returned by a store when the targeted record does not exist.
var ErrNotFound = errors.New("record not found")

// RecordStore is the persistence collaborator of the ledger engine.
// The store owns durable state and is the source of truth: the engine
// reloads the full list after every confirmed mutation.
type RecordStore interface {
	// List returns every record in display order.
	List(ctx context.Context) ([]models.LoanRecord, error)

	// Create persists a new record and returns it with its assigned ID.
	// Backends that do not echo the stored row return the record as given.
	Create(ctx context.Context, rec models.LoanRecord) (models.LoanRecord, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error
}
