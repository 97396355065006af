package interfaces

import "github.com/keisuke-0617/couple-loan-app/internal/models"

// View consumes the current record sequence and the computed summary.
// The engine pushes a render after every successful mutation and reload.
type View interface {
	Render(records []models.LoanRecord, summary models.Summary)
}
