package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
	"github.com/keisuke-0617/couple-loan-app/internal/models/events"
)

// AddInput carries the raw values of a new entry before normalization.
type AddInput struct {
	Party     models.Party
	Kind      models.Kind
	Memo      string
	Principal int64
	Date      string // YYYY-MM-DD, empty for today

	// InterestOverride, when positive, is stored verbatim instead of the
	// computed amount. Used for negotiated non-standard interest; the
	// engine logs every use but does not cross-check it against the rate.
	InterestOverride int64
}

// Ledger owns the in-memory record sequence and delegates durable state to
// the injected store. Mutations are store-first: the sequence only changes
// by reloading the authoritative list after a confirmed write.
type Ledger struct {
	store     interfaces.RecordStore
	view      interfaces.View
	publisher interfaces.EventPublisher
	logger    *zap.Logger

	mu      sync.Mutex
	records []models.LoanRecord
}

// NewLedger builds an engine around the given store. view and publisher may
// be nil; logger may be nil for a silent engine.
func NewLedger(store interfaces.RecordStore, view interfaces.View, publisher interfaces.EventPublisher, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		store:     store,
		view:      view,
		publisher: publisher,
		logger:    logger,
	}
}

// Normalize validates raw input and fills in the derived fields, returning a
// record ready for persistence. An absent party or kind falls back to the
// defaults the original form used (PartyA, borrow).
func Normalize(in AddInput) (models.LoanRecord, error) {
	memo := strings.TrimSpace(in.Memo)
	if memo == "" {
		return models.LoanRecord{}, ErrEmptyMemo
	}
	if in.Principal <= 0 {
		return models.LoanRecord{}, ErrNonPositivePrincipal
	}

	party := in.Party
	if party == "" {
		party = models.PartyA
	}
	if party != models.PartyA && party != models.PartyB {
		return models.LoanRecord{}, ErrUnknownParty
	}

	kind := in.Kind
	if kind == "" {
		kind = models.KindBorrow
	}
	if kind != models.KindBorrow && kind != models.KindRepay {
		return models.LoanRecord{}, ErrUnknownKind
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	withInterest := in.InterestOverride
	if withInterest <= 0 {
		withInterest = WithInterest(in.Principal)
	}

	return models.LoanRecord{
		Party:        party,
		Kind:         kind,
		Memo:         memo,
		Principal:    in.Principal,
		WithInterest: withInterest,
		Date:         date,
	}, nil
}

// AddRecord validates and persists a new entry, then reloads the ledger from
// the store so memory reflects exactly what the store holds. On a store
// failure the in-memory sequence is left untouched.
func (l *Ledger) AddRecord(ctx context.Context, in AddInput) (models.LoanRecord, error) {
	rec, err := Normalize(in)
	if err != nil {
		return models.LoanRecord{}, err
	}

	if in.InterestOverride > 0 {
		l.logger.Warn("interest override accepted",
			zap.Int64("principal", rec.Principal),
			zap.Int64("supplied", in.InterestOverride),
			zap.Int64("computed", WithInterest(rec.Principal)),
		)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	created, err := l.store.Create(ctx, rec)
	if err != nil {
		return models.LoanRecord{}, &PersistenceError{Op: "create", Err: err}
	}

	if err := l.reload(ctx); err != nil {
		return created, err
	}
	l.render()

	l.publish(ctx, events.RecordAdded{
		RecordID:     created.ID,
		Party:        string(created.Party),
		Kind:         string(created.Kind),
		Principal:    created.Principal,
		WithInterest: created.WithInterest,
		Date:         created.Date,
		OccurredAt:   time.Now(),
	})

	return created, nil
}

// DeleteRecord removes the record with the given ID from the store, then
// reloads. When the store rejects the delete the ledger still reloads, so
// memory never diverges from durable state.
func (l *Ledger) DeleteRecord(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Delete(ctx, id); err != nil {
		if rerr := l.reload(ctx); rerr != nil {
			l.logger.Warn("reload after failed delete", zap.Error(rerr))
		}
		return &PersistenceError{Op: "delete", Err: err}
	}

	if err := l.reload(ctx); err != nil {
		return err
	}
	l.render()

	l.publish(ctx, events.RecordDeleted{RecordID: id, OccurredAt: time.Now()})
	return nil
}

// Reload replaces the in-memory sequence with the store's list and renders.
func (l *Ledger) Reload(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reload(ctx); err != nil {
		return err
	}
	l.render()
	return nil
}

// Records returns a copy of the current ordered sequence.
func (l *Ledger) Records() []models.LoanRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.LoanRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Summary recomputes the totals and signed net over the current sequence.
func (l *Ledger) Summary() models.Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ComputeSummary(l.records)
}

func (l *Ledger) reload(ctx context.Context) error {
	records, err := l.store.List(ctx)
	if err != nil {
		return &PersistenceError{Op: "list", Err: err}
	}
	l.records = records
	return nil
}

func (l *Ledger) render() {
	if l.view == nil {
		return
	}
	out := make([]models.LoanRecord, len(l.records))
	copy(out, l.records)
	l.view.Render(out, ComputeSummary(l.records))
}

// publish is best effort: the store, not the event stream, is the source of
// truth, so a failed publish only logs.
func (l *Ledger) publish(ctx context.Context, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, events.Topic, event); err != nil {
		l.logger.Warn("event publish failed", zap.Error(err))
	}
}
