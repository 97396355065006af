package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// wireRecord is the row shape the legacy frontend expects from the list
// endpoint: person/type/memo/amount/interest_amount/date/id.
type wireRecord struct {
	ID             string `json:"id"`
	Person         string `json:"person"`
	Type           string `json:"type"`
	Memo           string `json:"memo"`
	Amount         int64  `json:"amount"`
	InterestAmount int64  `json:"interest_amount"`
	Date           string `json:"date"`
}

// createRequest mirrors the payload the frontend posts for a new record.
type createRequest struct {
	Person             string `json:"person"`
	Kind               string `json:"kind"`
	Name               string `json:"name"`
	Amount             int64  `json:"amount"`
	Date               string `json:"date"`
	AmountWithInterest int64  `json:"amountWithInterest"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Reload(r.Context()); err != nil {
		s.logger.Error("list records", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	records := s.ledger.Records()
	rows := make([]wireRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, wireRecord{
			ID:             rec.ID,
			Person:         s.partyToWire(rec.Party),
			Type:           string(rec.Kind),
			Memo:           rec.Memo,
			Amount:         rec.Principal,
			InterestAmount: rec.WithInterest,
			Date:           rec.Date,
		})
	}
	writeSuccess(w, http.StatusOK, map[string]any{"records": rows})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := ledger.AddInput{
		Party:            s.partyFromWire(req.Person),
		Kind:             models.Kind(req.Kind),
		Memo:             req.Name,
		Principal:        req.Amount,
		Date:             req.Date,
		InterestOverride: req.AmountWithInterest,
	}

	// An override equal to the computed amount is just the frontend echoing
	// the auto-filled field back; only a differing value is a real override.
	if req.AmountWithInterest == ledger.WithInterest(req.Amount) {
		in.InterestOverride = 0
	}

	rec, err := s.ledger.AddRecord(r.Context(), in)
	if err != nil {
		s.writeLedgerError(w, "create record", err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"record": wireRecord{
			ID:             rec.ID,
			Person:         s.partyToWire(rec.Party),
			Type:           string(rec.Kind),
			Memo:           rec.Memo,
			Amount:         rec.Principal,
			InterestAmount: rec.WithInterest,
			Date:           rec.Date,
		},
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.ledger.DeleteRecord(r.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}
		s.writeLedgerError(w, "delete record", err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Reload(r.Context()); err != nil {
		s.logger.Error("summary", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := s.ledger.Summary()
	direction := "balanced"
	if summary.Net > 0 {
		direction = "a_owes_b"
	} else if summary.Net < 0 {
		direction = "b_owes_a"
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"summary":   summary,
		"direction": direction,
	})
}

// writeLedgerError maps the error taxonomy to HTTP statuses: validation
// errors are the caller's fault, persistence failures are not.
func (s *Server) writeLedgerError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ledger.ErrEmptyMemo),
		errors.Is(err, ledger.ErrNonPositivePrincipal),
		errors.Is(err, ledger.ErrUnknownParty),
		errors.Is(err, ledger.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(op, zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) partyFromWire(person string) models.Party {
	if person == s.cfg.PartyB {
		return models.PartyB
	}
	return models.PartyA
}

func (s *Server) partyToWire(party models.Party) string {
	if party == models.PartyB {
		return s.cfg.PartyB
	}
	return s.cfg.PartyA
}
