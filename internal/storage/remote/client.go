package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// Default wire values for the two parties, matching the rows the original
// backend already holds.
const (
	DefaultPartyA = "keisuke"
	DefaultPartyB = "hitomi"
)

// Client speaks the legacy PHP CRUD API (fetch_records.php, add_record.php,
// delete_record.php). The wire field mapping is a compatibility contract
// with the deployed backend and must not drift.
type Client struct {
	base   string
	http   *http.Client
	cb     *gobreaker.CircuitBreaker
	partyA string
	partyB string
}

type Config struct {
	// BaseURL is the API root, e.g. "https://example.jp/borrow-api".
	BaseURL string
	// Timeout bounds every request; a hung backend must not block the
	// interaction forever.
	Timeout time.Duration
	// PartyA/PartyB are the wire values stored in the person column.
	PartyA string
	PartyB string
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PartyA == "" {
		cfg.PartyA = DefaultPartyA
	}
	if cfg.PartyB == "" {
		cfg.PartyB = DefaultPartyB
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "loan-api",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   &http.Client{Timeout: cfg.Timeout},
		cb:     cb,
		partyA: cfg.PartyA,
		partyB: cfg.PartyB,
	}
}

// wireValue tolerates the PHP side returning numbers either bare or quoted;
// the original frontend coerced everything through Number().
type wireValue int64

func (w *wireValue) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*w = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("numeric wire field %q: %w", s, err)
		}
		n = int64(math.Round(f))
	}
	*w = wireValue(n)
	return nil
}

// wireRecord is the row shape fetch_records.php returns.
type wireRecord struct {
	ID       wireValue `json:"id"`
	Person   string    `json:"person"`
	Type     string    `json:"type"`
	Memo     string    `json:"memo"`
	Amount   wireValue `json:"amount"`
	Interest wireValue `json:"interest_amount"`
	Date     string    `json:"date"`
}

// createRequest is the payload add_record.php expects. The key names differ
// from the row shape on purpose; the PHP side maps kind to the type column,
// name to memo and amountWithInterest to interest_amount.
type createRequest struct {
	Person             string `json:"person"`
	Kind               string `json:"kind"`
	Name               string `json:"name"`
	Amount             int64  `json:"amount"`
	Date               string `json:"date"`
	AmountWithInterest int64  `json:"amountWithInterest"`
}

type deleteRequest struct {
	ID int64 `json:"id"`
}

type mutationResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

type listEnvelope struct {
	Success *bool        `json:"success"`
	Records []wireRecord `json:"records"`
}

func (c *Client) List(ctx context.Context) ([]models.LoanRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/fetch_records.php", nil)
	if err != nil {
		return nil, err
	}

	rows, err := parseList(body)
	if err != nil {
		return nil, fmt.Errorf("fetch_records.php: %w", err)
	}

	records := make([]models.LoanRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.LoanRecord{
			ID:           strconv.FormatInt(int64(row.ID), 10),
			Party:        c.partyFromWire(row.Person),
			Kind:         kindFromWire(row.Type),
			Memo:         row.Memo,
			Principal:    int64(row.Amount),
			WithInterest: int64(row.Interest),
			Date:         row.Date,
		})
	}
	return records, nil
}

// Create submits the record. The legacy API does not echo the stored row;
// the returned record therefore has no ID and callers reload via List.
func (c *Client) Create(ctx context.Context, rec models.LoanRecord) (models.LoanRecord, error) {
	payload := createRequest{
		Person:             c.partyToWire(rec.Party),
		Kind:               string(rec.Kind),
		Name:               rec.Memo,
		Amount:             rec.Principal,
		Date:               rec.Date,
		AmountWithInterest: rec.WithInterest,
	}

	body, err := c.do(ctx, http.MethodPost, "/add_record.php", payload)
	if err != nil {
		return models.LoanRecord{}, err
	}
	if err := checkMutation(body, "add_record failed"); err != nil {
		return models.LoanRecord{}, err
	}
	return rec, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return interfaces.ErrNotFound
	}

	body, err := c.do(ctx, http.MethodPost, "/delete_record.php", deleteRequest{ID: numericID})
	if err != nil {
		return err
	}
	return checkMutation(body, "delete_record failed")
}

// parseList accepts either a bare array or a {success, records} envelope.
func parseList(body []byte) ([]wireRecord, error) {
	var rows []wireRecord
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

// checkMutation maps an explicit success=false to an error, using the
// backend's error string when it sends one.
func checkMutation(body []byte, fallback string) error {
	var res mutationResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}
	if res.Success != nil && !*res.Success {
		if res.Error != "" {
			return errors.New(res.Error)
		}
		return errors.New(fallback)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	result, err := c.cb.Execute(func() (any, error) {
		var reqBody io.Reader
		if payload != nil {
			data, err := json.Marshal(payload)
			if err != nil {
				return nil, err
			}
			reqBody = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: unexpected status %s", path, res.Status)
		}
		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) partyFromWire(person string) models.Party {
	if person == c.partyB {
		return models.PartyB
	}
	return models.PartyA
}

func (c *Client) partyToWire(party models.Party) string {
	if party == models.PartyB {
		return c.partyB
	}
	return c.partyA
}

func kindFromWire(kind string) models.Kind {
	if kind == string(models.KindRepay) {
		return models.KindRepay
	}
	return models.KindBorrow
}

var _ interfaces.RecordStore = (*Client)(nil)
