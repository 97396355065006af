package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

func newTestClient(url string) *Client {
	return New(Config{BaseURL: url})
}

func TestList_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fetch_records.php", r.URL.Path)
		// the PHP side returns numbers as strings; the client must coerce
		w.Write([]byte(`[{"id":"3","person":"hitomi","type":"repay","memo":"返す","amount":"500","interest_amount":550,"date":"2024-05-02"}]`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).List(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, models.LoanRecord{
		ID:           "3",
		Party:        models.PartyB,
		Kind:         models.KindRepay,
		Memo:         "返す",
		Principal:    500,
		WithInterest: 550,
		Date:         "2024-05-02",
	}, records[0])
}

func TestList_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"records":[{"id":1,"person":"keisuke","type":"borrow","memo":"ランチ","amount":1000,"interest_amount":1100,"date":"2024-05-01"}]}`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).List(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, models.PartyA, records[0].Party)
	assert.Equal(t, models.KindBorrow, records[0].Kind)
	assert.Equal(t, int64(1100), records[0].WithInterest)
}

func TestCreate_SendsLegacyPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add_record.php", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Create(context.Background(), models.LoanRecord{
		Party: models.PartyB, Kind: models.KindBorrow,
		Memo: "ランチ", Principal: 1000, WithInterest: 1100, Date: "2024-05-01",
	})
	require.NoError(t, err)

	// key names are the backend's contract, not the internal ones
	assert.Equal(t, "hitomi", got["person"])
	assert.Equal(t, "borrow", got["kind"])
	assert.Equal(t, "ランチ", got["name"])
	assert.Equal(t, float64(1000), got["amount"])
	assert.Equal(t, "2024-05-01", got["date"])
	assert.Equal(t, float64(1100), got["amountWithInterest"])
}

func TestCreate_FailureEnvelopePropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"db down"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Create(context.Background(), models.LoanRecord{
		Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "x", Principal: 1, WithInterest: 1, Date: "2024-05-01",
	})
	assert.EqualError(t, err, "db down")
}

func TestDelete_SendsNumericID(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delete_record.php", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv.URL).Delete(context.Background(), "7"))
	assert.Equal(t, float64(7), got["id"])
}

func TestDelete_NonNumericIDFailsWithoutRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Delete(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
	assert.False(t, called)
}

func TestNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).List(context.Background())
	assert.Error(t, err)
}
