package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "records.json"))
}

func TestListMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateListRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "lunch", Principal: 1000, WithInterest: 1100, Date: "2024-05-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyB, Kind: models.KindRepay,
		Memo: "coffee", Principal: 500, WithInterest: 550, Date: "2024-05-02",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.LoanRecord{first, second}, records)
}

func TestReopenedStoreSeesSavedRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.json")

	store := New(path)
	created, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "lunch", Principal: 1000, WithInterest: 1100, Date: "2024-05-01",
	})
	require.NoError(t, err)

	reopened := New(path)
	records, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.LoanRecord{created}, records)
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path)
	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "lunch", Principal: 1000, WithInterest: 1100, Date: "2024-05-01",
	})
	require.NoError(t, err)
	second, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyB, Kind: models.KindBorrow,
		Memo: "coffee", Principal: 1100, WithInterest: 1210, Date: "2024-05-02",
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, first.ID))

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.LoanRecord{second}, records)
}

func TestDeleteUnknownIDFails(t *testing.T) {
	store := newTestStore(t)
	err := store.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := New(filepath.Join(dir, "records.json"))

	_, err := store.Create(ctx, models.LoanRecord{
		Party: models.PartyA, Kind: models.KindBorrow,
		Memo: "lunch", Principal: 1000, WithInterest: 1100, Date: "2024-05-01",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "records.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
