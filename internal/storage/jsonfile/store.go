package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// Store persists the whole ledger as one JSON document on disk. Writes go to
// a temp file first and replace the real one with a rename, so a crash mid
// write never corrupts the previous snapshot.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

type document struct {
	Records []models.LoanRecord `json:"records"`
}

func (s *Store) List(ctx context.Context) ([]models.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Create(ctx context.Context, rec models.LoanRecord) (models.LoanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return models.LoanRecord{}, err
	}

	rec.ID = uuid.NewString()
	records = append(records, rec)
	if err := s.save(records); err != nil {
		return models.LoanRecord{}, err
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return interfaces.ErrNotFound
	}
	return s.save(kept)
}

// load reads the snapshot. A missing or unreadable file degrades to an empty
// ledger instead of propagating an error.
func (s *Store) load() ([]models.LoanRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		// corrupt snapshot: start over with an empty ledger
		return nil, nil
	}
	return doc.Records, nil
}

func (s *Store) save(records []models.LoanRecord) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Records: records}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

var _ interfaces.RecordStore = (*Store)(nil)
