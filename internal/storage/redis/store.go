package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// Store keeps the whole ledger as one JSON blob under a single key, the
// same load/save contract as the file store. There is one logical writer,
// so no optimistic locking around the read-modify-write.
type Store struct {
	client rueidis.Client
	key    string
}

type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	Key      string
}

func New(cfg Config) (*Store, error) {
	if cfg.Key == "" {
		cfg.Key = "loan:records"
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{cfg.Addr},
		Username:    cfg.Username,
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis: create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return &Store{client: client, key: cfg.Key}, nil
}

func (s *Store) List(ctx context.Context) ([]models.LoanRecord, error) {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build())
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	data, err := resp.AsBytes()
	if err != nil {
		return nil, fmt.Errorf("redis get: read response: %w", err)
	}

	var records []models.LoanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// corrupt blob degrades to an empty ledger, like the file store
		return nil, nil
	}
	return records, nil
}

func (s *Store) Create(ctx context.Context, rec models.LoanRecord) (models.LoanRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return models.LoanRecord{}, err
	}

	rec.ID = uuid.NewString()
	records = append(records, rec)
	if err := s.save(ctx, records); err != nil {
		return models.LoanRecord{}, err
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	records, err := s.List(ctx)
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
	return s.save(ctx, kept)
}

func (s *Store) save(ctx context.Context, records []models.LoanRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("redis set: marshal: %w", err)
	}
	cmd := s.client.B().Set().Key(s.key).Value(string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.client.Close()
	return nil
}

var _ interfaces.RecordStore = (*Store)(nil)
