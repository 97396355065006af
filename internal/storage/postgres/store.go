package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/models"
)

// Store persists records in a loan_records table. Column names follow the
// original backend schema (person, type, memo, amount, interest_amount,
// date) so existing data can be imported as-is.
type Store struct {
	db *sql.DB
}

func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates the loan_records table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS loan_records (
		id              SERIAL PRIMARY KEY,
		person          TEXT   NOT NULL,
		type            TEXT   NOT NULL,
		memo            TEXT   NOT NULL,
		amount          BIGINT NOT NULL,
		interest_amount BIGINT NOT NULL,
		date            TEXT   NOT NULL
	)`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *Store) List(ctx context.Context) ([]models.LoanRecord, error) {
	const query = `SELECT id, person, type, memo, amount, interest_amount, date
	FROM loan_records ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.LoanRecord
	for rows.Next() {
		var (
			id  int64
			rec models.LoanRecord
		)
		if err := rows.Scan(&id, &rec.Party, &rec.Kind, &rec.Memo, &rec.Principal, &rec.WithInterest, &rec.Date); err != nil {
			return nil, err
		}
		rec.ID = strconv.FormatInt(id, 10)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) Create(ctx context.Context, rec models.LoanRecord) (models.LoanRecord, error) {
	const query = `INSERT INTO loan_records (person, type, memo, amount, interest_amount, date)
	VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		string(rec.Party), string(rec.Kind), rec.Memo, rec.Principal, rec.WithInterest, rec.Date,
	).Scan(&id)
	if err != nil {
		return models.LoanRecord{}, err
	}
	rec.ID = strconv.FormatInt(id, 10)
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return interfaces.ErrNotFound
	}

	const query = `DELETE FROM loan_records WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, numericID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

var _ interfaces.RecordStore = (*Store)(nil)
