// Package store persists finished verification records in SQLite so
// reviewers can pull up past submissions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/labelcheck/backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id        TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL,
	brand_name      TEXT NOT NULL,
	submission_json TEXT NOT NULL,
	overall_status  TEXT NOT NULL,
	results_json    TEXT NOT NULL,
	detected_text   TEXT NOT NULL DEFAULT '',
	created_at      DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_owner ON submissions(owner_id);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

// Store is a SQLite-backed domain.SubmissionRepository
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and
// bootstraps the schema
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a verification record and sets its ID
func (s *Store) Save(ctx context.Context, record *domain.SubmissionRecord) error {
	submissionJSON, err := json.Marshal(record.Submission)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}
	resultsJSON, err := json.Marshal(record.Report.Results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (owner_id, category, brand_name, submission_json, overall_status, results_json, detected_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.OwnerID,
		string(record.Submission.Category),
		record.Submission.BrandName,
		string(submissionJSON),
		string(record.Report.OverallStatus),
		string(resultsJSON),
		record.Report.DetectedText,
		record.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// GetByID fetches one record by its ID
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.SubmissionRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, overall_status, submission_json, results_json, detected_text, created_at
		 FROM submissions WHERE id = ?`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListByOwner fetches all records belonging to an owner, newest first
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]domain.SubmissionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, overall_status, submission_json, results_json, detected_text, created_at
		 FROM submissions WHERE owner_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SubmissionRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.SubmissionRecord, error) {
	var (
		record         domain.SubmissionRecord
		overallStatus  string
		submissionJSON string
		resultsJSON    string
	)

	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&overallStatus,
		&submissionJSON,
		&resultsJSON,
		&record.Report.DetectedText,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(submissionJSON), &record.Submission); err != nil {
		return nil, fmt.Errorf("failed to decode submission %d: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &record.Report.Results); err != nil {
		return nil, fmt.Errorf("failed to decode results %d: %w", record.ID, err)
	}
	record.Report.OverallStatus = domain.Disposition(overallStatus)

	return &record, nil
}
