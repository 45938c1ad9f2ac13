package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicatePhone is returned when a candidate with the same phone number
// already exists.
var ErrDuplicatePhone = errors.New("candidate with this phone number already exists")

const candidateColumns = `id, name, phone, email, job_title, status, resume_text, created_at, last_call_at`

// CreateCandidate inserts a new candidate record and returns its ID.
// A non-empty phone that is already stored is rejected with ErrDuplicatePhone.
func (db *DB) CreateCandidate(ctx context.Context, c NewCandidate) (uuid.UUID, error) {
	if c.Phone != "" {
		existing, err := db.FindCandidateByPhone(ctx, c.Phone)
		if err != nil {
			return uuid.Nil, err
		}
		if existing != nil {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, c.Phone)
		}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, phone, email, job_title, resume_text)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.Name, c.Phone, c.Email, c.JobTitle, c.ResumeText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID, or nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// FindCandidateByPhone retrieves a candidate by exact phone match, or nil.
func (db *DB) FindCandidateByPhone(ctx context.Context, phone string) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE phone = $1`, phone)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find candidate by phone: %w", err)
	}
	return c, nil
}

// ListCandidates retrieves candidates, optionally filtered by status.
func (db *DB) ListCandidates(ctx context.Context, status string) ([]Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

// UpdateCandidateStatus sets the candidate's status and stamps last_call_at.
func (db *DB) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET status = $1, last_call_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// DeleteCandidate removes a candidate and its call logs (via cascade).
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.JobTitle, &c.Status,
		&c.ResumeText, &c.CreatedAt, &c.LastCallAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
