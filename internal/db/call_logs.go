package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// LogCallInitiated records a dispatched call and returns the log ID.
func (db *DB) LogCallInitiated(ctx context.Context, candidateID uuid.UUID, externalCallID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO call_logs (candidate_id, external_call_id, outcome)
		 VALUES ($1, $2, 'initiated')
		 RETURNING id`,
		candidateID, externalCallID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to log call: %w", err)
	}
	return id, nil
}

// CallResult carries the synced outcome of a completed call.
type CallResult struct {
	Outcome         string
	DurationSeconds int
	Transcript      string
	RecordingURL    string
	Decision        string
	Reasons         []string
}

// CompleteCall stores the synced result for the call with the given external
// ID.
func (db *DB) CompleteCall(ctx context.Context, externalCallID string, result CallResult) error {
	reasons, err := json.Marshal(nonNil(result.Reasons))
	if err != nil {
		return fmt.Errorf("failed to marshal reasons: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE call_logs
		 SET outcome = $1, duration_seconds = $2, transcript = $3,
		     recording_url = $4, decision = $5, reasons = $6
		 WHERE external_call_id = $7`,
		result.Outcome, result.DurationSeconds, result.Transcript,
		result.RecordingURL, result.Decision, reasons, externalCallID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete call %s: %w", externalCallID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("call log not found: %s", externalCallID)
	}
	return nil
}

// ListInitiatedCalls returns calls dispatched but not yet synced.
func (db *DB) ListInitiatedCalls(ctx context.Context) ([]CallRecord, error) {
	return db.listCalls(ctx,
		`SELECT `+callColumns+` FROM call_logs WHERE outcome = 'initiated' ORDER BY created_at ASC`)
}

// ListCallsForCandidate returns all calls for one candidate, newest first.
func (db *DB) ListCallsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]CallRecord, error) {
	return db.listCalls(ctx,
		`SELECT `+callColumns+` FROM call_logs WHERE candidate_id = $1 ORDER BY created_at DESC`,
		candidateID)
}

const callColumns = `id, candidate_id, external_call_id, outcome, duration_seconds,
	transcript, recording_url, decision, reasons, created_at`

func (db *DB) listCalls(ctx context.Context, query string, args ...any) ([]CallRecord, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	defer rows.Close()

	var calls []CallRecord
	for rows.Next() {
		var c CallRecord
		var reasons []byte
		if err := rows.Scan(&c.ID, &c.CandidateID, &c.ExternalCallID, &c.Outcome,
			&c.DurationSeconds, &c.Transcript, &c.RecordingURL, &c.Decision,
			&reasons, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan call: %w", err)
		}
		if len(reasons) > 0 {
			if err := json.Unmarshal(reasons, &c.Reasons); err != nil {
				return nil, fmt.Errorf("failed to decode reasons: %w", err)
			}
		}
		calls = append(calls, c)
	}
	return calls, nil
}

// ListEvaluatedCalls returns completed calls joined with their candidates,
// oldest first, for export.
func (db *DB) ListEvaluatedCalls(ctx context.Context) ([]EvaluatedCall, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT l.id, l.candidate_id, l.external_call_id, l.outcome, l.duration_seconds,
		        l.transcript, l.recording_url, l.decision, l.reasons, l.created_at,
		        c.name, c.phone, c.job_title
		 FROM call_logs l
		 JOIN candidates c ON c.id = l.candidate_id
		 WHERE l.outcome <> 'initiated'
		 ORDER BY l.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluated calls: %w", err)
	}
	defer rows.Close()

	var calls []EvaluatedCall
	for rows.Next() {
		var c EvaluatedCall
		var reasons []byte
		if err := rows.Scan(&c.ID, &c.CandidateID, &c.ExternalCallID, &c.Outcome,
			&c.DurationSeconds, &c.Transcript, &c.RecordingURL, &c.Decision,
			&reasons, &c.CreatedAt, &c.CandidateName, &c.CandidatePhone, &c.JobTitle); err != nil {
			return nil, fmt.Errorf("failed to scan evaluated call: %w", err)
		}
		if len(reasons) > 0 {
			if err := json.Unmarshal(reasons, &c.Reasons); err != nil {
				return nil, fmt.Errorf("failed to decode reasons: %w", err)
			}
		}
		calls = append(calls, c)
	}
	return calls, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
