package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hr-screener/internal/types"
)

// Candidate is one stored applicant record.
type Candidate struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	JobTitle   string     `json:"job_title"`
	Status     string     `json:"status"`
	ResumeText string     `json:"resume_text,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastCallAt *time.Time `json:"last_call_at,omitempty"`
}

// NewCandidate holds the fields needed to create a candidate.
type NewCandidate struct {
	Name       string
	Phone      string
	Email      string
	JobTitle   string
	ResumeText string
}

// CallRecord is one stored call-log entry.
type CallRecord struct {
	ID              uuid.UUID `json:"id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	ExternalCallID  string    `json:"external_call_id,omitempty"`
	Outcome         string    `json:"outcome"`
	DurationSeconds int       `json:"duration_seconds"`
	Transcript      string    `json:"transcript,omitempty"`
	RecordingURL    string    `json:"recording_url,omitempty"`
	Decision        string    `json:"decision,omitempty"`
	Reasons         []string  `json:"reasons,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// EvaluatedCall joins a completed call with its candidate for export.
type EvaluatedCall struct {
	CallRecord
	CandidateName  string `json:"candidate_name"`
	CandidatePhone string `json:"candidate_phone"`
	JobTitle       string `json:"job_title"`
}

// HiringRule is one stored role-scoped hiring policy. Position records
// definition order so the last-defined rule for a role wins resolution.
type HiringRule struct {
	ID                 uuid.UUID `json:"id"`
	RoleKeyword        string    `json:"role_keyword"`
	MaxBudget          *float64  `json:"max_budget,omitempty"`
	MinExperienceYears *float64  `json:"min_experience_years,omitempty"`
	RequiredTopics     []string  `json:"required_topics,omitempty"`
	Position           int       `json:"position"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToRoleRule converts the stored record to the evaluation rule type.
func (r HiringRule) ToRoleRule() types.RoleRule {
	return types.RoleRule{
		RoleKey:            r.RoleKeyword,
		MaxBudget:          r.MaxBudget,
		MinExperienceYears: r.MinExperienceYears,
		RequiredTopics:     r.RequiredTopics,
	}
}

// User is one dashboard login account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
