package types

// Decision is the binary outcome of a transcript evaluation.
type Decision string

const (
	DecisionAdvance Decision = "advance"
	DecisionReject  Decision = "reject"
)

// TranscriptEvaluation is the qualification outcome for one completed call.
// Invariant: Decision is DecisionReject if and only if Reasons is non-empty.
// It is a pure function of transcript plus effective rule and is always
// recomputable; persisted copies are never the sole source of truth.
type TranscriptEvaluation struct {
	Decision                 Decision `json:"decision"`
	Reasons                  []string `json:"reasons"`
	ExtractedBudget          *float64 `json:"extracted_budget,omitempty"`
	ExtractedExperienceYears *float64 `json:"extracted_experience_years,omitempty"`
}
