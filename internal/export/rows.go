// Package export publishes evaluated call results to Google Sheets or an
// offline XLSX workbook.
package export

import (
	"strings"

	"github.com/jonathan/hr-screener/internal/db"
)

// Headers is the column layout shared by both export targets. Column A holds
// the call ID and is used to deduplicate appends.
var Headers = []string{
	"Call ID",
	"Candidate",
	"Phone",
	"Role",
	"Outcome",
	"Decision",
	"Reasons",
	"Duration (s)",
	"Called At",
}

// BuildRow flattens one evaluated call into a spreadsheet row matching
// Headers.
func BuildRow(call db.EvaluatedCall) []any {
	return []any{
		call.ID.String(),
		call.CandidateName,
		call.CandidatePhone,
		call.JobTitle,
		call.Outcome,
		call.Decision,
		strings.Join(call.Reasons, "; "),
		call.DurationSeconds,
		call.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
