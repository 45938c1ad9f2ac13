// Package types defines the shared data structures for candidate screening.
package types

// RoleUnknown is the detected role when no keyword mapping matches.
const RoleUnknown = "unknown"

// CandidateProfile holds the structured fields recovered from one resume.
// Extraction never invents values: email and phone are verbatim substrings of
// the source text (phone normalized to digits only), and name is a contiguous
// token span. Absent fields stay empty.
type CandidateProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	DetectedRole string `json:"detected_role"`
}

// IsEmpty reports whether extraction recovered nothing at all.
func (p CandidateProfile) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" &&
		(p.DetectedRole == "" || p.DetectedRole == RoleUnknown)
}

// Candidate lifecycle statuses as stored by the persistence layer.
const (
	StatusPending       = "pending"
	StatusContacted     = "contacted"
	StatusQualified     = "qualified"
	StatusOnHold        = "on_hold"
	StatusRejected      = "rejected"
	StatusNotInterested = "not_interested"
)

// ValidStatus reports whether s is a known candidate status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusContacted, StatusQualified,
		StatusOnHold, StatusRejected, StatusNotInterested:
		return true
	}
	return false
}
