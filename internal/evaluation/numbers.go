// Package evaluation qualifies completed interview transcripts against the
// effective hiring rule for the candidate's role.
package evaluation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// unitAmount matches figures with an explicit magnitude suffix such as
	// "45k" or "3.5 lpa".
	unitAmount = regexp.MustCompile(`(?i)\b(\d+(?:,\d{2,3})*(?:\.\d+)?)\s*(k|lpa)\b`)

	// contextAmount matches a bare figure within a short distance of a
	// compensation keyword, e.g. "expected salary is 40,000".
	contextAmount = regexp.MustCompile(`(?i)(?:budget|salary|ctc|package|compensation)\D{0,40}?(\d+(?:,\d{2,3})*(?:\.\d+)?)`)

	// yearsPattern matches stated experience such as "3 years" or "5+ yrs".
	yearsPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)
)

// ExtractBudget finds the stated compensation figure in transcript text.
// Unit-suffixed figures win over bare figures near compensation keywords; a
// "k" suffix multiplies by 1,000 and "lpa" by 100,000. Returns nil when no
// figure can be determined.
func ExtractBudget(text string) *float64 {
	if m := unitAmount.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1], m[2]); ok {
			return &v
		}
	}
	if m := contextAmount.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1], ""); ok {
			return &v
		}
	}
	return nil
}

// ExtractExperienceYears finds the first stated years-of-experience figure.
// Returns nil when the transcript never states one.
func ExtractExperienceYears(text string) *float64 {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseAmount(num, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(unit) {
	case "k":
		v *= 1_000
	case "lpa":
		v *= 100_000
	}
	return v, true
}

// formatAmount renders a figure without trailing zeros for reason strings.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
