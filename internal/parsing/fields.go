package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/hr-screener/internal/types"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15

	// nameSearchWindow bounds how far down the document the name heuristic
	// looks. Resumes put the name near the top; anything later is body text.
	nameSearchWindow = 20
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phoneCandidate matches a digit run with common separators. Newlines are
	// deliberately excluded so numbers never merge across lines.
	phoneCandidate = regexp.MustCompile(`\+?\d[\d\t ().-]*\d`)
)

// headerWords are tokens that mark a line as a section header rather than a
// candidate name.
var headerWords = map[string]bool{
	"resume":     true,
	"curriculum": true,
	"vitae":      true,
	"cv":         true,
	"profile":    true,
	"contact":    true,
	"email":      true,
	"phone":      true,
	"address":    true,
	"summary":    true,
	"objective":  true,
}

// ExtractFields produces a CandidateProfile from normalized resume text.
// Every recovered value is literally present in the input: email and phone
// are verbatim substrings (phone reduced to its digits) and the name is a
// contiguous token span. Malformed or empty input yields an empty profile
// with the role set to unknown; it is never an error.
func ExtractFields(text string, roles *RoleKeywordMap) types.CandidateProfile {
	profile := types.CandidateProfile{DetectedRole: types.RoleUnknown}
	if strings.TrimSpace(text) == "" {
		return profile
	}

	profile.Email = extractEmail(text)
	profile.Phone = extractPhone(text)
	profile.Name = extractName(text)
	if roles != nil {
		profile.DetectedRole = roles.Detect(text)
	}
	return profile
}

// extractEmail returns the first substring matching standard email grammar,
// or empty when none exists.
func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the digits of the first separator-stripped run whose
// digit count falls in [phoneMinDigits, phoneMaxDigits]. Shorter or longer
// runs are skipped, not truncated.
func extractPhone(text string) string {
	for _, m := range phoneCandidate.FindAllString(text, -1) {
		digits := keepDigits(m)
		if len(digits) >= phoneMinDigits && len(digits) <= phoneMaxDigits {
			return digits
		}
	}
	return ""
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractName finds the first line before the first contact field consisting
// of two to four capitalized word tokens that is not a section header.
// Returns empty when no such span exists; a name is never fabricated.
func extractName(text string) string {
	lines := strings.Split(text, "\n")

	limit := len(lines)
	for i, line := range lines {
		if emailPattern.MatchString(line) || extractPhone(line) != "" {
			limit = i
			break
		}
	}
	if limit > nameSearchWindow {
		limit = nameSearchWindow
	}

	for _, line := range lines[:limit] {
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}
		if isHeaderLine(tokens) {
			continue
		}
		ok := true
		for _, tok := range tokens {
			if !isNameToken(tok) {
				ok = false
				break
			}
		}
		if ok {
			return strings.Join(tokens, " ")
		}
	}
	return ""
}

func isHeaderLine(tokens []string) bool {
	for _, tok := range tokens {
		if headerWords[strings.ToLower(strings.Trim(tok, ".:"))] {
			return true
		}
	}
	return false
}

// isNameToken reports whether a token looks like part of a person's name:
// leading uppercase letter, then letters with optional '.', '-' or
// apostrophe ("R.", "O'Brien", "Smith-Jones").
func isNameToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i, r := range tok {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && r != '.' && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}
