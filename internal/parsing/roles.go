package parsing

import (
	"strings"

	"github.com/jonathan/hr-screener/internal/types"
)

// RoleMapping associates a role tag with the keywords that indicate it.
type RoleMapping struct {
	Role     string   `json:"role"`
	Keywords []string `json:"keywords"`
}

// RoleKeywordMap is an ordered collection of role mappings. Registration
// order matters: when two mappings match the same number of keywords, the one
// registered first wins. New roles are added through configuration, not code.
type RoleKeywordMap struct {
	mappings []RoleMapping
}

// NewRoleKeywordMap creates a map from the given mappings, preserving order.
func NewRoleKeywordMap(mappings ...RoleMapping) *RoleKeywordMap {
	m := &RoleKeywordMap{}
	for _, mp := range mappings {
		m.Register(mp.Role, mp.Keywords...)
	}
	return m
}

// Register appends a role mapping. Later registrations rank behind earlier
// ones on ties.
func (m *RoleKeywordMap) Register(role string, keywords ...string) {
	m.mappings = append(m.mappings, RoleMapping{Role: role, Keywords: keywords})
}

// Len returns the number of registered mappings.
func (m *RoleKeywordMap) Len() int {
	return len(m.mappings)
}

// Detect returns the role tag whose keywords match the text most often.
// Matching is case-insensitive substring containment. Ties break to the
// earliest-registered mapping; no match at all yields types.RoleUnknown.
func (m *RoleKeywordMap) Detect(text string) string {
	if m == nil || text == "" {
		return types.RoleUnknown
	}

	lower := strings.ToLower(text)
	best := types.RoleUnknown
	bestCount := 0

	for _, mp := range m.mappings {
		count := 0
		for _, k := range mp.Keywords {
			if k == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(k)) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = mp.Role
		}
	}
	return best
}

// DefaultRoleKeywords returns the built-in role detection mappings. These are
// a fallback; deployments normally supply their own via configuration.
func DefaultRoleKeywords() *RoleKeywordMap {
	return NewRoleKeywordMap(
		RoleMapping{Role: "laravel-developer", Keywords: []string{"laravel", "php", "artisan", "eloquent"}},
		RoleMapping{Role: "wordpress-developer", Keywords: []string{"wordpress", "woocommerce", "plugin", "themes"}},
		RoleMapping{Role: "react-developer", Keywords: []string{"react", "redux", "jsx"}},
		RoleMapping{Role: "python-developer", Keywords: []string{"python", "django", "flask", "fastapi", "pandas"}},
		RoleMapping{Role: "web-developer", Keywords: []string{"html", "css", "javascript", "backend"}},
		RoleMapping{Role: "sales-executive", Keywords: []string{"sales", "marketing", "business development"}},
	)
}
