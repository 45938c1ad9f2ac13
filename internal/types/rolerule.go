package types

// RoleRule is one named, role-scoped hiring policy. Optional constraints use
// pointers so "unset" is distinguishable from zero: a nil MaxBudget means no
// ceiling, which is different from a ceiling of 0.
type RoleRule struct {
	RoleKey            string   `json:"role_key"`
	MaxBudget          *float64 `json:"max_budget,omitempty"`
	MinExperienceYears *float64 `json:"min_experience_years,omitempty"`
	RequiredTopics     []string `json:"required_topics,omitempty"`
}

// HasConstraints reports whether the rule configures anything to check.
func (r RoleRule) HasConstraints() bool {
	return r.MaxBudget != nil || r.MinExperienceYears != nil || len(r.RequiredTopics) > 0
}

// Float64Ptr returns a pointer to v. Convenience for building rules inline.
func Float64Ptr(v float64) *float64 {
	return &v
}
