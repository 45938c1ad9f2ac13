// Package rules resolves the effective hiring rule for a role and loads the
// HR-editable rule configuration.
package rules

import (
	"errors"
	"strings"

	"github.com/jonathan/hr-screener/internal/types"
)

// ErrNoEffectiveRule is returned when no rule matches the role and no
// defaults were configured. The caller must treat this as a configuration
// error; the engine never invents a rule.
var ErrNoEffectiveRule = errors.New("no hiring rule matches role and no defaults configured")

// Resolve returns the single effective rule for roleKey. Matching is a
// case-insensitive exact match on RoleKey. With no match the defaults are
// returned; with several matches the last-defined rule wins wholesale.
// Fields left unset on the winning rule do NOT fall back to defaults
// field-by-field: an open field means "no constraint", which is different
// from "unspecified, use default".
func Resolve(roleKey string, ruleSet []types.RoleRule, defaults *types.RoleRule) (types.RoleRule, error) {
	var matched *types.RoleRule
	for i := range ruleSet {
		if strings.EqualFold(ruleSet[i].RoleKey, roleKey) {
			matched = &ruleSet[i]
		}
	}
	if matched != nil {
		return *matched, nil
	}
	if defaults != nil {
		return *defaults, nil
	}
	return types.RoleRule{}, ErrNoEffectiveRule
}
