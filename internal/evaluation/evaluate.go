package evaluation

import (
	"fmt"
	"strings"

	"github.com/jonathan/hr-screener/internal/types"
)

// Evaluate qualifies one completed transcript against the effective rule.
// Each configured constraint is checked independently; reasons accumulate in
// the order budget, experience, then required topics in configured order.
// Missing data never passes silently: a constraint that cannot be evaluated
// records a "not determinable" reason and fails, favoring false rejection
// over false advancement. The result is a pure function of its inputs.
func Evaluate(transcript string, rule types.RoleRule) types.TranscriptEvaluation {
	eval := types.TranscriptEvaluation{Decision: types.DecisionAdvance}
	eval.ExtractedBudget = ExtractBudget(transcript)
	eval.ExtractedExperienceYears = ExtractExperienceYears(transcript)

	var reasons []string

	if rule.MaxBudget != nil {
		switch {
		case eval.ExtractedBudget == nil:
			reasons = append(reasons, "budget not determinable from transcript")
		case *eval.ExtractedBudget > *rule.MaxBudget:
			reasons = append(reasons, fmt.Sprintf("stated budget %s exceeds ceiling %s",
				formatAmount(*eval.ExtractedBudget), formatAmount(*rule.MaxBudget)))
		}
	}

	if rule.MinExperienceYears != nil {
		switch {
		case eval.ExtractedExperienceYears == nil:
			reasons = append(reasons, "experience not determinable from transcript")
		case *eval.ExtractedExperienceYears < *rule.MinExperienceYears:
			reasons = append(reasons, fmt.Sprintf("stated experience %s years is below minimum %s",
				formatAmount(*eval.ExtractedExperienceYears), formatAmount(*rule.MinExperienceYears)))
		}
	}

	lower := strings.ToLower(transcript)
	for _, topic := range rule.RequiredTopics {
		if topic == "" {
			continue
		}
		if !strings.Contains(lower, strings.ToLower(topic)) {
			reasons = append(reasons, "missing topic: "+topic)
		}
	}

	if len(reasons) > 0 {
		eval.Decision = types.DecisionReject
		eval.Reasons = reasons
	}
	return eval
}
