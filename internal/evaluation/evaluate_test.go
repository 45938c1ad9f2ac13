package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-screener/internal/types"
)

func TestEvaluate_BudgetExceedsCeiling(t *testing.T) {
	rule := types.RoleRule{RoleKey: "react-developer", MaxBudget: types.Float64Ptr(40000)}

	eval := Evaluate("my expected budget is 45k", rule)

	assert.Equal(t, types.DecisionReject, eval.Decision)
	require.NotEmpty(t, eval.Reasons)
	assert.Contains(t, eval.Reasons[0], "exceeds ceiling")
	require.NotNil(t, eval.ExtractedBudget)
	assert.Equal(t, 45000.0, *eval.ExtractedBudget)
}

func TestEvaluate_BudgetWithinCeiling(t *testing.T) {
	rule := types.RoleRule{RoleKey: "react-developer", MaxBudget: types.Float64Ptr(50000)}

	eval := Evaluate("my expected budget is 45k", rule)

	assert.Equal(t, types.DecisionAdvance, eval.Decision)
	assert.Empty(t, eval.Reasons)
}

func TestEvaluate_MissingExperienceFailsConservatively(t *testing.T) {
	rule := types.RoleRule{RoleKey: "react-developer", MinExperienceYears: types.Float64Ptr(2)}

	eval := Evaluate("I am very excited about this role", rule)

	assert.Equal(t, types.DecisionReject, eval.Decision)
	require.Len(t, eval.Reasons, 1)
	assert.Contains(t, eval.Reasons[0], "not determinable")
	assert.Nil(t, eval.ExtractedExperienceYears)
}

func TestEvaluate_ExperienceBelowMinimum(t *testing.T) {
	rule := types.RoleRule{RoleKey: "react-developer", MinExperienceYears: types.Float64Ptr(5)}

	eval := Evaluate("I have 3 years of experience", rule)

	assert.Equal(t, types.DecisionReject, eval.Decision)
	assert.Contains(t, eval.Reasons[0], "below minimum")
}

func TestEvaluate_MissingTopic(t *testing.T) {
	rule := types.RoleRule{RoleKey: "react-developer", RequiredTopics: []string{"Redux", "Testing"}}

	eval := Evaluate("I mostly worked with redux state management", rule)

	assert.Equal(t, types.DecisionReject, eval.Decision)
	require.Len(t, eval.Reasons, 1)
	assert.Equal(t, "missing topic: Testing", eval.Reasons[0])
}

func TestEvaluate_AllConstraintsSatisfied(t *testing.T) {
	rule := types.RoleRule{
		RoleKey:            "react-developer",
		MaxBudget:          types.Float64Ptr(50000),
		MinExperienceYears: types.Float64Ptr(2),
		RequiredTopics:     []string{"Redux"},
	}
	transcript := "I have 3 years of experience with React and Redux. My expected budget is 45k."

	eval := Evaluate(transcript, rule)

	assert.Equal(t, types.DecisionAdvance, eval.Decision)
	assert.Empty(t, eval.Reasons)
}

func TestEvaluate_ReasonOrderIsBudgetExperienceTopics(t *testing.T) {
	rule := types.RoleRule{
		RoleKey:            "react-developer",
		MaxBudget:          types.Float64Ptr(40000),
		MinExperienceYears: types.Float64Ptr(5),
		RequiredTopics:     []string{"Redux", "GraphQL"},
	}
	transcript := "expected budget is 45k and I have 3 years of experience"

	eval := Evaluate(transcript, rule)

	require.Len(t, eval.Reasons, 4)
	assert.Contains(t, eval.Reasons[0], "budget")
	assert.Contains(t, eval.Reasons[1], "experience")
	assert.Equal(t, "missing topic: Redux", eval.Reasons[2])
	assert.Equal(t, "missing topic: GraphQL", eval.Reasons[3])
}

func TestEvaluate_EmptyTranscriptAllConstraintsFail(t *testing.T) {
	rule := types.RoleRule{
		RoleKey:            "react-developer",
		MaxBudget:          types.Float64Ptr(40000),
		MinExperienceYears: types.Float64Ptr(2),
		RequiredTopics:     []string{"Redux"},
	}

	eval := Evaluate("", rule)

	assert.Equal(t, types.DecisionReject, eval.Decision)
	assert.Len(t, eval.Reasons, 3)
}

func TestEvaluate_NoConstraintsAlwaysAdvances(t *testing.T) {
	eval := Evaluate("anything at all", types.RoleRule{RoleKey: "open-role"})

	assert.Equal(t, types.DecisionAdvance, eval.Decision)
	assert.Empty(t, eval.Reasons)
}

func TestEvaluate_RejectIffReasonsNonEmpty(t *testing.T) {
	rules := []types.RoleRule{
		{RoleKey: "a"},
		{RoleKey: "b", MaxBudget: types.Float64Ptr(1)},
		{RoleKey: "c", RequiredTopics: []string{"zzz"}},
	}

	for _, rule := range rules {
		eval := Evaluate("expected salary 40,000", rule)
		if eval.Decision == types.DecisionReject {
			assert.NotEmpty(t, eval.Reasons)
		} else {
			assert.Empty(t, eval.Reasons)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	rule := types.RoleRule{RoleKey: "x", MaxBudget: types.Float64Ptr(40000), RequiredTopics: []string{"Redux"}}
	transcript := "expected budget is 45k, worked with redux"

	assert.Equal(t, Evaluate(transcript, rule), Evaluate(transcript, rule))
}
