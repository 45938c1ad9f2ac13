package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBudget_KSuffix(t *testing.T) {
	b := ExtractBudget("my expected budget is 45k per month")

	require.NotNil(t, b)
	assert.Equal(t, 45000.0, *b)
}

func TestExtractBudget_CommaGroupedFigure(t *testing.T) {
	b := ExtractBudget("expecting a salary of 40,000")

	require.NotNil(t, b)
	assert.Equal(t, 40000.0, *b)
}

func TestExtractBudget_LPASuffix(t *testing.T) {
	b := ExtractBudget("looking for 3.5 LPA")

	require.NotNil(t, b)
	assert.Equal(t, 350000.0, *b)
}

func TestExtractBudget_IgnoresBareNumbersWithoutContext(t *testing.T) {
	assert.Nil(t, ExtractBudget("I have 3 years of experience"))
	assert.Nil(t, ExtractBudget("call me at 9876543210"))
}

func TestExtractBudget_Empty(t *testing.T) {
	assert.Nil(t, ExtractBudget(""))
}

func TestExtractExperienceYears_Basic(t *testing.T) {
	y := ExtractExperienceYears("I have 3 years of experience with React")

	require.NotNil(t, y)
	assert.Equal(t, 3.0, *y)
}

func TestExtractExperienceYears_PlusAndAbbreviation(t *testing.T) {
	y := ExtractExperienceYears("around 5+ yrs in backend work")

	require.NotNil(t, y)
	assert.Equal(t, 5.0, *y)
}

func TestExtractExperienceYears_FirstMentionWins(t *testing.T) {
	y := ExtractExperienceYears("2 years with Go after 4 years of PHP")

	require.NotNil(t, y)
	assert.Equal(t, 2.0, *y)
}

func TestExtractExperienceYears_Absent(t *testing.T) {
	assert.Nil(t, ExtractExperienceYears("salary expectations are 40k"))
	assert.Nil(t, ExtractExperienceYears(""))
}
