package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hr-screener/internal/types"
)

func TestExtractFields_Email(t *testing.T) {
	profile := ExtractFields("Kartik Sharma\nkartik.sharma@example.co.in\n", nil)

	assert.Equal(t, "kartik.sharma@example.co.in", profile.Email)
}

func TestExtractFields_EmailAbsentWithoutDottedDomain(t *testing.T) {
	profile := ExtractFields("no contact info here", nil)

	assert.Empty(t, profile.Email)
}

func TestExtractFields_EmailFirstMatchWins(t *testing.T) {
	text := "Primary: first@example.com Secondary: second@example.com"
	profile := ExtractFields(text, nil)

	assert.Equal(t, "first@example.com", profile.Email)
}

func TestExtractFields_PhoneFirstQualifyingRun(t *testing.T) {
	profile := ExtractFields("Call 98765-43210 or 12345", nil)

	assert.Equal(t, "9876543210", profile.Phone)
}

func TestExtractFields_PhoneStripsSeparatorsAndCountryCode(t *testing.T) {
	profile := ExtractFields("Phone: +91 98765 43210", nil)

	assert.Equal(t, "919876543210", profile.Phone)
}

func TestExtractFields_PhoneTooShortOrTooLongSkipped(t *testing.T) {
	profile := ExtractFields("ref 123456789 and 1234567890123456", nil)

	assert.Empty(t, profile.Phone)
}

func TestExtractFields_NameBeforeContactField(t *testing.T) {
	text := "Kartik Sharma\nReact Developer\nkartik@example.com\n9876543210"
	profile := ExtractFields(text, nil)

	assert.Equal(t, "Kartik Sharma", profile.Name)
}

func TestExtractFields_NameSkipsSectionHeaders(t *testing.T) {
	text := "CURRICULUM VITAE\nKartik Sharma\nkartik@example.com"
	profile := ExtractFields(text, nil)

	assert.Equal(t, "Kartik Sharma", profile.Name)
}

func TestExtractFields_NameNeverFabricated(t *testing.T) {
	text := "experience with react and redux\ncontact@example.com"
	profile := ExtractFields(text, nil)

	assert.Empty(t, profile.Name)
}

func TestExtractFields_NameRequiresCapitalizedTokens(t *testing.T) {
	text := "senior developer\nKartik Sharma\nkartik@example.com"
	profile := ExtractFields(text, nil)

	assert.Equal(t, "Kartik Sharma", profile.Name)
}

func TestExtractFields_EmptyInput(t *testing.T) {
	profile := ExtractFields("", DefaultRoleKeywords())

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Phone)
	assert.Equal(t, types.RoleUnknown, profile.DetectedRole)
	assert.True(t, profile.IsEmpty())
}

func TestExtractFields_RoleDetection(t *testing.T) {
	text := "Kartik Sharma\nkartik@example.com\nSkilled in react, redux and jsx."
	profile := ExtractFields(text, DefaultRoleKeywords())

	assert.Equal(t, "react-developer", profile.DetectedRole)
}

func TestExtractFields_Deterministic(t *testing.T) {
	text := "Kartik Sharma\nkartik@example.com\n9876543210\nreact redux"
	roles := DefaultRoleKeywords()

	first := ExtractFields(text, roles)
	second := ExtractFields(text, roles)

	assert.Equal(t, first, second)
}
