package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
  "defaults": {"role_key": "default", "max_budget": 30000},
  "rules": [
    {"role_key": "react-developer", "max_budget": 40000, "min_experience_years": 2, "required_topics": ["Redux"]}
  ],
  "role_keywords": [
    {"role": "react-developer", "keywords": ["react", "redux", "jsx"]}
  ]
}`

func TestParseConfig_Valid(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfig))

	require.NoError(t, err)
	require.NotNil(t, cfg.Defaults)
	assert.Equal(t, "default", cfg.Defaults.RoleKey)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, 40000.0, *cfg.Rules[0].MaxBudget)
	assert.Equal(t, []string{"Redux"}, cfg.Rules[0].RequiredTopics)
	require.Len(t, cfg.RoleKeywords, 1)
}

func TestParseConfig_RejectsMissingRoleKey(t *testing.T) {
	_, err := ParseConfig([]byte(`{"rules": [{"max_budget": 40000}]}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestParseConfig_RejectsNegativeBudget(t *testing.T) {
	_, err := ParseConfig([]byte(`{"rules": [{"role_key": "x", "max_budget": -1}]}`))

	assert.Error(t, err)
}

func TestParseConfig_RejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte(`{"surprise": true}`))

	assert.Error(t, err)
}

func TestParseConfig_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{not json`))

	assert.Error(t, err)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.json")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Len(t, cfg.Rules, 1)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestKeywordMap_FallsBackToBuiltins(t *testing.T) {
	cfg := &Config{}

	m := cfg.KeywordMap()

	require.NotNil(t, m)
	assert.Greater(t, m.Len(), 0)
}

func TestKeywordMap_UsesConfiguredMappings(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfig))
	require.NoError(t, err)

	m := cfg.KeywordMap()

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "react-developer", m.Detect("react and redux"))
}
