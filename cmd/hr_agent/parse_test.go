package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywords_Default(t *testing.T) {
	keywords, err := loadKeywords("")

	require.NoError(t, err)
	assert.Positive(t, keywords.Len())
}

func TestLoadKeywords_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.json")
	content := `{"role_keywords": [{"role": "golang-developer", "keywords": ["golang", "go"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	keywords, err := loadKeywords(path)

	require.NoError(t, err)
	assert.Equal(t, 1, keywords.Len())
	assert.Equal(t, "golang-developer", keywords.Detect("Senior Golang engineer"))
}

func TestLoadKeywords_MissingFile(t *testing.T) {
	_, err := loadKeywords(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"serve", "parse", "import", "calls", "evaluate", "export"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
