package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/config"
	"github.com/jonathan/hr-screener/internal/types"
)

func writeHiringConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestImporterFor_ReloadsKeywordEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.json")
	writeHiringConfig(t, path, `{
		"role_keywords": [
			{"role": "laravel-developer", "keywords": ["laravel"]}
		]
	}`)

	s := &Server{cfg: config.Config{RulesPath: path}, logger: zap.NewNop()}

	importer, err := s.importerFor(nil)
	require.NoError(t, err)
	assert.Equal(t, "laravel-developer", importer.Keywords().Detect("shipped laravel apps"))
	assert.Equal(t, types.RoleUnknown, importer.Keywords().Detect("golang microservices"))

	// An edit to the config file must be picked up by the next upload,
	// without a server restart.
	writeHiringConfig(t, path, `{
		"role_keywords": [
			{"role": "laravel-developer", "keywords": ["laravel"]},
			{"role": "golang-developer", "keywords": ["golang"]}
		]
	}`)

	importer, err = s.importerFor(nil)
	require.NoError(t, err)
	assert.Equal(t, "golang-developer", importer.Keywords().Detect("golang microservices"))
}

func TestImporterFor_NoConfigUsesBuiltins(t *testing.T) {
	s := &Server{cfg: config.Config{}, logger: zap.NewNop()}

	importer, err := s.importerFor(nil)
	require.NoError(t, err)
	assert.Equal(t, "react-developer", importer.Keywords().Detect("react and redux experience"))
}

func TestImporterFor_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.json")
	writeHiringConfig(t, path, `{"role_keywords": [{"keywords": ["laravel"]}]}`)

	s := &Server{cfg: config.Config{RulesPath: path}, logger: zap.NewNop()}

	_, err := s.importerFor(nil)
	require.Error(t, err)
}
