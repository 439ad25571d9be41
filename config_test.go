package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultExternalURL, cfg.ExternalURL)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, 0.7, cfg.Match.FuzzyThreshold)
	assert.NotEmpty(t, cfg.Catalog)
	assert.NotEmpty(t, cfg.Substitutions)
}

func TestLoadConfigYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
meiliUrl: http://meili.internal:7700
fetchTimeout: 2m
match:
  fuzzyThreshold: 0.8
  containsScore: 0.95
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://meili.internal:7700", cfg.MeiliURL)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 0.8, cfg.Match.FuzzyThreshold)
	assert.Equal(t, 0.95, cfg.Match.ContainsScore)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("databaseUrl: postgres://file/db\n"), 0o644))
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("MEILI_API_KEY", "secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.MeiliAPIKey)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetchTimeout: soon\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetchTimeout")
}

func TestLoadConfigRejectsOutOfRangeThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  fuzzyThreshold: 1.5\n  containsScore: 0.9\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzyThreshold")
}

func TestLoadConfigRejectsDuplicateCatalogNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
catalog:
  - name: Bench Press
    muscleGroup: chest
    equipmentClass: barbell
    movementType: compound
  - name: Bench Press
    muscleGroup: chest
    equipmentClass: dumbbell
    movementType: compound
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
