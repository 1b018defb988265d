package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Recommender.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Recommender.Timeout.Std())
	assert.Equal(t, 2*time.Second, cfg.Checkout.ProcessingDelay.Std())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
port: 9090
recommender:
  base_url: http://recommender:5000
  timeout: 3s
checkout:
  processing_delay: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://recommender:5000", cfg.Recommender.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Recommender.Timeout.Std())
	assert.Equal(t, 250*time.Millisecond, cfg.Checkout.ProcessingDelay.Std())
}

func TestInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recommender:\n  timeout: fast\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RECOMMENDER_URL", "http://override:5000")
	t.Setenv("PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://override:5000", cfg.Recommender.BaseURL)
	assert.Equal(t, 7070, cfg.Port)
}
