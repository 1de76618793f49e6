package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adcsetup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout())
	assert.NotNil(t, cfg.OperatorDefaults)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9090
  read_timeout_sec: 5
operator_defaults:
  DAR8:
    tcep_eq: "8"
    x_lp_per_ab: "12"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout())
	// fields absent from the file keep their defaults
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout())
	assert.Equal(t, float64(50), cfg.Server.RateLimitRPS)

	assert.Equal(t, "8", cfg.OperatorDefaults["DAR8"]["tcep_eq"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [broken")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestMergeOperatorDefaults(t *testing.T) {
	cfg := Default()
	cfg.OperatorDefaults = map[string]map[string]string{
		"DAR8": {
			"tcep_eq":     "8",
			"x_lp_per_ab": "12",
		},
	}

	t.Run("explicit values win", func(t *testing.T) {
		merged := cfg.MergeOperatorDefaults("DAR8", map[string]any{"tcep_eq": 6.0})
		assert.Equal(t, 6.0, merged["tcep_eq"])
		assert.Equal(t, "12", merged["x_lp_per_ab"])
	})

	t.Run("no defaults for type", func(t *testing.T) {
		in := map[string]any{"tcep_eq": 6.0}
		merged := cfg.MergeOperatorDefaults("DAR4", in)
		assert.Equal(t, in, merged)
	})
}
