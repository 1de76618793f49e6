// Package config loads the adcsetup YAML configuration: serve-surface
// settings and lab-specific operator input defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `yaml:"server"`

	// OperatorDefaults maps SP type -> field key -> default value, merged
	// under the operator inputs of every calculation. Values are strings;
	// the engine's numeric coercion handles the rest.
	OperatorDefaults map[string]map[string]string `yaml:"operator_defaults"`
}

// ServerConfig holds the HTTP boundary adapter settings.
type ServerConfig struct {
	Host            string  `yaml:"host"`
	Port            int     `yaml:"port"`
	ReadTimeoutSec  int     `yaml:"read_timeout_sec"`
	WriteTimeoutSec int     `yaml:"write_timeout_sec"`
	IdleTimeoutSec  int     `yaml:"idle_timeout_sec"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// Default returns the configuration used when no file is given: local-only
// serving with a generous per-client rate limit.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeoutSec:  10,
			WriteTimeoutSec: 10,
			IdleTimeoutSec:  60,
			RateLimitRPS:    50,
			RateLimitBurst:  100,
		},
		OperatorDefaults: map[string]map[string]string{},
	}
}

// Load reads and parses a YAML config file, filling unset server fields from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if cfg.OperatorDefaults == nil {
		cfg.OperatorDefaults = map[string]map[string]string{}
	}
	return cfg, nil
}

// ReadTimeout returns the read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// MergeOperatorDefaults overlays the configured defaults for spType under the
// operator inputs: explicit operator values always win.
func (c *Config) MergeOperatorDefaults(spType string, operator map[string]any) map[string]any {
	defaults := c.OperatorDefaults[spType]
	if len(defaults) == 0 {
		return operator
	}
	merged := make(map[string]any, len(operator)+len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range operator {
		merged[k] = v
	}
	return merged
}
