// Package config loads server configuration from an optional TOML file with
// environment variable overrides (env wins). The Logseq API token is the
// only required setting; everything else has a default.
package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

type Config struct {
	Logseq   LogseqConfig   `toml:"logseq"`
	Observer ObserverConfig `toml:"observer"`

	// SessionID identifies this server process in telemetry and logs.
	// Generated fresh on every load, never read from file or env.
	SessionID string `toml:"-"`
}

type LogseqConfig struct {
	// URL is the base URL of the Logseq HTTP API.
	URL string `toml:"url"`
	// Token is the bearer token for the API. Required.
	Token string `toml:"token"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Logseq:    LogseqConfig{URL: "http://localhost:12315"},
		SessionID: uuid.NewString(),
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "logseq-mcp.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("LOGSEQ_API_URL"); v != "" {
		cfg.Logseq.URL = v
	}
	if v := os.Getenv("LOGSEQ_API_TOKEN"); v != "" {
		cfg.Logseq.Token = v
	}
	if v := os.Getenv("LOGSEQ_MCP_OBSERVER"); v == "true" || v == "1" {
		cfg.Observer.Enabled = true
	}

	return cfg
}

// Validate checks that required settings are present. A missing API token
// is fatal: the server cannot authenticate a single backend call without it.
func (c Config) Validate() error {
	if c.Logseq.Token == "" {
		return errors.New("LOGSEQ_API_TOKEN not set")
	}
	return nil
}
