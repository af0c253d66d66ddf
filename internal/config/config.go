// Package config contains the loader and strongly typed model for claudectl.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claude-ci/claudectl/internal/env"
)

// DefaultPath is the default location of the runner configuration file.
const DefaultPath = "claudectl.yaml"

// Config holds project-level defaults for agent runs. Every field can be
// overridden by a CLI flag or CLAUDECTL_* env var; the file only sets
// defaults so workflows stay short.
type Config struct {
	// Model is the default model identifier passed to the agent CLI.
	Model string `yaml:"model,omitempty"`
	// TriggerPhrase is the default mention that addresses the agent.
	TriggerPhrase string `yaml:"triggerPhrase,omitempty"`
	// AllowedTools lists tools the agent may use without prompting.
	AllowedTools []string `yaml:"allowedTools,omitempty"`
	// DisallowedTools lists tools the agent must never use.
	DisallowedTools []string `yaml:"disallowedTools,omitempty"`
	// MaxTurns caps the number of agent turns per run (0 means no cap).
	MaxTurns int `yaml:"maxTurns,omitempty"`
	// EnvFiles lists .env files merged into the agent process environment.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// ShowFullOutput enables verbatim message logging. Messages may carry
	// sensitive data, so this should stay off outside debugging.
	ShowFullOutput bool `yaml:"showFullOutput,omitempty"`
}

// Load reads and decodes the configuration file at path. A missing file at
// the default path yields an empty Config; an explicitly requested file must
// exist.
func Load(path string, explicit bool) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %q: %w", path, err)
	}
	cfg.TriggerPhrase = strings.TrimSpace(cfg.TriggerPhrase)
	return &cfg, nil
}

// AgentEnv loads the configured env files, relative paths resolved against
// the config file's directory, and merges them in declaration order.
func (c *Config) AgentEnv(configPath string) (env.Vars, error) {
	if len(c.EnvFiles) == 0 {
		return env.Vars{}, nil
	}
	return env.LoadEnvFiles(filepath.Dir(configPath), c.EnvFiles)
}
