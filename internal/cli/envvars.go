package cli

import (
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from CLAUDECTL_* env vars.
type baseEnv struct {
	// ConfigPath is the claudectl.yaml path from CLAUDECTL_CONFIG.
	ConfigPath string `env:"CLAUDECTL_CONFIG"`
	// LogLevel is the logging level from CLAUDECTL_LOG_LEVEL.
	LogLevel string `env:"CLAUDECTL_LOG_LEVEL"`
}

// runEnv captures CLAUDECTL_* inputs for agent runs.
type runEnv struct {
	// PromptFile is the prompt path from CLAUDECTL_PROMPT_FILE.
	PromptFile string `env:"CLAUDECTL_PROMPT_FILE"`
	// Model is the model override from CLAUDECTL_MODEL.
	Model string `env:"CLAUDECTL_MODEL"`
	// PermissionMode is the tool approval mode from CLAUDECTL_PERMISSION_MODE.
	PermissionMode string `env:"CLAUDECTL_PERMISSION_MODE"`
	// AllowedTools is a comma list from CLAUDECTL_ALLOWED_TOOLS.
	AllowedTools string `env:"CLAUDECTL_ALLOWED_TOOLS"`
	// DisallowedTools is a comma list from CLAUDECTL_DISALLOWED_TOOLS.
	DisallowedTools string `env:"CLAUDECTL_DISALLOWED_TOOLS"`
	// MaxTurns caps agent turns from CLAUDECTL_MAX_TURNS.
	MaxTurns int `env:"CLAUDECTL_MAX_TURNS"`
	// AgentPath is the agent binary path from CLAUDECTL_AGENT_PATH.
	AgentPath string `env:"CLAUDECTL_AGENT_PATH"`
	// AgentEnv is an inline k=v,k2=v2 list from CLAUDECTL_AGENT_ENV,
	// merged into the agent process environment.
	AgentEnv string `env:"CLAUDECTL_AGENT_ENV"`
	// ShowFullOutput toggles verbatim logging from CLAUDECTL_SHOW_FULL_OUTPUT.
	ShowFullOutput bool `env:"CLAUDECTL_SHOW_FULL_OUTPUT"`
	// StructuredOutput requires a structured payload from CLAUDECTL_STRUCTURED_OUTPUT.
	StructuredOutput bool `env:"CLAUDECTL_STRUCTURED_OUTPUT"`
}

// extractEnv captures inputs for the extract-request command. Event name and
// payload path come from the variables GitHub Actions always sets.
type extractEnv struct {
	// TriggerPhrase is the mention marker from CLAUDECTL_TRIGGER_PHRASE.
	TriggerPhrase string `env:"CLAUDECTL_TRIGGER_PHRASE"`
	// PromptFile is the prompt path from CLAUDECTL_PROMPT_FILE.
	PromptFile string `env:"CLAUDECTL_PROMPT_FILE"`
	// EventName is the workflow event name from GITHUB_EVENT_NAME.
	EventName string `env:"GITHUB_EVENT_NAME"`
	// EventPath is the webhook payload path from GITHUB_EVENT_PATH.
	EventPath string `env:"GITHUB_EVENT_PATH"`
}

// parseEnv fills target from env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// envPresent reports whether a non-empty env var exists.
func envPresent(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}
