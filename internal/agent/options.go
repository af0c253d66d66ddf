package agent

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/claude-ci/claudectl/internal/env"
	"github.com/claude-ci/claudectl/internal/prompt"
)

// defaultCLIPath is the agent binary resolved from PATH when none is given.
const defaultCLIPath = "claude"

// Options configures the agent CLI invocation.
type Options struct {
	// CLIPath is the path to the agent binary ("claude" in PATH if empty).
	CLIPath string
	// Model is the model identifier to run with.
	Model string
	// PermissionMode controls tool execution approval (e.g. "bypassPermissions").
	PermissionMode string
	// AllowedTools lists tools the agent may use without prompting.
	AllowedTools []string
	// DisallowedTools lists tools the agent must never use.
	DisallowedTools []string
	// MaxTurns caps agent turns per run (0 means the CLI default).
	MaxTurns int
	// WorkDir is the working directory for the agent process.
	WorkDir string
	// Env is extra environment for the agent process. Values routinely
	// carry tokens, so LogValue never includes them.
	Env env.Vars
}

// LogValue implements slog.LogValuer. The Env map is reduced to a count so
// configured secrets never reach the log stream.
func (o Options) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("cli_path", o.cliPath()),
		slog.String("model", o.Model),
		slog.String("permission_mode", o.PermissionMode),
		slog.String("allowed_tools", strings.Join(o.AllowedTools, ",")),
		slog.String("disallowed_tools", strings.Join(o.DisallowedTools, ",")),
		slog.Int("max_turns", o.MaxTurns),
		slog.Int("env_vars", len(o.Env)),
	}
	return slog.GroupValue(attrs...)
}

func (o Options) cliPath() string {
	if o.CLIPath != "" {
		return o.CLIPath
	}
	return defaultCLIPath
}

// args builds the CLI argument list for a payload. Segmented payloads switch
// the input format to stream-json so the two prompt messages arrive as
// separate user turns.
func (o Options) args(payload *prompt.Payload) []string {
	args := []string{"--print", "--verbose", "--output-format", "stream-json"}

	if payload.Kind == prompt.KindSegmented {
		args = append(args, "--input-format", "stream-json")
	}
	if o.Model != "" {
		args = append(args, "--model", o.Model)
	}
	if o.PermissionMode != "" {
		args = append(args, "--permission-mode", o.PermissionMode)
	}
	if len(o.AllowedTools) > 0 {
		args = append(args, "--allowed-tools", strings.Join(o.AllowedTools, ","))
	}
	if len(o.DisallowedTools) > 0 {
		args = append(args, "--disallowed-tools", strings.Join(o.DisallowedTools, ","))
	}
	if o.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(o.MaxTurns))
	}
	return args
}
