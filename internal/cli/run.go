package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude-ci/claudectl/internal/agent"
	"github.com/claude-ci/claudectl/internal/config"
	"github.com/claude-ci/claudectl/internal/env"
	"github.com/claude-ci/claudectl/internal/ghoutput"
	"github.com/claude-ci/claudectl/internal/prompt"
	"github.com/claude-ci/claudectl/internal/runner"
)

// newRunCommand creates "run", the main entry that executes one agent run
// and reports its conclusion to the pipeline.
func newRunCommand(opts *Options) *cobra.Command {
	var (
		promptFile       string
		model            string
		permissionMode   string
		allowedTools     string
		disallowedTools  string
		maxTurns         int
		agentPath        string
		agentEnvInline   string
		showFullOutput   bool
		structuredOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the agent against a prompt file and report the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			envCfg := runEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
			}
			if !cmd.Flags().Changed("prompt-file") && envPresent("CLAUDECTL_PROMPT_FILE") {
				promptFile = envCfg.PromptFile
			}
			if !cmd.Flags().Changed("model") && envPresent("CLAUDECTL_MODEL") {
				model = envCfg.Model
			}
			if !cmd.Flags().Changed("permission-mode") && envPresent("CLAUDECTL_PERMISSION_MODE") {
				permissionMode = envCfg.PermissionMode
			}
			if !cmd.Flags().Changed("allowed-tools") && envPresent("CLAUDECTL_ALLOWED_TOOLS") {
				allowedTools = envCfg.AllowedTools
			}
			if !cmd.Flags().Changed("disallowed-tools") && envPresent("CLAUDECTL_DISALLOWED_TOOLS") {
				disallowedTools = envCfg.DisallowedTools
			}
			if !cmd.Flags().Changed("max-turns") && envPresent("CLAUDECTL_MAX_TURNS") {
				maxTurns = envCfg.MaxTurns
			}
			if !cmd.Flags().Changed("agent-path") && envPresent("CLAUDECTL_AGENT_PATH") {
				agentPath = envCfg.AgentPath
			}
			if !cmd.Flags().Changed("agent-env") && envPresent("CLAUDECTL_AGENT_ENV") {
				agentEnvInline = envCfg.AgentEnv
			}
			if !cmd.Flags().Changed("show-full-output") && envPresent("CLAUDECTL_SHOW_FULL_OUTPUT") {
				showFullOutput = envCfg.ShowFullOutput
			}
			if !cmd.Flags().Changed("structured-output") && envPresent("CLAUDECTL_STRUCTURED_OUTPUT") {
				structuredOutput = envCfg.StructuredOutput
			}

			if strings.TrimSpace(promptFile) == "" {
				return fmt.Errorf("run requires --prompt-file or CLAUDECTL_PROMPT_FILE env")
			}

			cfg, err := config.Load(opts.ConfigPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if model == "" {
				model = cfg.Model
			}
			if allowedTools == "" {
				allowedTools = strings.Join(cfg.AllowedTools, ",")
			}
			if disallowedTools == "" {
				disallowedTools = strings.Join(cfg.DisallowedTools, ",")
			}
			if maxTurns == 0 {
				maxTurns = cfg.MaxTurns
			}
			if !showFullOutput {
				showFullOutput = cfg.ShowFullOutput
			}

			agentEnv, err := cfg.AgentEnv(opts.ConfigPath)
			if err != nil {
				return err
			}
			inline, err := env.ParseInline(agentEnvInline)
			if err != nil {
				return err
			}
			agentEnv = env.Merge(agentEnv, inline)

			payload, err := prompt.Build(promptFile)
			if err != nil {
				return err
			}
			if payload.Kind == prompt.KindSegmented {
				logger.Info("user request file found, delivering prompt as two segments")
			}

			backend := agent.New(logger, agent.Options{
				CLIPath:         agentPath,
				Model:           model,
				PermissionMode:  permissionMode,
				AllowedTools:    splitToolList(allowedTools),
				DisallowedTools: splitToolList(disallowedTools),
				MaxTurns:        maxTurns,
				Env:             agentEnv,
			})

			outcome, runErr := runner.Run(cmd.Context(), logger, backend, payload, runner.Options{
				ShowFullOutput:         showFullOutput,
				ExpectStructuredOutput: structuredOutput,
			})

			// The conclusion goes to the pipeline even when the run failed;
			// the exit code alone is not machine-consumable by later steps.
			if err := ghoutput.Write(outcome.PipelineOutputs()); err != nil {
				logger.Warn("failed to write pipeline outputs", "error", err)
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&promptFile, "prompt-file", "", "Path to the prompt file (required)")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier override")
	cmd.Flags().StringVar(&permissionMode, "permission-mode", "", "Tool permission mode (e.g. bypassPermissions)")
	cmd.Flags().StringVar(&allowedTools, "allowed-tools", "", "Comma-separated tools the agent may use")
	cmd.Flags().StringVar(&disallowedTools, "disallowed-tools", "", "Comma-separated tools the agent must not use")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 0, "Maximum agent turns (0 uses the agent default)")
	cmd.Flags().StringVar(&agentPath, "agent-path", "", "Path to the agent CLI binary")
	cmd.Flags().StringVar(&agentEnvInline, "agent-env", "", "Extra agent environment in k=v,k2=v2 format")
	cmd.Flags().BoolVar(&showFullOutput, "show-full-output", false, "Print every streamed message verbatim (debug only)")
	cmd.Flags().BoolVar(&structuredOutput, "structured-output", false, "Require the result to carry a structured payload")

	return cmd
}

func splitToolList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
