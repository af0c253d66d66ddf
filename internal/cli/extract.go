package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude-ci/claudectl/internal/config"
	"github.com/claude-ci/claudectl/internal/ghoutput"
	"github.com/claude-ci/claudectl/internal/prompt"
	"github.com/claude-ci/claudectl/internal/trigger"
)

// newExtractRequestCommand creates "extract-request", the upstream helper
// that pulls the user's request out of the triggering event and writes the
// claude-user-request.txt file consumed by "run".
func newExtractRequestCommand(opts *Options) *cobra.Command {
	var (
		triggerPhrase string
		eventName     string
		eventPath     string
		promptFile    string
	)

	cmd := &cobra.Command{
		Use:   "extract-request",
		Short: "Extract the user request following the trigger phrase from the GitHub event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			envCfg := extractEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
			}
			if !cmd.Flags().Changed("trigger-phrase") && envPresent("CLAUDECTL_TRIGGER_PHRASE") {
				triggerPhrase = envCfg.TriggerPhrase
			}
			if !cmd.Flags().Changed("event-name") && envPresent("GITHUB_EVENT_NAME") {
				eventName = envCfg.EventName
			}
			if !cmd.Flags().Changed("event-path") && envPresent("GITHUB_EVENT_PATH") {
				eventPath = envCfg.EventPath
			}
			if !cmd.Flags().Changed("prompt-file") && envPresent("CLAUDECTL_PROMPT_FILE") {
				promptFile = envCfg.PromptFile
			}

			if strings.TrimSpace(triggerPhrase) == "" {
				cfg, err := config.Load(opts.ConfigPath, cmd.Flags().Changed("config"))
				if err != nil {
					return err
				}
				triggerPhrase = cfg.TriggerPhrase
			}
			if strings.TrimSpace(triggerPhrase) == "" {
				return fmt.Errorf("extract-request requires --trigger-phrase or CLAUDECTL_TRIGGER_PHRASE env")
			}
			if strings.TrimSpace(eventName) == "" || strings.TrimSpace(eventPath) == "" {
				return fmt.Errorf("extract-request requires the GitHub event name and payload path")
			}

			evt, err := trigger.LoadEventContext(eventName, eventPath)
			if err != nil {
				return err
			}

			request := trigger.ExtractFromEvent(evt, triggerPhrase)
			found := request != trigger.DefaultRequest
			logger.Info("extracted user request", "event", eventName, "found", found)

			// The request file is written in both cases so the agent always
			// receives a final user turn; "request_found" tells the
			// workflow whether it was the fallback.
			if strings.TrimSpace(promptFile) != "" {
				dest := filepath.Join(filepath.Dir(promptFile), prompt.UserRequestFile)
				if err := os.WriteFile(dest, []byte(request), 0o644); err != nil {
					return fmt.Errorf("write user request file %q: %w", dest, err)
				}
				logger.Info("user request file written", "path", dest)
			}

			if err := ghoutput.Write(map[string]string{
				"user_request":  request,
				"request_found": strconv.FormatBool(found),
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), request)
			return nil
		},
	}

	cmd.Flags().StringVar(&triggerPhrase, "trigger-phrase", "", "Literal phrase that addresses the agent (e.g. @claude)")
	cmd.Flags().StringVar(&eventName, "event-name", "", "GitHub workflow event name")
	cmd.Flags().StringVar(&eventPath, "event-path", "", "Path to the GitHub webhook payload file")
	cmd.Flags().StringVar(&promptFile, "prompt-file", "", "Prompt file whose directory receives "+prompt.UserRequestFile)

	return cmd
}
