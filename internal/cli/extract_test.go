package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-ci/claudectl/internal/prompt"
	"github.com/claude-ci/claudectl/internal/trigger"
)

func TestExtractRequestCommand_WritesRequestFileAndOutputs(t *testing.T) {
	dir := t.TempDir()
	eventPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(eventPath, []byte(`{"issue":{"body":"@claude please implement this feature"}}`), 0o644))
	promptPath := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("instructions"), 0o644))

	outputPath := filepath.Join(dir, "gh-output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	err := Execute([]string{
		"extract-request",
		"--trigger-phrase", "@claude",
		"--event-name", "issues",
		"--event-path", eventPath,
		"--prompt-file", promptPath,
	}, nil)
	require.NoError(t, err)

	request, err := os.ReadFile(filepath.Join(dir, prompt.UserRequestFile))
	require.NoError(t, err)
	assert.Equal(t, "please implement this feature", string(request))

	outputs, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(outputs), "request_found=true")
	assert.Contains(t, string(outputs), "user_request=please implement this feature")
}

func TestExtractRequestCommand_FallbackWhenNoMention(t *testing.T) {
	dir := t.TempDir()
	eventPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(eventPath, []byte(`{"issue":{"body":"nothing for the bot here"}}`), 0o644))
	promptPath := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("instructions"), 0o644))

	t.Setenv("GITHUB_OUTPUT", filepath.Join(dir, "gh-output"))

	err := Execute([]string{
		"extract-request",
		"--trigger-phrase", "@claude",
		"--event-name", "issues",
		"--event-path", eventPath,
		"--prompt-file", promptPath,
	}, nil)
	require.NoError(t, err)

	request, err := os.ReadFile(filepath.Join(dir, prompt.UserRequestFile))
	require.NoError(t, err)
	assert.Equal(t, trigger.DefaultRequest, string(request))

	outputs, err := os.ReadFile(filepath.Join(dir, "gh-output"))
	require.NoError(t, err)
	assert.Contains(t, string(outputs), "request_found=false")
}

func TestExtractRequestCommand_RequiresTriggerPhrase(t *testing.T) {
	t.Setenv("CLAUDECTL_TRIGGER_PHRASE", "")
	err := Execute([]string{"extract-request", "--event-name", "issues", "--event-path", "/tmp/event.json"}, nil)
	assert.Error(t, err)
}

func TestRunCommand_RequiresPromptFile(t *testing.T) {
	t.Setenv("CLAUDECTL_PROMPT_FILE", "")
	err := Execute([]string{"run"}, nil)
	assert.Error(t, err)
}
