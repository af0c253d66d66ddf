package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-ci/claudectl/internal/env"
	"github.com/claude-ci/claudectl/internal/prompt"
)

func TestArgs_PlainPayload(t *testing.T) {
	opts := Options{
		Model:           "claude-sonnet-4-5",
		PermissionMode:  "bypassPermissions",
		AllowedTools:    []string{"Bash", "Read"},
		DisallowedTools: []string{"WebSearch"},
		MaxTurns:        8,
	}
	args := opts.args(&prompt.Payload{Kind: prompt.KindPlain, Instructions: "hi"})

	assert.Equal(t, []string{
		"--print", "--verbose", "--output-format", "stream-json",
		"--model", "claude-sonnet-4-5",
		"--permission-mode", "bypassPermissions",
		"--allowed-tools", "Bash,Read",
		"--disallowed-tools", "WebSearch",
		"--max-turns", "8",
	}, args)
}

func TestArgs_SegmentedPayloadAddsInputFormat(t *testing.T) {
	args := Options{}.args(&prompt.Payload{Kind: prompt.KindSegmented})
	assert.Contains(t, strings.Join(args, " "), "--input-format stream-json")
}

func TestArgs_ZeroOptionsOmitFlags(t *testing.T) {
	args := Options{}.args(&prompt.Payload{Kind: prompt.KindPlain})
	assert.Equal(t, []string{"--print", "--verbose", "--output-format", "stream-json"}, args)
}

func TestEncodeStdin_Plain(t *testing.T) {
	data, err := encodeStdin(&prompt.Payload{Kind: prompt.KindPlain, Instructions: "just the prompt"})
	require.NoError(t, err)
	assert.Equal(t, "just the prompt", string(data))
}

func TestEncodeStdin_SegmentedOrder(t *testing.T) {
	data, err := encodeStdin(&prompt.Payload{
		Kind:         prompt.KindSegmented,
		Instructions: "instructions here",
		UserRequest:  "/review-pr now",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "instructions here")
	assert.Contains(t, lines[1], "/review-pr now")
	assert.Contains(t, lines[0], `"role":"user"`)
}

func TestLogValue_StripsEnvValues(t *testing.T) {
	opts := Options{
		Model: "claude-sonnet-4-5",
		Env:   env.Vars{"GITHUB_TOKEN": "ghp_secret", "API_KEY": "sk-secret"},
	}

	rendered := opts.LogValue().String()
	assert.NotContains(t, rendered, "ghp_secret")
	assert.NotContains(t, rendered, "sk-secret")
	assert.Contains(t, rendered, "env_vars")
}
