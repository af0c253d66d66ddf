package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PlainPayload(t *testing.T) {
	dir := t.TempDir()
	promptPath := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("You are a review bot.\n"), 0o644))

	payload, err := Build(promptPath)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, payload.Kind)
	assert.Equal(t, "You are a review bot.\n", payload.Text())
	assert.Equal(t, []string{"You are a review bot.\n"}, payload.Segments())
}

func TestBuild_SegmentedPayload(t *testing.T) {
	dir := t.TempDir()
	promptPath := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("instructions"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, UserRequestFile), []byte("/review-pr check auth"), 0o644))

	payload, err := Build(promptPath)
	require.NoError(t, err)
	assert.Equal(t, KindSegmented, payload.Kind)
	assert.Equal(t, "/review-pr check auth", payload.UserRequest)

	// The user request must come last so command detection sees it.
	segments := payload.Segments()
	require.Len(t, segments, 2)
	assert.Equal(t, "instructions", segments[0])
	assert.Equal(t, "/review-pr check auth", segments[1])
}

func TestBuild_MissingPromptFile(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
