package trigger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePayload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEventContext_Comment(t *testing.T) {
	path := writePayload(t, `{"comment":{"body":"@claude do it"},"issue":{"body":"original issue"}}`)

	evt, err := LoadEventContext(EventIssueComment, path)
	require.NoError(t, err)
	assert.Equal(t, EventIssueComment, evt.EventName)
	assert.Equal(t, "@claude do it", evt.CommentBody)
	assert.Equal(t, "original issue", evt.IssueBody)
}

func TestLoadEventContext_ReviewBodyFillsCommentField(t *testing.T) {
	path := writePayload(t, `{"review":{"body":"@claude looks wrong"},"pull_request":{"body":"pr body"}}`)

	evt, err := LoadEventContext(EventPullRequestReview, path)
	require.NoError(t, err)
	assert.Equal(t, "@claude looks wrong", evt.CommentBody)
	assert.Equal(t, "pr body", evt.PRBody)
}

func TestLoadEventContext_MissingFile(t *testing.T) {
	_, err := LoadEventContext(EventIssues, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEventContext_BadJSON(t *testing.T) {
	path := writePayload(t, "{not json")
	_, err := LoadEventContext(EventIssues, path)
	assert.Error(t, err)
}
