package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage_SystemInit(t *testing.T) {
	line := []byte(`{"type":"system","subtype":"init","session_id":"sess-1","model":"claude-sonnet-4-5","cwd":"/work","permissionMode":"bypassPermissions","tools":["Bash","Read"]}`)

	msg, err := ParseMessage(line)
	require.NoError(t, err)

	sys, ok := msg.(SystemMessage)
	require.True(t, ok)
	assert.Equal(t, SystemSubtypeInit, sys.Subtype)
	assert.Equal(t, "sess-1", sys.SessionID)
	assert.Equal(t, "claude-sonnet-4-5", sys.Model)
	assert.Equal(t, []string{"Bash", "Read"}, sys.Tools)
}

func TestParseMessage_Result(t *testing.T) {
	line := []byte(`{"type":"result","subtype":"success","is_error":false,"duration_ms":4200,"num_turns":3,"total_cost_usd":0.0134,"result":"done","structured_output":{"verdict":"pass","notes":"ok"}}`)

	msg, err := ParseMessage(line)
	require.NoError(t, err)

	res, ok := msg.(ResultMessage)
	require.True(t, ok)
	assert.Equal(t, ResultSubtypeSuccess, res.Subtype)
	assert.False(t, res.IsError)
	assert.Equal(t, int64(4200), res.DurationMs)
	assert.Equal(t, 3, res.NumTurns)
	assert.InDelta(t, 0.0134, res.TotalCostUSD, 1e-9)
	assert.JSONEq(t, `{"verdict":"pass","notes":"ok"}`, string(res.StructuredOutput))
}

func TestParseMessage_ResultWithErrors(t *testing.T) {
	line := []byte(`{"type":"result","subtype":"error_during_execution","is_error":true,"errors":["tool failed","context exceeded"]}`)

	msg, err := ParseMessage(line)
	require.NoError(t, err)

	res, ok := msg.(ResultMessage)
	require.True(t, ok)
	assert.True(t, res.IsError)
	assert.Equal(t, []string{"tool failed", "context exceeded"}, res.Errors)
}

func TestParseMessage_UnknownTypePassesThrough(t *testing.T) {
	line := []byte(`{"type":"stream_event","event":{"type":"content_block_delta"}}`)

	msg, err := ParseMessage(line)
	require.NoError(t, err)

	unk, ok := msg.(UnknownMessage)
	require.True(t, ok)
	assert.Equal(t, MessageType("stream_event"), unk.Type)
	assert.JSONEq(t, string(line), string(unk.Raw))
}

func TestParseMessage_InvalidJSON(t *testing.T) {
	_, err := ParseMessage([]byte("{not json"))
	assert.Error(t, err)
}
