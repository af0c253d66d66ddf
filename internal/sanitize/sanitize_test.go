package sanitize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claude-ci/claudectl/internal/protocol"
)

func TestMessage_SystemInitSummary(t *testing.T) {
	msg := protocol.SystemMessage{
		Type:      protocol.MessageTypeSystem,
		Subtype:   protocol.SystemSubtypeInit,
		Model:     "claude-sonnet-4-5",
		SessionID: "sess-1",
	}

	out, ok := Message([]byte(`{"type":"system"}`), msg, false)
	assert.True(t, ok)
	assert.Equal(t, "session started (model: claude-sonnet-4-5)", out)
}

func TestMessage_SystemInitUnknownModel(t *testing.T) {
	msg := protocol.SystemMessage{Type: protocol.MessageTypeSystem, Subtype: protocol.SystemSubtypeInit}

	out, ok := Message(nil, msg, false)
	assert.True(t, ok)
	assert.Equal(t, "session started (model: unknown)", out)
}

func TestMessage_ResultSummaryOmitsContent(t *testing.T) {
	msg := protocol.ResultMessage{
		Type:         protocol.MessageTypeResult,
		Subtype:      protocol.ResultSubtypeSuccess,
		DurationMs:   1500,
		NumTurns:     2,
		TotalCostUSD: 0.02,
		Result:       "secret-bearing final text",
	}

	out, ok := Message(nil, msg, false)
	assert.True(t, ok)
	assert.NotContains(t, out, "secret-bearing")
	assert.Contains(t, out, "subtype=success")
	assert.Contains(t, out, "turns=2")
}

func TestMessage_SuppressesOtherVariants(t *testing.T) {
	assistant := protocol.AssistantMessage{
		Type:    protocol.MessageTypeAssistant,
		Message: protocol.MessageContent{Role: "assistant", Content: json.RawMessage(`"hi"`)},
	}
	_, ok := Message([]byte(`{"type":"assistant"}`), assistant, false)
	assert.False(t, ok)

	unknown := protocol.UnknownMessage{Type: "stream_event", Raw: json.RawMessage(`{}`)}
	_, ok = Message([]byte(`{}`), unknown, false)
	assert.False(t, ok)
}

func TestMessage_FullOutputReturnsRawLine(t *testing.T) {
	raw := []byte(`{"type":"assistant","message":{"role":"assistant","content":"hi"}}`)
	assistant := protocol.AssistantMessage{Type: protocol.MessageTypeAssistant}

	out, ok := Message(raw, assistant, true)
	assert.True(t, ok)
	assert.Equal(t, string(raw), out)
}

func TestMessage_Idempotent(t *testing.T) {
	msg := protocol.ResultMessage{Type: protocol.MessageTypeResult, Subtype: protocol.ResultSubtypeErrorMaxTurns, IsError: true}

	first, ok1 := Message(nil, msg, false)
	second, ok2 := Message(nil, msg, false)
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
