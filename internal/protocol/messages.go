// Package protocol defines the NDJSON message model emitted by the Claude
// Code CLI in stream-json mode.
package protocol

import "encoding/json"

// MessageType discriminates between message kinds.
type MessageType string

const (
	MessageTypeSystem    MessageType = "system"
	MessageTypeAssistant MessageType = "assistant"
	MessageTypeUser      MessageType = "user"
	MessageTypeResult    MessageType = "result"
)

// Result subtypes reported by the CLI on the terminal result message.
const (
	ResultSubtypeSuccess       = "success"
	ResultSubtypeErrorMaxTurns = "error_max_turns"
	ResultSubtypeErrorDuring   = "error_during_execution"
)

// SystemSubtypeInit marks the session initialization system message.
const SystemSubtypeInit = "init"

// Message is the interface for all protocol messages.
type Message interface {
	MsgType() MessageType
}

// SystemMessage represents session initialization and other system events.
type SystemMessage struct {
	Type           MessageType `json:"type"`
	Subtype        string      `json:"subtype"`
	SessionID      string      `json:"session_id,omitempty"`
	Model          string      `json:"model,omitempty"`
	CWD            string      `json:"cwd,omitempty"`
	PermissionMode string      `json:"permissionMode,omitempty"`
	APIKeySource   string      `json:"apiKeySource,omitempty"`
	Tools          []string    `json:"tools,omitempty"`
	SlashCommands  []string    `json:"slash_commands,omitempty"`
}

// MsgType returns the message type.
func (m SystemMessage) MsgType() MessageType { return MessageTypeSystem }

// MessageContent is the inner content of assistant/user messages. The content
// itself stays raw; this adapter never inspects conversation text.
type MessageContent struct {
	Role    string          `json:"role"`
	Model   string          `json:"model,omitempty"`
	Content json.RawMessage `json:"content"`
}

// AssistantMessage is a complete assistant turn from the agent.
type AssistantMessage struct {
	Type      MessageType    `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	Message   MessageContent `json:"message"`
}

// MsgType returns the message type.
func (m AssistantMessage) MsgType() MessageType { return MessageTypeAssistant }

// UserMessage represents tool results echoed back by the CLI.
type UserMessage struct {
	Type      MessageType    `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	Message   MessageContent `json:"message"`
}

// MsgType returns the message type.
func (m UserMessage) MsgType() MessageType { return MessageTypeUser }

// Usage tracks token usage across a run.
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
	OutputTokens             int `json:"output_tokens"`
}

// PermissionDenial records a tool invocation the CLI refused to execute.
type PermissionDenial struct {
	ToolName  string          `json:"tool_name"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
}

// ResultMessage is the terminal message carrying run metrics and outcome.
// Exactly one is expected per run; its absence is a failure condition.
type ResultMessage struct {
	Type              MessageType        `json:"type"`
	Subtype           string             `json:"subtype"`
	SessionID         string             `json:"session_id,omitempty"`
	IsError           bool               `json:"is_error"`
	DurationMs        int64              `json:"duration_ms"`
	DurationAPIMs     int64              `json:"duration_api_ms"`
	NumTurns          int                `json:"num_turns"`
	TotalCostUSD      float64            `json:"total_cost_usd"`
	Result            string             `json:"result,omitempty"`
	Usage             Usage              `json:"usage"`
	PermissionDenials []PermissionDenial `json:"permission_denials,omitempty"`
	StructuredOutput  json.RawMessage    `json:"structured_output,omitempty"`
	Errors            []string           `json:"errors,omitempty"`
}

// MsgType returns the message type.
func (m ResultMessage) MsgType() MessageType { return MessageTypeResult }

// UnknownMessage wraps message types this adapter does not model. The raw
// bytes are preserved so transcripts stay lossless.
type UnknownMessage struct {
	Type MessageType
	Raw  json.RawMessage
}

// MsgType returns the message type.
func (m UnknownMessage) MsgType() MessageType { return m.Type }
