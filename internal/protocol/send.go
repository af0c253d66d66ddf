package protocol

import (
	"encoding/json"
	"fmt"
)

// UserMessageToSend is the NDJSON envelope for messages written to the CLI
// in stream-json input mode.
type UserMessageToSend struct {
	Type    string                 `json:"type"`
	Message UserMessageToSendInner `json:"message"`
}

// UserMessageToSendInner is the inner part of messages we send.
type UserMessageToSendInner struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewUserTextMessage constructs a UserMessageToSend with a plain text string.
func NewUserTextMessage(text string) UserMessageToSend {
	return UserMessageToSend{
		Type: "user",
		Message: UserMessageToSendInner{
			Role:    "user",
			Content: text,
		},
	}
}

// Marshal serializes the message to a JSON line ready to write to the CLI.
func (m UserMessageToSend) Marshal() ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal UserMessageToSend: %w", err)
	}
	return b, nil
}
