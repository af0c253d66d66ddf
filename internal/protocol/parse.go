package protocol

import (
	"encoding/json"
	"fmt"
)

// ParseMessage parses a raw NDJSON line into a typed message. Lines with an
// unrecognized "type" come back as UnknownMessage rather than an error, so
// new CLI message kinds pass through transcripts without breaking the run.
func ParseMessage(line []byte) (Message, error) {
	var base struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(line, &base); err != nil {
		return nil, fmt.Errorf("parse message type: %w", err)
	}

	switch base.Type {
	case MessageTypeSystem:
		var msg SystemMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("parse system message: %w", err)
		}
		return msg, nil
	case MessageTypeAssistant:
		var msg AssistantMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("parse assistant message: %w", err)
		}
		return msg, nil
	case MessageTypeUser:
		var msg UserMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("parse user message: %w", err)
		}
		return msg, nil
	case MessageTypeResult:
		var msg ResultMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("parse result message: %w", err)
		}
		return msg, nil
	default:
		raw := make(json.RawMessage, len(line))
		copy(raw, line)
		return UnknownMessage{Type: base.Type, Raw: raw}, nil
	}
}
