// Package prompt builds the payload delivered to the agent runtime.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserRequestFile is the sibling file holding the extracted user request.
// The extract-request command writes it; Build picks it up when present.
const UserRequestFile = "claude-user-request.txt"

// Kind discriminates between payload shapes.
type Kind int

const (
	// KindPlain delivers the prompt as a single text blob.
	KindPlain Kind = iota
	// KindSegmented delivers instructions and the user request as two
	// ordered messages, instructions first.
	KindSegmented
)

// Payload is the prompt handed to the agent. For KindSegmented the user
// request is sent last so the agent's command parser sees the user's literal
// input (potentially a slash command) as the most recent content; collapsing
// both into one blob would bury a leading slash command inside instructions.
type Payload struct {
	Kind         Kind
	Instructions string
	UserRequest  string
}

// Text returns the plain prompt text for KindPlain payloads.
func (p *Payload) Text() string { return p.Instructions }

// Segments returns the ordered message segments to deliver.
func (p *Payload) Segments() []string {
	if p.Kind == KindSegmented {
		return []string{p.Instructions, p.UserRequest}
	}
	return []string{p.Instructions}
}

// Build reads the prompt file and, when a sibling claude-user-request.txt
// exists, upgrades the payload to the two-segment form. An unreadable prompt
// file is a hard error; a missing request file is the normal plain case.
func Build(promptPath string) (*Payload, error) {
	instructions, err := os.ReadFile(promptPath)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %q: %w", promptPath, err)
	}

	requestPath := filepath.Join(filepath.Dir(promptPath), UserRequestFile)
	request, err := os.ReadFile(requestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Payload{Kind: KindPlain, Instructions: string(instructions)}, nil
		}
		return nil, fmt.Errorf("read user request file %q: %w", requestPath, err)
	}

	return &Payload{
		Kind:         KindSegmented,
		Instructions: string(instructions),
		UserRequest:  string(request),
	}, nil
}
