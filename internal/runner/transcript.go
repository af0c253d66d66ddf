package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TranscriptFileName is the fixed name of the execution transcript inside
// the runner temp directory.
const TranscriptFileName = "claude-execution-output.json"

// Transcript accumulates every streamed message verbatim. It is an audit
// artifact: unlike the logged summaries, nothing in it is redacted.
type Transcript struct {
	entries []json.RawMessage
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records one raw message line. The bytes are copied; callers may
// reuse their buffer.
func (t *Transcript) Append(raw []byte) {
	entry := make(json.RawMessage, len(raw))
	copy(entry, raw)
	t.entries = append(t.entries, entry)
}

// Len returns the number of recorded messages.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// WriteFile writes the transcript as a pretty-printed JSON array under dir
// and returns the file path. An empty dir falls back to RUNNER_TEMP, then
// the OS temp directory.
func (t *Transcript) WriteFile(dir string) (string, error) {
	if dir == "" {
		dir = os.Getenv("RUNNER_TEMP")
	}
	if dir == "" {
		dir = os.TempDir()
	}

	entries := t.entries
	if entries == nil {
		entries = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	path := filepath.Join(dir, TranscriptFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write transcript %q: %w", path, err)
	}
	return path, nil
}
