// Package sanitize decides which parts of streamed agent messages are safe to
// print. Conversation content can carry repository secrets and tool output,
// so by default only an allow-listed summary of a few message kinds is shown.
package sanitize

import (
	"fmt"

	"github.com/claude-ci/claudectl/internal/protocol"
)

// Message returns the printable form of a streamed message. raw is the
// verbatim NDJSON line; msg is its parsed form. When showFullOutput is set
// the raw line is returned unredacted (debug mode only). Otherwise system
// init and result messages get a fixed safe summary and everything else is
// suppressed (second return value false).
func Message(raw []byte, msg protocol.Message, showFullOutput bool) (string, bool) {
	if showFullOutput {
		return string(raw), true
	}

	switch m := msg.(type) {
	case protocol.SystemMessage:
		if m.Subtype != protocol.SystemSubtypeInit {
			return "", false
		}
		model := m.Model
		if model == "" {
			model = "unknown"
		}
		return fmt.Sprintf("session started (model: %s)", model), true
	case protocol.ResultMessage:
		return fmt.Sprintf(
			"result: subtype=%s is_error=%t duration_ms=%d turns=%d cost_usd=%.4f permission_denials=%d",
			m.Subtype, m.IsError, m.DurationMs, m.NumTurns, m.TotalCostUSD, len(m.PermissionDenials),
		), true
	default:
		return "", false
	}
}
