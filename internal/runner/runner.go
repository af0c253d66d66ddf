// Package runner drives a single agent run: it feeds the prompt payload to
// the agent, consumes the message stream, persists the transcript, and
// derives the conclusion reported to the calling pipeline.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/claude-ci/claudectl/internal/prompt"
	"github.com/claude-ci/claudectl/internal/protocol"
	"github.com/claude-ci/claudectl/internal/sanitize"
)

// Stream is the ordered sequence of messages emitted by one agent run.
// Next blocks until a message is available and returns the verbatim NDJSON
// line alongside its parsed form. io.EOF marks normal stream completion.
type Stream interface {
	Next(ctx context.Context) (raw []byte, msg protocol.Message, err error)
}

// Agent opens a message stream for a prompt payload. Any backend satisfying
// this contract is substitutable, which keeps the runner testable with fake
// streams emitting crafted messages.
type Agent interface {
	Open(ctx context.Context, payload *prompt.Payload) (Stream, error)
}

// Options controls run behavior independent of the agent backend.
type Options struct {
	// ShowFullOutput prints every message verbatim instead of the
	// sanitized summaries. Debug use only.
	ShowFullOutput bool
	// ExpectStructuredOutput requires the result to carry a structured
	// payload; a success without one is forced to failure.
	ExpectStructuredOutput bool
	// TranscriptDir is where the transcript file is written. Empty means
	// the runner temp directory (RUNNER_TEMP).
	TranscriptDir string
	// Stdout receives progress lines and sanitized message summaries.
	Stdout io.Writer
}

// Run executes one agent run to completion and returns its Outcome. The
// returned error is non-nil exactly when the conclusion is failure; callers
// (the CLI layer) translate it into the process exit code. Run itself never
// exits the process.
func Run(ctx context.Context, logger *slog.Logger, agent Agent, payload *prompt.Payload, opts Options) (*Outcome, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	outcome := &Outcome{Conclusion: ConclusionFailure}

	stream, err := agent.Open(ctx, payload)
	if err != nil {
		return outcome, fmt.Errorf("open agent stream: %w", err)
	}

	transcript := NewTranscript()
	var result *protocol.ResultMessage

	for {
		raw, msg, err := stream.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// No partial-success reporting: a broken stream fails the
			// run before any transcript is persisted.
			return outcome, fmt.Errorf("agent stream: %w", err)
		}

		transcript.Append(raw)

		if line, ok := sanitize.Message(raw, msg, opts.ShowFullOutput); ok {
			fmt.Fprintln(out, line)
		}

		if res, ok := msg.(protocol.ResultMessage); ok {
			// Only the last result counts should more than one arrive.
			result = &res
		}
	}

	// Transcript persistence is best-effort observability; the outcome
	// evaluation below is not.
	path, err := transcript.WriteFile(opts.TranscriptDir)
	if err != nil {
		logger.Warn("failed to persist execution transcript", "error", err)
	} else {
		outcome.ExecutionFile = path
		logger.Info("execution transcript written", "path", path, "messages", transcript.Len())
	}

	if result == nil {
		return outcome, errors.New("agent stream ended without a result message")
	}

	if result.Subtype == protocol.ResultSubtypeSuccess {
		outcome.Conclusion = ConclusionSuccess
	}

	var runErr error
	if opts.ExpectStructuredOutput {
		if err := publishStructuredOutput(logger, outcome, result); err != nil {
			outcome.Conclusion = ConclusionFailure
			outcome.StructuredOutput = ""
			runErr = err
		}
	}

	if outcome.Conclusion == ConclusionFailure {
		if len(result.Errors) > 0 {
			logger.Error("agent reported errors", "errors", strings.Join(result.Errors, "; "))
		}
		if runErr == nil {
			runErr = fmt.Errorf("agent run concluded in failure (subtype: %s)", result.Subtype)
		}
		return outcome, runErr
	}

	logger.Info("agent run succeeded",
		"turns", result.NumTurns,
		"duration_ms", result.DurationMs,
		"cost_usd", result.TotalCostUSD,
	)
	return outcome, nil
}

// publishStructuredOutput enforces the schema contract: a structured payload
// was promised, so a success without one is a failure regardless of the
// agent's own subtype.
func publishStructuredOutput(logger *slog.Logger, outcome *Outcome, result *protocol.ResultMessage) error {
	if outcome.Conclusion != ConclusionSuccess {
		return fmt.Errorf("structured output was requested but the run did not succeed (subtype: %s)", result.Subtype)
	}
	if len(result.StructuredOutput) == 0 {
		return errors.New("structured output was requested but the result carries no payload")
	}

	serialized, err := json.Marshal(result.StructuredOutput)
	if err != nil {
		return fmt.Errorf("serialize structured output: %w", err)
	}
	outcome.StructuredOutput = string(serialized)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(result.StructuredOutput, &fields); err == nil {
		logger.Info("structured output captured", "fields", len(fields))
	} else {
		logger.Info("structured output captured (non-object payload)")
	}
	return nil
}
