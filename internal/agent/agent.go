// Package agent runs the Claude Code CLI as a one-shot subprocess and
// exposes its stream-json output as a runner.Stream.
package agent

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/claude-ci/claudectl/internal/logging"
	"github.com/claude-ci/claudectl/internal/prompt"
	"github.com/claude-ci/claudectl/internal/protocol"
	"github.com/claude-ci/claudectl/internal/runner"
)

// Long tool outputs can produce NDJSON lines well past bufio's default.
const scannerBufferSize = 1024 * 1024

// CLI is a runner.Agent backed by the Claude Code command-line binary.
type CLI struct {
	logger *slog.Logger
	opts   Options
}

// New constructs a CLI agent with the given options.
func New(logger *slog.Logger, opts Options) *CLI {
	return &CLI{logger: logger, opts: opts}
}

// Open starts the agent process for the payload and returns its message
// stream. The prompt is delivered on stdin: a plain payload as raw text, a
// segmented payload as two stream-json user messages with the instructions
// first and the user request last.
func (c *CLI) Open(ctx context.Context, payload *prompt.Payload) (runner.Stream, error) {
	stdin, err := encodeStdin(payload)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, c.opts.cliPath(), c.opts.args(payload)...)
	cmd.Dir = c.opts.WorkDir
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Env = append(os.Environ(), c.opts.Env.Environ()...)
	cmd.Stderr = logging.NewWriter(c.logger, logging.LevelWarn)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open agent stdout: %w", err)
	}

	c.logger.Info("starting agent", "options", c.opts)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start agent %q: %w", c.opts.cliPath(), err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufferSize)

	return &processStream{cmd: cmd, scanner: scanner}, nil
}

func encodeStdin(payload *prompt.Payload) ([]byte, error) {
	if payload.Kind != prompt.KindSegmented {
		return []byte(payload.Text()), nil
	}

	var buf bytes.Buffer
	for _, segment := range payload.Segments() {
		line, err := protocol.NewUserTextMessage(segment).Marshal()
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// processStream reads NDJSON lines from the agent's stdout.
type processStream struct {
	cmd     *exec.Cmd
	scanner *bufio.Scanner
	done    bool
}

// Next returns the next streamed message. After the last line it reaps the
// process: a non-zero exit surfaces as a stream error, a clean exit as
// io.EOF.
func (s *processStream) Next(ctx context.Context) ([]byte, protocol.Message, error) {
	if s.done {
		return nil, nil, io.EOF
	}

	for {
		if err := ctx.Err(); err != nil {
			s.done = true
			_ = s.cmd.Process.Kill()
			_ = s.cmd.Wait()
			return nil, nil, err
		}

		if !s.scanner.Scan() {
			s.done = true
			if err := s.scanner.Err(); err != nil {
				_ = s.cmd.Wait()
				return nil, nil, fmt.Errorf("read agent output: %w", err)
			}
			if err := s.cmd.Wait(); err != nil {
				return nil, nil, fmt.Errorf("agent process: %w", err)
			}
			return nil, nil, io.EOF
		}

		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		raw := make([]byte, len(line))
		copy(raw, line)
		msg, err := protocol.ParseMessage(raw)
		if err != nil {
			s.done = true
			_ = s.cmd.Process.Kill()
			_ = s.cmd.Wait()
			return nil, nil, err
		}
		return raw, msg, nil
	}
}
