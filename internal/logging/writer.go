package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer implementation that forwards agent stderr output to slog.
type Writer struct {
	logger *slog.Logger
	level  Level
}

// NewWriter constructs a Writer bound to the provided logger and level.
func NewWriter(logger *slog.Logger, level Level) *Writer {
	return &Writer{logger: logger, level: level}
}

// Write logs the given bytes line by line at the configured level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			if line == "" {
				continue
			}
			switch w.level {
			case LevelDebug:
				w.logger.Debug("agent stderr", "line", line)
			case LevelWarn:
				w.logger.Warn("agent stderr", "line", line)
			case LevelError:
				w.logger.Error("agent stderr", "line", line)
			default:
				w.logger.Info("agent stderr", "line", line)
			}
		}
	}
	return len(p), nil
}
