// Package logger builds the slog logger used by the CLI.
package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	// Out receives log lines. Nil discards them.
	Out   io.Writer
	Debug bool
	// RunID tags every record. Empty means a fresh UUID.
	RunID string
}

// Setup returns a text logger tagged with a run_id attribute.
func Setup(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		return Discard()
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	h := slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h).With("run_id", runID)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
