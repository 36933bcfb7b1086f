package calc

import (
	"io"
	"log/slog"
	"os"
)

// Tracer follows the grammar rules a Parser goes through.
type Tracer interface {
	Enter(string)
	Leave(string)
	Error(string, error)
}

type discardTracer struct{}

func (_ discardTracer) Enter(_ string)          {}
func (_ discardTracer) Leave(_ string)          {}
func (_ discardTracer) Error(_ string, _ error) {}

type slogTracer struct {
	logger *slog.Logger
	depth  int
}

func TraceStdout() Tracer {
	return TraceWriter(os.Stdout)
}

func TraceStderr() Tracer {
	return TraceWriter(os.Stderr)
}

func TraceWriter(w io.Writer) Tracer {
	opts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return TraceLogger(slog.New(slog.NewTextHandler(w, &opts)))
}

func TraceLogger(logger *slog.Logger) Tracer {
	tracer := slogTracer{
		logger: logger,
	}
	return &tracer
}

func (t *slogTracer) Enter(rule string) {
	t.depth++
	t.logger.Debug("enter rule", "rule", rule, "depth", t.depth)
}

func (t *slogTracer) Leave(rule string) {
	t.logger.Debug("leave rule", "rule", rule, "depth", t.depth)
	t.depth--
}

func (t *slogTracer) Error(rule string, err error) {
	t.logger.Error("rule failed", "rule", rule, "depth", t.depth, "err", err)
}
