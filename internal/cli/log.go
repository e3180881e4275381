package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tessera/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that writes to w
// and filters at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration. It is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Packed 4 images (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports failed steps and image I/O.
type logHooks struct {
	observability.NoopPipelineHooks
	observability.NoopImageHooks
	logger *log.Logger
}

// installHooks routes pipeline and image events to logger.
func installHooks(logger *log.Logger) {
	h := &logHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetImageHooks(h)
}

func (h *logHooks) OnStepComplete(_ context.Context, runID string, index int, kind string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("step failed", "run", runID, "index", index+1, "kind", kind, "after", d, "err", err)
	}
}

func (h *logHooks) OnLoad(_ context.Context, path string, pixels int, d time.Duration, err error) {
	if err == nil {
		h.logger.Debug("decoded image", "path", path, "pixels", pixels, "duration", d)
	}
}

func (h *logHooks) OnSave(_ context.Context, path string, pixels int, d time.Duration, err error) {
	if err == nil {
		h.logger.Debug("encoded image", "path", path, "pixels", pixels, "duration", d)
	}
}
