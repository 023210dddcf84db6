package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded 9235 actors, 7067 movies, 53210 co-star pairs (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards load and query events to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnQueryStart(_ context.Context, kind, center string) {
	h.logger.Debug("query", "kind", kind, "center", center)
}

func (h logHooks) OnQueryComplete(_ context.Context, kind, center string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "kind", kind, "center", center, "duration", d, "err", err)
		return
	}
	h.logger.Debug("query done", "kind", kind, "center", center, "duration", d)
}

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading", "credits", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, actors, pairs int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "credits", source, "duration", d, "err", err)
		return
	}
	h.logger.Debug("load done", "credits", source, "actors", actors, "pairs", pairs, "duration", d)
}
