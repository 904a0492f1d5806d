// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the seqalign status logger. Lines carry a wall-clock
// stamp with centiseconds ("14:32:01.45") so that matrix allocation and
// backtrace timings can be told apart on small inputs.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newEngineLogger returns the zap logger handed to align and dtw.
// Without verbose output the engine stays silent; with it, every engine
// event is written to w in zap's development console format under the
// "engine" name.
func newEngineLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core, zap.Development()).Named("engine")
}

// stopwatch reports how long a command's computation took.
type stopwatch struct {
	logger  *log.Logger
	started time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, started: time.Now()}
}

// stop logs msg at info level with the elapsed time as an "elapsed" field,
// e.g. `INFO Aligned 120x118 elapsed=3ms`.
func (s stopwatch) stop(msg string, keyvals ...any) {
	elapsed := time.Since(s.started).Round(time.Millisecond)
	s.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

// loggerCtxKey keys the status logger in a command context.
type loggerCtxKey struct{}

// withLogger attaches l to ctx; the root command does this before any
// subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the status logger attached by withLogger, or the
// charm default logger when a command runs without the root (as in tests
// that build a subcommand directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
