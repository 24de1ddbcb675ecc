package pinchzoom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so a silent viewport
// never formats the per-sample attributes of OnGestureUpdate.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is shared by every Viewport and by the content package.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes viewport diagnostics to l. Passing nil silences them
// again, which is also the initial state.
//
// Records emitted:
//   - [slog.LevelDebug]: each pinch sample with its effective factor,
//     clamp result, new scale and edge correction; ignored and saturated
//     samples; decoded content sizes
//   - [slog.LevelInfo]: the fit chosen in OnContentReady
//   - [slog.LevelWarn]: samples or sizes rejected as invalid
//
// The cmd/zoomreplay -v flag installs a debug text handler on stderr:
//
//	pinchzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger viewports write to.
func Logger() *slog.Logger {
	return current.Load()
}
