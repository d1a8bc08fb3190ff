package boxchart

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger sets the logger used for debug output of layout passes.
// A nil l disables logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
