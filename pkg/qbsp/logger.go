package qbsp

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger sets the logger used by Decode when no WithLogger option is given.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
