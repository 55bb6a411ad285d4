package qbsp

import "log/slog"

type options struct {
	logger   *slog.Logger
	parallel bool
}

// Option configures Decode.
type Option func(*options)

// WithLogger sets the logger for a single Decode call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParallel decodes the lumps concurrently once the header is read.
// The result is identical to a sequential decode.
func WithParallel() Option {
	return func(o *options) {
		o.parallel = true
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
