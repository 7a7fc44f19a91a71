package priority

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// options defines the configuration shared by Queue and LazyQueue.
type options struct {
	capacity int          // Initial capacity of the heap and index
	logger   *slog.Logger // Receives debug records; discarded by default
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger used for debug records such as rejected
// duplicates and tombstone sweeps.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
