package ico

import (
	"io"
	"log/slog"
)

// WriteOption configures a container write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	containerType   Type
	readConcurrency int
	logger          *slog.Logger
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		containerType:   TypeIcon,
		readConcurrency: 1,
	}
}

// log returns the logger, falling back to a discard logger if nil.
func (o *writeOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

// WithType sets the container type written to the header (TypeIcon or
// TypeCursor). The default is TypeIcon. Cursor hotspot fields are not
// supported; entries keep icon semantics either way.
func WithType(t Type) WriteOption {
	return func(o *writeOptions) {
		if t == TypeIcon || t == TypeCursor {
			o.containerType = t
		}
	}
}

// WithReadConcurrency sets the number of image sources read concurrently
// during a write. Payload bytes always land in the destination in input
// order regardless of this setting. Values below 2 keep reads sequential.
func WithReadConcurrency(n int) WriteOption {
	return func(o *writeOptions) {
		if n < 1 {
			n = 1
		}
		o.readConcurrency = n
	}
}

// WithLogger sets a logger for debug-level write progress. By default
// nothing is logged.
func WithLogger(l *slog.Logger) WriteOption {
	return func(o *writeOptions) {
		o.logger = l
	}
}
