package framing

import (
	"github.com/go-logr/logr"

	"github.com/googollee/go-framing/logger"
)

const (
	defaultBufferSize   = 4096
	defaultMaxFrameSize = 16 << 20
)

// Observer is told about every frame an Encoder writes or a Decoder reads.
// See package metrics for a Prometheus implementation.
type Observer interface {
	FrameWritten(strategy string, size int)
	FrameRead(strategy string, size int)
	FrameFailed(strategy string, err error)
}

type nopObserver struct{}

func (nopObserver) FrameWritten(string, int)  {}
func (nopObserver) FrameRead(string, int)     {}
func (nopObserver) FrameFailed(string, error) {}

type options struct {
	logger       logr.Logger
	observer     Observer
	bufferSize   int
	maxFrameSize int
}

// Option configures an Encoder or a Decoder.
type Option func(*options)

// WithLogger sets the logger. Frame errors are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver sets the observer notified for every frame.
func WithObserver(ob Observer) Option {
	return func(o *options) {
		if ob != nil {
			o.observer = ob
		}
	}
}

// WithBufferSize sets the size of a single read from the underlying reader.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithMaxFrameSize caps how many bytes a Decoder buffers while waiting for a
// frame to complete. For an Unrenderer which isn't a PartialUnrenderer the
// whole stream is buffered, so the cap applies to the stream.
func WithMaxFrameSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFrameSize = n
		}
	}
}

func newOptions(name string, opts []Option) options {
	ret := options{
		logger:       logger.GetLogger(name),
		observer:     nopObserver{},
		bufferSize:   defaultBufferSize,
		maxFrameSize: defaultMaxFrameSize,
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}
