// Package metrics exports frame counts to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/googollee/go-framing"
)

const (
	directionWrite = "write"
	directionRead  = "read"
)

// Metrics implements framing.Observer.
type Metrics struct {
	framesTotal *prometheus.CounterVec
	frameBytes  *prometheus.HistogramVec
	errorsTotal *prometheus.CounterVec
}

var _ framing.Observer = (*Metrics)(nil)

// New creates the collectors and registers them to reg. A nil reg means
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		framesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framing",
				Name:      "frames_total",
				Help:      "Total number of frames written or read.",
			},
			[]string{"strategy", "direction"},
		),
		frameBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "framing",
				Name:      "frame_size_bytes",
				Help:      "Payload size of frames in bytes.",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"strategy", "direction"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framing",
				Name:      "frame_errors_total",
				Help:      "Total number of frames which failed to decode.",
			},
			[]string{"strategy", "recoverable"},
		),
	}
}

func (m *Metrics) FrameWritten(strategy string, size int) {
	m.observe(strategy, directionWrite, size)
}

func (m *Metrics) FrameRead(strategy string, size int) {
	m.observe(strategy, directionRead, size)
}

func (m *Metrics) FrameFailed(strategy string, err error) {
	recoverable := strconv.FormatBool(framing.IsFrameError(err))
	m.errorsTotal.WithLabelValues(strategy, recoverable).Inc()
}

func (m *Metrics) observe(strategy, direction string, size int) {
	m.framesTotal.WithLabelValues(strategy, direction).Inc()
	m.frameBytes.WithLabelValues(strategy, direction).Observe(float64(size))
}
