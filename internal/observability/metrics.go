package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/uartframe/pkg/frame"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uartframe",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uartframe",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	codecEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uartframe",
			Subsystem: "codec",
			Name:      "encodes_total",
			Help:      "Frame encode attempts by outcome.",
		},
		[]string{"outcome"},
	)
	codecScans = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uartframe",
			Subsystem: "codec",
			Name:      "scans_total",
			Help:      "Buffer scan attempts by outcome.",
		},
		[]string{"outcome"},
	)
	codecPayloadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "uartframe",
			Subsystem: "codec",
			Name:      "recovered_payload_bytes_total",
			Help:      "Payload bytes recovered by successful scans.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecEncodes, codecScans, codecPayloadBytes)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordEncode(err error) {
	RegisterMetrics()
	codecEncodes.WithLabelValues(frame.Reason(err)).Inc()
}

func RecordScan(err error, payloadLen int) {
	RegisterMetrics()
	codecScans.WithLabelValues(frame.Reason(err)).Inc()
	if err == nil && payloadLen > 0 {
		codecPayloadBytes.Add(float64(payloadLen))
	}
}
