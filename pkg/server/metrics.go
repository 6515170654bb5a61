package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message results counted by slider_server_messages_total.
const (
	resultApplied  = "applied"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

// serverMetrics holds the connection-level Prometheus metrics.
type serverMetrics struct {
	connections prometheus.Gauge
	messages    *prometheus.CounterVec
	frameBytes  prometheus.Counter
	pages       *prometheus.CounterVec
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	factory := promauto.With(reg)
	return &serverMetrics{
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "slider",
			Subsystem: "server",
			Name:      "connections",
			Help:      "Number of open WebSocket connections",
		}),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slider",
			Subsystem: "server",
			Name:      "messages_total",
			Help:      "Client state change messages by result",
		}, []string{"result"}),
		frameBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slider",
			Subsystem: "server",
			Name:      "frame_bytes_total",
			Help:      "Bytes of patch frames written to clients",
		}),
		pages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slider",
			Subsystem: "server",
			Name:      "pages_total",
			Help:      "Server-rendered documents by route",
		}, []string{"route"}),
	}
}
