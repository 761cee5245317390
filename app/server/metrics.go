package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/ydb-platform/httpcore/app/server/response"
)

const metricsNamespace = "httpcore"

// error kinds reported by connection_errors_total
const (
	errorKindHeader   = "header"
	errorKindTransfer = "transfer"
	errorKindDecide   = "decide"
	errorKindSend     = "send"
	errorKindIO       = "io"
)

type connectionMetrics struct {
	connections   prometheus.Counter
	inflight      prometheus.Gauge
	duration      prometheus.Histogram
	statuses      *prometheus.CounterVec
	errors        *prometheus.CounterVec
	requestBytes  prometheus.Counter
	responseBytes prometheus.Counter
}

func (m *connectionMetrics) connectionStarted() time.Time {
	m.connections.Inc()
	m.inflight.Inc()

	return time.Now()
}

func (m *connectionMetrics) connectionFinished(startTime time.Time) {
	m.duration.Observe(time.Since(startTime).Seconds())
	m.inflight.Dec()
}

func (m *connectionMetrics) responseSent(resp *response.Response) {
	m.statuses.WithLabelValues(strconv.Itoa(int(resp.Status.Code()))).Inc()
	m.responseBytes.Add(float64(resp.Payload.ContentLength))
}

func (m *connectionMetrics) bodyCaptured(n uint64) {
	m.requestBytes.Add(float64(n))
}

func (m *connectionMetrics) connectionFailed(kind string) {
	m.errors.WithLabelValues(kind).Inc()
}

func newConnectionMetrics(registerer prometheus.Registerer) *connectionMetrics {
	m := &connectionMetrics{
		connections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "connections_total",
			Help:      "Accepted client connections.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "inflight_connections",
			Help:      "Client connections being served right now.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "connection_duration_seconds",
			Help:      "Time spent serving a single connection.",
			Buckets:   prometheus.ExponentialBuckets(0.00025, 1.5, 35),
		}),
		statuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "status_total",
			Help:      "Responses sent, by status code.",
		}, []string{"status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "connection_errors_total",
			Help:      "Connections closed because of an error, by the failed stage.",
		}, []string{"kind"}),
		requestBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "request_body_bytes",
			Help:      "Request body bytes captured into sinks.",
		}),
		responseBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "response_body_bytes",
			Help:      "Response payload bytes announced to clients.",
		}),
	}

	registerer.MustRegister(
		m.connections,
		m.inflight,
		m.duration,
		m.statuses,
		m.errors,
		m.requestBytes,
		m.responseBytes,
	)

	return m
}

func newMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}
