// Package metrics defines the Prometheus instrumentation for the pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lens"

// Metrics bundles every collector the pipeline emits. Construct once at
// startup and pass through explicitly; a nil *Metrics disables recording
// (every method nil-checks) so tests can skip instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	SignalsReceived  *prometheus.CounterVec
	SignalsEnqueued  *prometheus.CounterVec
	SignalsEnriched  *prometheus.CounterVec
	SignalsEvaluated *prometheus.CounterVec
	SignalsPublished *prometheus.CounterVec
	DLQEntries       *prometheus.CounterVec

	EnqueueDuration    prometheus.Histogram
	EnrichmentDuration *prometheus.HistogramVec
	EvaluationDuration *prometheus.HistogramVec
	EndToEndDuration   prometheus.Histogram
	FanoutDuration     prometheus.Histogram
	ProviderLatency    *prometheus.HistogramVec

	QueueDepth        *prometheus.GaugeVec
	PendingEnrichment prometheus.Gauge
	PendingEvaluation prometheus.Gauge
	ActiveWSConns     prometheus.Gauge
	WSSubscriptions   *prometheus.GaugeVec
	WorkerHeartbeat   *prometheus.GaugeVec
	ModelErrors       *prometheus.CounterVec
	ModelTokens       *prometheus.CounterVec
	ModelInvalidOut   *prometheus.CounterVec
	ProviderRequests  *prometheus.CounterVec
}

// New registers the full collector set on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		registry: reg,

		SignalsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_received_total",
			Help:      "Signals accepted at ingress.",
		}, []string{"source", "symbol", "event_type"}),
		SignalsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_enqueued_total",
			Help:      "Signals produced to the pending stream.",
		}, []string{"symbol"}),
		SignalsEnriched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_enriched_total",
			Help:      "Signals that completed enrichment.",
		}, []string{"profile", "symbol"}),
		SignalsEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_evaluated_total",
			Help:      "Per-model decisions persisted.",
		}, []string{"model", "symbol", "decision"}),
		SignalsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_published_total",
			Help:      "Decisions broadcast to subscribers.",
		}, []string{"model"}),
		DLQEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dlq_entries_total",
			Help:      "Messages dead-lettered after exhausting retries.",
		}, []string{"stage", "error_code"}),

		EnqueueDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "signal_enqueue_duration_seconds",
			Help:      "Ingress persist + stream append latency.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		EnrichmentDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enrichment_duration_seconds",
			Help:      "Full enrichment latency per feature profile.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"profile"}),
		EvaluationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_evaluation_duration_seconds",
			Help:      "Single-model evaluation latency.",
			Buckets:   []float64{0.5, 1, 2, 3, 5, 10, 30},
		}, []string{"model"}),
		EndToEndDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "end_to_end_duration_seconds",
			Help:      "received_at to publish latency.",
			Buckets:   []float64{1, 2, 3, 5, 6, 10, 15},
		}),
		FanoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "websocket_fanout_duration_seconds",
			Help:      "Broadcast pass over all subscriptions.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_latency_seconds",
			Help:      "Market-data provider request latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"provider", "endpoint"}),

		QueueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Stream length by queue name.",
		}, []string{"queue"}),
		PendingEnrichment: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_enrichment",
			Help:      "Depth of the pending stream awaiting enrichment.",
		}),
		PendingEvaluation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_evaluation",
			Help:      "Depth of the enriched stream awaiting evaluation.",
		}),
		ActiveWSConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_websocket_connections",
			Help:      "Currently connected subscribers.",
		}),
		WSSubscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_subscriptions",
			Help:      "Subscription count by filter kind.",
		}, []string{"filter_type"}),
		WorkerHeartbeat: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_heartbeat_timestamp",
			Help:      "Unix time of the last loop iteration per worker kind.",
		}, []string{"worker_type"}),
		ModelErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_errors_total",
			Help:      "Failed model evaluations by error type.",
		}, []string{"model", "error_type"}),
		ModelTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_tokens_total",
			Help:      "Tokens consumed, direction in|out.",
		}, []string{"model", "direction"}),
		ModelInvalidOut: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_invalid_outputs_total",
			Help:      "Model answers that failed decision-schema validation.",
		}, []string{"model"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Market-data provider requests by endpoint and outcome.",
		}, []string{"provider", "endpoint", "status"}),
	}

	reg.MustRegister(
		m.SignalsReceived, m.SignalsEnqueued, m.SignalsEnriched,
		m.SignalsEvaluated, m.SignalsPublished, m.DLQEntries,
		m.EnqueueDuration, m.EnrichmentDuration, m.EvaluationDuration,
		m.EndToEndDuration, m.FanoutDuration, m.ProviderLatency,
		m.QueueDepth, m.PendingEnrichment, m.PendingEvaluation,
		m.ActiveWSConns, m.WSSubscriptions, m.WorkerHeartbeat,
		m.ModelErrors, m.ModelTokens, m.ModelInvalidOut, m.ProviderRequests,
	)

	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveDLQ records a dead-lettered message.
func (m *Metrics) ObserveDLQ(stage, errorCode string) {
	if m == nil {
		return
	}
	m.DLQEntries.WithLabelValues(stage, errorCode).Inc()
}

// Heartbeat stamps the worker heartbeat gauge with the current time.
func (m *Metrics) Heartbeat(workerType string) {
	if m == nil {
		return
	}
	m.WorkerHeartbeat.WithLabelValues(workerType).Set(float64(time.Now().Unix()))
}
