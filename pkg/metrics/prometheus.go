package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	primaryTotal  *prometheus.CounterVec
	fallbackTotal *prometheus.CounterVec
	upstreamTotal *prometheus.CounterVec
	riskScore     prometheus.Histogram
	latency       *prometheus.HistogramVec
}

// New registers the recorder's collectors on the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the recorder's collectors on reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		primaryTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenscope_primary_requests_total",
				Help: "Primary API calls by operation and outcome (success, failure, skipped)",
			},
			[]string{"operation", "outcome"},
		),
		fallbackTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenscope_fallback_activations_total",
				Help: "Times the client switched to fallback mode",
			},
			[]string{"operation"},
		),
		upstreamTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenscope_upstream_requests_total",
				Help: "Fallback upstream calls by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		riskScore: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tokenscope_risk_score",
				Help:    "Distribution of returned risk scores",
				Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tokenscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (r *Recorder) RecordPrimary(operation, outcome string) {
	r.primaryTotal.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) RecordFallbackActivated(operation string) {
	r.fallbackTotal.WithLabelValues(operation).Inc()
}

func (r *Recorder) RecordUpstream(source, outcome string) {
	r.upstreamTotal.WithLabelValues(source, outcome).Inc()
}

func (r *Recorder) RecordRiskScore(score int) {
	r.riskScore.Observe(float64(score))
}

func (r *Recorder) RecordLatency(op string, d time.Duration) {
	r.latency.WithLabelValues(op).Observe(d.Seconds())
}
