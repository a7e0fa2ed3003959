package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planner"

// Placement labels for scheduled items.
const (
	PlacementPreferred  = "preferred"
	PlacementShifted    = "shifted"
	PlacementBestEffort = "best_effort"
)

// Planner holds the planner's collectors on a private registry.
// All methods are safe on a nil *Planner.
type Planner struct {
	registry *prometheus.Registry

	validations    *prometheus.CounterVec
	synthesis      *prometheus.HistogramVec
	placements     *prometheus.CounterVec
	oracleCalls    *prometheus.CounterVec
	oracleRetries  *prometheus.CounterVec
	inFlight       prometheus.Gauge
	rejectedStarts prometheus.Counter
}

func New() *Planner {
	p := &Planner{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Goal validations by result status.",
		}, []string{"status"}),
		synthesis: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "synthesis_duration_seconds",
			Help:      "Time from start to finish of a schedule synthesis.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"outcome"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_items_total",
			Help:      "Scheduled items by how their slot was placed.",
		}, []string{"placement"}),
		oracleCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oracle_calls_total",
			Help:      "Language-model calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		oracleRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oracle_retries_total",
			Help:      "Language-model calls retried after a malformed or transient answer.",
		}, []string{"op"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "syntheses_in_flight",
			Help:      "Schedule syntheses currently running.",
		}),
		rejectedStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synthesis_rejected_total",
			Help:      "Synthesis requests rejected because one was already running for the user.",
		}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.validations, p.synthesis, p.placements,
		p.oracleCalls, p.oracleRetries, p.inFlight, p.rejectedStarts,
	)
	return p
}

// Handler serves the registry in the Prometheus text format.
func (p *Planner) Handler() http.Handler {
	if p == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Planner) ObserveValidation(status string) {
	if p == nil {
		return
	}
	p.validations.WithLabelValues(status).Inc()
}

// ObserveSynthesis records one finished synthesis; outcome is "done",
// "failed" or "cancelled".
func (p *Planner) ObserveSynthesis(outcome string, d time.Duration) {
	if p == nil {
		return
	}
	p.synthesis.WithLabelValues(outcome).Observe(d.Seconds())
}

func (p *Planner) ObservePlacement(placement string) {
	if p == nil {
		return
	}
	p.placements.WithLabelValues(placement).Inc()
}

func (p *Planner) ObserveOracle(op string, err error) {
	if p == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.oracleCalls.WithLabelValues(op, outcome).Inc()
}

func (p *Planner) ObserveOracleRetry(op string) {
	if p == nil {
		return
	}
	p.oracleRetries.WithLabelValues(op).Inc()
}

func (p *Planner) SynthesisStarted() {
	if p == nil {
		return
	}
	p.inFlight.Inc()
}

func (p *Planner) SynthesisFinished() {
	if p == nil {
		return
	}
	p.inFlight.Dec()
}

func (p *Planner) SynthesisRejected() {
	if p == nil {
		return
	}
	p.rejectedStarts.Inc()
}
