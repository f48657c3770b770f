package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "letmeknowme"

// Metrics exposes Prometheus collectors for report activity
type Metrics struct {
	reportsCreated     prometheus.Counter
	responsesSubmitted prometheus.Counter
	responsesRejected  prometheus.Counter
	analyses           *prometheus.CounterVec
	analysisDuration   prometheus.Histogram
}

// New registers collectors with reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_created_total",
			Help:      "Number of reports created.",
		}),
		responsesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_submitted_total",
			Help:      "Number of survey responses accepted.",
		}),
		responsesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_rejected_total",
			Help:      "Number of survey responses rejected by validation.",
		}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Number of analysis requests by outcome.",
		}, []string{"outcome"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent aggregating responses.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}),
	}
	reg.MustRegister(m.reportsCreated, m.responsesSubmitted, m.responsesRejected, m.analyses, m.analysisDuration)
	return m
}

// Nop returns metrics registered on a throwaway registry
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ReportCreated()     { m.reportsCreated.Inc() }
func (m *Metrics) ResponseSubmitted() { m.responsesSubmitted.Inc() }
func (m *Metrics) ResponseRejected()  { m.responsesRejected.Inc() }

// ObserveAnalysis records one analysis attempt
func (m *Metrics) ObserveAnalysis(outcome string, d time.Duration) {
	m.analyses.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.analysisDuration.Observe(d.Seconds())
	}
}
