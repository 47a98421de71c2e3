package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Attempt outcomes recorded per model call.
const (
	OutcomeSuccess = "success"
	OutcomeRetry   = "retry"
	OutcomeFailed  = "failed"
	OutcomeEmpty   = "empty"
)

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	generationAttempts *prometheus.CounterVec
	generations        *prometheus.CounterVec
	exports            *prometheus.CounterVec
	exportRows         prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		generationAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_generation_attempts_total",
			Help: "Provider calls by model and outcome.",
		}, []string{"model", "outcome"}),
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_generations_total",
			Help: "Generation requests by prompt strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quizforge_exports_total",
			Help: "Spreadsheet exports by outcome.",
		}, []string{"outcome"}),
		exportRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "quizforge_export_rows_total",
			Help: "Rows written to spreadsheets.",
		}),
	}
}

func (m *Metrics) GenerationAttempt(model, outcome string) {
	if m == nil {
		return
	}
	m.generationAttempts.WithLabelValues(model, outcome).Inc()
}

func (m *Metrics) Generation(strategy, outcome string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(strategy, outcome).Inc()
}

func (m *Metrics) Export(outcome string, rows int) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(outcome).Inc()
	if rows > 0 {
		m.exportRows.Add(float64(rows))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
