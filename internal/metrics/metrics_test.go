package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
)

func TestHandlerExposesCounters(t *testing.T) {
	m := metrics.New()
	m.GenerationAttempt("gemini-2.5-flash", metrics.OutcomeRetry)
	m.Generation("quantitative", metrics.OutcomeSuccess)
	m.Export(metrics.OutcomeSuccess, 14)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `quizforge_generation_attempts_total{model="gemini-2.5-flash",outcome="retry"} 1`)
	assert.Contains(t, body, `quizforge_generations_total{outcome="success",strategy="quantitative"} 1`)
	assert.Contains(t, body, `quizforge_export_rows_total 14`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.GenerationAttempt("m", metrics.OutcomeFailed)
		m.Generation("reading", metrics.OutcomeFailed)
		m.Export(metrics.OutcomeFailed, 0)
	})
}
