package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/pkg/metrics"
)

func scrape(t *testing.T, p *metrics.Planner) string {
	t.Helper()
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPlanner_Exposition(t *testing.T) {
	p := metrics.New()
	p.ObserveValidation("valid")
	p.ObserveValidation("valid")
	p.ObserveValidation("incomplete")
	p.ObservePlacement(metrics.PlacementShifted)
	p.ObserveOracle("extract", nil)
	p.ObserveOracle("extract", errors.New("boom"))
	p.ObserveOracleRetry("content")
	p.ObserveSynthesis("done", 120*time.Millisecond)
	p.SynthesisStarted()
	p.SynthesisRejected()

	body := scrape(t, p)
	assert.Contains(t, body, `planner_validations_total{status="valid"} 2`)
	assert.Contains(t, body, `planner_validations_total{status="incomplete"} 1`)
	assert.Contains(t, body, `planner_schedule_items_total{placement="shifted"} 1`)
	assert.Contains(t, body, `planner_oracle_calls_total{op="extract",outcome="error"} 1`)
	assert.Contains(t, body, `planner_oracle_retries_total{op="content"} 1`)
	assert.Contains(t, body, `planner_synthesis_duration_seconds_count{outcome="done"} 1`)
	assert.Contains(t, body, `planner_syntheses_in_flight 1`)
	assert.Contains(t, body, `planner_synthesis_rejected_total 1`)
	assert.Contains(t, body, `go_goroutines`)
}

func TestPlanner_NilSafe(t *testing.T) {
	var p *metrics.Planner
	assert.NotPanics(t, func() {
		p.ObserveValidation("valid")
		p.ObserveSynthesis("failed", time.Second)
		p.ObservePlacement(metrics.PlacementBestEffort)
		p.ObserveOracle("extract", nil)
		p.ObserveOracleRetry("extract")
		p.SynthesisStarted()
		p.SynthesisFinished()
		p.SynthesisRejected()
	})

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}
