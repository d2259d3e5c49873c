package metrics_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ToluPeazy/uscp/internal/metrics"
	"github.com/stretchr/testify/require"
)

func TestNilRecorderIsNoOp(t *testing.T) {
	var r *metrics.Recorder
	require.NotPanics(t, func() {
		r.IncStep()
		r.ObserveBestSize(3)
		r.ObservePhaseDuration("rwls", 1.5)
	})
}

func TestRecorderExposesMetrics(t *testing.T) {
	r := metrics.NewRecorder()
	r.IncStep()
	r.ObserveBestSize(5)
	r.ObservePhaseDuration("greedy", 0.1)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "uscp_steps_total")
	require.Contains(t, body, "uscp_best_solution_subsets 5")
}
