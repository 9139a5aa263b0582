package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSimulationCollector(reg)
	require.NoError(t, err)

	collector.ObserveBuild("request", 2, 3*time.Millisecond)
	collector.ObserveBuild("request", 0, time.Millisecond)
	collector.ObserveBuild("recompute", 1, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.CurvesBuilt.WithLabelValues("request")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.CurvesBuilt.WithLabelValues("recompute")))
	assert.Equal(t, 3.0, testutil.ToFloat64(collector.MotorsExcluded))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.BuildDuration))
}

func TestCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSimulationCollector(reg)
	require.NoError(t, err)
	second, err := NewSimulationCollector(reg)
	require.NoError(t, err)

	first.SetActiveSessions(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(second.ActiveSessions))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var collector *SimulationCollector
	collector.ObserveBuild("request", 1, time.Millisecond)
	collector.SetActiveSessions(1)
	collector.ObserveRequest("GET", "/x", 200)
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSimulationCollector(reg)
	require.NoError(t, err)
	collector.SetActiveSessions(2)
	collector.ObserveRequest(http.MethodGet, "", http.StatusNotFound)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "stepper_active_sessions 2")
	assert.Contains(t, string(body), `route="unmatched"`)
}
