package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, r *Recorder) string {
	t.Helper()
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorderExposesGameCounters(t *testing.T) {
	rec := NewRecorder()
	rec.GameCreated("flip7")
	rec.GameCreated("flip7")
	rec.RoundRecorded("phase10")
	rec.GameCompleted("flip7")
	rec.ValidationFailed("everdell")
	rec.GameDeleted("phase10")

	body := scrape(t, rec)

	assert.Contains(t, body, `scorekeeper_games_created_total{game="flip7"} 2`)
	assert.Contains(t, body, `scorekeeper_rounds_recorded_total{game="phase10"} 1`)
	assert.Contains(t, body, `scorekeeper_games_completed_total{game="flip7"} 1`)
	assert.Contains(t, body, `scorekeeper_validation_failures_total{game="everdell"} 1`)
	assert.Contains(t, body, `scorekeeper_games_deleted_total{game="phase10"} 1`)
}

func TestRecorderExposesHTTPMetrics(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest(http.MethodGet, "/api/v1/health", http.StatusOK, 5*time.Millisecond)

	body := scrape(t, rec)

	assert.Contains(t, body, `scorekeeper_http_requests_total{method="GET",route="/api/v1/health",status="200"} 1`)
	assert.Contains(t, body, `scorekeeper_http_request_duration_seconds_count{method="GET",route="/api/v1/health"} 1`)
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.GameCreated("everdell")

	assert.NotContains(t, scrape(t, b), `scorekeeper_games_created_total{game="everdell"}`)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	assert.NotPanics(t, func() {
		rec.GameCreated("flip7")
		rec.RoundRecorded("flip7")
		rec.GameCompleted("flip7")
		rec.ValidationFailed("flip7")
		rec.GameDeleted("flip7")
		rec.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
