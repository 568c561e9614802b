package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequestCountsByLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/api/v1/games/", http.StatusOK, 5*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/api/v1/games/", http.StatusOK, 7*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/api/v1/games/", http.StatusCreated, 3*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var requests, durations bool
	for _, mf := range families {
		switch mf.GetName() {
		case "catan_http_requests_total":
			requests = true
			assert.Len(t, mf.GetMetric(), 2)
			for _, m := range mf.GetMetric() {
				labels := map[string]string{}
				for _, l := range m.GetLabel() {
					labels[l.GetName()] = l.GetValue()
				}
				if labels["method"] == http.MethodGet {
					assert.Equal(t, "200", labels["status"])
					assert.Equal(t, float64(2), m.GetCounter().GetValue())
				} else {
					assert.Equal(t, "201", labels["status"])
					assert.Equal(t, float64(1), m.GetCounter().GetValue())
				}
			}
		case "catan_http_request_duration_seconds":
			durations = true
		}
	}
	assert.True(t, requests, "request counter not gathered")
	assert.True(t, durations, "duration histogram not gathered")
}

func TestHandlerServesScrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catan_http_requests_total")
	assert.Contains(t, string(body), "catan_http_request_duration_seconds")
}
