package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, m.Write(&pb))
	if pb.Counter != nil {
		return pb.Counter.GetValue()
	}
	return pb.Gauge.GetValue()
}

func TestNewMetricsIsolated(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.IncSkippedEntries()
	assert.Equal(t, 1.0, value(t, a.SkippedEntries))
	assert.Equal(t, 0.0, value(t, b.SkippedEntries))
}

func TestRecordBridgeCall(t *testing.T) {
	m := NewMetrics()

	m.RecordBridgeCall("fs:readDirectory", "ok", time.Millisecond)
	m.RecordBridgeCall("fs:readDirectory", "error", time.Millisecond)
	m.RecordBridgeRejected("unknown_channel")

	assert.Equal(t, 1.0, value(t, m.BridgeCalls.WithLabelValues("fs:readDirectory", "ok")))
	assert.Equal(t, 1.0, value(t, m.BridgeRejected.WithLabelValues("unknown_channel")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.BridgeCalls)
	assert.Equal(t, int64(1), snap.BridgeFailures)
}

func TestTimer(t *testing.T) {
	m := NewMetrics()
	NewTimer(m, "fs:deleteItem").Stop("failed")
	assert.Equal(t, 1.0, value(t, m.BridgeCalls.WithLabelValues("fs:deleteItem", "failed")))

	// a timer without metrics is a no-op
	NewTimer(nil, "fs:deleteItem").Stop("ok")
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, value(t, m.RequestsTotal.WithLabelValues("GET", "/health", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "explorer_http_requests_total")
	assert.Contains(t, w.Body.String(), "explorer_uptime_seconds")
}
