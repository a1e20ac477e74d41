package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedTracer(t *testing.T) (*Tracer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return New("test", zap.New(core)), logs
}

func TestStartSpanInheritsTrace(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	parent, ctx := tracer.StartSpan(context.Background(), "parent")
	child, childCtx := tracer.StartSpan(ctx, "child")

	assert.NotEmpty(t, parent.TraceID)
	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
	assert.Equal(t, child.SpanID, GetSpanID(childCtx))
	assert.Equal(t, parent.TraceID, GetTraceID(childCtx))
}

func TestSubmitLogsSpan(t *testing.T) {
	tracer, logs := newObservedTracer(t)

	span, _ := tracer.StartSpan(WithTraceID(context.Background(), "trace-1"), "fs:deleteItem")
	span.SetTag("channel", "fs:deleteItem")
	span.SetError(errors.New("boom"))
	span.Finish()
	tracer.Submit(span)
	tracer.Close()

	entries := logs.FilterMessage("span completed with error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "trace-1", entries[0].ContextMap()["trace_id"])
	assert.Equal(t, "fs:deleteItem", entries[0].ContextMap()["channel"])

	// dropped after close
	tracer.Submit(span)
}

func TestInjectFromHeader(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	header := http.Header{}
	Inject(ctx, header.Set)

	assert.Equal(t, "abc", header.Get(HeaderTraceID))
	assert.Empty(t, header.Get(HeaderSpanID))

	got := FromHeader(context.Background(), header)
	assert.Equal(t, TraceID("abc"), GetTraceID(got))
	assert.Empty(t, GetSpanID(got))
}

func TestStartSpanMintsTrace(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	a, _ := tracer.StartSpan(context.Background(), "a")
	b, _ := tracer.StartSpan(context.Background(), "b")
	assert.NotEqual(t, a.TraceID, b.TraceID)
	assert.Empty(t, a.ParentID)
}

func TestHTTPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer, logs := newObservedTracer(t)

	var seen TraceID
	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/health", func(c *gin.Context) {
		seen = GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderTraceID, "incoming")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	tracer.Close()

	assert.Equal(t, TraceID("incoming"), seen)
	assert.Equal(t, "incoming", w.Header().Get(HeaderTraceID))
	assert.NotEmpty(t, w.Header().Get(HeaderSpanID))

	entries := logs.FilterMessage("span completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "200", entries[0].ContextMap()["http.status"])
	assert.Equal(t, "GET /health", entries[0].ContextMap()["operation"])
}
