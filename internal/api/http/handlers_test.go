package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileExplorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

func setupRouter(t *testing.T, maxSize int) (*gin.Engine, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(filesystem.NewProvider(filesystem.NewFilesystemOps(zap.NewNop()))))
	metrics := monitoring.NewMetrics()
	dispatcher := bridge.NewDispatcher(registry, zap.NewNop(), bridge.WithMetrics(metrics))

	h := NewHandlers(dispatcher, registry, metrics, maxSize)
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	h.Register(router.Group("/bridge"))
	return router, metrics
}

func invoke(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, types.BridgeResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bridge/invoke", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp types.BridgeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestRoot(t *testing.T) {
	router, _ := setupRouter(t, 1024)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, 1024)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status   string                      `json:"status"`
		Registry map[string]interface{}      `json:"service_registry"`
		Metrics  *monitoring.MetricsSnapshot `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.EqualValues(t, 12, body.Registry["total_tools"])
	assert.NotNil(t, body.Metrics)
}

func TestChannels(t *testing.T) {
	router, _ := setupRouter(t, 1024)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bridge/channels", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Channels []string `json:"channels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Channels, 12)
}

func TestInvokeSuccess(t *testing.T) {
	router, metrics := setupRouter(t, 4096)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	body, err := json.Marshal(types.BridgeRequest{ID: "r1", Channel: bridge.ChannelReadDirectory, Args: []string{dir}})
	require.NoError(t, err)
	w, resp := invoke(t, router, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r1", resp.ID)
	require.Nil(t, resp.Error)

	var contents types.DirectoryContents
	require.NoError(t, json.Unmarshal(resp.Result, &contents))
	require.Len(t, contents.Items, 1)
	assert.Equal(t, "a.txt", contents.Items[0].Name)
	assert.Equal(t, int64(1), metrics.Snapshot().BridgeCalls)
}

func TestInvokeOperationFailureIsOK(t *testing.T) {
	router, _ := setupRouter(t, 4096)
	missing := filepath.Join(t.TempDir(), "missing")

	body, err := json.Marshal(types.BridgeRequest{ID: "r2", Channel: bridge.ChannelReadDirectory, Args: []string{missing}})
	require.NoError(t, err)
	w, resp := invoke(t, router, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.OpReadDirectory, resp.Error.Op)
	assert.Empty(t, resp.Error.Code)
}

func TestInvokeRejected(t *testing.T) {
	router, _ := setupRouter(t, 4096)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"unknown channel", `{"id":"x","channel":"fs:eraseAll","args":[]}`, bridge.ReasonUnknownChannel},
		{"argument count", `{"id":"x","channel":"fs:copyItem","args":["/a"]}`, bridge.ReasonArgCount},
		{"not json", `{"id":`, bridge.ReasonMalformedRequest},
		{"no channel", `{"id":"x","args":[]}`, bridge.ReasonMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := invoke(t, router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestInvokeTooLarge(t *testing.T) {
	router, _ := setupRouter(t, 64)

	body := `{"channel":"fs:readDirectory","args":["` + strings.Repeat("x", 100) + `"]}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bridge/invoke", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
