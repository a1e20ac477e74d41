package bridge_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/FileExplorer/internal/api/http"
	"github.com/GriffinCanCode/FileExplorer/internal/api/middleware"
	"github.com/GriffinCanCode/FileExplorer/internal/api/ws"
	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
)

const testToken = "s3cret"

// recordingLauncher stands in for the desktop shell
type recordingLauncher struct {
	mu       sync.Mutex
	opened   []string
	revealed []string
}

func (r *recordingLauncher) Open(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, path)
	return nil
}

func (r *recordingLauncher) Reveal(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revealed = append(r.revealed, path)
	return nil
}

func (r *recordingLauncher) Revealed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.revealed...)
}

type fixture struct {
	home     string
	launcher *recordingLauncher
	registry *service.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	home := t.TempDir()
	launcher := &recordingLauncher{}

	ops := filesystem.NewFilesystemOps(zap.NewNop(),
		filesystem.WithLauncher(launcher),
		filesystem.WithResolver(&paths.Resolver{
			HomeDir:  func() (string, error) { return home, nil },
			Getenv:   func(string) string { return "" },
			ReadFile: func(string) ([]byte, error) { return nil, os.ErrNotExist },
			GOOS:     "linux",
		}),
	)
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(filesystem.NewProvider(ops)))

	return &fixture{home: home, launcher: launcher, registry: registry}
}

func (f *fixture) dispatcher(opts ...bridge.DispatcherOption) *bridge.Dispatcher {
	return bridge.NewDispatcher(f.registry, zap.NewNop(), opts...)
}

// serve mounts the bridge endpoints the way the server does
func (f *fixture) serve(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := f.dispatcher()
	handlers := apihttp.NewHandlers(d, f.registry, nil, 64*1024)
	wsHandler := ws.NewHandler(d, nil, zap.NewNop(), 64*1024)

	router := gin.New()
	group := router.Group("/bridge", middleware.BridgeToken(testToken))
	handlers.Register(group)
	group.GET("/ws", wsHandler.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fixture) path(elem ...string) string {
	return filepath.Join(append([]string{f.home}, elem...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
