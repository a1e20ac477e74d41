package server

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/api/http"
	"github.com/GriffinCanCode/FileExplorer/internal/api/middleware"
	"github.com/GriffinCanCode/FileExplorer/internal/api/ws"
	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/config"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/FileExplorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	handler    stdhttp.Handler
	registry   *service.Registry
	dispatcher *bridge.Dispatcher
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
	tracer     *tracing.Tracer
	httpServer *stdhttp.Server
}

// Option adjusts how the server is assembled
type Option func(*options)

type options struct {
	logger *logging.Logger
	fsOpts []filesystem.Option
}

// WithLogger replaces the logger built from config
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFilesystemOptions passes options to the filesystem access layer
func WithFilesystemOptions(opts ...filesystem.Option) Option {
	return func(o *options) { o.fsOpts = append(o.fsOpts, opts...) }
}

// NewLogger builds the process logger from config
func NewLogger(cfg config.LogConfig) *logging.Logger {
	base := logging.DefaultConfig()
	if cfg.Development {
		base = logging.DevelopmentConfig()
	}
	base.Level = cfg.Level

	logger, err := logging.New(base)
	if err != nil {
		fallback := logging.NewDefault()
		fallback.Warn("Invalid logging configuration, using defaults", zap.Error(err))
		return fallback
	}
	return logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = NewLogger(cfg.Logging)
	}

	logger.Info("Initializing File Explorer bridge",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.Bool("token_required", cfg.Bridge.Token != ""),
	)

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
		logger.Info("Performance monitoring initialized")
	}

	tracer := tracing.New("bridge", logger.Logger)

	fsOpts := []filesystem.Option{filesystem.WithWorkers(cfg.Filesystem.Workers)}
	if metrics != nil {
		fsOpts = append(fsOpts, filesystem.WithSkipHook(func(dir, name string, err error) {
			metrics.IncSkippedEntries()
		}))
	}
	fsOpts = append(fsOpts, o.fsOpts...)

	registry := service.NewRegistry()
	logger.Info("Registering service providers...")
	if err := RegisterProviders(registry, logger.Logger, fsOpts...); err != nil {
		tracer.Close()
		return nil, err
	}

	dispatcher := bridge.NewDispatcher(registry, logger.Logger,
		bridge.WithMetrics(metrics),
		bridge.WithTracer(tracer),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	if metrics != nil {
		router.Use(monitoring.Middleware(metrics))
	}
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		rl.OnLimited = func(c *gin.Context) {
			logger.Warn("Rate limit exceeded",
				zap.String("client", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			if metrics != nil {
				metrics.RecordBridgeRejected("rate_limited")
			}
		}
		router.Use(middleware.RateLimit(rl))
	}

	handlers := http.NewHandlers(dispatcher, registry, metrics, cfg.Bridge.MaxMessageSize)
	wsHandler := ws.NewHandler(dispatcher, metrics, logger.Logger, cfg.Bridge.MaxMessageSize)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Bridge
	bridgeGroup := router.Group("/bridge", middleware.BridgeToken(cfg.Bridge.Token))
	handlers.Register(bridgeGroup)
	bridgeGroup.GET("/ws", wsHandler.HandleConnection)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:     router,
		handler:    compress(router),
		registry:   registry,
		dispatcher: dispatcher,
		logger:     logger,
		config:     cfg,
		metrics:    metrics,
		tracer:     tracer,
	}, nil
}

// Handler exposes the root handler, mainly for tests
func (s *Server) Handler() stdhttp.Handler {
	return s.handler
}

// compress gzips responses for clients that accept it. Large listings
// shrink well; WebSocket upgrades go straight to the router since they
// need the raw connection.
func compress(next stdhttp.Handler) stdhttp.Handler {
	gz := gzhttp.GzipHandler(next)
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	})
}

// Dispatcher returns the bridge dispatcher
func (s *Server) Dispatcher() *bridge.Dispatcher {
	return s.dispatcher
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.httpServer = &stdhttp.Server{Addr: addr, Handler: s.handler}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Close releases the tracer and flushes the logger
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.tracer.Close()
	_ = s.logger.Sync()
	return nil
}

// RegisterProviders registers every provider the bridge exposes
func RegisterProviders(registry *service.Registry, logger *zap.Logger, fsOpts ...filesystem.Option) error {
	fsProvider := filesystem.NewProvider(filesystem.NewFilesystemOps(logger, fsOpts...))
	if err := registry.Register(fsProvider); err != nil {
		return fmt.Errorf("register filesystem provider: %w", err)
	}

	stats := registry.Stats()
	logger.Info("Registered providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)
	return nil
}
