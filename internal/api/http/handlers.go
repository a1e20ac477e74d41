package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	dispatcher *bridge.Dispatcher
	registry   *service.Registry
	metrics    *monitoring.Metrics
	validator  *utils.JSONSizeValidator
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(
	dispatcher *bridge.Dispatcher,
	registry *service.Registry,
	metrics *monitoring.Metrics,
	maxMessageSize int,
) *Handlers {
	return &Handlers{
		dispatcher: dispatcher,
		registry:   registry,
		metrics:    metrics,
		validator:  utils.NewJSONSizeValidator(maxMessageSize),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "File Explorer Bridge",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Channels lists the whitelisted bridge channels
func (h *Handlers) Channels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channels": h.dispatcher.Channels(),
	})
}

// Invoke runs one bridge request. Operation failures are returned with
// status 200 inside the envelope; refused requests get 400.
func (h *Handlers) Invoke(c *gin.Context) {
	// one byte over the limit is enough to detect an oversized body
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(h.validator.MaxSize())+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, bridge.RejectResponse("", err))
		return
	}
	if err := h.validator.ValidateSize(body); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, bridge.RejectResponse("", err))
		return
	}

	req, err := bridge.DecodeRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, bridge.RejectResponse("", err))
		return
	}

	resp, err := h.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, bridge.RejectResponse(req.ID, err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register mounts the bridge routes on r
func (h *Handlers) Register(r gin.IRoutes) {
	r.GET("/channels", h.Channels)
	r.POST("/invoke", h.Invoke)
}
