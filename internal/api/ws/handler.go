package ws

import (
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// Handler serves the bridge over WebSocket. Requests on one connection are
// dispatched concurrently and answered in completion order; clients match
// responses by ID.
type Handler struct {
	dispatcher *bridge.Dispatcher
	metrics    *monitoring.Metrics
	logger     *zap.Logger
	validator  *utils.JSONSizeValidator
	upgrader   websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(dispatcher *bridge.Dispatcher, metrics *monitoring.Metrics, logger *zap.Logger, maxMessageSize int) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger.Named("ws"),
		validator:  utils.NewJSONSizeValidator(maxMessageSize),
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin,
		},
	}
}

// checkOrigin admits non-browser clients and pages served from loopback
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Hostname() == "localhost" {
		return true
	}
	ip := net.ParseIP(u.Hostname())
	return ip != nil && ip.IsLoopback()
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	conn.SetReadLimit(int64(h.validator.MaxSize()))
	ctx := c.Request.Context()

	var (
		writeMu sync.Mutex
		wg      sync.WaitGroup
	)
	send := func(resp *types.BridgeResponse) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(resp); err != nil {
			h.logger.Debug("WebSocket write failed", zap.Error(err))
			return
		}
		h.record("out", "response")
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("WebSocket read error", zap.Error(err))
			}
			break
		}
		h.record("in", "request")

		if err := h.validator.ValidateJSON(data); err != nil {
			send(bridge.RejectResponse("", err))
			continue
		}
		req, err := bridge.DecodeRequest(data)
		if err != nil {
			send(bridge.RejectResponse(req.ID, err))
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := h.dispatcher.Dispatch(ctx, req)
			if err != nil {
				resp = bridge.RejectResponse(req.ID, err)
			}
			send(resp)
		}()
	}

	wg.Wait()
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
