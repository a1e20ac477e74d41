package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/api/middleware"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// ErrClosed is returned by calls on a closed or broken connection
var ErrClosed = errors.New("bridge connection closed")

// WSInvoker keeps one WebSocket open and multiplexes concurrent calls over
// it by request ID
type WSInvoker struct {
	conn   *websocket.Conn
	logger *zap.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan *types.BridgeResponse
	err     error
	done    chan struct{}
}

// WSURL derives the WebSocket endpoint from an http(s) base URL
func WSURL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse bridge url: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported bridge url scheme %q", u.Scheme)
	}
	u.Path += WSPath
	return u.String(), nil
}

// DialWS connects to the bridge at baseURL
func DialWS(ctx context.Context, baseURL, token string, logger *zap.Logger) (*WSInvoker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoint, err := WSURL(baseURL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token != "" {
		header.Set(middleware.HeaderBridgeToken, token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %s)", endpoint, err, resp.Status)
		}
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	w := &WSInvoker{
		conn:    conn,
		logger:  logger.Named("bridge.ws"),
		pending: make(map[string]chan *types.BridgeResponse),
		done:    make(chan struct{}),
	}
	go w.readLoop()
	return w, nil
}

// Invoke implements Invoker
func (w *WSInvoker) Invoke(ctx context.Context, channel string, args ...string) (json.RawMessage, error) {
	req := newRequest(channel, args)
	ch := make(chan *types.BridgeResponse, 1)

	w.mu.Lock()
	if w.err != nil {
		err := w.err
		w.mu.Unlock()
		return nil, err
	}
	w.pending[req.ID] = ch
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		delete(w.pending, req.ID)
		w.mu.Unlock()
	}()

	w.writeMu.Lock()
	err := w.conn.WriteJSON(req)
	w.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("bridge %s: %w", channel, err)
	}

	select {
	case resp := <-ch:
		return unwrap(resp)
	case <-w.done:
		return nil, w.failure()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *WSInvoker) readLoop() {
	defer close(w.done)
	for {
		var resp types.BridgeResponse
		if err := w.conn.ReadJSON(&resp); err != nil {
			w.fail(err)
			return
		}

		if resp.ID == "" {
			w.rejectPending(&resp)
			continue
		}

		w.mu.Lock()
		ch, ok := w.pending[resp.ID]
		w.mu.Unlock()
		if !ok {
			w.logger.Warn("Dropping response for unknown request", zap.String("id", resp.ID))
			continue
		}
		deliver(ch, &resp)
	}
}

// rejectPending hands a response the server could not tie to a request ID
// to every call in flight, since any of them may have caused it
func (w *WSInvoker) rejectPending(resp *types.BridgeResponse) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		w.logger.Warn("Dropping unaddressed response with no calls in flight")
		return
	}
	for _, ch := range w.pending {
		deliver(ch, resp)
	}
}

// deliver never blocks; each call reads at most one response
func deliver(ch chan *types.BridgeResponse, resp *types.BridgeResponse) {
	select {
	case ch <- resp:
	default:
	}
}

func (w *WSInvoker) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) || errors.Is(err, net.ErrClosed) {
			w.err = ErrClosed
		} else {
			w.err = fmt.Errorf("%w: %v", ErrClosed, err)
		}
	}
}

func (w *WSInvoker) failure() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close sends a close frame and releases the connection
func (w *WSInvoker) Close() error {
	w.writeMu.Lock()
	_ = w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	w.writeMu.Unlock()

	err := w.conn.Close()
	<-w.done
	return err
}
