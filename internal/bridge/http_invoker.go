package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/GriffinCanCode/FileExplorer/internal/api/middleware"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// Bridge endpoints on the privileged process
const (
	InvokePath   = "/bridge/invoke"
	WSPath       = "/bridge/ws"
	ChannelsPath = "/bridge/channels"
)

// HTTPInvoker sends each request as one POST. It never retries and sets no
// timeout of its own.
type HTTPInvoker struct {
	client  *resty.Client
	breaker *resilience.Breaker
}

// HTTPOption configures an HTTPInvoker
type HTTPOption func(*HTTPInvoker)

// WithBreaker fails calls fast while the bridge is unreachable. Only
// transport failures and unexpected statuses trip it.
func WithBreaker(b *resilience.Breaker) HTTPOption {
	return func(h *HTTPInvoker) {
		h.breaker = b
	}
}

// NewHTTPInvoker creates an invoker for the bridge at baseURL
func NewHTTPInvoker(baseURL, token string, opts ...HTTPOption) *HTTPInvoker {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "FileExplorer-Bridge/1.0")
	if token != "" {
		client.SetHeader(middleware.HeaderBridgeToken, token)
	}
	h := &HTTPInvoker{client: client}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Invoke implements Invoker
func (h *HTTPInvoker) Invoke(ctx context.Context, channel string, args ...string) (json.RawMessage, error) {
	if h.breaker == nil {
		out, err := h.post(ctx, channel, args)
		if err != nil {
			return nil, err
		}
		return unwrap(out)
	}

	var out *types.BridgeResponse
	err := h.breaker.Do(func() error {
		var err error
		out, err = h.post(ctx, channel, args)
		return err
	})
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
			return nil, fmt.Errorf("bridge %s: %w", channel, err)
		}
		return nil, err
	}
	return unwrap(out)
}

// post returns an error only when no envelope came back
func (h *HTTPInvoker) post(ctx context.Context, channel string, args []string) (*types.BridgeResponse, error) {
	var out types.BridgeResponse

	r := h.client.R().
		SetContext(ctx).
		SetBody(newRequest(channel, args)).
		SetResult(&out)
	tracing.Inject(ctx, func(k, v string) { r.SetHeader(k, v) })

	resp, err := r.Post(InvokePath)
	if err != nil {
		return nil, fmt.Errorf("bridge %s: %w", channel, err)
	}
	if resp.IsError() {
		// refusals carry the envelope; anything else (auth, rate limit) does not
		if jerr := json.Unmarshal(resp.Body(), &out); jerr == nil && out.Error != nil {
			return &out, nil
		}
		return nil, fmt.Errorf("bridge %s: unexpected status %s", channel, resp.Status())
	}
	return &out, nil
}

// Channels fetches the whitelist from the server
func (h *HTTPInvoker) Channels(ctx context.Context) ([]string, error) {
	var out struct {
		Channels []string `json:"channels"`
	}
	resp, err := h.client.R().SetContext(ctx).SetResult(&out).Get(ChannelsPath)
	if err != nil {
		return nil, fmt.Errorf("bridge channels: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("bridge channels: unexpected status %s", resp.Status())
	}
	return out.Channels, nil
}

// Close implements Invoker
func (h *HTTPInvoker) Close() error { return nil }
