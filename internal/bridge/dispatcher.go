package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/FileExplorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// Rejection reasons, also used as metric labels
const (
	ReasonMalformedChannel = "malformed_channel"
	ReasonUnknownChannel   = "unknown_channel"
	ReasonArgCount         = "arg_count"
	ReasonInvalidArgument  = "invalid_argument"
	ReasonMalformedRequest = "malformed_request"
)

// RejectError is a request refused before it reached a provider
type RejectError struct {
	Reason string
	Err    error
}

func (e *RejectError) Error() string { return e.Err.Error() }

func (e *RejectError) Unwrap() error { return e.Err }

func reject(reason string, err error) *RejectError {
	return &RejectError{Reason: reason, Err: err}
}

// Dispatcher turns bridge requests into registry calls
type Dispatcher struct {
	registry *service.Registry
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithMetrics records every call in metrics
func WithMetrics(m *monitoring.Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithTracer opens a span per call
func WithTracer(t *tracing.Tracer) DispatcherOption {
	return func(d *Dispatcher) { d.tracer = t }
}

// NewDispatcher creates a dispatcher over registry
func NewDispatcher(registry *service.Registry, logger *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{registry: registry, logger: logger.Named("bridge")}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Channels returns the whitelist in channel form
func (d *Dispatcher) Channels() []string {
	tools := d.registry.Tools()
	channels := make([]string, 0, len(tools))
	for _, t := range tools {
		channels = append(channels, ChannelName(t.ID))
	}
	return channels
}

// Dispatch runs req. A non-nil error is always a *RejectError and means no
// provider was called; operation failures travel inside the response.
func (d *Dispatcher) Dispatch(ctx context.Context, req types.BridgeRequest) (*types.BridgeResponse, error) {
	tool, params, rerr := d.resolve(req)
	if rerr != nil {
		d.rejected(req, rerr)
		return nil, rerr
	}

	if d.tracer != nil {
		var span *tracing.Span
		span, ctx = d.tracer.StartSpan(ctx, req.Channel)
		span.SetTag("request_id", req.ID)
		defer func() {
			span.Finish()
			d.tracer.Submit(span)
		}()
	}
	timer := monitoring.NewTimer(d.metrics, req.Channel)

	out, err := d.registry.Execute(ctx, tool.ID, params)
	if err != nil && (errors.Is(err, filesystem.ErrInvalidArguments) || errors.Is(err, service.ErrToolNotFound)) {
		rerr := reject(ReasonInvalidArgument, err)
		d.rejected(req, rerr)
		return nil, rerr
	}

	resp := &types.BridgeResponse{ID: req.ID}
	status := "ok"

	switch {
	case err != nil:
		status = "error"
		resp.Error = toBridgeError(err)
	default:
		if result, ok := out.(types.OperationResult); ok && !result.Success {
			status = "failed"
		}
		raw, merr := json.Marshal(out)
		if merr != nil {
			status = "error"
			resp.Error = &types.BridgeError{Message: fmt.Sprintf("encode result: %v", merr)}
			break
		}
		resp.Result = raw
	}
	timer.Stop(status)

	d.logger.Debug("Dispatched bridge call",
		zap.String("id", req.ID),
		zap.String("channel", req.Channel),
		zap.String("status", status),
		zap.String("trace_id", string(tracing.GetTraceID(ctx))),
	)
	return resp, nil
}

// resolve checks req against the whitelist and binds its arguments
func (d *Dispatcher) resolve(req types.BridgeRequest) (types.Tool, map[string]interface{}, *RejectError) {
	if err := utils.ValidateChannel(req.Channel); err != nil {
		return types.Tool{}, nil, reject(ReasonMalformedChannel, fmt.Errorf("%w: %v", ErrUnknownChannel, err))
	}

	tool, ok := d.registry.Tool(ToolID(req.Channel))
	if !ok {
		return types.Tool{}, nil, reject(ReasonUnknownChannel, fmt.Errorf("%w: %s", ErrUnknownChannel, req.Channel))
	}

	if len(req.Args) != len(tool.Parameters) {
		return types.Tool{}, nil, reject(ReasonArgCount, fmt.Errorf("%w: %s takes %d, got %d",
			ErrArgCount, req.Channel, len(tool.Parameters), len(req.Args)))
	}

	params := make(map[string]interface{}, len(req.Args))
	for i, p := range tool.Parameters {
		if err := utils.ValidateString(req.Args[i], p.Name, 0, utils.MaxPathLength, false); err != nil {
			return types.Tool{}, nil, reject(ReasonInvalidArgument, err)
		}
		params[p.Name] = req.Args[i]
	}
	return tool, params, nil
}

func (d *Dispatcher) rejected(req types.BridgeRequest, err *RejectError) {
	if d.metrics != nil {
		d.metrics.RecordBridgeRejected(err.Reason)
	}
	d.logger.Warn("Rejected bridge request",
		zap.String("id", req.ID),
		zap.String("channel", req.Channel),
		zap.String("reason", err.Reason),
		zap.Error(err),
	)
}

// toBridgeError keeps the operation name of an OpError so the client can
// rebuild it
func toBridgeError(err error) *types.BridgeError {
	var opErr *types.OpError
	if errors.As(err, &opErr) {
		return &types.BridgeError{Op: opErr.Op, Message: opErr.Err.Error()}
	}
	return &types.BridgeError{Message: err.Error()}
}

// RejectResponse is the wire form of a refused request
func RejectResponse(id string, err error) *types.BridgeResponse {
	reason := ReasonMalformedRequest
	var rerr *RejectError
	if errors.As(err, &rerr) {
		reason = rerr.Reason
	}
	return &types.BridgeResponse{
		ID:    id,
		Error: &types.BridgeError{Code: reason, Message: err.Error()},
	}
}

// FromBridgeError is the inverse of the server-side conversion
func FromBridgeError(e *types.BridgeError) error {
	switch {
	case e.Code != "":
		return fmt.Errorf("%w (%s): %s", ErrRejected, e.Code, e.Message)
	case e.Op != "":
		return types.NewOpError(e.Op, errors.New(e.Message))
	}
	return &RemoteError{Message: e.Message}
}

// RemoteError is a failure reported by the privileged process that did not
// belong to a filesystem operation
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// DecodeRequest parses one wire request
func DecodeRequest(data []byte) (types.BridgeRequest, error) {
	var req types.BridgeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return req, reject(ReasonMalformedRequest, fmt.Errorf("decode request: %w", err))
	}
	if req.Channel == "" {
		return req, reject(ReasonMalformedRequest, errors.New("request has no channel"))
	}
	return req, nil
}
