package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/id"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// Invoker moves one bridge request to the privileged process and returns the
// raw result. Read errors come back as *types.OpError; anything else is a
// transport or rejection error.
type Invoker interface {
	Invoke(ctx context.Context, channel string, args ...string) (json.RawMessage, error)
	Close() error
}

func newRequest(channel string, args []string) types.BridgeRequest {
	if args == nil {
		args = []string{}
	}
	return types.BridgeRequest{ID: id.NewRequestID().String(), Channel: channel, Args: args}
}

// unwrap splits a response into its result or its error
func unwrap(resp *types.BridgeResponse) (json.RawMessage, error) {
	if resp.Error != nil {
		return nil, FromBridgeError(resp.Error)
	}
	if len(resp.Result) == 0 {
		return nil, fmt.Errorf("bridge response %s carries neither result nor error", resp.ID)
	}
	return resp.Result, nil
}

// LocalInvoker dispatches in-process, for single-process use and tests
type LocalInvoker struct {
	dispatcher *Dispatcher
}

// NewLocalInvoker creates an invoker bound to dispatcher
func NewLocalInvoker(dispatcher *Dispatcher) *LocalInvoker {
	return &LocalInvoker{dispatcher: dispatcher}
}

// Invoke implements Invoker
func (l *LocalInvoker) Invoke(ctx context.Context, channel string, args ...string) (json.RawMessage, error) {
	req := newRequest(channel, args)
	resp, err := l.dispatcher.Dispatch(ctx, req)
	if err != nil {
		return nil, FromBridgeError(RejectResponse(req.ID, err).Error)
	}
	return unwrap(resp)
}

// Close implements Invoker
func (l *LocalInvoker) Close() error { return nil }
