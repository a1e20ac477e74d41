package types

import "encoding/json"

// BridgeRequest is one call across the privilege boundary
type BridgeRequest struct {
	ID      string   `json:"id,omitempty"`
	Channel string   `json:"channel" binding:"required"`
	Args    []string `json:"args"`
}

// BridgeError is the wire form of a failed call. Op is set when a
// filesystem operation failed; Code is set when the request was refused
// before reaching a provider.
type BridgeError struct {
	Op      string `json:"op,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// BridgeResponse carries either a result or an error, never both
type BridgeResponse struct {
	ID     string          `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *BridgeError    `json:"error,omitempty"`
}
