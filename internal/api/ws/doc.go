// Package ws serves the command bridge over a WebSocket.
//
// Every text frame from the client is one types.BridgeRequest; every frame
// sent back is one types.BridgeResponse carrying the request's ID. Several
// requests may be in flight on one connection, and responses arrive in
// completion order.
//
// Frames larger than the configured message size close the connection.
// Malformed or refused requests are answered with an error envelope whose
// code names the reason; the connection stays open.
//
// Example Usage:
//
//	handler := ws.NewHandler(dispatcher, metrics, logger, cfg.Bridge.MaxMessageSize)
//	router.GET("/bridge/ws", handler.HandleConnection)
package ws
