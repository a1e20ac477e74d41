// Package http provides the HTTP side of the command bridge.
//
// Endpoints:
//   - GET  /              service banner
//   - GET  /health        registry stats and a metrics snapshot
//   - GET  /bridge/channels  the whitelist
//   - POST /bridge/invoke    one bridge request, one response
//
// Status codes:
//   - 200: the request reached a provider; the envelope holds a result or
//     an operation error
//   - 400: the request was refused (unknown channel, wrong argument count,
//     malformed body)
//   - 413: the body exceeds the configured message size
//
// Example Usage:
//
//	handlers := http.NewHandlers(dispatcher, registry, metrics, cfg.Bridge.MaxMessageSize)
//	handlers.Register(router.Group("/bridge"))
package http
