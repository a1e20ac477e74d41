// Package middleware provides HTTP middleware for the bridge server.
//
// Middleware:
//   - CORS: cross-origin configuration for browser-based clients
//   - RateLimit: per-IP token bucket rate limiting
//   - BridgeToken: shared-secret authentication of bridge clients
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	bridge := router.Group("/bridge", middleware.BridgeToken(cfg.Bridge.Token))
package middleware
