// Package main is the entry point of the privileged File Explorer process.
//
// It owns the filesystem access layer and serves the command bridge:
//
//	UI process → POST /bridge/invoke or GET /bridge/ws → fs provider → OS
//
// The server also exposes:
//   - GET /health with registry and metric snapshots
//   - GET /bridge/channels listing the whitelisted channels
//   - GET /metrics in Prometheus format
//
// Configuration:
//   - Environment variables (HOST, PORT, BRIDGE_TOKEN, LOG_LEVEL, ...)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Loopback only, token required
//	BRIDGE_TOKEN=secret ./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
