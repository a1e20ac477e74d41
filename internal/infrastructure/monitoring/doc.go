/*
Package monitoring provides Prometheus metrics for the privileged process.

# Overview

Every Metrics value owns a private registry, so several servers (or tests)
can live in one process without duplicate registration panics.

# Features

- HTTP request metrics (latency, throughput, size)
- Bridge call metrics by channel and outcome, and rejected requests
- Directory children skipped during listings
- WebSocket connection and message metrics
- Uptime, Go runtime and process collectors

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "fs:readDirectory")
	// ... dispatch ...
	timer.Stop("ok")
*/
package monitoring
