// Package config provides 12-factor configuration for both explorer
// processes.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags in cmd/ override environment variables.
//
// Privileged process (Config):
//   - Server: HTTP listen address (PORT, HOST)
//   - Bridge: BRIDGE_TOKEN, BRIDGE_MAX_MESSAGE
//   - Filesystem: FS_WORKERS
//   - Logging: LOG_LEVEL, LOG_DEV
//   - RateLimit: RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - Metrics: METRICS_ENABLED
//
// UI process (ClientConfig):
//   - BRIDGE_URL, BRIDGE_TRANSPORT (http, ws or local), BRIDGE_TOKEN
//   - EXPLORER_LOG, LOG_LEVEL, EXPLORER_START
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Bridge listening on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
package config
