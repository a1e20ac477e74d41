// Package service provides the service registry behind the command bridge.
//
// The registry is the whitelist: a tool can only be executed if a registered
// provider declared it in its definition. Anything else is rejected before a
// provider sees it.
//
// Components:
//   - Registry: central tool catalog and dispatcher
//   - Provider: interface for service implementations
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystem.NewProvider(ops))
//	out, err := registry.Execute(ctx, "fs.readDirectory", params)
package service
