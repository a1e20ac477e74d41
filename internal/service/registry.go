package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

var (
	// ErrToolNotFound is returned for tool IDs no provider registered
	ErrToolNotFound = errors.New("tool not found")
	// ErrDuplicateTool is returned when two providers claim one tool ID
	ErrDuplicateTool = errors.New("duplicate tool")
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}) (interface{}, error)
}

type toolEntry struct {
	tool     types.Tool
	provider Provider
}

// Registry is the whitelist of callable tools. Only tools declared in a
// registered provider's definition can be executed.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Provider
	tools    map[string]toolEntry
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Provider),
		tools:    make(map[string]toolEntry),
	}
}

// Register adds a service provider and indexes its tools
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tool := range def.Tools {
		if existing, ok := r.tools[tool.ID]; ok && existing.provider != provider {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.ID)
		}
	}

	r.services[def.ID] = provider
	for _, tool := range def.Tools {
		r.tools[tool.ID] = toolEntry{tool: tool, provider: provider}
	}
	return nil
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.services[serviceID]
	return p, ok
}

// Tool looks up a whitelisted tool
func (r *Registry) Tool(toolID string) (types.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tools[toolID]
	return e.tool, ok
}

// Tools returns every whitelisted tool sorted by ID
func (r *Registry) Tools() []types.Tool {
	r.mu.RLock()
	tools := make([]types.Tool, 0, len(r.tools))
	for _, e := range r.tools {
		tools = append(tools, e.tool)
	}
	r.mu.RUnlock()

	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	return tools
}

// List returns all registered services
func (r *Registry) List(category *types.Category) []types.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var services []types.Service
	for _, provider := range r.services {
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Execute runs a whitelisted tool
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}) (interface{}, error) {
	r.mu.RLock()
	e, ok := r.tools[toolID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, toolID)
	}

	return e.provider.Execute(ctx, toolID, params)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make(map[string]int)
	for _, provider := range r.services {
		categories[string(provider.Definition().Category)]++
	}

	return map[string]interface{}{
		"total_services": len(r.services),
		"total_tools":    len(r.tools),
		"categories":     categories,
	}
}
