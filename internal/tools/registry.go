package tools

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry manages tool registration and dispatch.
type Registry struct {
	tools       map[string]Tool
	mu          sync.RWMutex
	rateLimiter *RateLimiter // nil = no rate limiting
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// SetRateLimiter enables per-command rate limiting.
func (r *Registry) SetRateLimiter(rl *RateLimiter) {
	r.rateLimiter = rl
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all registered tool names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute dispatches to the named tool. Unknown names and rate-limit
// rejections come back as error results, never panics.
func (r *Registry) Execute(ctx context.Context, name, arg string) *Result {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return ErrorResult("unknown command: " + name)
	}

	if r.rateLimiter != nil {
		if err := r.rateLimiter.Allow(name); err != nil {
			return ErrorResult(err.Error()).WithError(err)
		}
	}

	start := time.Now()
	result := tool.Execute(ctx, arg)
	slog.Debug("tool executed",
		"tool", name,
		"duration_ms", time.Since(start).Milliseconds(),
		"is_error", result.IsError,
	)
	return result
}
