package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Provider names accepted in configuration and flags.
const (
	ProviderNone      = "none"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Factory builds a provider instance. Construction may validate
// credentials or reachability, so it accepts a context.
type Factory func(ctx context.Context) (Provider, error)

// Registry maps provider names to factories. It is constructed
// explicitly at startup and passed by reference, never populated by
// import side effects.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry pre-loaded with the heuristic
// provider, which is always available and never performs network I/O.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(ProviderNone, func(context.Context) (Provider, error) {
		return NewHeuristic(), nil
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[strings.ToLower(strings.TrimSpace(name))] = factory
}

// Resolve instantiates the provider registered under name.
func (r *Registry) Resolve(ctx context.Context, name string) (Provider, error) {
	factory, ok := r.factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(ctx)
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
