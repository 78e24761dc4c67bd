package goquery

import (
	"strings"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Registry holds the available extraction strategies keyed by provider
// name. Lookup is case-insensitive; List preserves registration order so
// scraping runs deterministically.
type Registry struct {
	strategies map[string]deprecations.Strategy
	order      []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]deprecations.Strategy)}
}

// Register adds a strategy under its provider name, replacing any strategy
// previously registered for that provider.
func (r *Registry) Register(strategy deprecations.Strategy) {
	key := strings.ToLower(strategy.Provider())
	if _, ok := r.strategies[key]; !ok {
		r.order = append(r.order, key)
	}
	r.strategies[key] = strategy
}

// Get returns the strategy for a provider name, or ENOTFOUND.
func (r *Registry) Get(provider string) (deprecations.Strategy, error) {
	strategy, ok := r.strategies[strings.ToLower(provider)]
	if !ok {
		return nil, deprecations.Errorf(deprecations.ENOTFOUND, "no strategy registered for provider %q", provider)
	}
	return strategy, nil
}

// List returns all strategies in registration order.
func (r *Registry) List() []deprecations.Strategy {
	out := make([]deprecations.Strategy, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.strategies[key])
	}
	return out
}

// DefaultRegistry returns a Registry populated with every built-in
// strategy. The extractor powers unstructured passes and may be nil.
func DefaultRegistry(extractor deprecations.TextExtractor) *Registry {
	r := NewRegistry()
	r.Register(NewGoogleStrategy())
	r.Register(NewVertexStrategy())
	r.Register(NewVertexDeprecationsStrategy())
	r.Register(NewBedrockStrategy())
	r.Register(NewAnthropicStrategy())
	r.Register(NewOpenAIStrategy(extractor))
	return r
}
