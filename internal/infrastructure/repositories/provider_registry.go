package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// ProviderFactory is a constructor function that creates a TreeRepository
// for an API endpoint and credentials.
type ProviderFactory func(apiURL string, credentials entities.Credentials) (domainRepos.TreeRepository, error)

// ProviderRegistry manages all registered Git hosting providers.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given name (e.g. "github").
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// Get returns a configured tree repository for the given provider name.
func (r *ProviderRegistry) Get(
	name, apiURL string,
	credentials entities.Credentials,
) (domainRepos.TreeRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider type: %q", entities.ErrUsage, name)
	}
	return factory(apiURL, credentials)
}

// Names returns the sorted list of registered provider names.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
