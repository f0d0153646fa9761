package repositories

import (
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// UnpackerFactory creates an extractor working on the given filesystem.
type UnpackerFactory func(fs billy.Filesystem) domainRepos.UnpackerRepository

// UnpackerRegistry manages all registered tarball extractors.
type UnpackerRegistry struct {
	unpackers map[string]UnpackerFactory
}

// NewUnpackerRegistry creates an empty unpacker registry.
func NewUnpackerRegistry() *UnpackerRegistry {
	return &UnpackerRegistry{
		unpackers: make(map[string]UnpackerFactory),
	}
}

// Register adds an extractor factory under the given name.
func (r *UnpackerRegistry) Register(name string, factory UnpackerFactory) {
	r.unpackers[name] = factory
}

// Get returns the extractor registered under name bound to fs.
func (r *UnpackerRegistry) Get(name string, fs billy.Filesystem) (domainRepos.UnpackerRepository, error) {
	factory, ok := r.unpackers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown extractor %q (available: %v)", entities.ErrUsage, name, r.Names())
	}
	return factory(fs), nil
}

// Names returns the sorted list of registered extractor names.
func (r *UnpackerRegistry) Names() []string {
	names := make([]string, 0, len(r.unpackers))
	for name := range r.unpackers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
