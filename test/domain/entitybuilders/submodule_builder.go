//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SubmoduleBuilder helps create test submodule entries with a fluent interface.
type SubmoduleBuilder struct {
	*testkit.BaseBuilder
	moduleName string
	localPath  string
	owner      string
	name       string
}

// NewSubmoduleBuilder creates a new submodule builder with sensible defaults.
func NewSubmoduleBuilder() *SubmoduleBuilder {
	return &SubmoduleBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		moduleName:  "lib/foo",
		localPath:   "lib/foo",
		owner:       "acme",
		name:        "foo",
	}
}

// WithPath sets both the module name and the local path.
func (b *SubmoduleBuilder) WithPath(localPath string) *SubmoduleBuilder {
	b.moduleName = localPath
	b.localPath = localPath
	return b
}

// WithModuleName sets the declared block name.
func (b *SubmoduleBuilder) WithModuleName(name string) *SubmoduleBuilder {
	b.moduleName = name
	return b
}

// WithOwner sets the owning user or organization.
func (b *SubmoduleBuilder) WithOwner(owner string) *SubmoduleBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *SubmoduleBuilder) WithName(name string) *SubmoduleBuilder {
	b.name = name
	return b
}

// Build creates the submodule entry (satisfies testkit.Builder interface).
func (b *SubmoduleBuilder) Build() interface{} {
	return b.BuildSubmodule()
}

// BuildSubmodule creates the submodule entry with a concrete return type.
func (b *SubmoduleBuilder) BuildSubmodule() entities.SubmoduleEntry {
	return entities.SubmoduleEntry{
		ModuleName: b.moduleName,
		LocalPath:  b.localPath,
		Owner:      b.owner,
		Name:       b.name,
	}
}

// BuildMap creates a manifest map holding only this entry.
func (b *SubmoduleBuilder) BuildMap() map[string]entities.SubmoduleEntry {
	entry := b.BuildSubmodule()
	return map[string]entities.SubmoduleEntry{entry.LocalPath: entry}
}
