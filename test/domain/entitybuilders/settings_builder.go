//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create run settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a builder for the "acme/widgets/abc123" scenario.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings: entities.Settings{
			User:        "octocat",
			Password:    "secret",
			Repo:        "acme/widgets/abc123",
			Destination: "/tmp/out",
		},
	}
}

// WithUser sets the username.
func (b *SettingsBuilder) WithUser(user string) *SettingsBuilder {
	b.settings.User = user
	return b
}

// WithPassword sets the password.
func (b *SettingsBuilder) WithPassword(password string) *SettingsBuilder {
	b.settings.Password = password
	return b
}

// WithRepo sets the composite repository identifier.
func (b *SettingsBuilder) WithRepo(repo string) *SettingsBuilder {
	b.settings.Repo = repo
	return b
}

// WithDestination sets the destination directory.
func (b *SettingsBuilder) WithDestination(destination string) *SettingsBuilder {
	b.settings.Destination = destination
	return b
}

// WithEndpoints points tarball downloads and API calls at the given URLs.
func (b *SettingsBuilder) WithEndpoints(baseURL, apiURL string) *SettingsBuilder {
	b.settings.BaseURL = baseURL
	b.settings.APIURL = apiURL
	return b
}

// WithExtractor sets the extractor name.
func (b *SettingsBuilder) WithExtractor(extractor string) *SettingsBuilder {
	b.settings.Extractor = extractor
	return b
}

// WithConcurrency sets the submodule concurrency cap.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.settings.Concurrency = concurrency
	return b
}

// WithRecursive enables nested submodule fetching.
func (b *SettingsBuilder) WithRecursive(recursive bool) *SettingsBuilder {
	b.settings.Recursive = recursive
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates a fresh copy of the settings.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}
