//go:build unit

package repositories_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/archive"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/tarfetch/test/domain/entitybuilders"
)

func newFactory(t *testing.T) *repositories.ToolsetFactory {
	t.Helper()

	providers := repositories.NewProviderRegistry()
	providers.Register("github", github.NewTreeRepository)
	unpackers := repositories.NewUnpackerRegistry()
	unpackers.Register("native", archive.NewNativeUnpackerRepository)
	unpackers.Register("tar", archive.NewTarUnpackerRepository)

	return repositories.NewToolsetFactory(providers, unpackers, osfs.New(t.TempDir()))
}

func TestToolsetFactoryBuild(t *testing.T) {
	t.Parallel()

	t.Run("should assemble every repository of the run", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().WithExtractor("tar").BuildSettings()
		settings.ApplyDefaults()

		// when
		toolset, err := newFactory(t).Build(settings)

		// then
		require.NoError(t, err)
		assert.NotNil(t, toolset.Downloader)
		assert.NotNil(t, toolset.Tree)
		assert.NotNil(t, toolset.Workspace)
		assert.Equal(t, "tar", toolset.Unpacker.Name())
	})

	t.Run("should reject an unknown extractor", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().WithExtractor("zip").BuildSettings()
		settings.ApplyDefaults()

		// when
		toolset, err := newFactory(t).Build(settings)

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Nil(t, toolset)
	})

	t.Run("should reject an unknown provider", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		settings.ApplyDefaults()
		settings.Provider = "bitbucket"

		// when
		toolset, err := newFactory(t).Build(settings)

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Nil(t, toolset)
	})
}
