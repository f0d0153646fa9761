//go:build unit

package repositories_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/tarfetch/internal/domain/repositories"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/archive"
	doubles "github.com/rios0rios0/tarfetch/test/infrastructure/repositorydoubles"
)

func TestProviderRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a provider by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewProviderRegistry()
		var received entities.Credentials
		stub := &doubles.StubTreeRepository{}
		reg.Register("test-provider", func(_ string, credentials entities.Credentials) (domainRepos.TreeRepository, error) {
			received = credentials
			return stub, nil
		})

		// when
		tree, err := reg.Get("test-provider", "https://api.example.com/", entities.Credentials{Username: "octocat"})

		// then
		require.NoError(t, err)
		assert.Same(t, stub, tree)
		assert.Equal(t, "octocat", received.Username)
	})

	t.Run("should return a usage error for an unknown provider", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewProviderRegistry()

		// when
		tree, err := reg.Get("nonexistent", "", entities.Credentials{})

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Nil(t, tree)
		assert.Contains(t, err.Error(), "unknown provider type")
	})

	t.Run("should list registered provider names", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewProviderRegistry()
		factory := func(_ string, _ entities.Credentials) (domainRepos.TreeRepository, error) {
			return &doubles.StubTreeRepository{}, nil
		}
		reg.Register("gitlab", factory)
		reg.Register("github", factory)

		// when
		names := reg.Names()

		// then
		assert.Equal(t, []string{"github", "gitlab"}, names)
	})
}

func TestUnpackerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should bind the extractor to the given filesystem", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewUnpackerRegistry()
		var received billy.Filesystem
		reg.Register("native", func(fs billy.Filesystem) domainRepos.UnpackerRepository {
			received = fs
			return archive.NewNativeUnpackerRepository(fs)
		})
		fs := osfs.New(t.TempDir())

		// when
		unpacker, err := reg.Get("native", fs)

		// then
		require.NoError(t, err)
		assert.Equal(t, "native", unpacker.Name())
		assert.Same(t, fs, received)
	})

	t.Run("should list the available extractors for an unknown name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewUnpackerRegistry()
		reg.Register("tar", archive.NewTarUnpackerRepository)
		reg.Register("native", archive.NewNativeUnpackerRepository)

		// when
		unpacker, err := reg.Get("zip", osfs.New(t.TempDir()))

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Nil(t, unpacker)
		assert.Contains(t, err.Error(), "[native tar]")
	})
}
