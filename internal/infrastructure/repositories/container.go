package repositories

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/tarfetch/internal/domain/repositories"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/archive"
	ghRepo "github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all provider factories
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("github", ghRepo.NewTreeRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register unpacker registry with all extractors
	if err := container.Provide(func() *UnpackerRegistry {
		reg := NewUnpackerRegistry()
		reg.Register("native", archive.NewNativeUnpackerRepository)
		reg.Register("tar", archive.NewTarUnpackerRepository)
		return reg
	}); err != nil {
		return err
	}

	// Paths handed to the repositories are absolute, so the workspace is the
	// whole host filesystem
	if err := container.Provide(func() billy.Filesystem {
		return osfs.New("/")
	}); err != nil {
		return err
	}

	if err := container.Provide(NewToolsetFactory); err != nil {
		return err
	}
	if err := container.Provide(workspace.NewWorkspaceRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ToolsetFactory) domainRepos.ToolsetBuilder {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
