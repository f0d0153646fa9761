package repositories

import (
	"github.com/go-git/go-billy/v5"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/tarfetch/internal/domain/repositories"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/httpdownload"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/workspace"
)

// ToolsetFactory builds the per-run repositories from the registries and the
// workspace filesystem.
type ToolsetFactory struct {
	providers  *ProviderRegistry
	unpackers  *UnpackerRegistry
	filesystem billy.Filesystem
}

// NewToolsetFactory creates a new ToolsetFactory.
func NewToolsetFactory(
	providers *ProviderRegistry,
	unpackers *UnpackerRegistry,
	filesystem billy.Filesystem,
) *ToolsetFactory {
	return &ToolsetFactory{
		providers:  providers,
		unpackers:  unpackers,
		filesystem: filesystem,
	}
}

// Build resolves the provider and extractor named in settings.
func (it *ToolsetFactory) Build(settings *entities.Settings) (*domainRepos.Toolset, error) {
	tree, err := it.providers.Get(settings.Provider, settings.APIURL, settings.Credentials())
	if err != nil {
		return nil, err
	}

	unpacker, err := it.unpackers.Get(settings.Extractor, it.filesystem)
	if err != nil {
		return nil, err
	}

	timeout, err := settings.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return &domainRepos.Toolset{
		Downloader: httpdownload.NewDownloaderRepository(it.filesystem, entities.TransportOptions{
			Retries: settings.Retries,
			Timeout: timeout,
		}),
		Unpacker:  unpacker,
		Tree:      tree,
		Workspace: workspace.NewWorkspaceRepository(it.filesystem),
	}, nil
}
