package repositories

import "github.com/rios0rios0/tarfetch/internal/domain/entities"

// Toolset groups the repositories a fetch runs with. It is built per run
// because credentials and endpoints come from the run settings.
type Toolset struct {
	Downloader DownloaderRepository
	Unpacker   UnpackerRepository
	Tree       TreeRepository
	Workspace  WorkspaceRepository
}

// ToolsetBuilder builds the Toolset for the given settings.
type ToolsetBuilder interface {
	Build(settings *entities.Settings) (*Toolset, error)
}
