package repositories

import "context"

// DownloaderRepository fetches a remote file into the workspace.
type DownloaderRepository interface {
	// Download streams rawURL into destination, replacing any file already
	// there, and returns the destination path.
	Download(ctx context.Context, rawURL, destination string) (string, error)
}
