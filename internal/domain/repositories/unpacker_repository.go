package repositories

import "context"

// UnpackerRepository extracts gzipped tarballs.
type UnpackerRepository interface {
	// Name returns the extractor identifier (e.g. "native", "tar").
	Name() string

	// Unpack extracts tarballPath next to itself, into a directory named after
	// the file without its extension, dropping the archive's top-level
	// directory. An existing directory at that path is replaced.
	Unpack(ctx context.Context, tarballPath string) (string, error)
}
