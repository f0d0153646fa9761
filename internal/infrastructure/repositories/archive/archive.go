// Package archive extracts the gzipped tarballs served by the hosting service.
// Both extractors drop the archive's single top-level directory and replace
// any directory left behind by a previous run.
package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
)

const dirMode = 0o777

// extractionDir returns the directory a tarball is extracted into: its
// parent directory joined with its base name minus the extension.
func extractionDir(tarballPath string) string {
	base := filepath.Base(tarballPath)
	return filepath.Join(filepath.Dir(tarballPath), strings.TrimSuffix(base, filepath.Ext(base)))
}

// prepareDirectory recursively removes dir when it exists and recreates it
// empty.
func prepareDirectory(fs billy.Filesystem, dir string) error {
	if _, err := fs.Lstat(dir); err == nil {
		if err = util.RemoveAll(fs, dir); err != nil {
			return fmt.Errorf("%w: failed to remove %q: %w", entities.ErrFilesystem, dir, err)
		}
		logger.Warnf("Deleted existing directory %s", dir)
	}

	if err := fs.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("%w: failed to create %q: %w", entities.ErrFilesystem, dir, err)
	}
	return nil
}
