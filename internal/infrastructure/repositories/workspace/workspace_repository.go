package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const dirMode = 0o777

// BillyWorkspaceRepository implements repositories.WorkspaceRepository on a
// go-billy filesystem.
type BillyWorkspaceRepository struct {
	fs billy.Filesystem
}

// NewWorkspaceRepository creates a workspace over the given filesystem.
func NewWorkspaceRepository(fs billy.Filesystem) repositories.WorkspaceRepository {
	return &BillyWorkspaceRepository{fs: fs}
}

func (it *BillyWorkspaceRepository) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(it.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %q: %w", entities.ErrFilesystem, path, err)
	}
	return data, nil
}

func (it *BillyWorkspaceRepository) Exists(path string) bool {
	_, err := it.fs.Stat(path)
	return err == nil
}

func (it *BillyWorkspaceRepository) Remove(path string) error {
	if err := it.fs.Remove(path); err != nil {
		return fmt.Errorf("%w: failed to remove %q: %w", entities.ErrFilesystem, path, err)
	}
	logger.Debugf("Deleted %s", path)
	return nil
}

// MoveContents moves every entry of source, dotfiles included, into target.
// An entry already present in target under the same name is replaced.
func (it *BillyWorkspaceRepository) MoveContents(source, target string) error {
	if err := it.fs.MkdirAll(target, dirMode); err != nil {
		return fmt.Errorf("%w: failed to create %q: %w", entities.ErrRelocation, target, err)
	}

	entries, err := it.fs.ReadDir(source)
	if err != nil {
		return fmt.Errorf("%w: failed to list %q: %w", entities.ErrRelocation, source, err)
	}

	for _, entry := range entries {
		from := filepath.Join(source, entry.Name())
		to := filepath.Join(target, entry.Name())

		if _, statErr := it.fs.Lstat(to); statErr == nil {
			if removeErr := util.RemoveAll(it.fs, to); removeErr != nil {
				return fmt.Errorf("%w: failed to replace %q: %w", entities.ErrRelocation, to, removeErr)
			}
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("%w: failed to inspect %q: %w", entities.ErrRelocation, to, statErr)
		}

		if renameErr := it.fs.Rename(from, to); renameErr != nil {
			return fmt.Errorf("%w: failed to move %q: %w", entities.ErrRelocation, from, renameErr)
		}
	}

	if err = it.fs.Remove(source); err != nil {
		return fmt.Errorf("%w: failed to remove %q: %w", entities.ErrRelocation, source, err)
	}
	return nil
}
