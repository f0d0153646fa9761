package archive

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const (
	tarName   = "tar"
	tarBinary = "tar"
)

// TarUnpackerRepository extracts tarballs with the system tar binary.
type TarUnpackerRepository struct {
	fs     billy.Filesystem
	binary string
}

// NewTarUnpackerRepository creates the extractor backed by the tar binary.
func NewTarUnpackerRepository(fs billy.Filesystem) repositories.UnpackerRepository {
	return &TarUnpackerRepository{fs: fs, binary: tarBinary}
}

func (it *TarUnpackerRepository) Name() string { return tarName }

func (it *TarUnpackerRepository) Unpack(ctx context.Context, tarballPath string) (string, error) {
	target := extractionDir(tarballPath)
	if err := prepareDirectory(it.fs, target); err != nil {
		return "", err
	}

	//nolint:gosec // arguments are paths under the workspace, not shell input
	cmd := exec.CommandContext(ctx, it.binary,
		"xzf", it.osPath(tarballPath),
		"--strip-components=1",
		"-C", it.osPath(target),
	)
	logger.Debugf("Running %s", strings.Join(cmd.Args, " "))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf(
			"%w: tar failed for %q: %w: %s",
			entities.ErrExtraction, tarballPath, err, strings.TrimSpace(string(output)),
		)
	}

	return target, nil
}

// osPath maps a workspace path to the path the tar process sees.
func (it *TarUnpackerRepository) osPath(path string) string {
	return filepath.Join(it.fs.Root(), path)
}
