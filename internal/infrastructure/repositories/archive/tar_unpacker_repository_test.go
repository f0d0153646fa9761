//go:build unit

package archive_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/repositories/archive"
	"github.com/rios0rios0/tarfetch/test/infrastructure/archivebuilders"
)

func TestTarUnpackerRepository(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar binary is not available")
	}

	t.Run("should extract with the system tar and strip the wrapper", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		fs := osfs.New(root)
		require.NoError(t, util.WriteFile(fs, "out/abc123.tgz", archivebuilders.NewTarballBuilder().
			WithFile("README.md", "# widgets").
			WithFile("lib/.keep", "").
			BuildBytes(), 0o644))
		require.NoError(t, util.WriteFile(fs, "out/abc123/stale.txt", []byte("old"), 0o644))
		unpacker := archive.NewTarUnpackerRepository(fs)

		// when
		dir, err := unpacker.Unpack(context.Background(), "out/abc123.tgz")

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("out", "abc123"), dir)
		assert.FileExists(t, filepath.Join(root, "out", "abc123", "README.md"))
		assert.FileExists(t, filepath.Join(root, "out", "abc123", "lib", ".keep"))
		assert.NoFileExists(t, filepath.Join(root, "out", "abc123", "stale.txt"))
		assert.Equal(t, "tar", unpacker.Name())
	})

	t.Run("should wrap the tar failure as an extraction error", func(t *testing.T) {
		t.Parallel()

		// given
		fs := osfs.New(t.TempDir())
		require.NoError(t, util.WriteFile(fs, "abc123.tgz", []byte("not a tarball"), 0o644))
		unpacker := archive.NewTarUnpackerRepository(fs)

		// when
		_, err := unpacker.Unpack(context.Background(), "abc123.tgz")

		// then
		require.ErrorIs(t, err, entities.ErrExtraction)
	})
}
