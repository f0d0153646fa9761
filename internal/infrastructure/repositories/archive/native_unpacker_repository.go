package archive

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/klauspost/compress/gzip"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

const (
	nativeName      = "native"
	stripComponents = 1
)

// NativeUnpackerRepository extracts tarballs in process, writing through a
// go-billy filesystem.
type NativeUnpackerRepository struct {
	fs billy.Filesystem
}

// NewNativeUnpackerRepository creates the in-process extractor.
func NewNativeUnpackerRepository(fs billy.Filesystem) repositories.UnpackerRepository {
	return &NativeUnpackerRepository{fs: fs}
}

func (it *NativeUnpackerRepository) Name() string { return nativeName }

func (it *NativeUnpackerRepository) Unpack(ctx context.Context, tarballPath string) (string, error) {
	target := extractionDir(tarballPath)
	if err := prepareDirectory(it.fs, target); err != nil {
		return "", err
	}

	file, err := it.fs.Open(tarballPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open %q: %w", entities.ErrFilesystem, tarballPath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not gzipped: %w", entities.ErrExtraction, tarballPath, err)
	}
	defer gzipReader.Close()

	reader := tar.NewReader(gzipReader)
	count := 0
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		header, nextErr := reader.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return "", fmt.Errorf("%w: failed to read %q: %w", entities.ErrExtraction, tarballPath, nextErr)
		}

		name, ok := stripPath(header.Name, stripComponents)
		if !ok || header.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		if !filepath.IsLocal(name) {
			return "", fmt.Errorf("%w: entry %q escapes the target directory", entities.ErrExtraction, header.Name)
		}

		if linkErr := it.checkParents(target, name); linkErr != nil {
			return "", linkErr
		}

		destination := filepath.Join(target, filepath.FromSlash(name))
		if writeErr := it.writeEntry(reader, header, destination); writeErr != nil {
			return "", fmt.Errorf("%w: failed to write %q: %w", entities.ErrExtraction, destination, writeErr)
		}
		count++
	}

	logger.Debugf("Extracted %d entries from %s into %s", count, tarballPath, target)
	return target, nil
}

// checkParents rejects an entry when one of its parent directories inside
// target is a symbolic link.
func (it *NativeUnpackerRepository) checkParents(target, name string) error {
	parts := strings.Split(name, "/")
	current := target
	for _, part := range parts[:len(parts)-1] {
		current = filepath.Join(current, part)
		info, err := it.fs.Lstat(current)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: failed to inspect %q: %w", entities.ErrExtraction, current, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: entry %q is written through a symbolic link", entities.ErrExtraction, name)
		}
	}
	return nil
}

func (it *NativeUnpackerRepository) writeEntry(reader io.Reader, header *tar.Header, destination string) error {
	mode := header.FileInfo().Mode().Perm()

	// an existing link is replaced, never followed
	if info, err := it.fs.Lstat(destination); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err = it.fs.Remove(destination); err != nil {
			return err
		}
	}

	switch header.Typeflag {
	case tar.TypeDir:
		return it.fs.MkdirAll(destination, mode|0o700)
	case tar.TypeReg:
		if err := it.fs.MkdirAll(filepath.Dir(destination), dirMode); err != nil {
			return err
		}
		out, err := it.fs.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
		if err != nil {
			return err
		}
		if _, err = io.Copy(out, reader); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	case tar.TypeSymlink:
		if err := it.fs.MkdirAll(filepath.Dir(destination), dirMode); err != nil {
			return err
		}
		return it.fs.Symlink(header.Linkname, destination)
	default:
		logger.Debugf("Skipping unsupported entry %q (type %q)", header.Name, header.Typeflag)
		return nil
	}
}

// stripPath drops the first n components of an archive path. It reports false
// when nothing is left, which is the case for the wrapper directory itself.
func stripPath(name string, n int) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(name, "./"), "/")
	if len(parts) <= n {
		return "", false
	}

	stripped := path.Clean(strings.Join(parts[n:], "/"))
	if stripped == "." || stripped == "" {
		return "", false
	}
	return stripped, true
}
