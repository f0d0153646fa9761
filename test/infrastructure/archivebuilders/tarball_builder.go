//go:build integration || unit || test

package archivebuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"archive/tar"
	"bytes"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// TarballBuilder creates gzipped tarballs laid out like the ones the hosting
// service serves: a pax global header and a single wrapper directory.
type TarballBuilder struct {
	*testkit.BaseBuilder
	wrapper  string
	comment  string
	dirs     []string
	files    map[string]string
	symlinks map[string]string
	raw      []rawEntry // written verbatim and in order, after everything else
}

type rawEntry struct {
	header  tar.Header
	content string
}

// NewTarballBuilder creates a builder with an "acme-widgets-abc123" wrapper.
func NewTarballBuilder() *TarballBuilder {
	return &TarballBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		wrapper:     "acme-widgets-abc123",
		comment:     "abc123",
		files:       map[string]string{},
		symlinks:    map[string]string{},
	}
}

// WithWrapper sets the top-level directory name.
func (b *TarballBuilder) WithWrapper(wrapper string) *TarballBuilder {
	b.wrapper = wrapper
	return b
}

// WithDir adds an (empty) directory under the wrapper.
func (b *TarballBuilder) WithDir(path string) *TarballBuilder {
	b.dirs = append(b.dirs, path)
	return b
}

// WithFile adds a regular file under the wrapper.
func (b *TarballBuilder) WithFile(path, content string) *TarballBuilder {
	b.files[path] = content
	return b
}

// WithSymlink adds a symbolic link under the wrapper.
func (b *TarballBuilder) WithSymlink(path, target string) *TarballBuilder {
	b.symlinks[path] = target
	return b
}

// WithRawFile adds a file whose name is written as is, wrapper not prepended.
func (b *TarballBuilder) WithRawFile(name string) *TarballBuilder {
	return b.WithRawContent(name, "")
}

// WithRawContent adds a file with content whose name is written as is.
func (b *TarballBuilder) WithRawContent(name, content string) *TarballBuilder {
	b.raw = append(b.raw, rawEntry{
		header:  tar.Header{Typeflag: tar.TypeReg, Name: name, Mode: 0o664, Size: int64(len(content))},
		content: content,
	})
	return b
}

// WithRawSymlink adds a symbolic link whose name is written as is. Raw
// entries keep the order they were added in.
func (b *TarballBuilder) WithRawSymlink(name, target string) *TarballBuilder {
	b.raw = append(b.raw, rawEntry{
		header: tar.Header{Typeflag: tar.TypeSymlink, Name: name, Linkname: target, Mode: 0o777},
	})
	return b
}

// Build creates the tarball bytes (satisfies testkit.Builder interface).
func (b *TarballBuilder) Build() interface{} {
	return b.BuildBytes()
}

// BuildBytes creates the gzipped tarball.
func (b *TarballBuilder) BuildBytes() []byte {
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	tarWriter := tar.NewWriter(gzipWriter)

	write := func(header *tar.Header, content string) {
		if err := tarWriter.WriteHeader(header); err != nil {
			panic(err)
		}
		if content != "" {
			if _, err := tarWriter.Write([]byte(content)); err != nil {
				panic(err)
			}
		}
	}

	write(&tar.Header{
		Typeflag:   tar.TypeXGlobalHeader,
		Name:       "pax_global_header",
		PAXRecords: map[string]string{"comment": b.comment},
		Format:     tar.FormatPAX,
	}, "")
	write(&tar.Header{Typeflag: tar.TypeDir, Name: b.wrapper + "/", Mode: 0o775}, "")

	for _, dir := range b.dirs {
		write(&tar.Header{Typeflag: tar.TypeDir, Name: b.wrapper + "/" + strings.TrimSuffix(dir, "/") + "/", Mode: 0o775}, "")
	}

	paths := make([]string, 0, len(b.files))
	for path := range b.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		content := b.files[path]
		write(&tar.Header{
			Typeflag: tar.TypeReg,
			Name:     b.wrapper + "/" + path,
			Mode:     0o664,
			Size:     int64(len(content)),
		}, content)
	}

	for path, target := range b.symlinks {
		write(&tar.Header{Typeflag: tar.TypeSymlink, Name: b.wrapper + "/" + path, Linkname: target, Mode: 0o777}, "")
	}

	for _, entry := range b.raw {
		header := entry.header
		write(&header, entry.content)
	}

	if err := tarWriter.Close(); err != nil {
		panic(err)
	}
	if err := gzipWriter.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
