//go:build unit

package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "should drop the wrapper directory", input: "acme-widgets-abc123/src/main.go", expected: "src/main.go", ok: true},
		{name: "should skip the wrapper itself", input: "acme-widgets-abc123/", ok: false},
		{name: "should skip top-level entries", input: "pax_global_header", ok: false},
		{name: "should ignore a leading dot slash", input: "./wrapper/file.txt", expected: "file.txt", ok: true},
		{name: "should keep dotfiles", input: "wrapper/.gitmodules", expected: ".gitmodules", ok: true},
		{name: "should clean traversal without hiding it", input: "wrapper/../../x", expected: "../../x", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			input := tt.input

			// when
			stripped, ok := stripPath(input, 1)

			// then
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, stripped)
		})
	}
}

func TestExtractionDir(t *testing.T) {
	t.Parallel()

	t.Run("should drop the extension from the tarball path", func(t *testing.T) {
		t.Parallel()

		// given
		tarball := filepath.Join("/tmp", "out", "abc123.tgz")

		// when
		dir := extractionDir(tarball)

		// then
		assert.Equal(t, filepath.Join("/tmp", "out", "abc123"), dir)
	})
}
