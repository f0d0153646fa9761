package entities

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

const (
	// ManifestFileName is the submodule manifest looked up in every extracted tree.
	ManifestFileName = ".gitmodules"
	// DefaultManifestHost is the SSH host submodule URLs must point at.
	DefaultManifestHost = "github.com"

	submoduleSection = "submodule"
	pathKey          = "path"
	urlKey           = "url"
)

// ParseSubmodules decodes a .gitmodules manifest and returns its submodules
// keyed by local path. Only blocks whose url has the form
// "git@<host>:<owner>/<repo>.git" are kept. Repeated blocks for the same name
// merge with the last value winning, and so do blocks mapping to the same path.
func ParseSubmodules(data []byte, host string) (map[string]SubmoduleEntry, error) {
	if host == "" {
		host = DefaultManifestHost
	}

	raw := format.New()
	if err := format.NewDecoder(bytes.NewReader(data)).Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode submodule manifest: %w", err)
	}

	pattern := submoduleURLPattern(host)
	submodules := make(map[string]SubmoduleEntry)
	for _, subsection := range raw.Section(submoduleSection).Subsections {
		matches := pattern.FindStringSubmatch(strings.TrimSpace(subsection.Option(urlKey)))
		if matches == nil {
			continue
		}

		localPath := strings.TrimSuffix(strings.TrimSpace(subsection.Option(pathKey)), "/")
		if localPath == "" {
			localPath = subsection.Name
		}

		submodules[localPath] = SubmoduleEntry{
			ModuleName: subsection.Name,
			LocalPath:  localPath,
			Owner:      matches[1],
			Name:       matches[2],
		}
	}

	return submodules, nil
}

func submoduleURLPattern(host string) *regexp.Regexp {
	return regexp.MustCompile(`^git@` + regexp.QuoteMeta(host) + `:([^/\s]+)/([^/\s]+)\.git$`)
}
