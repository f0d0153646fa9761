package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/domain/repositories"
)

// Submodules is the interface for the submodule orchestrator.
type Submodules interface {
	Execute(
		ctx context.Context,
		toolset *repositories.Toolset,
		opts SubmodulesOptions,
	) ([]entities.SubmoduleResult, error)
}

// SubmodulesOptions describes one level of submodules to fetch.
type SubmodulesOptions struct {
	Parent       entities.RepoCoordinate           // repository whose tree pins the submodules
	ParentDir    string                            // extracted tree of Parent
	Destination  string                            // where intermediate tarballs are written
	Submodules   map[string]entities.SubmoduleEntry // keyed by local path
	BaseURL      string
	Credentials  entities.Credentials
	ManifestHost string
	Concurrency  int // 0 means unbounded
	Recursive    bool
}

// SubmodulesCommand resolves every declared submodule against the parent's
// tree listing, then downloads, unpacks and relocates each one concurrently.
type SubmodulesCommand struct{}

// NewSubmodulesCommand creates a new SubmodulesCommand.
func NewSubmodulesCommand() *SubmodulesCommand {
	return &SubmodulesCommand{}
}

type pinnedSubmodule struct {
	entry entities.SubmoduleEntry
	sha   string
}

// Execute returns once every submodule task has settled. The returned error
// joins the failure of every task; one failing task never cancels the others.
func (it *SubmodulesCommand) Execute(
	ctx context.Context,
	toolset *repositories.Toolset,
	opts SubmodulesOptions,
) ([]entities.SubmoduleResult, error) {
	tree, err := toolset.Tree.ListTree(ctx, opts.Parent)
	if err != nil {
		return nil, err
	}

	pinned := pinSubmodules(tree, opts.Submodules)
	logger.Infof("Resolved %d of %d submodules in %s", len(pinned), len(opts.Submodules), opts.Parent)

	outcomes := make([][]entities.SubmoduleResult, len(pinned))
	group := new(errgroup.Group)
	if opts.Concurrency > 0 {
		group.SetLimit(opts.Concurrency)
	}
	for _, indexes := range groupBySHA(pinned) {
		group.Go(func() error {
			for _, i := range indexes {
				outcomes[i] = it.process(ctx, toolset, opts, pinned[i])
			}
			return nil
		})
	}
	_ = group.Wait()

	var results []entities.SubmoduleResult
	var errs []error
	for _, outcome := range outcomes {
		for _, result := range outcome {
			results = append(results, result)
			if result.Err != nil {
				errs = append(errs, fmt.Errorf("submodule %q: %w", result.Entry.LocalPath, result.Err))
			}
		}
	}

	return results, errors.Join(errs...)
}

// pinSubmodules pairs each tree entry whose path is a declared submodule with
// its SHA. Declared submodules absent from the tree are skipped.
func pinSubmodules(
	tree []entities.TreeEntry,
	submodules map[string]entities.SubmoduleEntry,
) []pinnedSubmodule {
	var pinned []pinnedSubmodule
	seen := make(map[string]bool, len(submodules))
	for _, treeEntry := range tree {
		entry, ok := submodules[treeEntry.Path]
		if !ok || seen[treeEntry.Path] {
			continue
		}
		seen[treeEntry.Path] = true
		pinned = append(pinned, pinnedSubmodule{entry: entry, sha: treeEntry.ObjectID})
	}

	var unmatched []string
	for localPath := range submodules {
		if !seen[localPath] {
			unmatched = append(unmatched, localPath)
		}
	}
	sort.Strings(unmatched)
	for _, localPath := range unmatched {
		logger.Debugf("Submodule %q has no entry in the tree listing, skipping", localPath)
	}

	return pinned
}

// groupBySHA returns the indexes of pinned grouped by SHA, in first-seen
// order. Submodules sharing a SHA share their intermediate tarball and
// extraction directory, so each group runs sequentially.
func groupBySHA(pinned []pinnedSubmodule) [][]int {
	var groups [][]int
	position := make(map[string]int, len(pinned))
	for i, submodule := range pinned {
		if at, ok := position[submodule.sha]; ok {
			groups[at] = append(groups[at], i)
			continue
		}
		position[submodule.sha] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}

// process fetches one submodule and, when recursion is enabled, its own
// submodules. The first result always describes the submodule itself.
func (it *SubmodulesCommand) process(
	ctx context.Context,
	toolset *repositories.Toolset,
	opts SubmodulesOptions,
	submodule pinnedSubmodule,
) []entities.SubmoduleResult {
	target := filepath.Join(opts.ParentDir, filepath.FromSlash(submodule.entry.LocalPath))
	result := entities.SubmoduleResult{
		Entry: submodule.entry,
		SHA:   submodule.sha,
		Dir:   target,
	}

	coordinate := submodule.entry.Coordinate(submodule.sha)
	if err := fetchInto(ctx, toolset, opts, coordinate, target); err != nil {
		result.Err = err
		return []entities.SubmoduleResult{result}
	}
	logger.Infof("Fetched submodule %s at %s into %s", submodule.entry.LocalPath, submodule.sha, target)

	if !opts.Recursive {
		return []entities.SubmoduleResult{result}
	}

	nested, err := it.nested(ctx, toolset, opts, coordinate, target)
	if err != nil && len(nested) == 0 {
		result.Err = err
	}
	return append([]entities.SubmoduleResult{result}, nested...)
}

func (it *SubmodulesCommand) nested(
	ctx context.Context,
	toolset *repositories.Toolset,
	opts SubmodulesOptions,
	coordinate entities.RepoCoordinate,
	dir string,
) ([]entities.SubmoduleResult, error) {
	manifestPath := filepath.Join(dir, entities.ManifestFileName)
	if !toolset.Workspace.Exists(manifestPath) {
		return nil, nil
	}

	data, err := toolset.Workspace.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}
	submodules, err := entities.ParseSubmodules(data, opts.ManifestHost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrFilesystem, err)
	}
	if len(submodules) == 0 {
		return nil, nil
	}

	nestedOpts := opts
	nestedOpts.Parent = coordinate
	nestedOpts.ParentDir = dir
	nestedOpts.Submodules = submodules
	return it.Execute(ctx, toolset, nestedOpts)
}

// fetchInto downloads and unpacks the tarball of coordinate and moves its
// contents into target.
func fetchInto(
	ctx context.Context,
	toolset *repositories.Toolset,
	opts SubmodulesOptions,
	coordinate entities.RepoCoordinate,
	target string,
) error {
	extracted, err := downloadAndUnpack(ctx, toolset, opts.BaseURL, opts.Credentials, coordinate, opts.Destination)
	if err != nil {
		return err
	}
	return toolset.Workspace.MoveContents(extracted, target)
}
