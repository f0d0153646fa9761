package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// SubmoduleEntry is one submodule declared in a .gitmodules manifest.
type SubmoduleEntry struct {
	ModuleName string // name from the [submodule "<name>"] header
	LocalPath  string // directory, relative to the parent tree, the submodule lives in
	Owner      string
	Name       string
}

// Coordinate returns the submodule repository pinned at the given ref.
func (e SubmoduleEntry) Coordinate(ref string) RepoCoordinate {
	return RepoCoordinate{Owner: e.Owner, Name: e.Name, Ref: ref}
}

// TreeEntry is re-exported from gitforge. Path and ObjectID (the SHA) are the
// fields used to pin submodules.
type TreeEntry = gitforgeEntities.File

// SubmoduleResult is the outcome of processing a single submodule.
type SubmoduleResult struct {
	Entry SubmoduleEntry
	SHA   string
	Dir   string // where the submodule contents ended up
	Err   error
}
