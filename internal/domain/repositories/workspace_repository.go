package repositories

// WorkspaceRepository covers the local filesystem operations of a fetch.
type WorkspaceRepository interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	Remove(path string) error

	// MoveContents moves every entry of source into target, creating target
	// when needed, and then removes the emptied source directory.
	MoveContents(source, target string) error
}
