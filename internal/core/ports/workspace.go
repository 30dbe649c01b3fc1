package ports

// Workspace defines the filesystem operations the orchestrator performs itself.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Exists reports whether path exists. A missing path is not an error.
	Exists(path string) (bool, error)

	// EnsureDir creates path and any missing parents. Existing directories are left alone.
	EnsureDir(path string) error

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error
}
