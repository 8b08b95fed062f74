package ports

// Filesystem is the primitive I/O boundary the planner and executor run
// against. Implementations must keep CreateDir idempotent: an existing
// directory is fine, an existing non-directory is a path conflict. WriteFile
// never creates parent directories; walk order guarantees they exist.
type Filesystem interface {
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) (bool, error)
	// FileExists reports whether path exists and is not a directory.
	FileExists(path string) (bool, error)
	CreateDir(path string) error
	WriteFile(path string, content []byte) error
}
