package ports

import "time"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// RemoveAll deletes a path and anything it contains.
	RemoveAll(path string) error

	// TempDir creates a new uniquely-named directory with the given prefix
	// and returns its path.
	TempDir(prefix string) (string, error)

	// CopyFile copies src to dst, creating parent directories as needed.
	CopyFile(src, dst string) error

	// Glob returns the paths matching a filepath pattern.
	Glob(pattern string) ([]string, error)

	// ModTime returns the modification time of a file.
	ModTime(path string) (time.Time, error)
}
