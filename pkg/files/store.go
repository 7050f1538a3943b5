package files

import "context"

// Store is a path-addressed filesystem. Every failed call returns an *Error
// wrapping the underlying OS error, so its message reaches the user verbatim.
type Store interface {
	RootTitle() string

	// ReadDir returns the immediate children of dirPath sorted with
	// SortEntries. The "." and ".." pseudo-entries never appear.
	ReadDir(ctx context.Context, dirPath string) ([]Entry, error)

	// ReadFile reads the whole file into memory.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Stat probes a single path. It is independent of ReadFile: content can
	// be readable while the stat probe fails.
	Stat(ctx context.Context, path string) (Meta, error)

	// WriteFile replaces the full content of path, creating it if needed.
	// Writing to a directory fails with ErrIsDirectory before any write is
	// attempted.
	WriteFile(ctx context.Context, path string, data []byte) error

	// CreateDir creates a directory and any missing ancestors. Fails with
	// ErrAlreadyExists when anything occupies path.
	CreateDir(ctx context.Context, path string) error

	// CreateFile creates an empty file. Fails with ErrAlreadyExists when
	// anything occupies path.
	CreateFile(ctx context.Context, path string) error

	// Delete removes path recursively.
	Delete(ctx context.Context, path string) error

	// Rename moves oldPath to newPath atomically within one filesystem.
	// Fails with ErrAlreadyExists when newPath is occupied.
	Rename(ctx context.Context, oldPath, newPath string) error
}
