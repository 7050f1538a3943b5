package files

import "errors"

// Op names the store operation that failed.
type Op string

const (
	OpList   Op = "list"
	OpRead   Op = "read"
	OpStat   Op = "stat"
	OpWrite  Op = "write"
	OpCreate Op = "create"
	OpDelete Op = "delete"
	OpRename Op = "rename"
)

var (
	// ErrAlreadyExists is reported by the pre-flight existence check that
	// runs before create and rename, not by the underlying OS call.
	ErrAlreadyExists = errors.New("already exists")

	// ErrIsDirectory is reported when file content is written to a path
	// occupied by a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotADirectory is reported when navigation descends into an entry
	// that is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// Error is the failure of a single store operation. Err holds the OS-provided
// error (or one of the sentinels above) with its message intact.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// OpOf returns the Op of err when it is (or wraps) a store *Error.
func OpOf(err error) (Op, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Op, true
	}
	return "", false
}
