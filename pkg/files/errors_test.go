package files

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("preserves_os_message", func(t *testing.T) {
		osErr := errors.New("permission denied")
		err := &Error{Op: OpList, Path: "/etc/secret", Err: osErr}
		assert.Equal(t, "list /etc/secret: permission denied", err.Error())
		assert.Equal(t, osErr, errors.Unwrap(err))
	})

	t.Run("already_exists_is_detectable", func(t *testing.T) {
		err := error(&Error{Op: OpCreate, Path: "/tmp/x", Err: ErrAlreadyExists})
		assert.True(t, errors.Is(err, ErrAlreadyExists))
		assert.False(t, errors.Is(err, ErrIsDirectory))
	})

	t.Run("is_directory_is_detectable", func(t *testing.T) {
		err := error(&Error{Op: OpWrite, Path: "/tmp/d", Err: ErrIsDirectory})
		assert.True(t, errors.Is(err, ErrIsDirectory))
	})
}

func TestOpOf(t *testing.T) {
	t.Run("store_error", func(t *testing.T) {
		op, ok := OpOf(&Error{Op: OpRename, Path: "a", Err: errors.New("boom")})
		assert.True(t, ok)
		assert.Equal(t, OpRename, op)
	})

	t.Run("plain_error", func(t *testing.T) {
		_, ok := OpOf(errors.New("boom"))
		assert.False(t, ok)
	})
}
