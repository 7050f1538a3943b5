package nav

import (
	"context"

	"github.com/owltech/owlfm/pkg/files"
)

// FileContent is the result of reading a single file. Content and metadata
// are independent failure points: Meta is nil, and MetaErr set, when the
// stat probe failed even though the read itself succeeded.
type FileContent struct {
	Path    string
	Data    []byte
	Meta    *files.Meta
	MetaErr error
}

// ReadFile reads the whole named file from the current directory.
func (n *Navigator) ReadFile(ctx context.Context, name string) (*FileContent, error) {
	path := n.EntryPath(name)
	data, err := n.store.ReadFile(ctx, path)
	if err != nil {
		n.log.Debug().Err(err).Str("path", path).Msg("read failed")
		return nil, err
	}
	fc := &FileContent{Path: path, Data: data}
	meta, err := n.store.Stat(ctx, path)
	if err != nil {
		fc.MetaErr = err
	} else {
		fc.Meta = &meta
	}
	n.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("read")
	return fc, nil
}

// StatEntry stats the named entry of the current directory.
func (n *Navigator) StatEntry(ctx context.Context, name string) (*files.Meta, error) {
	path := n.EntryPath(name)
	meta, err := n.store.Stat(ctx, path)
	if err != nil {
		n.log.Debug().Err(err).Str("path", path).Msg("stat failed")
		return nil, err
	}
	return &meta, nil
}

// WriteFile replaces the full content of the named file in the current
// directory. It never appends or writes partially.
func (n *Navigator) WriteFile(ctx context.Context, name string, data []byte) error {
	path := n.EntryPath(name)
	if err := n.store.WriteFile(ctx, path, data); err != nil {
		n.log.Debug().Err(err).Str("path", path).Msg("write failed")
		return err
	}
	n.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("written")
	return nil
}

// CreateEntry creates an empty file, or a directory with any missing
// ancestors, named relative to the current directory. The isDir
// classification belongs to the caller; name arrives without any trailing
// separator marker.
func (n *Navigator) CreateEntry(ctx context.Context, name string, isDir bool) error {
	path := n.EntryPath(name)
	var err error
	if isDir {
		err = n.store.CreateDir(ctx, path)
	} else {
		err = n.store.CreateFile(ctx, path)
	}
	if err != nil {
		n.log.Debug().Err(err).Str("path", path).Bool("dir", isDir).Msg("create failed")
		return err
	}
	n.log.Debug().Str("path", path).Bool("dir", isDir).Msg("created")
	return nil
}

// DeleteEntry removes the named entry and, for directories, all of its
// descendants. Confirming destructive intent is the caller's job.
func (n *Navigator) DeleteEntry(ctx context.Context, name string) error {
	path := n.EntryPath(name)
	if err := n.store.Delete(ctx, path); err != nil {
		n.log.Debug().Err(err).Str("path", path).Msg("delete failed")
		return err
	}
	n.log.Debug().Str("path", path).Msg("deleted")
	return nil
}

// RenameEntry renames an entry of the current directory in place.
func (n *Navigator) RenameEntry(ctx context.Context, oldName, newName string) error {
	oldPath := n.EntryPath(oldName)
	newPath := n.EntryPath(newName)
	if err := n.store.Rename(ctx, oldPath, newPath); err != nil {
		n.log.Debug().Err(err).Str("from", oldPath).Str("to", newPath).Msg("rename failed")
		return err
	}
	n.log.Debug().Str("from", oldPath).Str("to", newPath).Msg("renamed")
	return nil
}
