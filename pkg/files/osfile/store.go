package osfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/owltech/owlfm/pkg/files"
)

var osReadDir = os.ReadDir
var osReadFile = os.ReadFile
var osWriteFile = os.WriteFile
var osStat = os.Stat
var osLstat = os.Lstat
var osMkdirAll = os.MkdirAll
var osCreate = os.Create
var osRemoveAll = os.RemoveAll
var osRename = os.Rename
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store is the local OS filesystem.
type Store struct {
	title string
}

func NewStore() *Store {
	store := Store{}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) ReadDir(ctx context.Context, dirPath string) ([]files.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	children, err := osReadDir(dirPath)
	if err != nil {
		return nil, &files.Error{Op: files.OpList, Path: dirPath, Err: err}
	}
	entries := make([]files.Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, files.NewEntry(child.Name(), s.childKind(dirPath, child)))
	}
	files.SortEntries(entries)
	return entries, nil
}

// childKind resolves symlinks through a stat probe so that a link to a
// directory is navigable, same as the type test the listing is built from.
func (s *Store) childKind(dirPath string, child os.DirEntry) files.Kind {
	if child.IsDir() {
		return files.KindDir
	}
	if child.Type()&os.ModeSymlink != 0 {
		if info, err := osStat(filepath.Join(dirPath, child.Name())); err == nil && info.IsDir() {
			return files.KindDir
		}
	}
	return files.KindFile
}

func (s *Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := osReadFile(path)
	if err != nil {
		return nil, &files.Error{Op: files.OpRead, Path: path, Err: err}
	}
	return data, nil
}

func (s *Store) Stat(ctx context.Context, path string) (files.Meta, error) {
	if err := ctx.Err(); err != nil {
		return files.Meta{}, err
	}
	info, err := osStat(path)
	if err != nil {
		return files.Meta{}, &files.Error{Op: files.OpStat, Path: path, Err: err}
	}
	return files.Meta{Size: info.Size(), ModTime: info.ModTime(), Dir: info.IsDir()}, nil
}

func (s *Store) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if info, err := osStat(path); err == nil && info.IsDir() {
		return &files.Error{Op: files.OpWrite, Path: path, Err: files.ErrIsDirectory}
	}
	if err := osWriteFile(path, data, 0644); err != nil {
		return &files.Error{Op: files.OpWrite, Path: path, Err: err}
	}
	return nil
}

func (s *Store) CreateDir(ctx context.Context, path string) error {
	if err := s.checkNotExists(ctx, path); err != nil {
		return err
	}
	if err := osMkdirAll(path, 0755); err != nil {
		return &files.Error{Op: files.OpCreate, Path: path, Err: err}
	}
	return nil
}

func (s *Store) CreateFile(ctx context.Context, path string) error {
	if err := s.checkNotExists(ctx, path); err != nil {
		return err
	}
	f, err := osCreate(path)
	if err != nil {
		return &files.Error{Op: files.OpCreate, Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &files.Error{Op: files.OpCreate, Path: path, Err: err}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := osRemoveAll(path); err != nil {
		return &files.Error{Op: files.OpDelete, Path: path, Err: err}
	}
	return nil
}

func (s *Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osLstat(newPath); err == nil {
		return &files.Error{Op: files.OpRename, Path: newPath, Err: files.ErrAlreadyExists}
	}
	if err := osRename(oldPath, newPath); err != nil {
		return &files.Error{Op: files.OpRename, Path: oldPath, Err: err}
	}
	return nil
}

// checkNotExists is the pre-flight probe shared by CreateDir and CreateFile:
// anything already occupying the path, of any type, blocks creation.
func (s *Store) checkNotExists(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osLstat(path); err == nil {
		return &files.Error{Op: files.OpCreate, Path: path, Err: files.ErrAlreadyExists}
	} else if !os.IsNotExist(err) {
		return &files.Error{Op: files.OpCreate, Path: path, Err: err}
	}
	return nil
}
