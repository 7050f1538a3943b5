// Package nav owns the "what directory am I looking at" state and exposes
// the filesystem operations of the browser. It is synchronous and meant to
// be driven from a single event loop; it holds no locks.
package nav

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/owltech/owlfm/pkg/files"
)

// Navigator is the single source of truth for the current directory path.
// The path always names the directory being displayed; CRUD targets are
// joined to it on demand and never stored.
type Navigator struct {
	store       files.Store
	currentPath string
	log         zerolog.Logger
}

type Option func(n *Navigator)

func WithLogger(log zerolog.Logger) Option {
	return func(n *Navigator) {
		n.log = log
	}
}

// New creates a Navigator rooted at startDir. The path is cleaned but not
// verified: the first List reports it unreadable if it is.
func New(store files.Store, startDir string, options ...Option) *Navigator {
	n := &Navigator{
		store:       store,
		currentPath: filepath.Clean(startDir),
		log:         zerolog.Nop(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Navigator) Store() files.Store {
	return n.store
}

func (n *Navigator) CurrentPath() string {
	return n.currentPath
}

// EntryPath joins a bare entry name to the current directory.
func (n *Navigator) EntryPath(name string) string {
	return filepath.Join(n.currentPath, name)
}

// List returns the entries of the current directory, sorted by
// case-insensitive name order. A fresh listing is taken on every call.
func (n *Navigator) List(ctx context.Context) ([]files.Entry, error) {
	entries, err := n.store.ReadDir(ctx, n.currentPath)
	if err != nil {
		n.log.Debug().Err(err).Str("dir", n.currentPath).Msg("list failed")
		return nil, err
	}
	n.log.Debug().Str("dir", n.currentPath).Int("entries", len(entries)).Msg("listed")
	return entries, nil
}

// Descend moves the current directory into the named child. The child must
// be a directory at the time of the call.
func (n *Navigator) Descend(ctx context.Context, childName string) (string, error) {
	childPath := n.EntryPath(childName)
	meta, err := n.store.Stat(ctx, childPath)
	if err != nil {
		return n.currentPath, err
	}
	if !meta.Dir {
		return n.currentPath, &files.Error{Op: files.OpList, Path: childPath, Err: files.ErrNotADirectory}
	}
	n.currentPath = childPath
	n.log.Debug().Str("dir", childPath).Msg("descended")
	return n.currentPath, nil
}

// Ascend moves the current directory to its parent. At the filesystem root,
// where the parent equals the current path, it is a no-op.
func (n *Navigator) Ascend() string {
	parent := filepath.Dir(n.currentPath)
	if parent == n.currentPath {
		return n.currentPath
	}
	n.currentPath = parent
	n.log.Debug().Str("dir", parent).Msg("ascended")
	return n.currentPath
}
