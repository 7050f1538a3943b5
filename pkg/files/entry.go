package files

import "strings"

// Kind tells whether an Entry is a plain file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is an immutable snapshot of a single directory child taken at
// listing time. It is not kept in sync with the filesystem: after any
// mutation the directory must be listed again.
type Entry struct {
	name string
	kind Kind
}

// NewEntry panics when name contains a path separator: entries are always
// addressed by bare name relative to the directory they were listed in.
func NewEntry(name string, kind Kind) Entry {
	if strings.ContainsAny(name, `/\`) {
		// It's OK to have panic here.
		panic("entry name can not contain a path separator: " + name)
	}
	return Entry{name: name, kind: kind}
}

func (e Entry) Name() string { return e.name }
func (e Entry) Kind() Kind   { return e.kind }

func (e Entry) IsDir() bool {
	return e.kind == KindDir
}

func (e Entry) String() string {
	if e.kind == KindDir {
		return e.name + "/"
	}
	return e.name
}
