package files

import "time"

// Meta carries the stat-derived metadata of a single path.
type Meta struct {
	Size    int64
	ModTime time.Time
	Dir     bool
}
