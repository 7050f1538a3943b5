package files

import (
	"sort"

	"golang.org/x/text/cases"
)

// SortEntries orders entries by case-insensitive lexicographic name
// comparison. Names equal under case folding are tie-broken by their raw
// bytes, so the order is deterministic for any fixed entry set.
func SortEntries(entries []Entry) {
	caser := cases.Fold()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = caser.String(e.Name())
	}
	sort.Sort(&byFoldedName{entries: entries, keys: keys})
}

type byFoldedName struct {
	entries []Entry
	keys    []string
}

func (s *byFoldedName) Len() int { return len(s.entries) }

func (s *byFoldedName) Less(i, j int) bool {
	if s.keys[i] != s.keys[j] {
		return s.keys[i] < s.keys[j]
	}
	return s.entries[i].Name() < s.entries[j].Name()
}

func (s *byFoldedName) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
