// Package tree converts a container's flat path listing into a hierarchical,
// randomly-indexable table, and answers the parent/child/descendant queries a
// UI needs to browse it without re-parsing paths on every interaction.
package tree

import (
	"strings"

	"github.com/btidor/ziptree/container"
)

// A PathTable is a columnar index over every distinct path segment in a
// listing. Each row is one segment, identified by its dense index; Prefix
// links a row to its parent row (NoParent for roots). Rows with a non-nil
// File are actual files from the container; the rest are the directories
// implied between them.
//
// A table is built in one pass and never mutated afterwards, so it can be
// shared by reference across any number of readers.
type PathTable struct {
	Prefix   []int
	Path     []string
	PartName []string
	File     []*container.Entry
	Depth    []int
	Length   int

	fileRows []bool
}

// NoParent is the Prefix value for root rows, and the parent key that selects
// them from Children.
const NoParent = -1

// Build assembles a PathTable from full entry paths, in input order, with
// lookup supplying the entry handle for each full path. Shared directory
// prefixes are deduplicated: the first path to introduce a prefix allocates
// its row, and later paths reuse it, so children end up in first-discovery
// order rather than lexical order. Empty segments from doubled or stray
// separators are dropped.
func Build(paths []string, lookup map[string]*container.Entry) *PathTable {
	var t = &PathTable{}
	var rows = make(map[string]int)

	for _, full := range paths {
		var parts []string
		for _, part := range strings.Split(full, "/") {
			if part != "" {
				parts = append(parts, part)
			}
		}

		var prefix = NoParent
		var cumulative string
		for depth, part := range parts {
			if depth == 0 {
				cumulative = part
			} else {
				cumulative += "/" + part
			}

			if idx, found := rows[cumulative]; found {
				prefix = idx
				continue
			}

			idx := t.Length
			t.Prefix = append(t.Prefix, prefix)
			t.Path = append(t.Path, cumulative)
			t.PartName = append(t.PartName, part)
			t.Depth = append(t.Depth, depth)
			if depth == len(parts)-1 {
				t.File = append(t.File, lookup[full])
				t.fileRows = append(t.fileRows, true)
			} else {
				t.File = append(t.File, nil)
				t.fileRows = append(t.fileRows, false)
			}
			t.Length++
			rows[cumulative] = idx
			prefix = idx
		}
	}
	return t
}

// MaxDepth returns the largest depth across all rows, or 0 for a nil or
// empty table.
func (t *PathTable) MaxDepth() int {
	if t == nil {
		return 0
	}
	var max int
	for _, d := range t.Depth {
		if d > max {
			max = d
		}
	}
	return max
}
