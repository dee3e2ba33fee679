package tree

import (
	"fmt"
	"net/url"
	"strings"
)

// A View wraps one PathTable with the query surface the UI browses through,
// memoizing derived results as they are first asked for. The table is shared
// and read-only; the caches belong to the view and die with it. Views are not
// safe for concurrent use from multiple goroutines — each view has a single
// logical owner.
type View struct {
	table       *PathTable
	containerID string
	origin      string
	route       string

	children map[int][]int
	display  map[int]DisplayData
}

// DisplayData is what the UI renders for one node. URL is set only on leaf
// files; directories (and anything else with children) are browsed via their
// children instead.
type DisplayData struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Index int    `json:"index"`
}

// NewView creates a view over a table for the named container. The origin is
// the base URL the UI is served from, injected here rather than read from any
// ambient location state. The route token must be one of the recognized view
// routes; an unknown token is a caller bug and panics, like URLMustParse.
func NewView(table *PathTable, containerID, origin, route string) *View {
	if err := ValidateRoute(route); err != nil {
		panic(err)
	}
	return &View{
		table:       table,
		containerID: containerID,
		origin:      strings.TrimSuffix(origin, "/"),
		route:       route,
		children:    make(map[int][]int),
		display:     make(map[int]DisplayData),
	}
}

// Roots returns the indices of all root-level rows, in discovery order.
func (v *View) Roots() []int {
	return v.Children(NoParent)
}

// Children returns the immediate children of the given row (or of the roots,
// for NoParent), in discovery order. The first query for a parent scans the
// whole table and memoizes; repeats are cache hits. Render-visible nodes are
// a small fraction of the tree, so the scans stay cheap in practice.
func (v *View) Children(parent int) []int {
	if kids, found := v.children[parent]; found {
		return kids
	}
	kids := []int{}
	for i := 0; i < v.table.Length; i++ {
		if v.table.Prefix[i] == parent {
			kids = append(kids, i)
		}
	}
	v.children[parent] = kids
	return kids
}

func (v *View) HasChildren(index int) bool {
	return len(v.Children(index)) > 0
}

// AllDescendants returns the set of every row below the given one. The table
// is acyclic by construction (prefix chains strictly decrease in depth), so a
// plain work stack terminates. The row itself is never in the result.
func (v *View) AllDescendants(index int) map[int]struct{} {
	var out = make(map[int]struct{})
	stack := append([]int(nil), v.Children(index)...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out[n] = struct{}{}
		stack = append(stack, v.Children(n)...)
	}
	return out
}

// Parent returns the row's parent index, or NoParent for a root.
func (v *View) Parent(index int) int {
	return v.table.Prefix[index]
}

func (v *View) Depth(index int) int {
	return v.table.Depth[index]
}

// SameTable reports whether both views wrap the identical table instance.
// Lets UI diffing short-circuit when the underlying container hasn't changed.
func (v *View) SameTable(other *View) bool {
	return other != nil && v.table == other.table
}

// Display returns the render data for a row, memoized on first computation.
func (v *View) Display(index int) DisplayData {
	if d, found := v.display[index]; found {
		return d
	}
	d := DisplayData{
		Name:  v.table.PartName[index],
		Index: index,
	}
	if !v.HasChildren(index) {
		d.URL = fmt.Sprintf("%s/from-url/%s/%s/?file=%s",
			v.origin, url.PathEscape(v.containerID), v.route,
			url.QueryEscape(v.table.Path[index]))
	}
	v.display[index] = d
	return d
}
