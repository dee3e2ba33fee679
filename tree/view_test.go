package tree

import (
	"reflect"
	"testing"
)

func demoView(t *testing.T) *View {
	t.Helper()
	paths := []string{"a/b/c.txt", "a/b/d.txt", "a/e.txt"}
	table := Build(paths, dummyLookup(paths...))
	return NewView(table, "capture one.zip", "https://profiler.example", "calltree")
}

func rowIndex(v *View, path string) int {
	for i := 0; i < v.table.Length; i++ {
		if v.table.Path[i] == path {
			return i
		}
	}
	return -1
}

func TestRootsAndChildren(t *testing.T) {
	v := demoView(t)

	roots := v.Roots()
	if len(roots) != 1 || v.table.Path[roots[0]] != "a" {
		t.Fatalf("Wrong roots: %#v", roots)
	}

	kids := v.Children(roots[0])
	if len(kids) != 2 ||
		v.table.Path[kids[0]] != "a/b" || v.table.Path[kids[1]] != "a/e.txt" {
		t.Errorf("Wrong children, or wrong order: %#v", kids)
	}
}

func TestChildrenCacheIsolation(t *testing.T) {
	v := demoView(t)
	ab := rowIndex(v, "a/b")

	first := v.Children(ab)
	// Querying other parents must not disturb the cached sequence
	v.Children(NoParent)
	v.Children(rowIndex(v, "a/e.txt"))
	second := v.Children(ab)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Unstable children: %#v then %#v", first, second)
	}
}

func TestHasChildren(t *testing.T) {
	v := demoView(t)
	if !v.HasChildren(rowIndex(v, "a/b")) {
		t.Errorf("a/b should have children")
	}
	if v.HasChildren(rowIndex(v, "a/b/c.txt")) {
		t.Errorf("a/b/c.txt should not have children")
	}
}

func TestAllDescendants(t *testing.T) {
	v := demoView(t)
	a := rowIndex(v, "a")

	desc := v.AllDescendants(a)
	if len(desc) != 4 {
		t.Errorf("Wrong descendant set: %#v", desc)
	}
	if _, found := desc[a]; found {
		t.Errorf("A row must never be its own descendant")
	}

	leaf := v.AllDescendants(rowIndex(v, "a/e.txt"))
	if len(leaf) != 0 {
		t.Errorf("Leaf should have no descendants: %#v", leaf)
	}
}

func TestParentAndDepth(t *testing.T) {
	v := demoView(t)
	a := rowIndex(v, "a")
	ab := rowIndex(v, "a/b")

	if v.Parent(a) != NoParent {
		t.Errorf("Root should have no parent: %#v", v.Parent(a))
	}
	if v.Parent(ab) != a {
		t.Errorf("Wrong parent for a/b: %#v", v.Parent(ab))
	}
	if v.Depth(a) != 0 || v.Depth(ab) != 1 || v.Depth(rowIndex(v, "a/b/c.txt")) != 2 {
		t.Errorf("Wrong depths")
	}
}

func TestSameTable(t *testing.T) {
	paths := []string{"a/b.txt"}
	table := Build(paths, dummyLookup(paths...))

	v1 := NewView(table, "x.zip", "https://profiler.example", "calltree")
	v2 := NewView(table, "x.zip", "https://profiler.example", "flame-graph")
	if !v1.SameTable(v2) {
		t.Errorf("Views over one table should compare equal")
	}
	if v1.SameTable(nil) {
		t.Errorf("Nil view should not compare equal")
	}

	v3 := NewView(Build(paths, dummyLookup(paths...)), "x.zip",
		"https://profiler.example", "calltree")
	if v1.SameTable(v3) {
		t.Errorf("Views over rebuilt tables should not compare equal")
	}
}

func TestDisplayLeafURL(t *testing.T) {
	v := demoView(t)

	d := v.Display(rowIndex(v, "a/b/c.txt"))
	if d.Name != "c.txt" {
		t.Errorf("Wrong display name: %#v", d)
	}
	expected := "https://profiler.example/from-url/capture%20one.zip/calltree/?file=a%2Fb%2Fc.txt"
	if d.URL != expected {
		t.Errorf("Wrong URL\nGot %#v\nExp %#v", d.URL, expected)
	}

	// Anything with children, including file-bearing directories, has no URL
	dir := v.Display(rowIndex(v, "a/b"))
	if dir.URL != "" {
		t.Errorf("Directory should not be navigable: %#v", dir)
	}

	// Memoized result is stable
	again := v.Display(rowIndex(v, "a/b/c.txt"))
	if !reflect.DeepEqual(d, again) {
		t.Errorf("Unstable display data: %#v then %#v", d, again)
	}
}

func TestNewViewInvalidRoute(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Errorf("NewView did not panic on an unknown route")
		}
	}()

	paths := []string{"a/b.txt"}
	NewView(Build(paths, dummyLookup(paths...)), "x.zip",
		"https://profiler.example", "bogus-route")
}

func TestValidateRoute(t *testing.T) {
	if err := ValidateRoute("flame-graph"); err != nil {
		t.Errorf("flame-graph should be recognized: %#v", err)
	}
	if err := ValidateRoute("flamegraph"); err == nil {
		t.Errorf("flamegraph should not be recognized")
	}
}
