package container

import "github.com/bmatcuk/doublestar"

// Filter narrows a listing to the entries matching the include globs (all
// entries, if none are given) and not matching any exclude glob. A pattern
// matches a path outright or as a directory prefix (`pattern/**`), so
// `include = ["src"]` keeps everything under src/.
func Filter(l *Listing, includes, excludes []string) *Listing {
	var filtered = &Listing{
		Lookup: make(map[string]*Entry),
		closer: l.closer,
	}

perfile:
	for _, p := range l.Paths {
		if len(includes) > 0 {
			included := false
			for _, include := range includes {
				if ok, _ := doublestar.Match(include, p); ok {
					included = true
				} else if ok, _ = doublestar.Match(include+"/**", p); ok {
					included = true
				}
			}
			if !included {
				continue perfile
			}
		}
		for _, exclude := range excludes {
			if ok, _ := doublestar.Match(exclude, p); ok {
				continue perfile
			} else if ok, _ = doublestar.Match(exclude+"/**", p); ok {
				continue perfile
			}
		}
		filtered.Paths = append(filtered.Paths, p)
		filtered.Lookup[p] = l.Lookup[p]
	}
	return filtered
}
