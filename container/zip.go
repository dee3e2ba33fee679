package container

import (
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// OpenZip lists a zip container. The zip stays open so entries can be read
// lazily; the caller owns the returned Listing's Close.
func OpenZip(name string) (*Listing, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}

	var listing = &Listing{
		Lookup: make(map[string]*Entry),
		closer: r,
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			// Explicit directory entry: the tree builder reconstructs
			// directories from file paths, so these carry no information.
			continue
		}
		if _, found := listing.Lookup[f.Name]; found {
			// Zips can technically contain duplicate names; first one wins,
			// matching the dedup behavior of the tree builder.
			continue
		}
		f := f
		entry := &Entry{
			Path: f.Name,
			Size: int64(f.UncompressedSize64),
			open: func() (io.ReadCloser, error) { return f.Open() },
		}
		listing.Paths = append(listing.Paths, f.Name)
		listing.Lookup[f.Name] = entry
	}
	return listing, nil
}
