// Package container reads the directory listing out of an archive container
// (a zip or tar.xz capture) and presents it as an ordered list of file paths
// plus a handle for each entry. Directory entries are dropped here: the tree
// builder only ever sees real files and infers the directories between them.
package container

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// An Entry is an opaque handle to a single file inside a container. The
// browsing layers never read its contents; Open is for callers that do.
type Entry struct {
	Path string
	Size int64

	open func() (io.ReadCloser, error)
}

func (e *Entry) Open() (io.ReadCloser, error) {
	return e.open()
}

// A Listing is the flat directory of a container: every file's full path in
// archive order, plus a lookup from full path to its entry.
type Listing struct {
	Paths  []string
	Lookup map[string]*Entry

	closer io.Closer
}

// Close releases the underlying container, if it is still open. Entries from
// a zip container cannot be Open'd afterwards.
func (l *Listing) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Open inspects the filename and dispatches to the matching container format.
func Open(name string) (*Listing, error) {
	switch {
	case strings.HasSuffix(name, ".zip"):
		return OpenZip(name)
	case strings.HasSuffix(name, ".tar.xz"):
		return OpenTarXz(name)
	default:
		return nil, fmt.Errorf("unrecognized container format: %#v", filepath.Base(name))
	}
}
