package container

import (
	"archive/tar"
	"bytes"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// OpenTarXz lists a tar.xz container. Tar is a stream format, so file
// contents are buffered in memory during the single pass; captures are small
// enough that this beats re-decompressing the whole stream per read.
func OpenTarXz(name string) (*Listing, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return nil, err
	}

	var listing = &Listing{
		Lookup: make(map[string]*Entry),
	}
	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if _, found := listing.Lookup[hdr.Name]; found {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, err
		}
		entry := &Entry{
			Path: hdr.Name,
			Size: hdr.Size,
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(data)), nil
			},
		}
		listing.Paths = append(listing.Paths, hdr.Name)
		listing.Lookup[hdr.Name] = entry
	}
	return listing, nil
}
