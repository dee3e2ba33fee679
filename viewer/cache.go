package viewer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btidor/ziptree/container"
	"github.com/btidor/ziptree/tree"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// cachedTable loads the table for a container from the on-disk cache, or
// builds it from the listing and writes the cache through. A cache file older
// than the container it indexes is stale and ignored.
func (s *Server) cachedTable(src, id string, listing *container.Listing) *tree.PathTable {
	if s.Config.CacheDir == "" {
		return tree.Build(listing.Paths, listing.Lookup)
	}

	cachePath := filepath.Join(s.Config.CacheDir, id+".ztix.zst")
	srcInfo, err := os.Stat(src)
	if err == nil {
		if info, err := os.Stat(cachePath); err == nil && info.ModTime().After(srcInfo.ModTime()) {
			if table, err := readTableCache(cachePath); err == nil {
				table.Rebind(listing.Lookup)
				return table
			} else {
				fmt.Printf("Warning: discarding table cache for %q: %v\n", id, err)
			}
		}
	}

	table := tree.Build(listing.Paths, listing.Lookup)
	if err := writeTableCache(cachePath, table); err != nil {
		fmt.Printf("Warning: could not write table cache for %q: %v\n", id, err)
	}
	return table
}

func readTableCache(name string) (*tree.PathTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var table tree.PathTable
	if err := msgpack.NewDecoder(zr).Decode(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

func writeTableCache(name string, table *tree.PathTable) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(table); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
