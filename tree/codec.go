package tree

import (
	"fmt"

	"github.com/btidor/ziptree/container"
	"github.com/vmihailenco/msgpack/v5"
)

var _ msgpack.CustomEncoder = (*PathTable)(nil)
var _ msgpack.CustomDecoder = (*PathTable)(nil)

// EncodeMsgpack writes the table column-by-column. Entry handles are process
// state and can't travel, so the file column is reduced to presence flags;
// Rebind restores the handles against a fresh listing after decoding.
func (t *PathTable) EncodeMsgpack(e *msgpack.Encoder) error {
	return e.EncodeMulti(t.Prefix, t.Path, t.PartName, t.fileRows, t.Depth)
}

func (t *PathTable) DecodeMsgpack(d *msgpack.Decoder) error {
	err := d.DecodeMulti(&t.Prefix, &t.Path, &t.PartName, &t.fileRows, &t.Depth)
	if err != nil {
		return err
	}
	if len(t.Path) != len(t.Prefix) || len(t.Path) != len(t.PartName) ||
		len(t.Path) != len(t.fileRows) || len(t.Path) != len(t.Depth) {
		return fmt.Errorf("corrupt table: ragged columns")
	}
	t.Length = len(t.Path)
	t.File = make([]*container.Entry, t.Length)
	return nil
}

// Rebind points the file rows of a decoded table at the entries of a freshly
// opened listing of the same container. Paths missing from the listing (the
// container changed underneath the cache) are left nil.
func (t *PathTable) Rebind(lookup map[string]*container.Entry) {
	for i := 0; i < t.Length; i++ {
		if t.fileRows[i] {
			t.File[i] = lookup[t.Path[i]]
		}
	}
}
