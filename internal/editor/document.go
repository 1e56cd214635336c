package editor

import (
	"github.com/dshills/feather/internal/engine/gapbuf"
)

// ByteOffset is the logical byte position type shared with gapbuf.
type ByteOffset = gapbuf.ByteOffset

// Document is one open file: the text, the cursor, and the selection
// anchor. It is mutated exclusively through Session operations.
type Document struct {
	buf       *gapbuf.Buffer
	name      string
	pos       ByteOffset
	line      int64      // count of newlines before pos
	selectPos ByteOffset // -1 when no selection is active
	modified  bool
}

// NewDocument creates a document holding content. The name is opaque;
// it is only displayed and offered as the default save target.
func NewDocument(name string, content []byte, opts ...gapbuf.Option) *Document {
	return &Document{
		buf:       gapbuf.NewFromBytes(content, opts...),
		name:      name,
		selectPos: -1,
	}
}

// Name returns the document's display name.
func (d *Document) Name() string {
	return d.name
}

// Len returns the document length in bytes.
func (d *Document) Len() ByteOffset {
	return d.buf.Len()
}

// Pos returns the cursor's logical offset.
func (d *Document) Pos() ByteOffset {
	return d.pos
}

// Line returns the cursor's zero-based line number.
func (d *Document) Line() int64 {
	return d.line
}

// Modified reports whether the document changed since it was loaded.
func (d *Document) Modified() bool {
	return d.modified
}

// Selecting reports whether a selection anchor is active.
func (d *Document) Selecting() bool {
	return d.selectPos >= 0
}

// Bytes returns a copy of the full document content.
func (d *Document) Bytes() []byte {
	return d.buf.Slice(0, d.buf.Len())
}

// String returns the full document content. Intended for tests.
func (d *Document) String() string {
	return d.buf.String()
}
