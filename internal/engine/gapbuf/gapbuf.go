package gapbuf

import "errors"

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrBufferFull       = errors.New("buffer full")
)

// ByteOffset represents a logical byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// DefaultChunk is the arena growth increment when none is configured.
const DefaultChunk = 1024

// Buffer is a gap buffer over bytes. The arena holds the text before the
// gap, the gap itself, and the text after the gap:
//
//	data[0:gapPos]                 text before the gap
//	data[gapPos:gapPos+gapSize]    the gap (contents undefined)
//	data[gapPos+gapSize:]          text after the gap
//
// The invariant gapPos+gapSize <= len(data) holds at all times.
// Deleted bytes are absorbed into the gap and never zeroed.
type Buffer struct {
	data    []byte
	gapPos  int
	gapSize int
	chunk   int
	maxSize int
}

// New creates an empty buffer whose arena is one growth chunk.
func New(opts ...Option) *Buffer {
	b := &Buffer{chunk: DefaultChunk}

	for _, opt := range opts {
		opt(b)
	}

	b.data = make([]byte, b.chunk)
	b.gapPos = 0
	b.gapSize = b.chunk
	return b
}

// NewFromBytes creates a buffer holding a copy of p, with one growth
// chunk of gap after it.
func NewFromBytes(p []byte, opts ...Option) *Buffer {
	b := &Buffer{chunk: DefaultChunk}

	for _, opt := range opts {
		opt(b)
	}

	b.data = make([]byte, len(p)+b.chunk)
	copy(b.data, p)
	b.gapPos = len(p)
	b.gapSize = b.chunk
	return b
}

// Len returns the logical text length in bytes.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.data) - b.gapSize)
}

// Cap returns the arena size in bytes, including the gap.
func (b *Buffer) Cap() ByteOffset {
	return ByteOffset(len(b.data))
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == b.gapSize
}

// ByteAt returns the byte at the given logical offset.
func (b *Buffer) ByteAt(off ByteOffset) (byte, bool) {
	pos := int(off)
	if pos < 0 || pos >= b.textLen() {
		return 0, false
	}
	if pos >= b.gapPos {
		pos += b.gapSize
	}
	return b.data[pos], true
}

// Slice returns a copy of the bytes in [start, end). The bounds are
// clamped to the valid range, so a caller can pass SearchForward results
// directly.
func (b *Buffer) Slice(start, end ByteOffset) []byte {
	n := b.textLen()
	lo, hi := int(start), int(end)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return nil
	}

	out := make([]byte, hi-lo)
	if hi <= b.gapPos {
		copy(out, b.data[lo:hi])
		return out
	}
	if lo >= b.gapPos {
		copy(out, b.data[lo+b.gapSize:hi+b.gapSize])
		return out
	}
	head := copy(out, b.data[lo:b.gapPos])
	copy(out[head:], b.data[b.gapPos+b.gapSize:hi+b.gapSize])
	return out
}

// String returns the full buffer content. Intended for small buffers
// and tests; prefer Slice for ranges.
func (b *Buffer) String() string {
	return string(b.Slice(0, b.Len()))
}

// Insert inserts a single byte at the given offset.
func (b *Buffer) Insert(off ByteOffset, c byte) error {
	pos := int(off)
	if pos < 0 || pos > b.textLen() {
		return ErrOffsetOutOfRange
	}
	if err := b.ensureGap(1); err != nil {
		return err
	}

	b.moveGap(pos)
	b.data[b.gapPos] = c
	b.gapPos++
	b.gapSize--
	return nil
}

// InsertBytes inserts p at the given offset.
func (b *Buffer) InsertBytes(off ByteOffset, p []byte) error {
	pos := int(off)
	if pos < 0 || pos > b.textLen() {
		return ErrOffsetOutOfRange
	}
	if len(p) == 0 {
		return nil
	}
	if err := b.ensureGap(len(p)); err != nil {
		return err
	}

	b.moveGap(pos)
	copy(b.data[b.gapPos:], p)
	b.gapPos += len(p)
	b.gapSize -= len(p)
	return nil
}

// Delete removes n bytes starting at the given offset. The bytes become
// gap space; no memory is released.
func (b *Buffer) Delete(off ByteOffset, n ByteOffset) error {
	pos, cnt := int(off), int(n)
	if pos < 0 || pos > b.textLen() {
		return ErrOffsetOutOfRange
	}
	if cnt < 0 || pos+cnt > b.textLen() {
		return ErrRangeInvalid
	}
	if cnt == 0 {
		return nil
	}

	b.moveGap(pos)
	b.gapSize += cnt
	return nil
}

// textLen is Len without the ByteOffset conversion, for internal use.
func (b *Buffer) textLen() int {
	return len(b.data) - b.gapSize
}

// moveGap relocates the gap so that it starts at logical position pos.
// Only the bytes between the old and new gap positions are copied.
func (b *Buffer) moveGap(pos int) {
	switch {
	case pos < b.gapPos:
		n := b.gapPos - pos
		copy(b.data[pos+b.gapSize:pos+b.gapSize+n], b.data[pos:pos+n])
	case pos > b.gapPos:
		n := pos - b.gapPos
		copy(b.data[b.gapPos:b.gapPos+n], b.data[b.gapPos+b.gapSize:b.gapPos+b.gapSize+n])
	default:
		return
	}
	b.gapPos = pos
}

// ensureGap grows the arena until the gap holds at least n bytes.
// Growth is by whole chunks, never by doubling, so a long insert run
// costs a bounded, predictable series of copies.
func (b *Buffer) ensureGap(n int) error {
	if b.gapSize >= n {
		return nil
	}

	need := n - b.gapSize
	growBy := (need + b.chunk - 1) / b.chunk * b.chunk
	newLen := len(b.data) + growBy
	if b.maxSize > 0 && newLen > b.maxSize {
		return ErrBufferFull
	}

	nd := make([]byte, newLen)
	copy(nd, b.data[:b.gapPos])
	tail := b.data[b.gapPos+b.gapSize:]
	copy(nd[newLen-len(tail):], tail)
	b.data = nd
	b.gapSize += growBy
	return nil
}
