package gapbuf

import "bytes"

// SearchForward returns the offset of the first occurrence of c at or
// after off. It returns Len() when c does not occur, so the result is
// always usable as an exclusive upper bound.
func (b *Buffer) SearchForward(off ByteOffset, c byte) ByteOffset {
	n := b.textLen()
	pos := int(off)
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		return ByteOffset(n)
	}

	if pos < b.gapPos {
		if i := bytes.IndexByte(b.data[pos:b.gapPos], c); i >= 0 {
			return ByteOffset(pos + i)
		}
		pos = b.gapPos
	}
	if i := bytes.IndexByte(b.data[pos+b.gapSize:], c); i >= 0 {
		return ByteOffset(pos + i)
	}
	return ByteOffset(n)
}

// SearchBackward returns the offset of the last occurrence of c at or
// before off. It returns -1 when c does not occur.
func (b *Buffer) SearchBackward(off ByteOffset, c byte) ByteOffset {
	n := b.textLen()
	pos := int(off)
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		return -1
	}

	if pos >= b.gapPos {
		after := b.data[b.gapPos+b.gapSize:]
		if i := bytes.LastIndexByte(after[:pos-b.gapPos+1], c); i >= 0 {
			return ByteOffset(b.gapPos + i)
		}
		pos = b.gapPos - 1
		if pos < 0 {
			return -1
		}
	}
	if i := bytes.LastIndexByte(b.data[:pos+1], c); i >= 0 {
		return ByteOffset(i)
	}
	return -1
}

// LineStart returns the offset of the first byte of the line containing
// off. An offset at a newline belongs to the line that newline ends.
func (b *Buffer) LineStart(off ByteOffset) ByteOffset {
	return b.SearchBackward(off-1, '\n') + 1
}

// LineEnd returns the offset of the newline ending the line containing
// off, or Len() for an unterminated final line.
func (b *Buffer) LineEnd(off ByteOffset) ByteOffset {
	return b.SearchForward(off, '\n')
}
