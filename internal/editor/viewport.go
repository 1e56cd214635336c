package editor

import (
	"github.com/dshills/feather/internal/engine/gapbuf"
)

// Viewport is the byte range [start, end) mapped onto the content
// rows. start is always a line start; end is the offset just past the
// last visible line. The range moves one line at a time: scrolling
// never jumps.
type Viewport struct {
	start   ByteOffset
	end     ByteOffset
	topLine int64
	rows    int
	nlines  int // lines covered by [start, end)
}

// Start returns the offset of the first visible byte.
func (v *Viewport) Start() ByteOffset {
	return v.start
}

// End returns the offset just past the last visible byte.
func (v *Viewport) End() ByteOffset {
	return v.end
}

// TopLine returns the line number of the window's first row.
func (v *Viewport) TopLine() int64 {
	return v.topLine
}

// Rows returns the number of content rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Lines returns how many document lines the window currently covers.
func (v *Viewport) Lines() int {
	return v.nlines
}

func (v *Viewport) bottomLine() int64 {
	return v.topLine + int64(v.rows) - 1
}

// recompute walks forward from start, counting line boundaries, to
// re-derive end. Called after every mutation; the walk is bounded by
// the window height.
func (v *Viewport) recompute(buf *gapbuf.Buffer) {
	off := v.start
	n := 0
	for n < v.rows && off < buf.Len() {
		nl := buf.SearchForward(off, '\n')
		if nl >= buf.Len() {
			off = buf.Len()
			n++
			break
		}
		off = nl + 1
		n++
	}
	v.end = off
	v.nlines = n
}

// scrollDown shifts the window one line toward the start of the
// document. start-2 skips the newline ending the line above, so the
// backward search lands on the boundary before it.
func (v *Viewport) scrollDown(buf *gapbuf.Buffer) {
	v.start = buf.SearchBackward(v.start-2, '\n') + 1
	v.topLine--
	v.recompute(buf)
}

// scrollUp shifts the window one line toward the end of the document.
func (v *Viewport) scrollUp(buf *gapbuf.Buffer) {
	v.start = nextLineStart(buf, v.start)
	v.topLine++
	v.recompute(buf)
}

// nextLineStart returns the offset of the line after the one
// containing off, or the buffer length when none follows.
func nextLineStart(buf *gapbuf.Buffer, off ByteOffset) ByteOffset {
	nl := buf.SearchForward(off, '\n')
	if nl >= buf.Len() {
		return buf.Len()
	}
	return nl + 1
}
