package editor

import (
	"github.com/dshills/feather/internal/engine/clip"
	"github.com/dshills/feather/internal/render"
)

// DefaultTabStop is the column multiple the Tab key advances to.
const DefaultTabStop = 4

// Session is the live editing state for one document: the document,
// its viewport, the shared clipboard, and the frame of screen deltas
// pending for the renderer.
type Session struct {
	doc  *Document
	view *Viewport
	clip *clip.Store

	wishX   int // column a vertical move tries to restore; -1 unset
	col     int
	width   int
	tabStop int

	frame       []render.Delta
	painted     render.Status
	statusDirty bool
	notice      string
}

// SessionOption is a functional option for configuring a Session.
type SessionOption func(*Session)

// WithTabStop sets the tab stop width in columns.
// Values below 1 are ignored.
func WithTabStop(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.tabStop = n
		}
	}
}

// NewSession creates a session over doc. Call Resize before the first
// operation to establish the screen geometry.
func NewSession(doc *Document, clipStore *clip.Store, opts ...SessionOption) *Session {
	s := &Session{
		doc:     doc,
		view:    &Viewport{rows: 1},
		clip:    clipStore,
		wishX:   -1,
		tabStop: DefaultTabStop,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Doc returns the session's document.
func (s *Session) Doc() *Document {
	return s.doc
}

// View returns the session's viewport.
func (s *Session) View() *Viewport {
	return s.view
}

// Col returns the cursor's logical column on its line.
func (s *Session) Col() int {
	return s.col
}

// Resize establishes the screen geometry and repaints. The window is
// re-anchored when the new geometry would leave the cursor off
// screen.
func (s *Session) Resize(width, rows int) {
	if width < 1 {
		width = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.width = width
	s.view.rows = rows
	s.view.recompute(s.doc.buf)
	if s.doc.line < s.view.topLine || s.doc.line > s.view.bottomLine() {
		s.anchor()
	}
	s.Redraw()
}

// anchor re-derives the window so the cursor line sits mid-screen.
func (s *Session) anchor() {
	top := s.doc.line - int64(s.view.rows/2)
	if top < 0 {
		top = 0
	}
	off := s.doc.buf.LineStart(s.doc.pos)
	line := s.doc.line
	for line > top && off > 0 {
		off = s.doc.buf.LineStart(off - 1)
		line--
	}
	s.view.start = off
	s.view.topLine = line
	s.view.recompute(s.doc.buf)
}

// Redraw repaints every content row from the window and forces a
// status repaint. The one deliberately non-incremental path.
func (s *Session) Redraw() {
	off := s.view.start
	row := 0
	for ; row < s.view.rows && off < s.doc.buf.Len(); row++ {
		s.drawLineRow(row, off)
		off = nextLineStart(s.doc.buf, off)
	}
	for ; row < s.view.rows; row++ {
		s.emit(render.MoveCursor(row, 0), render.ClearToEOL())
	}
	s.statusDirty = true
}

// TakeFrame appends the status repaint when due, positions the
// cursor, and returns the pending frame, leaving it empty.
func (s *Session) TakeFrame() []render.Delta {
	st := render.Status{
		Name:      s.doc.name,
		Line:      s.doc.line + 1,
		Modified:  s.doc.modified,
		Selecting: s.doc.selectPos >= 0,
		Notice:    s.notice,
	}
	if s.statusDirty || st != s.painted {
		s.emit(render.SetReverse(true),
			render.MoveCursor(s.view.rows, 0),
			render.PutText(st.Compose(s.width)),
			render.SetReverse(false))
		s.painted = st
		s.statusDirty = false
	}
	s.emit(render.MoveCursor(s.cursorRow(), s.clampCol()))

	f := s.frame
	s.frame = nil
	return f
}

// InvalidateStatus forces a status repaint on the next TakeFrame.
// Prompts call it after drawing over the status row.
func (s *Session) InvalidateStatus() {
	s.statusDirty = true
}

// SetNotice shows msg on the status row in place of the regular bar.
func (s *Session) SetNotice(msg string) {
	s.notice = msg
}

// ClearNotice removes a notice.
func (s *Session) ClearNotice() {
	s.notice = ""
}

func (s *Session) emit(ds ...render.Delta) {
	s.frame = append(s.frame, ds...)
}

// cursorRow returns the cursor's screen row.
func (s *Session) cursorRow() int {
	return int(s.doc.line - s.view.topLine)
}

// clampCol returns the cursor column clipped to the screen. Lines
// wider than the screen are displayed truncated; the cursor pins to
// the right edge while the logical column runs on.
func (s *Session) clampCol() int {
	if s.col >= s.width {
		return s.width - 1
	}
	return s.col
}

// syncCol re-derives the column from the cursor offset. The scan is
// bounded by the length of the cursor's line.
func (s *Session) syncCol() {
	s.col = int(s.doc.pos - s.doc.buf.LineStart(s.doc.pos))
}

// drawText draws [start, end) at the current cursor, clipped to the
// screen width from column col. Callers pass line-bounded ranges so
// no newline is ever drawn.
func (s *Session) drawText(col int, start, end ByteOffset) {
	if start >= end {
		return
	}
	max := ByteOffset(s.width - col)
	if max <= 0 {
		return
	}
	if end-start > max {
		end = start + max
	}
	s.emit(render.PutText(string(s.doc.buf.Slice(start, end))))
}

// drawLineRow paints the line starting at off onto row from column 0.
func (s *Session) drawLineRow(row int, off ByteOffset) {
	le := s.doc.buf.LineEnd(off)
	s.emit(render.MoveCursor(row, 0))
	s.drawText(0, off, le)
	if int(le-off) < s.width {
		s.emit(render.ClearToEOL())
	}
}

// scrollDown reveals the line above the window: a blank row is
// inserted at the top and the new top line drawn onto it.
func (s *Session) scrollDown() {
	s.view.scrollDown(s.doc.buf)
	s.emit(render.MoveCursor(0, 0), render.InsertLine())
	s.drawText(0, s.view.start, s.doc.buf.LineEnd(s.view.start))
}

// scrollUp reveals the line below the window: the region scrolls up
// one row and the entering line is drawn onto the exposed bottom row.
func (s *Session) scrollUp() {
	exposed := s.view.end
	s.view.scrollUp(s.doc.buf)
	s.emit(render.ScrollUp(), render.MoveCursor(s.view.rows-1, 0))
	s.drawText(0, exposed, s.doc.buf.LineEnd(exposed))
}

// drawExposedBottom draws the window's last line onto the bottom
// content row after a line deletion pulled it into view.
func (s *Session) drawExposedBottom() {
	if s.view.nlines < s.view.rows {
		return
	}
	bs := s.doc.buf.LineStart(s.view.end - 1)
	s.emit(render.MoveCursor(s.view.rows-1, 0))
	s.drawText(0, bs, s.doc.buf.LineEnd(bs))
}

// adjustMarkInsert keeps the selection anchor on its byte after an
// insertion at off.
func (s *Session) adjustMarkInsert(off ByteOffset) {
	if s.doc.selectPos >= off {
		s.doc.selectPos++
	}
}

// adjustMarkDelete keeps the selection anchor on its byte after a
// deletion of n bytes at off.
func (s *Session) adjustMarkDelete(off, n ByteOffset) {
	if s.doc.selectPos > off {
		s.doc.selectPos -= n
		if s.doc.selectPos < off {
			s.doc.selectPos = off
		}
	}
}
