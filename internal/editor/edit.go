package editor

import (
	"github.com/dshills/feather/internal/render"
)

// InsertChar inserts c at the cursor. A newline splits the screen row
// under the cursor; at the bottom row the window scrolls up first.
// Fails with gapbuf.ErrBufferFull when the arena cannot grow, leaving
// document and screen unchanged.
func (s *Session) InsertChar(c byte) error {
	s.wishX = -1
	if err := s.doc.buf.Insert(s.doc.pos, c); err != nil {
		return err
	}
	s.adjustMarkInsert(s.doc.pos)
	s.doc.pos++
	s.doc.modified = true

	if c == '\n' {
		s.insertedNewline()
	} else {
		s.emit(render.MoveCursor(s.cursorRow(), s.clampCol()), render.InsertChar(c))
		s.col++
		s.view.recompute(s.doc.buf)
	}
	return nil
}

// InsertTab inserts spaces up to the next tab stop through the normal
// insert path.
func (s *Session) InsertTab() error {
	n := s.tabStop - s.col%s.tabStop
	for i := 0; i < n; i++ {
		if err := s.InsertChar(' '); err != nil {
			return err
		}
	}
	return nil
}

// insertedNewline syncs the screen after a newline went in at pos-1.
// The text right of the cursor became a new line; it lands on the row
// below, or on the freshly scrolled bottom row.
func (s *Session) insertedNewline() {
	oldCol := s.clampCol()
	row := s.cursorRow()
	s.doc.line++
	s.col = 0
	tailEnd := s.doc.buf.LineEnd(s.doc.pos)

	if row >= s.view.rows-1 {
		s.view.scrollUp(s.doc.buf)
		s.emit(render.ScrollUp())
		if s.view.rows > 1 {
			s.emit(render.MoveCursor(s.view.rows-2, oldCol), render.ClearToEOL())
		}
		s.emit(render.MoveCursor(s.view.rows-1, 0))
		s.drawText(0, s.doc.pos, tailEnd)
		return
	}

	s.emit(render.MoveCursor(row, oldCol), render.ClearToEOL())
	s.emit(render.MoveCursor(row+1, 0), render.InsertLine())
	s.drawText(0, s.doc.pos, tailEnd)
	s.view.recompute(s.doc.buf)
}

// DeleteForward removes the byte under the cursor. Removing a newline
// joins the next line onto the cursor's row. A no-op at the end of
// the document.
func (s *Session) DeleteForward() bool {
	s.wishX = -1
	if s.doc.pos >= s.doc.buf.Len() {
		return false
	}
	ch, _ := s.doc.buf.ByteAt(s.doc.pos)
	_ = s.doc.buf.Delete(s.doc.pos, 1)
	s.adjustMarkDelete(s.doc.pos, 1)
	s.doc.modified = true

	if ch == '\n' {
		s.joinLines()
	} else {
		s.emit(render.MoveCursor(s.cursorRow(), s.clampCol()), render.DeleteChar())
		s.view.recompute(s.doc.buf)
	}
	return true
}

// DeleteBackward removes the byte before the cursor. Removing a
// newline joins the cursor's line onto the previous row, scrolling
// when that row is above the window. A no-op at the start of the
// document.
func (s *Session) DeleteBackward() bool {
	s.wishX = -1
	if s.doc.pos == 0 {
		return false
	}
	s.doc.pos--
	ch, _ := s.doc.buf.ByteAt(s.doc.pos)
	_ = s.doc.buf.Delete(s.doc.pos, 1)
	s.adjustMarkDelete(s.doc.pos, 1)
	s.doc.modified = true

	if ch == '\n' {
		s.doc.line--
		s.syncCol()
		if s.doc.line < s.view.topLine {
			s.joinAboveWindow()
		} else {
			s.joinLines()
		}
	} else {
		s.col--
		s.emit(render.MoveCursor(s.cursorRow(), s.clampCol()), render.DeleteChar())
		s.view.recompute(s.doc.buf)
	}
	return true
}

// joinLines syncs the screen after a newline was deleted with both
// joined lines inside the window: the remainder is appended to the
// cursor's row, the stale row below is removed, and the line pulled
// into view at the bottom is drawn.
func (s *Session) joinLines() {
	row := s.cursorRow()
	s.emit(render.MoveCursor(row, s.clampCol()))
	s.drawText(s.clampCol(), s.doc.pos, s.doc.buf.LineEnd(s.doc.pos))
	if row+1 < s.view.rows {
		s.emit(render.MoveCursor(row+1, 0), render.DeleteLine())
		s.view.recompute(s.doc.buf)
		s.drawExposedBottom()
		return
	}
	s.view.recompute(s.doc.buf)
}

// joinAboveWindow syncs the screen after a backward delete joined the
// top visible line onto a line above the window. The merged line
// becomes the new top row; the rows below already show the right
// lines.
func (s *Session) joinAboveWindow() {
	s.view.start = s.doc.buf.LineStart(s.doc.pos)
	s.view.topLine = s.doc.line
	s.view.recompute(s.doc.buf)
	s.drawLineRow(0, s.view.start)
}

// DeleteToEOL removes from the cursor to the newline ending the line,
// exclusive. A no-op with the cursor on the newline.
func (s *Session) DeleteToEOL() bool {
	s.wishX = -1
	le := s.doc.buf.LineEnd(s.doc.pos)
	n := le - s.doc.pos
	if n <= 0 {
		return false
	}
	_ = s.doc.buf.Delete(s.doc.pos, n)
	s.adjustMarkDelete(s.doc.pos, n)
	s.doc.modified = true
	s.emit(render.MoveCursor(s.cursorRow(), s.clampCol()), render.ClearToEOL())
	s.view.recompute(s.doc.buf)
	return true
}

// DeleteToBOL removes from the start of the line to the cursor,
// exclusive, and redraws the shortened line. A no-op at column 0.
func (s *Session) DeleteToBOL() bool {
	s.wishX = -1
	cs := s.doc.buf.LineStart(s.doc.pos)
	n := s.doc.pos - cs
	if n <= 0 {
		return false
	}
	_ = s.doc.buf.Delete(cs, n)
	s.adjustMarkDelete(cs, n)
	s.doc.pos = cs
	s.doc.modified = true
	s.col = 0
	s.drawLineRow(s.cursorRow(), cs)
	s.view.recompute(s.doc.buf)
	return true
}
