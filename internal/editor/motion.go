package editor

// Motions report whether they moved the cursor. Page and goto rely on
// the flag to stop at the document edges.

// MoveLeft steps the cursor one byte back, crossing onto the previous
// line over a newline.
func (s *Session) MoveLeft() bool {
	s.wishX = -1
	if s.doc.pos == 0 {
		return false
	}
	s.doc.pos--
	ch, _ := s.doc.buf.ByteAt(s.doc.pos)
	if ch == '\n' {
		s.doc.line--
		s.syncCol()
		if s.doc.line < s.view.topLine {
			s.scrollDown()
		}
	} else {
		s.col--
	}
	return true
}

// MoveRight steps the cursor one byte forward, crossing onto the next
// line over a newline.
func (s *Session) MoveRight() bool {
	s.wishX = -1
	if s.doc.pos >= s.doc.buf.Len() {
		return false
	}
	ch, _ := s.doc.buf.ByteAt(s.doc.pos)
	s.doc.pos++
	if ch == '\n' {
		s.doc.line++
		s.col = 0
		if s.doc.line > s.view.bottomLine() {
			s.scrollUp()
		}
	} else {
		s.col++
	}
	return true
}

// MoveUp moves the cursor to the previous line, restoring the wish
// column where the line is long enough.
func (s *Session) MoveUp() bool {
	cs := s.doc.buf.LineStart(s.doc.pos)
	if cs == 0 {
		return false
	}
	if s.wishX < 0 {
		s.wishX = s.col
	}
	ps := s.doc.buf.LineStart(cs - 1)
	col := s.wishX
	if max := int(cs - 1 - ps); col > max {
		col = max
	}
	s.doc.pos = ps + ByteOffset(col)
	s.doc.line--
	s.col = col
	if s.doc.line < s.view.topLine {
		s.scrollDown()
	}
	return true
}

// MoveDown moves the cursor to the next line, restoring the wish
// column where the line is long enough.
func (s *Session) MoveDown() bool {
	nl := s.doc.buf.SearchForward(s.doc.pos, '\n')
	if nl >= s.doc.buf.Len() {
		return false
	}
	if s.wishX < 0 {
		s.wishX = s.col
	}
	next := nl + 1
	ne := s.doc.buf.SearchForward(next, '\n')
	col := s.wishX
	if max := int(ne - next); col > max {
		col = max
	}
	s.doc.pos = next + ByteOffset(col)
	s.doc.line++
	s.col = col
	if s.doc.line > s.view.bottomLine() {
		s.scrollUp()
	}
	return true
}

// MoveBOL jumps to the start of the cursor's line.
func (s *Session) MoveBOL() bool {
	s.wishX = -1
	cs := s.doc.buf.LineStart(s.doc.pos)
	if cs == s.doc.pos {
		return false
	}
	s.doc.pos = cs
	s.col = 0
	return true
}

// MoveEOL jumps onto the newline ending the cursor's line, or the end
// of an unterminated final line.
func (s *Session) MoveEOL() bool {
	s.wishX = -1
	le := s.doc.buf.LineEnd(s.doc.pos)
	if le == s.doc.pos {
		return false
	}
	cs := s.doc.buf.LineStart(s.doc.pos)
	s.doc.pos = le
	s.col = int(le - cs)
	return true
}

// PageUp repeats MoveUp for three quarters of the window height,
// stopping at the first line of the document.
func (s *Session) PageUp() bool {
	moved := false
	for i := 0; i < s.pageStep(); i++ {
		if !s.MoveUp() {
			break
		}
		moved = true
	}
	return moved
}

// PageDown repeats MoveDown for three quarters of the window height,
// stopping at the last line of the document.
func (s *Session) PageDown() bool {
	moved := false
	for i := 0; i < s.pageStep(); i++ {
		if !s.MoveDown() {
			break
		}
		moved = true
	}
	return moved
}

func (s *Session) pageStep() int {
	n := 3 * s.view.rows / 4
	if n < 1 {
		n = 1
	}
	return n
}

// GotoLine moves the cursor to the start of the 1-based line n,
// clamping past either end of the document.
func (s *Session) GotoLine(n int64) bool {
	target := n - 1
	if target < 0 {
		target = 0
	}
	moved := false
	for s.doc.line < target {
		if !s.MoveDown() {
			break
		}
		moved = true
	}
	for s.doc.line > target {
		if !s.MoveUp() {
			break
		}
		moved = true
	}
	if s.MoveBOL() {
		moved = true
	}
	return moved
}
