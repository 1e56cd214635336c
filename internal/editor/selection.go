package editor

// ToggleMark sets the selection anchor at the cursor, or clears an
// active selection.
func (s *Session) ToggleMark() {
	if s.doc.selectPos >= 0 {
		s.doc.selectPos = -1
	} else {
		s.doc.selectPos = s.doc.pos
	}
}

// region returns the selection normalized to an ascending range.
func (s *Session) region() (lo, hi ByteOffset, ok bool) {
	if s.doc.selectPos < 0 {
		return 0, 0, false
	}
	lo, hi = s.doc.selectPos, s.doc.pos
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// CopyRegion stores the selected bytes in the clipboard and clears
// the selection. The document is untouched. An empty selection clears
// the anchor without touching the clipboard. On a clipboard error the
// selection is kept.
func (s *Session) CopyRegion() error {
	lo, hi, ok := s.region()
	if !ok {
		return nil
	}
	if lo == hi {
		s.doc.selectPos = -1
		return nil
	}
	if err := s.clip.Put(s.doc.buf.Slice(lo, hi)); err != nil {
		return err
	}
	s.doc.selectPos = -1
	return nil
}

// CutRegion copies the selection to the clipboard, then deletes it
// one byte at a time through the normal delete paths so the screen
// stays synced. On a clipboard error nothing is deleted and the
// selection is kept.
func (s *Session) CutRegion() error {
	lo, hi, ok := s.region()
	if !ok {
		return nil
	}
	if lo == hi {
		s.doc.selectPos = -1
		return nil
	}
	if err := s.clip.Put(s.doc.buf.Slice(lo, hi)); err != nil {
		return err
	}
	s.doc.selectPos = -1

	n := hi - lo
	if s.doc.pos == hi {
		for i := ByteOffset(0); i < n; i++ {
			s.DeleteBackward()
		}
	} else {
		for i := ByteOffset(0); i < n; i++ {
			s.DeleteForward()
		}
	}
	return nil
}

// PasteRegion replays the clipboard through the insert path, so
// newlines trigger the usual line-insert and scroll handling.
// Repeated pastes reinsert the same content. On a full buffer the
// bytes inserted so far remain.
func (s *Session) PasteRegion() error {
	for _, c := range s.clip.Bytes() {
		if err := s.InsertChar(c); err != nil {
			return err
		}
	}
	return nil
}
