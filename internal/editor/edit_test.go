package editor

import (
	"errors"
	"testing"

	"github.com/dshills/feather/internal/engine/clip"
	"github.com/dshills/feather/internal/engine/gapbuf"
)

func TestInsertChar(t *testing.T) {
	s, m, r := newTestSession(t, "", 20, 5)

	if err := s.InsertChar('a'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	flush(s, r)

	if got := s.Doc().String(); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	if !s.Doc().Modified() {
		t.Error("expected modified")
	}
	if got := m.Row(0); got != "a" {
		t.Errorf("row 0: expected %q, got %q", "a", got)
	}
	if row, col := m.CursorPos(); row != 0 || col != 1 {
		t.Errorf("expected cursor at 0,1, got %d,%d", row, col)
	}
}

func TestTypingBuildsLines(t *testing.T) {
	s, m, r := newTestSession(t, "", 20, 5)

	for _, c := range []byte("ab\ncd") {
		if err := s.InsertChar(c); err != nil {
			t.Fatalf("insert %q: %v", c, err)
		}
	}
	flush(s, r)

	if got := s.Doc().Len(); got != 5 {
		t.Errorf("expected length 5, got %d", got)
	}
	if s.Doc().Line() != 1 || s.Doc().Pos() != 5 || s.Col() != 2 {
		t.Errorf("expected line 1 pos 5 col 2, got %d %d %d",
			s.Doc().Line(), s.Doc().Pos(), s.Col())
	}
	if m.Row(0) != "ab" || m.Row(1) != "cd" {
		t.Errorf("expected rows ab/cd, got %q/%q", m.Row(0), m.Row(1))
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	s, m, r := newTestSession(t, "hello\nworld\n", 20, 5)
	s.MoveRight()
	s.MoveRight()

	if err := s.InsertChar('\n'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	flush(s, r)

	if got := s.Doc().String(); got != "he\nllo\nworld\n" {
		t.Errorf("expected split document, got %q", got)
	}
	if s.Doc().Line() != 1 || s.Doc().Pos() != 3 || s.Col() != 0 {
		t.Errorf("expected line 1 pos 3 col 0, got %d %d %d",
			s.Doc().Line(), s.Doc().Pos(), s.Col())
	}
	for i, want := range []string{"he", "llo", "world"} {
		if got := m.Row(i); got != want {
			t.Errorf("row %d: expected %q, got %q", i, want, got)
		}
	}
	if row, col := m.CursorPos(); row != 1 || col != 0 {
		t.Errorf("expected cursor at 1,0, got %d,%d", row, col)
	}
}

func TestInsertNewlineAtLineEnd(t *testing.T) {
	s, m, r := newTestSession(t, "ab\ncd\n", 20, 5)
	s.MoveEOL()

	if err := s.InsertChar('\n'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	flush(s, r)

	if got := s.Doc().String(); got != "ab\n\ncd\n" {
		t.Errorf("expected empty line inserted, got %q", got)
	}
	for i, want := range []string{"ab", "", "cd"} {
		if got := m.Row(i); got != want {
			t.Errorf("row %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestInsertNewlineAtBottomScrolls(t *testing.T) {
	s, m, r := newTestSession(t, lines(4), 12, 3)
	s.GotoLine(3)
	s.MoveRight()
	s.MoveRight()

	if err := s.InsertChar('\n'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	flush(s, r)

	if got := s.Doc().String(); got != "l00\nl01\nl0\n2\nl03\n" {
		t.Errorf("unexpected document %q", got)
	}
	if s.Doc().Line() != 3 || s.Doc().Pos() != 11 {
		t.Errorf("expected line 3 pos 11, got %d %d", s.Doc().Line(), s.Doc().Pos())
	}
	if s.View().TopLine() != 1 || s.View().Start() != 4 || s.View().End() != 13 {
		t.Errorf("expected top 1 start 4 end 13, got %d %d %d",
			s.View().TopLine(), s.View().Start(), s.View().End())
	}
	for i, want := range []string{"l01", "l0", "2"} {
		if got := m.Row(i); got != want {
			t.Errorf("row %d: expected %q, got %q", i, want, got)
		}
	}
	if row, col := m.CursorPos(); row != 2 || col != 0 {
		t.Errorf("expected cursor at 2,0, got %d,%d", row, col)
	}
}

func TestInsertNewlineInOneRowWindow(t *testing.T) {
	s, m, r := newTestSession(t, "ab", 12, 1)
	s.MoveRight()

	if err := s.InsertChar('\n'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	flush(s, r)

	if got := s.Doc().String(); got != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got)
	}
	if got := m.Row(0); got != "b" {
		t.Errorf("expected row %q, got %q", "b", got)
	}
	if s.View().TopLine() != 1 {
		t.Errorf("expected top line 1, got %d", s.View().TopLine())
	}
}

func TestDeleteForward(t *testing.T) {
	s, m, r := newTestSession(t, "abc", 20, 3)

	if !s.DeleteForward() {
		t.Fatal("expected a delete")
	}
	flush(s, r)

	if got := s.Doc().String(); got != "bc" {
		t.Errorf("expected %q, got %q", "bc", got)
	}
	if got := m.Row(0); got != "bc" {
		t.Errorf("row 0: expected %q, got %q", "bc", got)
	}

	s.MoveEOL()
	if s.DeleteForward() {
		t.Error("expected no delete at document end")
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	s, m, r := newTestSession(t, "ab\ncd\nef\n", 20, 5)
	s.MoveEOL()

	if !s.DeleteForward() {
		t.Fatal("expected a delete")
	}
	flush(s, r)

	if got := s.Doc().String(); got != "abcd\nef\n" {
		t.Errorf("expected joined document, got %q", got)
	}
	if s.Doc().Line() != 0 || s.Doc().Pos() != 2 || s.Col() != 2 {
		t.Errorf("expected line 0 pos 2 col 2, got %d %d %d",
			s.Doc().Line(), s.Doc().Pos(), s.Col())
	}
	for i, want := range []string{"abcd", "ef", ""} {
		if got := m.Row(i); got != want {
			t.Errorf("row %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestJoinPullsNextLineIntoView(t *testing.T) {
	s, m, r := newTestSession(t, lines(4), 12, 2)
	s.MoveEOL()

	s.DeleteForward()
	flush(s, r)

	if got := s.Doc().String(); got != "l00l01\nl02\nl03\n" {
		t.Errorf("expected joined document, got %q", got)
	}
	if m.Row(0) != "l00l01" || m.Row(1) != "l02" {
		t.Errorf("expected rows l00l01/l02, got %q/%q", m.Row(0), m.Row(1))
	}
}

func TestDeleteBackward(t *testing.T) {
	s, m, r := newTestSession(t, "abc", 20, 3)
	s.MoveRight()
	s.MoveRight()

	if !s.DeleteBackward() {
		t.Fatal("expected a delete")
	}
	flush(s, r)

	if got := s.Doc().String(); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
	if s.Doc().Pos() != 1 || s.Col() != 1 {
		t.Errorf("expected pos 1 col 1, got %d %d", s.Doc().Pos(), s.Col())
	}
	if got := m.Row(0); got != "ac" {
		t.Errorf("row 0: expected %q, got %q", "ac", got)
	}
}

func TestDeleteBackwardDoesNothingAtStart(t *testing.T) {
	s, _, _ := newTestSession(t, "abc", 20, 3)

	if s.DeleteBackward() {
		t.Error("expected no delete at document start")
	}
	if got := s.Doc().Len(); got != 3 {
		t.Errorf("expected length 3, got %d", got)
	}
	if s.Doc().Pos() != 0 || s.Doc().Modified() {
		t.Errorf("expected untouched document, got pos %d modified %v",
			s.Doc().Pos(), s.Doc().Modified())
	}
}

func TestDeleteBackwardJoinsOnVisibleRow(t *testing.T) {
	s, m, r := newTestSession(t, lines(4), 12, 2)
	s.GotoLine(3)
	if s.View().TopLine() != 1 {
		t.Fatalf("setup: expected top line 1, got %d", s.View().TopLine())
	}

	s.DeleteBackward()
	flush(s, r)

	if got := s.Doc().String(); got != "l00\nl01l02\nl03\n" {
		t.Errorf("expected joined document, got %q", got)
	}
	if s.Doc().Line() != 1 || s.Doc().Pos() != 7 || s.Col() != 3 {
		t.Errorf("expected line 1 pos 7 col 3, got %d %d %d",
			s.Doc().Line(), s.Doc().Pos(), s.Col())
	}
	if m.Row(0) != "l01l02" || m.Row(1) != "l03" {
		t.Errorf("expected rows l01l02/l03, got %q/%q", m.Row(0), m.Row(1))
	}
}

func TestDeleteBackwardJoinsAboveWindow(t *testing.T) {
	s, m, r := newTestSession(t, lines(4), 12, 2)
	s.GotoLine(3)
	s.MoveUp()
	if s.View().TopLine() != 1 || s.Doc().Line() != 1 {
		t.Fatalf("setup: expected top 1 line 1, got %d %d",
			s.View().TopLine(), s.Doc().Line())
	}

	s.DeleteBackward()
	flush(s, r)

	if got := s.Doc().String(); got != "l00l01\nl02\nl03\n" {
		t.Errorf("expected joined document, got %q", got)
	}
	if s.Doc().Line() != 0 || s.View().TopLine() != 0 || s.View().Start() != 0 {
		t.Errorf("expected line 0 top 0 start 0, got %d %d %d",
			s.Doc().Line(), s.View().TopLine(), s.View().Start())
	}
	// The merged line replaces the top row; the row below already
	// shows the right line.
	if m.Row(0) != "l00l01" || m.Row(1) != "l02" {
		t.Errorf("expected rows l00l01/l02, got %q/%q", m.Row(0), m.Row(1))
	}
	if row, col := m.CursorPos(); row != 0 || col != 3 {
		t.Errorf("expected cursor at 0,3, got %d,%d", row, col)
	}
}

func TestDeleteToEOL(t *testing.T) {
	s, m, r := newTestSession(t, "hello\nworld\n", 20, 5)
	s.MoveRight()
	s.MoveRight()

	if !s.DeleteToEOL() {
		t.Fatal("expected a delete")
	}
	flush(s, r)

	if got := s.Doc().String(); got != "he\nworld\n" {
		t.Errorf("expected %q, got %q", "he\nworld\n", got)
	}
	if s.Doc().Pos() != 2 || s.Col() != 2 {
		t.Errorf("expected pos 2 col 2, got %d %d", s.Doc().Pos(), s.Col())
	}
	if got := m.Row(0); got != "he" {
		t.Errorf("row 0: expected %q, got %q", "he", got)
	}

	// Cursor now sits on the newline; nothing left to remove.
	if s.DeleteToEOL() {
		t.Error("expected no delete on the newline")
	}
}

func TestDeleteToBOL(t *testing.T) {
	s, m, r := newTestSession(t, "hello\nworld\n", 20, 5)

	if s.DeleteToBOL() {
		t.Error("expected no delete at column 0")
	}

	s.MoveRight()
	s.MoveRight()
	s.MoveRight()
	if !s.DeleteToBOL() {
		t.Fatal("expected a delete")
	}
	flush(s, r)

	if got := s.Doc().String(); got != "lo\nworld\n" {
		t.Errorf("expected %q, got %q", "lo\nworld\n", got)
	}
	if s.Doc().Pos() != 0 || s.Col() != 0 {
		t.Errorf("expected pos 0 col 0, got %d %d", s.Doc().Pos(), s.Col())
	}
	if got := m.Row(0); got != "lo" {
		t.Errorf("row 0: expected %q, got %q", "lo", got)
	}
}

func TestInsertTab(t *testing.T) {
	s, _, _ := newTestSession(t, "", 20, 3)

	if err := s.InsertTab(); err != nil {
		t.Fatalf("tab: %v", err)
	}
	if s.Col() != 4 {
		t.Errorf("expected col 4, got %d", s.Col())
	}

	if err := s.InsertChar('x'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertTab(); err != nil {
		t.Fatalf("tab: %v", err)
	}
	if got := s.Doc().String(); got != "    x   " {
		t.Errorf("expected %q, got %q", "    x   ", got)
	}
	if s.Col() != 8 {
		t.Errorf("expected col 8, got %d", s.Col())
	}
}

func TestInsertTabCustomStop(t *testing.T) {
	s := NewSession(NewDocument("t", nil), clip.New(), WithTabStop(8))
	s.Resize(40, 5)
	s.TakeFrame()

	if err := s.InsertTab(); err != nil {
		t.Fatalf("tab: %v", err)
	}
	if s.Col() != 8 || s.Doc().Len() != 8 {
		t.Errorf("expected col 8 len 8, got %d %d", s.Col(), s.Doc().Len())
	}
}

func TestInsertIntoFullBuffer(t *testing.T) {
	doc := NewDocument("t", []byte("abcd"), gapbuf.WithChunk(4), gapbuf.WithMaxSize(8))
	s := NewSession(doc, clip.New())
	s.Resize(20, 3)
	s.TakeFrame()

	for _, c := range []byte("wxyz") {
		if err := s.InsertChar(c); err != nil {
			t.Fatalf("insert %q: %v", c, err)
		}
	}

	err := s.InsertChar('!')
	if !errors.Is(err, gapbuf.ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	if got := s.Doc().String(); got != "wxyzabcd" {
		t.Errorf("expected document unchanged by failed insert, got %q", got)
	}
	if s.Doc().Pos() != 4 {
		t.Errorf("expected pos 4, got %d", s.Doc().Pos())
	}
}
