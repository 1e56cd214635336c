package term

import "testing"

func newTestMemory(t *testing.T, w, h int) *Memory {
	t.Helper()
	m := NewMemory(w, h)
	if err := m.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return m
}

func drawString(s Surface, row, col int, text string) {
	s.MoveTo(row, col)
	for i := 0; i < len(text); i++ {
		s.Put(text[i])
	}
}

func TestMemoryPut(t *testing.T) {
	m := newTestMemory(t, 10, 3)

	drawString(m, 0, 0, "hello")
	drawString(m, 1, 2, "hi")

	if got := m.Row(0); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := m.Row(1); got != "  hi" {
		t.Errorf("expected '  hi', got %q", got)
	}

	if row, col := m.CursorPos(); row != 1 || col != 4 {
		t.Errorf("expected cursor (1,4), got (%d,%d)", row, col)
	}
}

func TestMemoryInsertChar(t *testing.T) {
	m := newTestMemory(t, 10, 2)

	drawString(m, 0, 0, "abde")
	m.MoveTo(0, 2)
	m.InsertChar('c')

	if got := m.Row(0); got != "abcde" {
		t.Errorf("expected 'abcde', got %q", got)
	}
	if _, col := m.CursorPos(); col != 3 {
		t.Errorf("expected cursor col 3 after insert, got %d", col)
	}
}

func TestMemoryDeleteChar(t *testing.T) {
	m := newTestMemory(t, 10, 2)

	drawString(m, 0, 0, "abXcd")
	m.MoveTo(0, 2)
	m.DeleteChar()

	if got := m.Row(0); got != "abcd" {
		t.Errorf("expected 'abcd', got %q", got)
	}
	if _, col := m.CursorPos(); col != 2 {
		t.Errorf("delete should not move the cursor, got col %d", col)
	}
}

func TestMemoryClearToEOL(t *testing.T) {
	m := newTestMemory(t, 10, 2)

	drawString(m, 0, 0, "abcdefgh")
	m.MoveTo(0, 3)
	m.ClearToEOL()

	if got := m.Row(0); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

func TestMemoryInsertDeleteLine(t *testing.T) {
	m := newTestMemory(t, 10, 4)
	m.SetScrollRegion(0, 2)

	drawString(m, 0, 0, "one")
	drawString(m, 1, 0, "two")
	drawString(m, 2, 0, "three")
	drawString(m, 3, 0, "status")

	m.MoveTo(1, 0)
	m.InsertLine()

	if m.Row(0) != "one" || m.Row(1) != "" || m.Row(2) != "two" {
		t.Errorf("after insert: %q / %q / %q", m.Row(0), m.Row(1), m.Row(2))
	}
	if got := m.Row(3); got != "status" {
		t.Errorf("row outside region moved: %q", got)
	}

	m.MoveTo(1, 0)
	m.DeleteLine()

	if m.Row(0) != "one" || m.Row(1) != "two" || m.Row(2) != "" {
		t.Errorf("after delete: %q / %q / %q", m.Row(0), m.Row(1), m.Row(2))
	}
	if got := m.Row(3); got != "status" {
		t.Errorf("row outside region moved: %q", got)
	}
}

func TestMemoryLineOpsOutsideRegionIgnored(t *testing.T) {
	m := newTestMemory(t, 10, 4)
	m.SetScrollRegion(0, 2)

	drawString(m, 2, 0, "keep")
	drawString(m, 3, 0, "status")

	m.MoveTo(3, 0)
	m.InsertLine()
	m.DeleteLine()

	if m.Row(2) != "keep" || m.Row(3) != "status" {
		t.Errorf("line ops outside the region should be ignored: %q / %q",
			m.Row(2), m.Row(3))
	}
}

func TestMemoryScrollUp(t *testing.T) {
	m := newTestMemory(t, 10, 4)
	m.SetScrollRegion(0, 2)

	drawString(m, 0, 0, "one")
	drawString(m, 1, 0, "two")
	drawString(m, 2, 0, "three")
	drawString(m, 3, 0, "status")

	m.ScrollUp()

	if m.Row(0) != "two" || m.Row(1) != "three" || m.Row(2) != "" {
		t.Errorf("after scroll: %q / %q / %q", m.Row(0), m.Row(1), m.Row(2))
	}
	if got := m.Row(3); got != "status" {
		t.Errorf("status row scrolled: %q", got)
	}
}

func TestMemoryReverse(t *testing.T) {
	m := newTestMemory(t, 10, 2)

	m.SetReverse(true)
	drawString(m, 1, 0, "bar")
	m.SetReverse(false)
	drawString(m, 0, 0, "text")

	if !m.ReverseAt(1, 0) || !m.ReverseAt(1, 2) {
		t.Error("status bytes should be reverse video")
	}
	if m.ReverseAt(0, 0) {
		t.Error("normal bytes should not be reverse video")
	}
}

func TestMemoryEvents(t *testing.T) {
	m := newTestMemory(t, 10, 2)

	m.Type("ab")
	m.SendKey(KeyEnter)

	ev := m.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Ch != 'a' {
		t.Errorf("unexpected event: %+v", ev)
	}

	ev = m.PollEvent()
	if ev.Ch != 'b' {
		t.Errorf("expected 'b', got %+v", ev)
	}

	ev = m.PollEvent()
	if ev.Key != KeyEnter {
		t.Errorf("expected enter, got %+v", ev)
	}

	m.CloseInput()
	if ev := m.PollEvent(); ev.Type != EventClosed {
		t.Errorf("expected Closed after CloseInput, got %+v", ev)
	}
}
