package editor

import (
	"testing"

	"github.com/dshills/feather/internal/engine/gapbuf"
)

func TestViewportRecompute(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rows    int
		start   ByteOffset
		end     ByteOffset
		nlines  int
	}{
		{"empty", "", 3, 0, 0, 0},
		{"unterminated", "ab", 3, 0, 2, 1},
		{"partial window", "a\nbb\nccc\n", 2, 0, 5, 2},
		{"whole document", "a\nbb\nccc\n", 5, 0, 9, 3},
		{"mid document", "a\nbb\nccc\n", 2, 2, 9, 2},
		{"unterminated tail", "a\nbb", 5, 0, 4, 2},
	}
	for _, tt := range tests {
		buf := gapbuf.NewFromBytes([]byte(tt.content))
		v := &Viewport{start: tt.start, rows: tt.rows}
		v.recompute(buf)
		if v.end != tt.end || v.nlines != tt.nlines {
			t.Errorf("%s: expected end %d lines %d, got end %d lines %d",
				tt.name, tt.end, tt.nlines, v.end, v.nlines)
		}
	}
}

func TestViewportScrollTransitions(t *testing.T) {
	buf := gapbuf.NewFromBytes([]byte("l0\nl1\nl2\nl3\nl4\n"))
	v := &Viewport{start: 6, topLine: 2, rows: 2}
	v.recompute(buf)
	if v.end != 12 {
		t.Fatalf("expected end 12, got %d", v.end)
	}

	v.scrollDown(buf)
	if v.start != 3 || v.topLine != 1 || v.end != 9 {
		t.Errorf("after scroll down: expected start 3 top 1 end 9, got %d %d %d",
			v.start, v.topLine, v.end)
	}

	v.scrollUp(buf)
	if v.start != 6 || v.topLine != 2 || v.end != 12 {
		t.Errorf("after scroll up: expected start 6 top 2 end 12, got %d %d %d",
			v.start, v.topLine, v.end)
	}
}

func TestViewportScrollDownAtFirstLine(t *testing.T) {
	buf := gapbuf.NewFromBytes([]byte("l0\nl1\nl2\n"))
	v := &Viewport{start: 3, topLine: 1, rows: 2}
	v.recompute(buf)

	v.scrollDown(buf)
	if v.start != 0 || v.topLine != 0 {
		t.Errorf("expected start 0 top 0, got %d %d", v.start, v.topLine)
	}
}

func TestNextLineStart(t *testing.T) {
	buf := gapbuf.NewFromBytes([]byte("ab\ncd"))
	if got := nextLineStart(buf, 0); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := nextLineStart(buf, 3); got != 5 {
		t.Errorf("expected buffer length for the last line, got %d", got)
	}
}
