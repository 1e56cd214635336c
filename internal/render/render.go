// Package render turns editor frames into terminal output.
//
// The editor core never touches a terminal. It describes each screen
// change as a frame, a slice of deltas, and the Renderer replays the
// frame against a term.Surface. Keeping the core on this narrow
// command vocabulary means the same frame drives a real terminal, a
// raw serial line, and the in-memory surface the tests use.
//
// The Renderer also owns the screen layout: all rows but the last
// form the content region, the last row is the status line. The
// scroll region is pinned to the content rows so line insertions,
// deletions, and scrolls can never disturb the status line.
package render

import (
	"github.com/dshills/feather/internal/term"
)

// Renderer applies frames to a surface.
type Renderer struct {
	surface term.Surface
	width   int
	height  int
}

// New returns a Renderer drawing to s. Call Layout before the first
// Apply.
func New(s term.Surface) *Renderer {
	return &Renderer{surface: s}
}

// Layout records the screen dimensions and pins the scroll region to
// the content rows. Call it after Init and again on every resize.
func (r *Renderer) Layout(width, height int) {
	r.width = width
	r.height = height
	bottom := height - 2
	if bottom < 0 {
		bottom = 0
	}
	r.surface.SetScrollRegion(0, bottom)
}

// Size returns the screen dimensions recorded by Layout.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Rows returns the number of content rows.
func (r *Renderer) Rows() int {
	if r.height <= 1 {
		return 1
	}
	return r.height - 1
}

// StatusRow returns the row index of the status line.
func (r *Renderer) StatusRow() int {
	if r.height < 1 {
		return 0
	}
	return r.height - 1
}

// Apply replays frame against the surface and flushes once. The
// surface cursor ends wherever the frame's last OpMoveCursor put it.
func (r *Renderer) Apply(frame []Delta) {
	for _, d := range frame {
		switch d.Op {
		case OpMoveCursor:
			r.surface.MoveTo(d.Row, d.Col)
		case OpPutText:
			for i := 0; i < len(d.Text); i++ {
				r.surface.Put(d.Text[i])
			}
		case OpInsertChar:
			r.surface.InsertChar(d.Ch)
		case OpDeleteChar:
			r.surface.DeleteChar()
		case OpInsertLine:
			r.surface.InsertLine()
		case OpDeleteLine:
			r.surface.DeleteLine()
		case OpClearToEOL:
			r.surface.ClearToEOL()
		case OpScrollUp:
			r.surface.ScrollUp()
		case OpSetReverse:
			r.surface.SetReverse(d.On)
		}
	}
	r.surface.Flush()
}
