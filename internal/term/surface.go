// Package term provides the terminal capability surface the renderer
// draws through.
//
// Surface is deliberately narrow: absolute cursor motion, byte output,
// character and line insert/delete, clear-to-EOL, reverse video, and a
// one-line scroll within a configurable region. Everything the editor
// shows on screen is expressed in those operations, so a keystroke
// costs a handful of bytes on the wire rather than a repaint. The
// design target is a slow link; a 9600 baud serial console must feel
// the same as a local terminal.
//
// Three implementations exist: Screen (tcell, the interactive
// default), VT100 (raw escape sequences over any reader/writer pair,
// for dumb serial terminals), and Memory (an in-process grid for
// tests).
package term

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. Ch is set only for KeyRune.
	Key Key
	Ch  byte

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a named-key event.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// ByteEvent builds a printable-byte event.
func ByteEvent(c byte) Event {
	return Event{Type: EventKey, Key: KeyRune, Ch: c}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular byte (use Ch field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Surface is the drawing and input contract between the renderer and a
// terminal. Row and column are 0-based; (0,0) is the top left.
//
// InsertLine, DeleteLine and ScrollUp operate within the current
// scroll region and are ignored when the cursor sits outside it, which
// is how the status row below the region stays put.
type Surface interface {
	// Init prepares the terminal. Must be called before any other
	// method.
	Init() error

	// Shutdown restores the terminal. Must be called when done.
	Shutdown()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// MoveTo places the cursor.
	MoveTo(row, col int)

	// Put draws one byte at the cursor and advances the cursor.
	Put(c byte)

	// InsertChar inserts c at the cursor, shifting the rest of the row
	// right; the last cell of the row falls off. The cursor advances
	// past the inserted byte.
	InsertChar(c byte)

	// DeleteChar removes the byte under the cursor, shifting the rest
	// of the row left. The cursor does not move.
	DeleteChar()

	// InsertLine inserts a blank row at the cursor row, shifting that
	// row and the ones below it down within the scroll region. The
	// region's bottom row falls off.
	InsertLine()

	// DeleteLine removes the cursor row, shifting the rows below it up
	// within the scroll region. A blank row appears at the region's
	// bottom.
	DeleteLine()

	// ClearToEOL blanks from the cursor to the end of the row.
	ClearToEOL()

	// Clear blanks the whole screen.
	Clear()

	// SetReverse switches reverse video on or off for subsequent
	// output.
	SetReverse(on bool)

	// SetScrollRegion limits line operations and scrolling to rows
	// top..bottom inclusive. Implementations may home the cursor;
	// callers reposition afterwards.
	SetScrollRegion(top, bottom int)

	// ScrollUp scrolls the region up one row; a blank row appears at
	// the region's bottom.
	ScrollUp()

	// Flush pushes pending output to the terminal and places the
	// visible cursor at the last MoveTo position.
	Flush()

	// PollEvent blocks until the next event. A Closed event means the
	// input side is gone and no further events will arrive.
	PollEvent() Event

	// Beep sounds the terminal bell.
	Beep()
}
