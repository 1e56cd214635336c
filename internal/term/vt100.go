package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// VT100 implements Surface by writing escape sequences to a writer and
// decoding key bytes from a reader. It is the path for dumb serial
// terminals and remote lines where tcell's terminfo machinery has
// nothing to talk to. Bytes go out raw; an 8-bit Latin-1 link displays
// the high range natively.
//
// When the reader is a real terminal it is switched to raw mode for
// the session. Size is taken from the writer's terminal when there is
// one, otherwise from WithSize, otherwise 80x24.
type VT100 struct {
	in     *bufio.Reader
	inFile *os.File
	out    *bufio.Writer
	saved  *term.State
	width  int
	height int
}

// VT100Option configures a VT100 surface.
type VT100Option func(*VT100)

// WithSize fixes the surface dimensions, for links where the terminal
// cannot be queried.
func WithSize(width, height int) VT100Option {
	return func(v *VT100) {
		if width > 0 && height > 0 {
			v.width, v.height = width, height
		}
	}
}

// NewVT100 creates a VT100 surface over the given reader and writer.
func NewVT100(in io.Reader, out io.Writer, opts ...VT100Option) *VT100 {
	v := &VT100{
		in:     bufio.NewReader(in),
		out:    bufio.NewWriterSize(out, 4096),
		width:  80,
		height: 24,
	}
	if f, ok := in.(*os.File); ok {
		v.inFile = f
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			v.width, v.height = w, h
		}
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Ensure VT100 implements Surface.
var _ Surface = (*VT100)(nil)

func (v *VT100) Init() error {
	if v.inFile != nil && term.IsTerminal(int(v.inFile.Fd())) {
		st, err := term.MakeRaw(int(v.inFile.Fd()))
		if err != nil {
			return err
		}
		v.saved = st
	}

	v.out.WriteString("\x1b[0m\x1b[2J\x1b[H")
	return v.out.Flush()
}

func (v *VT100) Shutdown() {
	v.out.WriteString("\x1b[0m\x1b[r\x1b[2J\x1b[H")
	v.out.Flush()
	if v.saved != nil {
		_ = term.Restore(int(v.inFile.Fd()), v.saved)
		v.saved = nil
	}
}

func (v *VT100) Size() (int, int) {
	return v.width, v.height
}

func (v *VT100) MoveTo(row, col int) {
	fmt.Fprintf(v.out, "\x1b[%d;%dH", row+1, col+1)
}

func (v *VT100) Put(c byte) {
	v.out.WriteByte(c)
}

func (v *VT100) InsertChar(c byte) {
	v.out.WriteString("\x1b[@")
	v.out.WriteByte(c)
}

func (v *VT100) DeleteChar() {
	v.out.WriteString("\x1b[P")
}

func (v *VT100) InsertLine() {
	v.out.WriteString("\x1b[L")
}

func (v *VT100) DeleteLine() {
	v.out.WriteString("\x1b[M")
}

func (v *VT100) ClearToEOL() {
	v.out.WriteString("\x1b[K")
}

func (v *VT100) Clear() {
	v.out.WriteString("\x1b[2J")
}

func (v *VT100) SetReverse(on bool) {
	if on {
		v.out.WriteString("\x1b[7m")
	} else {
		v.out.WriteString("\x1b[0m")
	}
}

func (v *VT100) SetScrollRegion(top, bottom int) {
	fmt.Fprintf(v.out, "\x1b[%d;%dr", top+1, bottom+1)
}

func (v *VT100) ScrollUp() {
	v.out.WriteString("\x1b[S")
}

func (v *VT100) Flush() {
	_ = v.out.Flush()
}

func (v *VT100) PollEvent() Event {
	for {
		c, err := v.in.ReadByte()
		if err != nil {
			return Event{Type: EventClosed}
		}

		switch {
		case c == 0x1b:
			if ev, ok := v.decodeEscape(); ok {
				return ev
			}
		case c == 0x00:
			return KeyEvent(KeyCtrlSpace)
		case c == '\r' || c == '\n':
			return KeyEvent(KeyEnter)
		case c == '\t':
			return KeyEvent(KeyTab)
		case c == 0x08 || c == 0x7f:
			return KeyEvent(KeyBackspace)
		case c >= 0x01 && c <= 0x1a:
			return KeyEvent(KeyCtrlA + Key(c-1))
		case c >= 0x20 && c < 0x7f, c >= 0xa0:
			return ByteEvent(c)
		default:
			// Leftover C0 bytes and the 0x80..0x9f C1 range; dropped.
		}
	}
}

func (v *VT100) Beep() {
	v.out.WriteByte(0x07)
}

// decodeEscape runs after an ESC byte. A bare ESC keypress arrives
// alone; a terminal-generated sequence arrives in one burst, so the
// follow-up bytes are already buffered when it is one.
func (v *VT100) decodeEscape() (Event, bool) {
	if v.in.Buffered() == 0 {
		return KeyEvent(KeyEscape), true
	}

	c, err := v.in.ReadByte()
	if err != nil {
		return KeyEvent(KeyEscape), true
	}

	switch c {
	case '[':
		return v.decodeCSI()
	case 'O':
		return v.decodeSS3()
	default:
		// Alt-modified byte or line noise; report the Escape and let
		// the next poll see the byte again.
		_ = v.in.UnreadByte()
		return KeyEvent(KeyEscape), true
	}
}

func (v *VT100) decodeCSI() (Event, bool) {
	var params []byte
	for {
		c, err := v.in.ReadByte()
		if err != nil {
			return Event{}, false
		}
		if c >= 0x40 && c <= 0x7e {
			return csiEvent(c, string(params))
		}
		params = append(params, c)
		if len(params) > 8 {
			// Runaway sequence; give up on it.
			return Event{}, false
		}
	}
}

func csiEvent(final byte, params string) (Event, bool) {
	switch final {
	case 'A':
		return KeyEvent(KeyUp), true
	case 'B':
		return KeyEvent(KeyDown), true
	case 'C':
		return KeyEvent(KeyRight), true
	case 'D':
		return KeyEvent(KeyLeft), true
	case 'H':
		return KeyEvent(KeyHome), true
	case 'F':
		return KeyEvent(KeyEnd), true
	case '~':
		switch params {
		case "1", "7":
			return KeyEvent(KeyHome), true
		case "3":
			return KeyEvent(KeyDelete), true
		case "4", "8":
			return KeyEvent(KeyEnd), true
		case "5":
			return KeyEvent(KeyPageUp), true
		case "6":
			return KeyEvent(KeyPageDown), true
		}
	}
	return Event{}, false
}

func (v *VT100) decodeSS3() (Event, bool) {
	c, err := v.in.ReadByte()
	if err != nil {
		return Event{}, false
	}

	switch c {
	case 'A':
		return KeyEvent(KeyUp), true
	case 'B':
		return KeyEvent(KeyDown), true
	case 'C':
		return KeyEvent(KeyRight), true
	case 'D':
		return KeyEvent(KeyLeft), true
	case 'H':
		return KeyEvent(KeyHome), true
	case 'F':
		return KeyEvent(KeyEnd), true
	}
	return Event{}, false
}
