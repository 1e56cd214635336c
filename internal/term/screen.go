package term

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"
)

// Screen implements Surface on a tcell screen. tcell keeps its own
// back buffer and diffs on Show, so pushing cell updates here still
// produces minimal terminal traffic.
type Screen struct {
	ts      tcell.Screen
	normal  tcell.Style
	status  tcell.Style
	theme   Theme
	row     int
	col     int
	reverse bool
	top     int
	bottom  int
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithTheme sets the screen colors.
func WithTheme(th Theme) ScreenOption {
	return func(s *Screen) {
		s.theme = th
	}
}

// NewScreen creates a Screen on the process terminal.
func NewScreen(opts ...ScreenOption) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(ts, opts...), nil
}

// NewScreenFrom creates a Screen over an existing tcell screen, which
// lets tests run against tcell's simulation screen.
func NewScreenFrom(ts tcell.Screen, opts ...ScreenOption) *Screen {
	s := &Screen{ts: ts}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ensure Screen implements Surface.
var _ Surface = (*Screen)(nil)

func (s *Screen) Init() error {
	if err := s.ts.Init(); err != nil {
		return err
	}

	s.normal, s.status = s.theme.styles()
	s.ts.SetStyle(s.normal)
	s.ts.Clear()

	_, h := s.ts.Size()
	s.top, s.bottom = 0, h-1
	return nil
}

func (s *Screen) Shutdown() {
	s.ts.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.ts.Size()
}

func (s *Screen) MoveTo(row, col int) {
	s.row, s.col = row, col
}

func (s *Screen) Put(c byte) {
	s.ts.SetContent(s.col, s.row, decodeByte(c), nil, s.style())
	s.col++
}

func (s *Screen) InsertChar(c byte) {
	w, _ := s.ts.Size()
	for x := w - 1; x > s.col; x-- {
		r, _, st, _ := s.ts.GetContent(x-1, s.row)
		s.ts.SetContent(x, s.row, r, nil, st)
	}
	s.ts.SetContent(s.col, s.row, decodeByte(c), nil, s.style())
	s.col++
}

func (s *Screen) DeleteChar() {
	w, _ := s.ts.Size()
	for x := s.col; x < w-1; x++ {
		r, _, st, _ := s.ts.GetContent(x+1, s.row)
		s.ts.SetContent(x, s.row, r, nil, st)
	}
	s.ts.SetContent(w-1, s.row, ' ', nil, s.normal)
}

func (s *Screen) InsertLine() {
	if s.row < s.top || s.row > s.bottom {
		return
	}
	for y := s.bottom; y > s.row; y-- {
		s.copyRow(y-1, y)
	}
	s.blankRow(s.row)
}

func (s *Screen) DeleteLine() {
	if s.row < s.top || s.row > s.bottom {
		return
	}
	for y := s.row; y < s.bottom; y++ {
		s.copyRow(y+1, y)
	}
	s.blankRow(s.bottom)
}

func (s *Screen) ClearToEOL() {
	w, _ := s.ts.Size()
	for x := s.col; x < w; x++ {
		s.ts.SetContent(x, s.row, ' ', nil, s.normal)
	}
}

func (s *Screen) Clear() {
	s.ts.Clear()
}

func (s *Screen) SetReverse(on bool) {
	s.reverse = on
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	_, h := s.ts.Size()
	if top < 0 {
		top = 0
	}
	if bottom > h-1 {
		bottom = h - 1
	}
	if top > bottom {
		return
	}
	s.top, s.bottom = top, bottom
}

func (s *Screen) ScrollUp() {
	for y := s.top; y < s.bottom; y++ {
		s.copyRow(y+1, y)
	}
	s.blankRow(s.bottom)
}

func (s *Screen) Flush() {
	s.ts.ShowCursor(s.col, s.row)
	s.ts.Show()
}

func (s *Screen) PollEvent() Event {
	for {
		ev := s.ts.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			if out := convertKey(e); out.Type != EventNone {
				return out
			}
		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		}
	}
}

func (s *Screen) Beep() {
	_ = s.ts.Beep()
}

func (s *Screen) style() tcell.Style {
	if s.reverse {
		return s.status
	}
	return s.normal
}

func (s *Screen) copyRow(src, dst int) {
	w, _ := s.ts.Size()
	for x := 0; x < w; x++ {
		r, _, st, _ := s.ts.GetContent(x, src)
		s.ts.SetContent(x, dst, r, nil, st)
	}
}

func (s *Screen) blankRow(y int) {
	w, _ := s.ts.Size()
	for x := 0; x < w; x++ {
		s.ts.SetContent(x, y, ' ', nil, s.normal)
	}
}

// convertKey maps a tcell key event to a Surface event. tcell aliases
// Ctrl-H, Ctrl-I and Ctrl-M to Backspace, Tab and Enter; those arrive
// here already claimed by the named cases and never reach the control
// letter range below.
func convertKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		if c, ok := charmap.ISO8859_1.EncodeRune(ev.Rune()); ok && c >= 0x20 {
			return ByteEvent(c)
		}
		return Event{Type: EventNone}
	case tcell.KeyEscape:
		return KeyEvent(KeyEscape)
	case tcell.KeyEnter:
		return KeyEvent(KeyEnter)
	case tcell.KeyTab:
		return KeyEvent(KeyTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent(KeyBackspace)
	case tcell.KeyDelete:
		return KeyEvent(KeyDelete)
	case tcell.KeyHome:
		return KeyEvent(KeyHome)
	case tcell.KeyEnd:
		return KeyEvent(KeyEnd)
	case tcell.KeyPgUp:
		return KeyEvent(KeyPageUp)
	case tcell.KeyPgDn:
		return KeyEvent(KeyPageDown)
	case tcell.KeyUp:
		return KeyEvent(KeyUp)
	case tcell.KeyDown:
		return KeyEvent(KeyDown)
	case tcell.KeyLeft:
		return KeyEvent(KeyLeft)
	case tcell.KeyRight:
		return KeyEvent(KeyRight)
	case tcell.KeyCtrlSpace:
		return KeyEvent(KeyCtrlSpace)
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyEvent(KeyCtrlA + Key(k-tcell.KeyCtrlA))
	}
	return Event{Type: EventNone}
}

// decodeByte maps a document byte to its display rune through the
// Latin-1 table; the document model is 8-bit.
func decodeByte(c byte) rune {
	if c < 0x80 {
		return rune(c)
	}
	return charmap.ISO8859_1.DecodeByte(c)
}
