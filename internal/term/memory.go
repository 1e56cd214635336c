package term

import "strings"

// Memory implements Surface on an in-process cell grid. Tests script
// input through Send and read the grid back through Row and Content.
// The grid semantics match the hardware surfaces: line operations and
// scrolling respect the scroll region and the status row outside it
// never moves.
type Memory struct {
	width   int
	height  int
	cells   [][]byte
	attrs   [][]bool
	row     int
	col     int
	reverse bool
	top     int
	bottom  int
	flushes int
	events  chan Event
}

// NewMemory creates a memory surface with the given dimensions.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

// Ensure Memory implements Surface.
var _ Surface = (*Memory)(nil)

func (m *Memory) Init() error {
	m.cells = make([][]byte, m.height)
	m.attrs = make([][]bool, m.height)
	for y := range m.cells {
		m.cells[y] = blankCells(m.width)
		m.attrs[y] = make([]bool, m.width)
	}
	m.top, m.bottom = 0, m.height-1
	return nil
}

func (m *Memory) Shutdown() {}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) MoveTo(row, col int) {
	m.row, m.col = row, col
}

func (m *Memory) Put(c byte) {
	if m.row >= 0 && m.row < m.height && m.col >= 0 && m.col < m.width {
		m.cells[m.row][m.col] = c
		m.attrs[m.row][m.col] = m.reverse
	}
	m.col++
}

func (m *Memory) InsertChar(c byte) {
	if m.row >= 0 && m.row < m.height && m.col >= 0 && m.col < m.width {
		row := m.cells[m.row]
		copy(row[m.col+1:], row[m.col:m.width-1])
		row[m.col] = c
		att := m.attrs[m.row]
		copy(att[m.col+1:], att[m.col:m.width-1])
		att[m.col] = m.reverse
	}
	m.col++
}

func (m *Memory) DeleteChar() {
	if m.row < 0 || m.row >= m.height || m.col < 0 || m.col >= m.width {
		return
	}
	row := m.cells[m.row]
	copy(row[m.col:], row[m.col+1:])
	row[m.width-1] = ' '
	att := m.attrs[m.row]
	copy(att[m.col:], att[m.col+1:])
	att[m.width-1] = false
}

func (m *Memory) InsertLine() {
	if m.row < m.top || m.row > m.bottom {
		return
	}
	copy(m.cells[m.row+1:m.bottom+1], m.cells[m.row:m.bottom])
	copy(m.attrs[m.row+1:m.bottom+1], m.attrs[m.row:m.bottom])
	m.cells[m.row] = blankCells(m.width)
	m.attrs[m.row] = make([]bool, m.width)
}

func (m *Memory) DeleteLine() {
	if m.row < m.top || m.row > m.bottom {
		return
	}
	copy(m.cells[m.row:m.bottom], m.cells[m.row+1:m.bottom+1])
	copy(m.attrs[m.row:m.bottom], m.attrs[m.row+1:m.bottom+1])
	m.cells[m.bottom] = blankCells(m.width)
	m.attrs[m.bottom] = make([]bool, m.width)
}

func (m *Memory) ClearToEOL() {
	if m.row < 0 || m.row >= m.height {
		return
	}
	for x := m.col; x < m.width; x++ {
		if x >= 0 {
			m.cells[m.row][x] = ' '
			m.attrs[m.row][x] = false
		}
	}
}

func (m *Memory) Clear() {
	for y := range m.cells {
		m.cells[y] = blankCells(m.width)
		m.attrs[y] = make([]bool, m.width)
	}
}

func (m *Memory) SetReverse(on bool) {
	m.reverse = on
}

func (m *Memory) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > m.height-1 {
		bottom = m.height - 1
	}
	if top > bottom {
		return
	}
	m.top, m.bottom = top, bottom
}

func (m *Memory) ScrollUp() {
	copy(m.cells[m.top:m.bottom], m.cells[m.top+1:m.bottom+1])
	copy(m.attrs[m.top:m.bottom], m.attrs[m.top+1:m.bottom+1])
	m.cells[m.bottom] = blankCells(m.width)
	m.attrs[m.bottom] = make([]bool, m.width)
}

func (m *Memory) Flush() {
	m.flushes++
}

func (m *Memory) PollEvent() Event {
	ev, ok := <-m.events
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

func (m *Memory) Beep() {}

// Send queues an event for PollEvent.
func (m *Memory) Send(ev Event) {
	m.events <- ev
}

// SendKey queues a named-key event.
func (m *Memory) SendKey(k Key) {
	m.Send(KeyEvent(k))
}

// Type queues one printable-byte event per byte of s.
func (m *Memory) Type(s string) {
	for i := 0; i < len(s); i++ {
		m.Send(ByteEvent(s[i]))
	}
}

// CloseInput closes the event stream; the next poll reports Closed.
func (m *Memory) CloseInput() {
	close(m.events)
}

// CursorPos returns the cursor position for assertions.
func (m *Memory) CursorPos() (row, col int) {
	return m.row, m.col
}

// Flushes returns how many times Flush has been called.
func (m *Memory) Flushes() int {
	return m.flushes
}

// Row returns the given row's text with trailing blanks trimmed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return strings.TrimRight(string(m.cells[y]), " ")
}

// RawRow returns the given row's text with trailing blanks intact.
func (m *Memory) RawRow(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return string(m.cells[y])
}

// ReverseAt reports whether the cell at (row, col) was drawn in
// reverse video.
func (m *Memory) ReverseAt(row, col int) bool {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return false
	}
	return m.attrs[row][col]
}

// Content returns all rows joined by newlines, trailing blanks
// trimmed.
func (m *Memory) Content() string {
	rows := make([]string, m.height)
	for y := range rows {
		rows[y] = m.Row(y)
	}
	return strings.Join(rows, "\n")
}

func blankCells(w int) []byte {
	row := make([]byte, w)
	for i := range row {
		row[i] = ' '
	}
	return row
}
