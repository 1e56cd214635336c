package render

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding/charmap"
)

// Status holds what the status line displays. It is a value; the
// editor compares successive values to decide when a repaint is due.
type Status struct {
	Name      string
	Line      int64 // 1-based
	Modified  bool
	Selecting bool
	Notice    string // transient message shown instead of the bar
}

// Compose renders the status line as exactly width bytes: modified
// marker, document name, selection marker on the left, the line
// number on the right. A non-empty Notice takes over the whole row.
func (s Status) Compose(width int) string {
	if width <= 0 {
		return ""
	}
	if s.Notice != "" {
		return fit(" "+Display(s.Notice, width-1), width)
	}
	line := s.Line
	if line < 1 {
		line = 1
	}
	right := "L" + strconv.FormatInt(line, 10) + " "
	mark := " "
	if s.Modified {
		mark = "*"
	}
	sel := ""
	if s.Selecting {
		sel = " [sel]"
	}
	avail := width - 3 - len(sel) - len(right) - 1
	left := " " + mark + " " + Display(s.Name, avail) + sel
	if len(left)+len(right) >= width {
		return fit(left, width)
	}
	return left + strings.Repeat(" ", width-len(left)-len(right)) + right
}

// ComposePrompt renders a status-row prompt with the answer typed so
// far and reports the cell the cursor belongs on. Prompt and answer
// are display bytes already; no re-encoding happens here. When the
// text outruns the row, the leading part is sacrificed so the
// insertion point stays visible.
func ComposePrompt(prompt, answer string, width int) (text string, col int) {
	if width <= 0 {
		return "", 0
	}
	full := " " + prompt + answer
	if len(full) <= width-1 {
		return fit(full, width), len(full)
	}
	return full[len(full)-(width-1):] + " ", width - 1
}

// Display converts text to display bytes, one byte per grapheme
// cluster, keeping at most max bytes. Clusters with no printable
// Latin-1 form become '?'. When text does not fit, the tail is kept
// behind a "..." prefix; the end of a path is the part worth reading.
func Display(text string, max int) string {
	if max <= 0 || text == "" {
		return ""
	}
	cells := displayCells(text)
	if len(cells) <= max {
		return string(cells)
	}
	if max <= 3 {
		return string(cells[len(cells)-max:])
	}
	return "..." + string(cells[len(cells)-(max-3):])
}

func displayCells(text string) []byte {
	cells := make([]byte, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cells = append(cells, displayByte(g.Runes()))
	}
	return cells
}

func displayByte(runes []rune) byte {
	if len(runes) != 1 {
		return '?'
	}
	c, ok := charmap.ISO8859_1.EncodeRune(runes[0])
	if !ok || c < 0x20 || (c >= 0x7f && c < 0xa0) {
		return '?'
	}
	return c
}

// fit pads or hard-truncates s to exactly width bytes.
func fit(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
