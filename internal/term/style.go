package term

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme carries the screen colors as hex strings ("#rrggbb"). Empty
// strings keep the terminal defaults; the status style falls back to
// plain reverse video. Only the tcell surface honors a theme; the
// VT100 surface has two attributes and no color.
type Theme struct {
	Foreground       string
	Background       string
	StatusForeground string
	StatusBackground string
}

// styles resolves the theme to a normal and a status tcell style.
func (th Theme) styles() (normal, status tcell.Style) {
	normal = tcell.StyleDefault
	if c, ok := parseHex(th.Foreground); ok {
		normal = normal.Foreground(c)
	}
	if c, ok := parseHex(th.Background); ok {
		normal = normal.Background(c)
	}

	sf, okf := parseHex(th.StatusForeground)
	sb, okb := parseHex(th.StatusBackground)
	if !okf && !okb {
		return normal, normal.Reverse(true)
	}

	status = tcell.StyleDefault
	if okf {
		status = status.Foreground(sf)
	}
	if okb {
		status = status.Background(sb)
	} else if okf {
		// Derive a quiet backdrop from the text color so a half
		// specified theme still reads as a bar.
		c, _ := colorful.Hex(th.StatusForeground)
		h, s, l := c.Hsl()
		bg := colorful.Hsl(h, s*0.4, 1-l)
		status = status.Background(tcellColor(bg))
	}
	return normal, status
}

func parseHex(s string) (tcell.Color, bool) {
	if s == "" {
		return 0, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, false
	}
	return tcellColor(c), true
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
