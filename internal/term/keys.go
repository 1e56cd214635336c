package term

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptyKeySpec   = errors.New("empty key specification")
	ErrInvalidKeySpec = errors.New("invalid key specification")
)

// keyNames maps the named keys to their specification strings.
// Control letters are handled arithmetically in ParseKey and String.
var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrlSpace: "ctrl+space",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the specification string for a key, such as "ctrl+q"
// or "pgup". KeyRune keys render as "byte".
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(k-KeyCtrlA)))
	}
	if k == KeyRune {
		return "byte"
	}
	return "none"
}

// ParseKey parses a key specification into a Key. Accepted forms are
// the named keys ("up", "pgdn", "delete", ...), "ctrl+space", and
// "ctrl+x" for a letter x. Specifications are case-insensitive.
// Printable bytes are not bindable; they always self-insert.
func ParseKey(spec string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return KeyNone, ErrEmptyKeySpec
	}

	if k, ok := namedKeys[s]; ok {
		return k, nil
	}

	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok {
		if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
			return KeyCtrlA + Key(rest[0]-'a'), nil
		}
		return KeyNone, fmt.Errorf("%w: %q", ErrInvalidKeySpec, spec)
	}

	return KeyNone, fmt.Errorf("%w: %q", ErrInvalidKeySpec, spec)
}
