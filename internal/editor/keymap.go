package editor

import (
	"fmt"

	"github.com/dshills/feather/internal/term"
)

// Keymap maps keys to action names. Printable bytes are not mapped;
// they always insert themselves.
type Keymap map[term.Key]string

// Actions bindable to keys.
const (
	ActionMoveUp         = "move-up"
	ActionMoveDown       = "move-down"
	ActionMoveLeft       = "move-left"
	ActionMoveRight      = "move-right"
	ActionMoveBOL        = "move-bol"
	ActionMoveEOL        = "move-eol"
	ActionPageUp         = "page-up"
	ActionPageDown       = "page-down"
	ActionGotoLine       = "goto-line"
	ActionNewline        = "newline"
	ActionIndent         = "indent"
	ActionDeleteForward  = "delete-forward"
	ActionDeleteBackward = "delete-backward"
	ActionDeleteToEOL    = "delete-to-eol"
	ActionDeleteToBOL    = "delete-to-bol"
	ActionMark           = "mark"
	ActionCopy           = "copy"
	ActionCut            = "cut"
	ActionPaste          = "paste"
	ActionRedraw         = "redraw"
	ActionQuit           = "quit"
	ActionNone           = "none"
)

var knownActions = map[string]bool{
	ActionMoveUp:         true,
	ActionMoveDown:       true,
	ActionMoveLeft:       true,
	ActionMoveRight:      true,
	ActionMoveBOL:        true,
	ActionMoveEOL:        true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionGotoLine:       true,
	ActionNewline:        true,
	ActionIndent:         true,
	ActionDeleteForward:  true,
	ActionDeleteBackward: true,
	ActionDeleteToEOL:    true,
	ActionDeleteToBOL:    true,
	ActionMark:           true,
	ActionCopy:           true,
	ActionCut:            true,
	ActionPaste:          true,
	ActionRedraw:         true,
	ActionQuit:           true,
	ActionNone:           true,
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		term.KeyUp:        ActionMoveUp,
		term.KeyDown:      ActionMoveDown,
		term.KeyLeft:      ActionMoveLeft,
		term.KeyRight:     ActionMoveRight,
		term.KeyHome:      ActionMoveBOL,
		term.KeyEnd:       ActionMoveEOL,
		term.KeyCtrlA:     ActionMoveBOL,
		term.KeyCtrlE:     ActionMoveEOL,
		term.KeyPageUp:    ActionPageUp,
		term.KeyPageDown:  ActionPageDown,
		term.KeyCtrlG:     ActionGotoLine,
		term.KeyEnter:     ActionNewline,
		term.KeyTab:       ActionIndent,
		term.KeyDelete:    ActionDeleteForward,
		term.KeyBackspace: ActionDeleteBackward,
		term.KeyCtrlK:     ActionDeleteToEOL,
		term.KeyCtrlU:     ActionDeleteToBOL,
		term.KeyCtrlSpace: ActionMark,
		term.KeyCtrlO:     ActionCopy,
		term.KeyCtrlW:     ActionCut,
		term.KeyCtrlY:     ActionPaste,
		term.KeyCtrlL:     ActionRedraw,
		term.KeyCtrlQ:     ActionQuit,
	}
}

// Bind parses a key spec like "ctrl+k" or "pgdn" and binds it to the
// named action. Binding to "none" disables the key.
func (k Keymap) Bind(spec, action string) error {
	key, err := term.ParseKey(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	if !knownActions[action] {
		return fmt.Errorf("bind %q: unknown action %q", spec, action)
	}
	k[key] = action
	return nil
}
