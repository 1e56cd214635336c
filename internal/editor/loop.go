package editor

import (
	"errors"
	"strconv"

	"github.com/dshills/feather/internal/render"
	"github.com/dshills/feather/internal/term"
)

var errInvalidLine = errors.New("invalid line number")

// SaveFunc persists document content under name.
type SaveFunc func(name string, content []byte) error

// Loop drives the editor: block on a key, dispatch it through the
// keymap, flush the session's frame, repeat until quit.
type Loop struct {
	surface term.Surface
	rend    *render.Renderer
	sess    *Session
	keys    Keymap
	save    SaveFunc
	poll    func() (string, bool)
	quit    bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithNoticePoll installs f, consulted once per input event after it
// is handled. When f reports a message it lands on the status row with
// the same frame.
func WithNoticePoll(f func() (string, bool)) LoopOption {
	return func(l *Loop) { l.poll = f }
}

// NewLoop wires a loop over surface. The surface must be initialized.
// save runs when the user confirms the exit prompt.
func NewLoop(surface term.Surface, sess *Session, keys Keymap, save SaveFunc, opts ...LoopOption) *Loop {
	l := &Loop{
		surface: surface,
		rend:    render.New(surface),
		sess:    sess,
		keys:    keys,
		save:    save,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run blocks until the user quits or the input side closes.
func (l *Loop) Run() error {
	l.layout()
	l.rend.Apply(l.sess.TakeFrame())

	for !l.quit {
		ev := l.surface.PollEvent()
		switch ev.Type {
		case term.EventClosed:
			return nil
		case term.EventResize:
			l.layout()
		case term.EventKey:
			l.dispatch(ev)
		}
		if l.poll != nil {
			if msg, ok := l.poll(); ok {
				l.sess.SetNotice(msg)
			}
		}
		l.rend.Apply(l.sess.TakeFrame())
	}
	return nil
}

// layout re-reads the surface size and rebuilds the screen.
func (l *Loop) layout() {
	w, h := l.surface.Size()
	l.rend.Layout(w, h)
	l.sess.Resize(w, l.rend.Rows())
}

func (l *Loop) dispatch(ev term.Event) {
	l.sess.ClearNotice()

	if ev.Key == term.KeyRune {
		if err := l.sess.InsertChar(ev.Ch); err != nil {
			l.fail(err)
		}
		return
	}

	switch l.keys[ev.Key] {
	case ActionMoveUp:
		l.sess.MoveUp()
	case ActionMoveDown:
		l.sess.MoveDown()
	case ActionMoveLeft:
		l.sess.MoveLeft()
	case ActionMoveRight:
		l.sess.MoveRight()
	case ActionMoveBOL:
		l.sess.MoveBOL()
	case ActionMoveEOL:
		l.sess.MoveEOL()
	case ActionPageUp:
		l.sess.PageUp()
	case ActionPageDown:
		l.sess.PageDown()
	case ActionGotoLine:
		l.gotoLine()
	case ActionNewline:
		if err := l.sess.InsertChar('\n'); err != nil {
			l.fail(err)
		}
	case ActionIndent:
		if err := l.sess.InsertTab(); err != nil {
			l.fail(err)
		}
	case ActionDeleteForward:
		l.sess.DeleteForward()
	case ActionDeleteBackward:
		l.sess.DeleteBackward()
	case ActionDeleteToEOL:
		l.sess.DeleteToEOL()
	case ActionDeleteToBOL:
		l.sess.DeleteToBOL()
	case ActionMark:
		l.sess.ToggleMark()
	case ActionCopy:
		if err := l.sess.CopyRegion(); err != nil {
			l.fail(err)
		}
	case ActionCut:
		if err := l.sess.CutRegion(); err != nil {
			l.fail(err)
		}
	case ActionPaste:
		if err := l.sess.PasteRegion(); err != nil {
			l.fail(err)
		}
	case ActionRedraw:
		l.sess.Redraw()
	case ActionQuit:
		l.requestQuit()
	}
}

// fail surfaces an operation error on the status row.
func (l *Loop) fail(err error) {
	l.sess.SetNotice(err.Error())
	l.surface.Beep()
}

func (l *Loop) gotoLine() {
	answer, ok := l.promptLine("Line: ", "")
	if !ok || answer == "" {
		return
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || n < 1 {
		l.fail(errInvalidLine)
		return
	}
	l.sess.GotoLine(n)
}

// requestQuit runs the exit flow: an unmodified document quits
// immediately; otherwise the user chooses whether to save, and a save
// error keeps the session alive with the changes intact.
func (l *Loop) requestQuit() {
	if !l.sess.doc.modified {
		l.quit = true
		return
	}

	switch l.promptYesNo("Save changes? (y/n)") {
	case answerNo:
		l.quit = true
	case answerYes:
		name, ok := l.promptLine("File name: ", l.sess.doc.name)
		if !ok || name == "" {
			return
		}
		if err := l.save(name, l.sess.doc.Bytes()); err != nil {
			l.fail(err)
			return
		}
		l.quit = true
	case answerAbort:
	}
}
