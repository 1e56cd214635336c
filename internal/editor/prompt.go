package editor

import (
	"github.com/dshills/feather/internal/render"
	"github.com/dshills/feather/internal/term"
)

type promptAnswer int

const (
	answerAbort promptAnswer = iota
	answerYes
	answerNo
)

// promptLine runs a modal one-line prompt on the status row. Enter
// accepts, Escape cancels, Backspace edits. The initial text is
// offered for editing, which is how the save prompt defaults to the
// current name.
func (l *Loop) promptLine(prompt, initial string) (string, bool) {
	buf := []byte(initial)
	for {
		l.paintPrompt(prompt, string(buf))

		ev := l.surface.PollEvent()
		switch ev.Type {
		case term.EventClosed:
			l.sess.InvalidateStatus()
			return "", false
		case term.EventResize:
			l.layout()
			l.rend.Apply(l.sess.TakeFrame())
			continue
		case term.EventKey:
		default:
			continue
		}

		switch ev.Key {
		case term.KeyEnter:
			l.sess.InvalidateStatus()
			return string(buf), true
		case term.KeyEscape:
			l.sess.InvalidateStatus()
			return "", false
		case term.KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case term.KeyRune:
			buf = append(buf, ev.Ch)
		}
	}
}

// promptYesNo asks a single-key question on the status row. Escape
// and a closed input both abort.
func (l *Loop) promptYesNo(prompt string) promptAnswer {
	for {
		l.paintPrompt(prompt, "")

		ev := l.surface.PollEvent()
		switch ev.Type {
		case term.EventClosed:
			l.sess.InvalidateStatus()
			return answerAbort
		case term.EventResize:
			l.layout()
			l.rend.Apply(l.sess.TakeFrame())
			continue
		case term.EventKey:
		default:
			continue
		}

		switch {
		case ev.Key == term.KeyEscape:
			l.sess.InvalidateStatus()
			return answerAbort
		case ev.Key == term.KeyRune && (ev.Ch == 'y' || ev.Ch == 'Y'):
			l.sess.InvalidateStatus()
			return answerYes
		case ev.Key == term.KeyRune && (ev.Ch == 'n' || ev.Ch == 'N'):
			l.sess.InvalidateStatus()
			return answerNo
		}
		l.surface.Beep()
	}
}

// paintPrompt draws the prompt over the status row and parks the
// cursor at the insertion point.
func (l *Loop) paintPrompt(prompt, answer string) {
	w, _ := l.rend.Size()
	text, col := render.ComposePrompt(prompt, answer, w)
	row := l.rend.StatusRow()
	l.rend.Apply([]render.Delta{
		render.SetReverse(true),
		render.MoveCursor(row, 0),
		render.PutText(text),
		render.SetReverse(false),
		render.MoveCursor(row, col),
	})
}
