// Package editor implements the buffer-and-viewport engine: a gap
// buffer document kept in lock-step with an incrementally updated
// terminal window under a stream of single-key edit events.
//
// Three pieces of state stay synchronized. The Document owns the byte
// sequence, the cursor offset, the cursor's line number, and the
// selection anchor. The Viewport tracks the byte range [start, end)
// currently on screen and shifts it one line at a time as the cursor
// crosses the window edges. The Session ties them together: every
// operation mutates the document, moves the window when needed, and
// appends the minimal screen deltas to the pending frame. Nothing
// here touches a terminal; the frame is drained with TakeFrame and
// replayed by a render.Renderer.
//
// Operations are deliberately incremental. A keystroke costs a
// handful of terminal primitives (insert a character, delete a line,
// scroll the region by one row) rather than a repaint, which keeps
// the editor usable over links where a full screen costs real time.
// Full redraws happen only on demand and on resize.
//
// Every motion reports whether it moved, and edits at the document
// boundaries are safe no-ops. The page and goto operations rely on
// those flags to terminate.
//
// The Loop owns the modal side: blocking key dispatch through a
// Keymap, the status line repaint rule, prompts on the status row,
// and the save-on-exit flow.
package editor
