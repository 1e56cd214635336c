package render

// Op identifies one screen mutation. The set mirrors the terminal
// primitives the editor is allowed to assume; there is no full-frame
// repaint op, a redraw is expressed row by row.
type Op int

const (
	// OpMoveCursor places the cursor at Row, Col.
	OpMoveCursor Op = iota
	// OpPutText draws Text at the cursor, advancing it.
	OpPutText
	// OpInsertChar inserts Ch at the cursor, shifting the rest of the
	// row right.
	OpInsertChar
	// OpDeleteChar deletes the byte under the cursor, shifting the
	// rest of the row left.
	OpDeleteChar
	// OpInsertLine inserts a blank row at the cursor row.
	OpInsertLine
	// OpDeleteLine deletes the cursor row.
	OpDeleteLine
	// OpClearToEOL blanks from the cursor to the end of the row.
	OpClearToEOL
	// OpScrollUp scrolls the content region up one row.
	OpScrollUp
	// OpSetReverse switches reverse video per On.
	OpSetReverse
)

// String returns a short name for the op.
func (o Op) String() string {
	switch o {
	case OpMoveCursor:
		return "move"
	case OpPutText:
		return "put"
	case OpInsertChar:
		return "insch"
	case OpDeleteChar:
		return "delch"
	case OpInsertLine:
		return "insln"
	case OpDeleteLine:
		return "delln"
	case OpClearToEOL:
		return "eol"
	case OpScrollUp:
		return "scroll"
	case OpSetReverse:
		return "rev"
	}
	return "unknown"
}

// Delta is a single screen mutation. Only OpMoveCursor carries a
// position; every other op acts at the current cursor, exactly as the
// terminal does.
type Delta struct {
	Op   Op
	Row  int    // OpMoveCursor
	Col  int    // OpMoveCursor
	Ch   byte   // OpInsertChar
	Text string // OpPutText
	On   bool   // OpSetReverse
}

// MoveCursor returns a delta placing the cursor at row, col.
func MoveCursor(row, col int) Delta {
	return Delta{Op: OpMoveCursor, Row: row, Col: col}
}

// PutText returns a delta drawing text at the cursor.
func PutText(text string) Delta {
	return Delta{Op: OpPutText, Text: text}
}

// InsertChar returns a delta inserting c at the cursor.
func InsertChar(c byte) Delta {
	return Delta{Op: OpInsertChar, Ch: c}
}

// DeleteChar returns a delta deleting the byte under the cursor.
func DeleteChar() Delta {
	return Delta{Op: OpDeleteChar}
}

// InsertLine returns a delta inserting a blank row at the cursor row.
func InsertLine() Delta {
	return Delta{Op: OpInsertLine}
}

// DeleteLine returns a delta deleting the cursor row.
func DeleteLine() Delta {
	return Delta{Op: OpDeleteLine}
}

// ClearToEOL returns a delta blanking the rest of the cursor row.
func ClearToEOL() Delta {
	return Delta{Op: OpClearToEOL}
}

// ScrollUp returns a delta scrolling the content region up one row.
func ScrollUp() Delta {
	return Delta{Op: OpScrollUp}
}

// SetReverse returns a delta switching reverse video.
func SetReverse(on bool) Delta {
	return Delta{Op: OpSetReverse, On: on}
}
