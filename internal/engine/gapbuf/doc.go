// Package gapbuf provides a byte-oriented gap buffer, the text store
// at the core of the editor engine.
//
// A gap buffer keeps the text in a single contiguous arena with one
// movable hole (the gap) at the most recent edit point. Insertions and
// deletions at the gap are O(1); moving the edit point costs a copy
// proportional to the distance moved. That trade matches an editor's
// access pattern, where consecutive edits cluster around the cursor.
//
// The package provides:
//
//   - Logical byte addressing: offsets 0..Len() never expose the gap
//   - O(1) insert and delete at the current gap position
//   - Fixed-chunk arena growth with an optional hard size cap
//   - Byte search primitives used for line navigation
//
// Basic usage:
//
//	buf := gapbuf.New()
//	buf.InsertBytes(0, []byte("hello\nworld\n"))
//	buf.Delete(5, 1)                 // "helloworld\n"
//	nl := buf.SearchForward(0, '\n') // 10
//
// Offsets:
//
// All offsets are logical positions in the text, independent of where
// the gap currently sits. Valid insert positions are 0..Len() inclusive;
// valid read positions are 0..Len()-1. SearchForward returns Len() when
// the byte does not occur at or after the start offset, so its result is
// always usable as an exclusive range bound. SearchBackward returns -1
// when the byte does not occur at or before the start offset.
//
// A Buffer is not safe for concurrent use. The editor owns its buffer
// from a single goroutine; nothing else touches it.
package gapbuf
