// Package clip provides the editor's single-slot clipboard.
//
// One slot holds the most recent cut or copied region. Every store
// replaces the previous contents wholesale; paste reads without
// consuming. The slot lives for the process, so content survives
// closing one document and opening another. There is no operation that
// empties a populated slot.
package clip

import "errors"

// ErrClipboardFull is returned when a region exceeds the configured cap.
var ErrClipboardFull = errors.New("clipboard full")

// Store is the single clipboard slot. Not safe for concurrent use; the
// editor owns it from one goroutine.
type Store struct {
	data []byte
	max  int
}

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithMaxSize caps stored regions at n bytes. A Put over the cap fails
// with ErrClipboardFull and keeps the previous contents. A cap of 0
// means unlimited.
func WithMaxSize(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.max = n
		}
	}
}

// New creates an empty clipboard.
func New(opts ...Option) *Store {
	s := &Store{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put replaces the slot with a copy of p.
func (s *Store) Put(p []byte) error {
	if s.max > 0 && len(p) > s.max {
		return ErrClipboardFull
	}

	s.data = append(s.data[:0:0], p...)
	return nil
}

// Bytes returns a copy of the slot contents.
func (s *Store) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// Len returns the stored length in bytes.
func (s *Store) Len() int {
	return len(s.data)
}

// IsEmpty returns true if nothing has been stored yet.
func (s *Store) IsEmpty() bool {
	return len(s.data) == 0
}
