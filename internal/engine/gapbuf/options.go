package gapbuf

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithChunk sets the arena growth increment in bytes.
// Values below 1 are ignored.
func WithChunk(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.chunk = n
		}
	}
}

// WithMaxSize caps the arena at n bytes. An insert that would grow the
// arena past the cap fails with ErrBufferFull and leaves the buffer
// unchanged. Inserts that fit in the existing gap always succeed.
// A cap of 0 means unlimited.
func WithMaxSize(n int) Option {
	return func(b *Buffer) {
		if n >= 0 {
			b.maxSize = n
		}
	}
}
