// Package docio loads documents from and saves documents to a file
// store, converting between the disk format and the in-memory format
// the editor works on.
//
// On disk a document may carry carriage returns and hard tabs. In
// memory the editor holds only printable bytes and bare newlines:
// loading strips every '\r', expands tabs with spaces to the configured
// tab stops, and terminates a nonempty document with a final '\n' if
// the file lacked one. Saving is the reverse direction for line
// endings only: every '\n' is written as "\r\n" and the file always
// ends with one; expanded tabs stay spaces.
package docio

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/feather/internal/vfs"
)

// Standard errors returned by document I/O.
var (
	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge indicates the file exceeds the maximum size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string // Operation that failed (open, save)
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Defaults applied by New.
const (
	DefaultTabStop     = 4
	DefaultMaxFileSize = 10 * 1024 * 1024
	DefaultPerm        = fs.FileMode(0o644)
)

// IO loads and saves documents through a file store.
type IO struct {
	fs          vfs.FS
	tabStop     int
	maxFileSize int64
	perm        fs.FileMode
}

// Option configures an IO.
type Option func(*IO)

// WithTabStop sets the column interval tabs expand to on load.
// Values below 1 are ignored.
func WithTabStop(n int) Option {
	return func(d *IO) {
		if n > 0 {
			d.tabStop = n
		}
	}
}

// WithMaxFileSize sets the maximum file size to open (0 = unlimited).
func WithMaxFileSize(n int64) Option {
	return func(d *IO) {
		if n >= 0 {
			d.maxFileSize = n
		}
	}
}

// WithPerm sets the mode for files created on save.
func WithPerm(perm fs.FileMode) Option {
	return func(d *IO) {
		d.perm = perm
	}
}

// New creates an IO over the given file store.
func New(fsys vfs.FS, opts ...Option) *IO {
	d := &IO{
		fs:          fsys,
		tabStop:     DefaultTabStop,
		maxFileSize: DefaultMaxFileSize,
		perm:        DefaultPerm,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Load reads the file at path and returns its decoded content.
// The file must exist; the editor does not create files on open.
func (d *IO) Load(path string) ([]byte, error) {
	info, err := d.fs.Stat(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if d.maxFileSize > 0 && info.Size() > d.maxFileSize {
		return nil, &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	data, err := d.fs.ReadFile(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	return Decode(data, d.tabStop), nil
}

// Save encodes content and writes it to path, overwriting in place.
func (d *IO) Save(path string, content []byte) error {
	if err := d.fs.WriteFile(path, Encode(content), d.perm); err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Decode converts disk bytes to the in-memory document format:
// carriage returns are dropped, tabs become spaces up to the next
// tabStop column, and a nonempty result always ends with '\n'.
// An empty file decodes to an empty document.
func Decode(data []byte, tabStop int) []byte {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}

	out := make([]byte, 0, len(data)+1)
	col := 0
	for _, c := range data {
		switch c {
		case '\r':
			// dropped
		case '\n':
			out = append(out, '\n')
			col = 0
		case '\t':
			n := tabStop - col%tabStop
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
		default:
			out = append(out, c)
			col++
		}
	}

	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}

// Encode converts in-memory content to disk bytes: every '\n' is
// written as "\r\n" and the output always ends with "\r\n", even for
// an empty document.
func Encode(content []byte) []byte {
	extra := 2
	for _, c := range content {
		if c == '\n' {
			extra++
		}
	}

	out := make([]byte, 0, len(content)+extra)
	for _, c := range content {
		if c == '\n' {
			out = append(out, '\r')
		}
		out = append(out, c)
	}

	n := len(out)
	if n < 2 || out[n-2] != '\r' || out[n-1] != '\n' {
		out = append(out, '\r', '\n')
	}
	return out
}
