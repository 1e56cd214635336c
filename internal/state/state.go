// Package state remembers the last cursor line per file between
// sessions.
//
// Positions live in a small JSON file keyed by absolute path:
//
//	{"files":{"/home/u/notes.txt":{"line":12,"at":1724371200}}}
//
// Line numbers are 1-based, matching what the status line shows. The
// file is read and updated in place with gjson and sjson, so unknown
// fields written by other versions survive a round trip. A missing
// file starts an empty store; an unreadable or corrupt one does too,
// with the error reported so the caller can log it.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/feather/internal/vfs"
)

// DefaultMaxEntries caps how many files the store tracks before the
// oldest entries are dropped.
const DefaultMaxEntries = 200

// ErrCorrupt reports a state file that is not valid JSON.
var ErrCorrupt = errors.New("state file is not valid JSON")

// Store holds the position file contents between Open and Save.
type Store struct {
	fsys       vfs.FS
	path       string
	data       []byte
	dirty      bool
	maxEntries int
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithMaxEntries overrides how many files the store keeps.
func WithMaxEntries(n int) Option {
	return func(s *Store) { s.maxEntries = n }
}

// WithClock overrides the time source used to age entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open reads the state file at path. The returned Store is always
// usable; the error, when non-nil, explains why it came back empty.
func Open(fsys vfs.FS, path string, opts ...Option) (*Store, error) {
	s := &Store{
		fsys:       fsys,
		path:       path,
		data:       []byte("{}"),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read state %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return s, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	s.data = data
	return s, nil
}

// Line returns the remembered 1-based line for name.
func (s *Store) Line(name string) (int, bool) {
	res := gjson.GetBytes(s.data, fileKey(name)+".line")
	if !res.Exists() || res.Int() < 1 {
		return 0, false
	}
	return int(res.Int()), true
}

// Remember records line as the last cursor position for name,
// replacing any earlier entry.
func (s *Store) Remember(name string, line int) {
	if line < 1 {
		return
	}
	key := fileKey(name)
	if out, err := sjson.SetBytes(s.data, key+".line", line); err == nil {
		s.data = out
	}
	if out, err := sjson.SetBytes(s.data, key+".at", s.now().Unix()); err == nil {
		s.data = out
	}
	s.dirty = true
	s.prune()
}

// Save writes the store back if anything changed since Open.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}
	if err := s.fsys.WriteFile(s.path, s.data, 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

// prune drops the oldest entries once the store tracks more files
// than maxEntries.
func (s *Store) prune() {
	files := gjson.GetBytes(s.data, "files")
	if !files.IsObject() {
		return
	}
	type entry struct {
		name string
		at   int64
	}
	var entries []entry
	files.ForEach(func(k, v gjson.Result) bool {
		entries = append(entries, entry{k.String(), v.Get("at").Int()})
		return true
	})
	if len(entries) <= s.maxEntries {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at < entries[j].at })
	for _, e := range entries[:len(entries)-s.maxEntries] {
		if out, err := sjson.DeleteBytes(s.data, fileKey(e.name)); err == nil {
			s.data = out
		}
	}
}

// pathEscaper quotes the characters gjson and sjson treat as path
// syntax, so arbitrary file names work as keys.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
)

func fileKey(name string) string {
	return "files." + pathEscaper.Replace(name)
}
