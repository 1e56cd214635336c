// Package vfs provides the file system abstraction behind document
// load and save.
//
// The FS interface covers the three calls the editor makes, so tests
// can run against an in-memory file system and the save path can be
// exercised without touching disk.
package vfs

import (
	"io/fs"
	"time"
)

// FS is the file store the editor reads documents from and writes
// documents to.
type FS interface {
	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary and
	// truncating an existing file. The write is in place; there is no
	// atomic-rename step.
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// FileInfo describes a file or directory.
type FileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(name string, size int64, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{
		name:    name,
		size:    size,
		modTime: modTime,
		isDir:   isDir,
	}
}

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
