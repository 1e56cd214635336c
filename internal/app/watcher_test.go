package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitChanged polls the watcher flag until it trips or the deadline
// passes. Filesystem events arrive on their own schedule.
func waitChanged(t *testing.T, w *DiskWatcher) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Changed() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestDiskWatcherSeesWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewDiskWatcher(path, NullLogger)
	if err != nil {
		t.Fatalf("NewDiskWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitChanged(t, w) {
		t.Fatal("write not observed")
	}
	if w.Changed() {
		t.Error("flag did not clear after being read")
	}
}

func TestDiskWatcherSeesReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewDiskWatcher(path, NullLogger)
	if err != nil {
		t.Fatalf("NewDiskWatcher: %v", err)
	}
	defer w.Close()

	// The atomic-save pattern: write a sibling, rename over the target.
	tmp := filepath.Join(dir, "a.txt.tmp")
	if err := os.WriteFile(tmp, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	if !waitChanged(t, w) {
		t.Fatal("replace not observed")
	}
}

func TestDiskWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewDiskWatcher(path, NullLogger)
	if err != nil {
		t.Fatalf("NewDiskWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if w.Changed() {
		t.Error("sibling write tripped the flag")
	}
}

func TestDiskWatcherMissingDirectory(t *testing.T) {
	_, err := NewDiskWatcher(filepath.Join(t.TempDir(), "gone", "a.txt"), NullLogger)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDiskWatcherNotice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewDiskWatcher(path, NullLogger)
	if err != nil {
		t.Fatalf("NewDiskWatcher: %v", err)
	}
	defer w.Close()

	if msg, ok := w.Notice(); ok {
		t.Errorf("unexpected notice %q before any change", msg)
	}
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if msg, ok := w.Notice(); ok {
			if msg != "file changed on disk" {
				t.Errorf("notice = %q", msg)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("notice never raised")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
