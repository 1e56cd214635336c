package app

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dshills/feather/internal/config"
	"github.com/dshills/feather/internal/docio"
	"github.com/dshills/feather/internal/state"
	"github.com/dshills/feather/internal/term"
	"github.com/dshills/feather/internal/vfs"
)

// newTestApp builds an application over a memory filesystem and a
// memory surface. Config and script paths point into the memory
// filesystem whether or not the files exist, so the host never leaks
// into a test.
func newTestApp(t *testing.T, files map[string]string, opts Options) (*Application, *term.Memory) {
	t.Helper()
	fsys := vfs.NewMemFS()
	for name, content := range files {
		if err := fsys.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}

	m := term.NewMemory(40, 6)
	opts.FS = fsys
	opts.Surface = m
	if opts.Path == "" {
		opts.Path = "/f/a.txt"
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = "/cfg/config.toml"
	}
	if opts.ScriptPath == "" {
		opts.ScriptPath = "/cfg/init.lua"
	}

	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a, m
}

func TestNewLoadsDocument(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{
		"/f/a.txt": "hello\r\nworld\r\n",
	}, Options{})

	if got := a.sess.Doc().String(); got != "hello\nworld\n" {
		t.Errorf("document = %q, want decoded text", got)
	}
	if a.isNew {
		t.Error("existing file reported as new")
	}
	if a.cfg.Editor.TabStop != 4 {
		t.Errorf("TabStop = %d, want default 4", a.cfg.Editor.TabStop)
	}
}

func TestRunEditSaveQuit(t *testing.T) {
	a, m := newTestApp(t, map[string]string{
		"/f/a.txt": "hello\r\nworld\r\n",
	}, Options{})

	m.Type("x")
	m.SendKey(term.KeyCtrlQ)
	m.Type("y")
	m.SendKey(term.KeyEnter) // accept the offered name
	m.CloseInput()

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := a.fsys.ReadFile("/f/a.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(data); got != "xhello\r\nworld\r\n" {
		t.Errorf("saved = %q, want re-encoded edit", got)
	}
	if m.Row(0) != "xhello" || m.Row(1) != "world" {
		t.Errorf("grid = %q/%q, want xhello/world", m.Row(0), m.Row(1))
	}
}

func TestNewFileQuitsWithoutPrompt(t *testing.T) {
	a, m := newTestApp(t, nil, Options{})

	if !a.isNew {
		t.Error("missing file not reported as new")
	}
	m.SendKey(term.KeyCtrlQ)
	m.CloseInput()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := a.fsys.ReadFile("/f/a.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile err = %v, untouched new file should not be created", err)
	}
}

func TestConfigAndScriptPrecedence(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{
		"/f/a.txt":         "x",
		"/cfg/config.toml": "[editor]\ntab_stop = 2\n",
		"/cfg/init.lua":    "fe.set(\"editor.tab_stop\", 8)\nfe.bind(\"quit\", \"ctrl+x\")\n",
	}, Options{})

	if a.cfg.Editor.TabStop != 8 {
		t.Errorf("TabStop = %d, script should win over config", a.cfg.Editor.TabStop)
	}
	if got := a.keys[term.KeyCtrlX]; got != "quit" {
		t.Errorf("ctrl+x bound to %q, want quit", got)
	}
}

func TestConfigKeysRebind(t *testing.T) {
	a, m := newTestApp(t, map[string]string{
		"/f/a.txt":         "x",
		"/cfg/config.toml": "[keys]\nquit = \"ctrl+x\"\n",
	}, Options{})

	m.SendKey(term.KeyCtrlX)
	m.CloseInput()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestNewReportsConfigError(t *testing.T) {
	fsys := vfs.NewMemFS()
	if err := fsys.WriteFile("/cfg/config.toml", []byte("[editor\ntab_stop"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{Path: "/f/a.txt", ConfigPath: "/cfg/config.toml", ScriptPath: "/cfg/init.lua", FS: fsys})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "config" {
		t.Fatalf("err = %v, want config init error", err)
	}
	var pe *config.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("err = %v, want wrapped parse error", err)
	}
}

func TestNewReportsScriptError(t *testing.T) {
	fsys := vfs.NewMemFS()
	if err := fsys.WriteFile("/cfg/init.lua", []byte(`fe.set("bogus", 1)`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{Path: "/f/a.txt", ConfigPath: "/cfg/config.toml", ScriptPath: "/cfg/init.lua", FS: fsys})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "script" {
		t.Fatalf("err = %v, want script init error", err)
	}
}

func TestNewReportsBadBinding(t *testing.T) {
	fsys := vfs.NewMemFS()
	if err := fsys.WriteFile("/cfg/config.toml", []byte("[keys]\nquit = \"ctrl+!\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{Path: "/f/a.txt", ConfigPath: "/cfg/config.toml", ScriptPath: "/cfg/init.lua", FS: fsys})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "keys" {
		t.Fatalf("err = %v, want keys init error", err)
	}
	if !errors.Is(err, term.ErrInvalidKeySpec) {
		t.Errorf("err = %v, want wrapped invalid key spec", err)
	}
}

func TestNewRejectsDirectory(t *testing.T) {
	fsys := vfs.NewMemFS()
	fsys.MkdirAll("/f/dir")
	_, err := New(Options{Path: "/f/dir", ConfigPath: "/cfg/config.toml", ScriptPath: "/cfg/init.lua", FS: fsys})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "open" {
		t.Fatalf("err = %v, want open init error", err)
	}
	if !errors.Is(err, docio.ErrIsDirectory) {
		t.Errorf("err = %v, want wrapped directory error", err)
	}
}

func TestRunRestoresAndRecordsPosition(t *testing.T) {
	fsys := vfs.NewMemFS()
	seed, err := state.Open(fsys, "/cfg/state.json")
	if err != nil {
		t.Fatal(err)
	}
	seed.Remember("/f/a.txt", 3)
	if err := seed.Save(); err != nil {
		t.Fatal(err)
	}
	if err := fsys.WriteFile("/f/a.txt", []byte("l1\r\nl2\r\nl3\r\nl4\r\nl5\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.WriteFile("/cfg/config.toml", []byte("[state]\nfile = \"/cfg/state.json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := term.NewMemory(40, 6)
	a, err := New(Options{Path: "/f/a.txt", ConfigPath: "/cfg/config.toml", ScriptPath: "/cfg/init.lua", FS: fsys, Surface: m})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	m.SendKey(term.KeyDown)
	m.SendKey(term.KeyDown)
	m.SendKey(term.KeyCtrlQ)
	m.CloseInput()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := a.sess.Doc().Line(); got != 4 {
		t.Errorf("exit line index = %d, want 4 (restored 3 plus two down)", got)
	}

	after, err := state.Open(fsys, "/cfg/state.json")
	if err != nil {
		t.Fatalf("reopen state: %v", err)
	}
	if line, ok := after.Line("/f/a.txt"); !ok || line != 5 {
		t.Errorf("recorded line = %d, %v, want 5, true", line, ok)
	}
}

func TestStateDisabled(t *testing.T) {
	a, m := newTestApp(t, map[string]string{
		"/f/a.txt":         "x",
		"/cfg/config.toml": "[state]\nremember = false\n",
	}, Options{})

	if a.store != nil {
		t.Fatal("store built with remember disabled")
	}
	m.SendKey(term.KeyCtrlQ)
	m.CloseInput()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	a, m := newTestApp(t, map[string]string{
		"/f/a.txt": "x",
	}, Options{LogWriter: &buf, LogLevel: "debug"})

	m.SendKey(term.KeyCtrlQ)
	m.CloseInput()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"[INFO]", "[DEBUG]", "feather:", "session=", "exiting"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
