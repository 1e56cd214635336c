package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/feather/internal/config"
	"github.com/dshills/feather/internal/docio"
	"github.com/dshills/feather/internal/editor"
	"github.com/dshills/feather/internal/engine/clip"
	"github.com/dshills/feather/internal/engine/gapbuf"
	"github.com/dshills/feather/internal/script"
	"github.com/dshills/feather/internal/state"
	"github.com/dshills/feather/internal/term"
	"github.com/dshills/feather/internal/vfs"
)

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// ConfigPath overrides the config file location.
	ConfigPath string

	// ScriptPath overrides the startup script location.
	ScriptPath string

	// LogFile overrides the configured log sink.
	LogFile string

	// LogLevel overrides the configured log level.
	LogLevel string

	// ANSI forces the raw escape-sequence surface instead of tcell,
	// for dumb serial terminals.
	ANSI bool

	// FS overrides the filesystem. Nil means the host filesystem.
	FS vfs.FS

	// Surface overrides the terminal surface. Nil picks one by ANSI.
	Surface term.Surface

	// LogWriter overrides the log sink with a writer.
	LogWriter io.Writer
}

// InitError wraps a startup failure with the component that failed.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Application owns one editing session from startup to exit.
type Application struct {
	opts    Options
	fsys    vfs.FS
	cfg     config.Config
	logger  *Logger
	logFile *os.File
	files   *docio.IO
	sess    *editor.Session
	keys    editor.Keymap
	store   *state.Store
	absPath string
	isNew   bool
}

// New loads configuration, runs the startup script, opens the
// document and builds the session. Everything that can fail with a
// message the user must read happens here, before the terminal is
// switched to the editor; Run only starts the surface and the loop.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts, fsys: opts.FS}
	if a.fsys == nil {
		a.fsys = vfs.NewOSFS()
	}

	// 1. Config file, then startup script, then command-line overrides.
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = defaultConfigFile("config.toml")
	}
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(a.fsys, cfgPath)
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
	}

	rcPath := opts.ScriptPath
	if rcPath == "" {
		rcPath = defaultConfigFile("init.lua")
	}
	if rcPath != "" {
		if err := script.ApplyFile(a.fsys, rcPath, &cfg); err != nil {
			return nil, &InitError{Component: "script", Err: err}
		}
	}

	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	a.cfg = cfg

	// 2. Logger. The sink is a file; stderr belongs to the terminal.
	if err := a.openLogger(); err != nil {
		return nil, &InitError{Component: "log", Err: err}
	}
	a.logger.Info("starting, file %s", opts.Path)

	// 3. Document, loaded before the terminal is touched so open
	// errors print cleanly.
	a.files = docio.New(a.fsys,
		docio.WithTabStop(cfg.Editor.TabStop),
		docio.WithMaxFileSize(cfg.Editor.MaxFileSize),
	)
	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		abs = opts.Path
	}
	a.absPath = abs

	text, err := a.files.Load(opts.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.isNew = true
		a.logger.Info("new file")
	case err != nil:
		return nil, &InitError{Component: "open", Err: err}
	default:
		a.logger.Info("loaded %d bytes", len(text))
	}

	doc := editor.NewDocument(opts.Path, text, gapbuf.WithChunk(cfg.Editor.GrowthChunk))

	// 4. Keymap, defaults plus config and script bindings.
	a.keys = editor.DefaultKeymap()
	actions := make([]string, 0, len(cfg.Keys))
	for action := range cfg.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if err := a.keys.Bind(cfg.Keys[action], action); err != nil {
			return nil, &InitError{Component: "keys", Err: err}
		}
	}

	// 5. Position memory.
	if cfg.State.Remember {
		statePath := cfg.State.File
		if statePath == "" {
			statePath = defaultConfigFile("state.json")
		}
		if statePath != "" {
			store, err := state.Open(a.fsys, statePath)
			if err != nil {
				a.logger.Warn("state: %v", err)
			}
			a.store = store
		}
	}

	a.sess = editor.NewSession(doc, clip.New(), editor.WithTabStop(cfg.Editor.TabStop))
	return a, nil
}

// Run brings up the terminal surface and blocks in the editor loop
// until the user quits. The exit position is recorded on the way out.
func (a *Application) Run() error {
	surface := a.opts.Surface
	if surface == nil {
		var err error
		if surface, err = a.newSurface(); err != nil {
			return &InitError{Component: "screen", Err: err}
		}
	}
	if err := surface.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer surface.Shutdown()

	width, height := surface.Size()
	a.logger.Debug("screen %dx%d", width, height)
	a.sess.Resize(width, height-1)

	if a.store != nil {
		if line, ok := a.store.Line(a.absPath); ok {
			a.sess.GotoLine(int64(line))
			a.logger.Debug("restored line %d", line)
		}
	}
	if a.isNew {
		a.sess.SetNotice("new file")
	}

	var loopOpts []editor.LoopOption
	if watcher, err := NewDiskWatcher(a.absPath, a.logger); err != nil {
		a.logger.Warn("watcher: %v", err)
	} else {
		defer watcher.Close()
		loopOpts = append(loopOpts, editor.WithNoticePoll(watcher.Notice))
	}

	save := func(name string, content []byte) error {
		if err := a.files.Save(name, content); err != nil {
			a.logger.Error("save %s: %v", name, err)
			return err
		}
		a.logger.Info("saved %s, %d bytes", name, len(content))
		return nil
	}

	loop := editor.NewLoop(surface, a.sess, a.keys, save, loopOpts...)
	err := loop.Run()

	if a.store != nil {
		a.store.Remember(a.absPath, int(a.sess.Doc().Line())+1)
		if serr := a.store.Save(); serr != nil {
			a.logger.Warn("state: %v", serr)
		}
	}
	a.logger.Info("exiting")
	return err
}

// Close releases resources held since New.
func (a *Application) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// openLogger builds the logger from config and overrides. Each
// process gets a session id so interleaved runs can be told apart in
// a shared log file.
func (a *Application) openLogger() error {
	var sink io.Writer
	switch {
	case a.opts.LogWriter != nil:
		sink = a.opts.LogWriter
	case a.cfg.Log.File != "":
		f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		a.logFile = f
		sink = f
	default:
		a.logger = NullLogger
		return nil
	}

	a.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(a.cfg.Log.Level),
		Output: sink,
		Prefix: "feather",
	}).WithField("session", uuid.NewString()[:8])
	return nil
}

// newSurface picks the terminal implementation.
func (a *Application) newSurface() (term.Surface, error) {
	if a.opts.ANSI {
		return term.NewVT100(os.Stdin, os.Stdout), nil
	}
	return term.NewScreen(term.WithTheme(term.Theme{
		Foreground:       a.cfg.Screen.Foreground,
		Background:       a.cfg.Screen.Background,
		StatusForeground: a.cfg.Screen.StatusForeground,
		StatusBackground: a.cfg.Screen.StatusBackground,
	}))
}

// defaultConfigFile resolves name inside the per-user config
// directory, or "" when the platform has none.
func defaultConfigFile(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "feather", name)
}
