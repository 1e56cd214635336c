// Package config loads the editor's TOML configuration.
//
// The file is optional; a missing file yields the defaults. Sections:
//
//	[editor]  tab_stop, growth_chunk, max_file_size
//	[screen]  foreground, background, status_foreground, status_background
//	[keys]    action name -> key spec, e.g. quit = "ctrl+x"
//	[log]     file, level
//	[state]   file, remember
//
// Values are validated on load; a config that parses but carries an
// out-of-range value or a malformed color is rejected with a
// ValidationError naming the key. Key specs in [keys] are validated
// later, when the keymap is built, so the error can name the action
// they were meant for.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/feather/internal/vfs"
)

// Config is the full configuration tree.
type Config struct {
	Editor EditorConfig      `toml:"editor"`
	Screen ScreenConfig      `toml:"screen"`
	Keys   map[string]string `toml:"keys"`
	Log    LogConfig         `toml:"log"`
	State  StateConfig       `toml:"state"`
}

// EditorConfig holds the buffer and editing settings.
type EditorConfig struct {
	// TabStop is the column interval the Tab key and tab expansion
	// advance to.
	TabStop int `toml:"tab_stop"`

	// GrowthChunk is the gap buffer's arena growth increment in bytes.
	GrowthChunk int `toml:"growth_chunk"`

	// MaxFileSize is the largest file the editor will open, in bytes.
	// Zero means unlimited.
	MaxFileSize int64 `toml:"max_file_size"`
}

// ScreenConfig holds the theme colors as "#rrggbb" strings. Empty
// values keep the terminal defaults.
type ScreenConfig struct {
	Foreground       string `toml:"foreground"`
	Background       string `toml:"background"`
	StatusForeground string `toml:"status_foreground"`
	StatusBackground string `toml:"status_background"`
}

// LogConfig holds the logging settings. An empty file disables
// logging; a full-screen editor has nowhere else to write.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StateConfig holds the cursor position memory settings. An empty
// file means the per-user default location.
type StateConfig struct {
	File     string `toml:"file"`
	Remember bool   `toml:"remember"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabStop:     4,
			GrowthChunk: 1024,
			MaxFileSize: 10 * 1024 * 1024,
		},
		Keys: map[string]string{},
		Log:  LogConfig{Level: "info"},
		State: StateConfig{
			Remember: true,
		},
	}
}

// Load reads and validates the configuration at path. A missing file
// is not an error; the defaults come back unchanged.
func Load(fsys vfs.FS, path string) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and color formats.
func (c Config) Validate() error {
	if c.Editor.TabStop < 1 {
		return &ValidationError{Key: "editor.tab_stop", Message: "must be at least 1"}
	}
	if c.Editor.GrowthChunk < 1 {
		return &ValidationError{Key: "editor.growth_chunk", Message: "must be at least 1"}
	}
	if c.Editor.MaxFileSize < 0 {
		return &ValidationError{Key: "editor.max_file_size", Message: "must not be negative"}
	}

	colors := []struct {
		key   string
		value string
	}{
		{"screen.foreground", c.Screen.Foreground},
		{"screen.background", c.Screen.Background},
		{"screen.status_foreground", c.Screen.StatusForeground},
		{"screen.status_background", c.Screen.StatusBackground},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, err := colorful.Hex(col.value); err != nil {
			return &ValidationError{Key: col.key, Message: fmt.Sprintf("invalid color %q", col.value)}
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Key: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return nil
}
