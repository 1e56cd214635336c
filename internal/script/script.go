// Package script runs the optional init.lua startup file.
//
// The script runs once at startup, before the terminal surface comes
// up, in a sandboxed interpreter: base, table, string and math
// libraries only; no io, no os, no debug, no package. One module is
// exposed:
//
//	fe.set(key, value)    -- override a config value: fe.set("editor.tab_stop", 8)
//	fe.bind(action, key)  -- rebind an action: fe.bind("quit", "ctrl+x")
//
// Settings land in the same Config the TOML file fills, so the script
// wins over the file and the file wins over the defaults. The merged
// result is validated after the script returns; a script that leaves
// the config invalid fails startup the same way a bad file does.
package script

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/feather/internal/config"
	"github.com/dshills/feather/internal/vfs"
)

// ApplyFile runs the script at path against cfg. A missing file is
// not an error.
func ApplyFile(fsys vfs.FS, path string, cfg *config.Config) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read script %s: %w", path, err)
	}
	return Apply(string(data), path, cfg)
}

// Apply runs src against cfg. name labels the chunk in error messages.
func Apply(src, name string, cfg *config.Config) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	e := &env{cfg: cfg}
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"set":  e.set,
		"bind": e.bind,
	})
	L.SetGlobal("fe", mod)

	if err := run(L, src, name); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// openSafeLibraries opens only Lua standard libraries without system
// access. io, os, debug and package stay closed, and the base-library
// functions that load code from disk or from strings are removed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// run compiles and executes src with panic recovery, so a misbehaving
// script turns into an error instead of taking the process down.
func run(L *lua.LState, src, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script panic: %v", r)
		}
	}()

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

type env struct {
	cfg *config.Config
}

// set maps dotted option keys onto config fields. Type mismatches and
// unknown keys raise in Lua, which carries the script line number
// back in the error.
func (e *env) set(L *lua.LState) int {
	key := L.CheckString(1)
	switch key {
	case "editor.tab_stop":
		e.cfg.Editor.TabStop = L.CheckInt(2)
	case "editor.growth_chunk":
		e.cfg.Editor.GrowthChunk = L.CheckInt(2)
	case "editor.max_file_size":
		e.cfg.Editor.MaxFileSize = L.CheckInt64(2)
	case "screen.foreground":
		e.cfg.Screen.Foreground = L.CheckString(2)
	case "screen.background":
		e.cfg.Screen.Background = L.CheckString(2)
	case "screen.status_foreground":
		e.cfg.Screen.StatusForeground = L.CheckString(2)
	case "screen.status_background":
		e.cfg.Screen.StatusBackground = L.CheckString(2)
	case "log.file":
		e.cfg.Log.File = L.CheckString(2)
	case "log.level":
		e.cfg.Log.Level = L.CheckString(2)
	case "state.file":
		e.cfg.State.File = L.CheckString(2)
	case "state.remember":
		e.cfg.State.Remember = L.CheckBool(2)
	default:
		L.RaiseError("unknown option %q", key)
	}
	return 0
}

// bind records a key binding. The spec and action are checked when
// the keymap is built, where both sides can be named in the error.
func (e *env) bind(L *lua.LState) int {
	action := L.CheckString(1)
	spec := L.CheckString(2)
	if e.cfg.Keys == nil {
		e.cfg.Keys = make(map[string]string)
	}
	e.cfg.Keys[action] = spec
	return 0
}
