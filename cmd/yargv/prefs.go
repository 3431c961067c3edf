// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/yargv/pkg/render"
	"github.com/yeetrun/yargv/pkg/tui"
)

const prefsFileName = "yargv.toml"

// prefs are defaults for the global flags. Flags on the command line win.
type prefs struct {
	Output        string `toml:"output,omitempty"`
	Color         string `toml:"color,omitempty"`
	ImplicitLists bool   `toml:"implicit_lists,omitempty"`
}

// loadPrefs reads the first yargv.toml found from startDir upward, falling
// back to $HOME/.config/yargv/yargv.toml. A missing file is not an error.
func loadPrefs(startDir, home string) (prefs, string, error) {
	path, err := findPrefsPath(startDir, home)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs{}, "", nil
		}
		return prefs{}, "", err
	}
	var p prefs
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return prefs{}, path, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if p.Output != "" {
		if _, err := render.ParseFormat(p.Output); err != nil {
			return prefs{}, path, fmt.Errorf("%s: %w", path, err)
		}
	}
	if _, err := tui.ParseMode(p.Color); err != nil {
		return prefs{}, path, fmt.Errorf("%s: %w", path, err)
	}
	return p, path, nil
}

func findPrefsPath(startDir, home string) (string, error) {
	if startDir != "" {
		dir := filepath.Clean(startDir)
		for {
			path := filepath.Join(dir, prefsFileName)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if home != "" {
		path := filepath.Join(home, ".config", "yargv", prefsFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	return "", os.ErrNotExist
}
