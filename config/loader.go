/*
   Copyright 2026 The Mobile Shell Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file.
	ProjectConfigFile = "mobile-shell.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/mobile-shell"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger

	// HomeDir and WorkDir default to os.UserHomeDir and os.Getwd.
	HomeDir func() (string, error)
	WorkDir func() (string, error)
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		HomeDir: os.UserHomeDir,
		WorkDir: os.Getwd,
	}
}

// Load loads configuration with layered precedence:
//  1. Default config
//  2. User config (~/.config/mobile-shell/config.yaml)
//  3. Project config (mobile-shell.yaml in current or parent directories)
//  4. explicit, when non-empty (the --config flag)
func (l *Loader) Load(explicit string) (*File, error) {
	cfg := DefaultFile()

	if userPath := l.userConfigPath(); userPath != "" {
		if layer, err := readLayer(userPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userPath))
			cfg.Merge(layer)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userPath), slog.String("error", err.Error()))
		}
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		if layer, err := readLayer(projectPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectPath))
			cfg.Merge(layer)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if explicit != "" {
		layer, err := readLayer(explicit)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded explicit config", slog.String("path", explicit))
		cfg.Merge(layer)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// userConfigPath returns the path to the user config file.
func (l *Loader) userConfigPath() string {
	home, err := l.HomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for mobile-shell.yaml in current and parent directories.
func (l *Loader) findProjectConfig() string {
	cwd, err := l.WorkDir()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
